// File: types.go
// Role: Sentinel errors, the corrected-pattern alphabet, options and the
//       Text contract shared by every matching entry point.

package nfa

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors. Structural and preprocessing failures leave the NFA
// not ready and are available through Err; matching failures are returned
// by Match.
var (
	// ErrPatternTooShort: the smallest pattern is '(' + one symbol + ')'.
	ErrPatternTooShort = errors.New("nfa: pattern too short")

	// ErrUnbalanced: (), [] or {} do not pair up (escaped characters skipped).
	ErrUnbalanced = errors.New("nfa: unbalanced delimiters")

	// ErrNotWrapped: the pattern must start with '(' and end with ')'.
	ErrNotWrapped = errors.New("nfa: pattern not wrapped in parentheses")

	// ErrInvalidRange: a (x-y) range whose bounds are not alphanumeric or reversed.
	ErrInvalidRange = errors.New("nfa: invalid character range")

	// ErrUnknownClass: a "[[" that does not open a known [[:name:]] class.
	// A lone '[' is a literal.
	ErrUnknownClass = errors.New("nfa: unknown character class")

	// ErrInvalidRepeat: malformed {n1,n2} bounds.
	ErrInvalidRepeat = errors.New("nfa: invalid repetition bounds")

	// ErrDanglingQuantifier: '*', '+', '?' or '{' with nothing to apply to.
	ErrDanglingQuantifier = errors.New("nfa: quantifier without operand")

	// ErrTooManyRanges: more than MaxRanges user ranges in one pattern.
	ErrTooManyRanges = errors.New("nfa: too many ranges")

	// ErrNotReady is returned by Match on an NFA whose construction failed.
	ErrNotReady = errors.New("nfa: not ready")

	// ErrSuspiciousInput is returned by Match when sanitization rejects the text.
	ErrSuspiciousInput = errors.New("nfa: suspicious input")
)

// SyntaxError locates a construction failure within the pattern.
type SyntaxError struct {
	Pattern string
	Pos     int   // byte offset in Pattern, -1 when the whole pattern is at fault
	Err     error // one of the sentinel errors above
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%v: %q", e.Err, e.Pattern)
	}

	return fmt.Sprintf("%v at offset %d in %q", e.Err, e.Pos, e.Pattern)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Limits and reserved characters of the pattern language.
const (
	MinPatternLen = 3
	MaxRepeat     = 99
	MaxRanges     = 80
	Escape        = '\\'
)

// Symbol is one position of the corrected pattern. Non-negative values are
// bytes; negative values are class or range sentinels.
type Symbol int16

// Built-in class sentinels.
const (
	ClassMisc     Symbol = -99 + iota // printable punctuation
	ClassLower                        // [[:alpha:]]
	ClassUpper                        // [[:ALPHA:]]
	ClassASCII                        // printable 32..126
	ClassDigit                        // 0-9
	ClassHex                          // 0-9 A-F a-f
	ClassAlphaNum                     // 0-9 A-Z a-z
)

// rangeBase is the sentinel of the first user range; the n-th range (from
// zero) is rangeBase+n, so ids occupy [-80, -1].
const rangeBase Symbol = -MaxRanges

// IsClass reports whether s is a built-in class sentinel.
func (s Symbol) IsClass() bool { return s >= ClassMisc && s <= ClassAlphaNum }

// IsRange reports whether s is a user range sentinel.
func (s Symbol) IsRange() bool { return s >= rangeBase && s < 0 }

// Option configures an NFA at construction.
type Option func(*Options)

// Options holds NFA configuration.
type Options struct {
	// Sanitize rejects text that looks like pattern syntax. Default true.
	Sanitize bool

	// Logger receives construction diagnostics. Defaults to the package-wide
	// internal logger, which discards until enabled.
	Logger *slog.Logger
}

// DefaultOptions returns sanitization on and the shared logger.
func DefaultOptions() Options {
	return Options{Sanitize: true}
}

// WithSanitize toggles input sanitization.
func WithSanitize(on bool) Option {
	return func(o *Options) {
		o.Sanitize = on
	}
}

// WithLogger routes construction diagnostics to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Text is random-access input for matching. lexer.Line implements it.
type Text interface {
	Len() int
	At(i int) byte
}

// stringText adapts a string to Text.
type stringText string

func (s stringText) Len() int      { return len(s) }
func (s stringText) At(i int) byte { return s[i] }
