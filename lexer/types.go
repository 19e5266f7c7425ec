package lexer

import (
	"errors"
	"log/slog"
)

// Sentinel errors.
var (
	// ErrNotReady: one of the token automata failed to build.
	ErrNotReady = errors.New("lexer: tokenizer not ready")

	// ErrConversion: a numeric token does not fit its Go type.
	ErrConversion = errors.New("lexer: numeric conversion failed")
)

// Token patterns, in the nfa pattern language.
const (
	IntPattern      = "(-?[[:digit:]]+)"
	RealPattern     = "(-?[[:digit:]]+.?[[:digit:]]*((e|E)-?[[:digit:]]{1,3})?)"
	OperatorPattern = "(->)"

	// Arrow is the built-in operator.
	Arrow = "->"
)

// TokenType classifies a token.
type TokenType uint8

const (
	EOF TokenType = iota
	INT
	REAL
	OPERATOR
	STRING
)

func (t TokenType) String() string {
	switch t {
	case INT:
		return "INT"
	case REAL:
		return "REAL"
	case OPERATOR:
		return "OPERATOR"
	case STRING:
		return "STRING"
	}

	return "EOF"
}

// Token is one lexeme. Line and Col are 1-based; Int and Real carry the
// converted value for INT and REAL tokens.
type Token struct {
	Type TokenType
	Text string
	Int  int64
	Real float64
	Line int
	Col  int
}

// Option configures a Tokenizer.
type Option func(*Options)

// Options holds Tokenizer configuration.
type Options struct {
	// Delimiters separate tokens. Default: space and tab.
	Delimiters string

	// Operators recognized besides Arrow.
	Operators []string

	Logger *slog.Logger
}

// DefaultOptions returns space/tab delimiters and the Arrow operator only.
func DefaultOptions() Options {
	return Options{Delimiters: " \t"}
}

// WithDelimiters adds delimiter bytes to the defaults.
func WithDelimiters(d string) Option {
	return func(o *Options) {
		o.Delimiters += d
	}
}

// WithOperators registers extra operators. Empty strings are ignored and an
// operator containing a delimiter never matches.
func WithOperators(ops ...string) Option {
	return func(o *Options) {
		for _, op := range ops {
			if op != "" {
				o.Operators = append(o.Operators, op)
			}
		}
	}
}

// WithLogger routes diagnostics to l instead of the shared logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
