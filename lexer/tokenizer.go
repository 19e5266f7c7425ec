// File: tokenizer.go
// Role: Line-oriented tokenizer. Numbers are confirmed by NFAs, operators
//       are located with an Aho-Corasick automaton, anything else up to the
//       next delimiter is a STRING.

package lexer

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/katalvlaran/regraph/internal/logger"
	"github.com/katalvlaran/regraph/nfa"
)

// Tokenizer yields the tokens of a sequence of lines. It is not safe for
// concurrent use.
type Tokenizer struct {
	lines []*Line
	opts  Options
	log   *slog.Logger
	ready bool

	ire, dre, ore *nfa.NFA
	ops           *ahocorasick.Automaton

	line, col int
	cur       []byte // bytes of lines[line], loaded lazily
}

// New prepares a Tokenizer over lines. It never returns nil; when one of
// the automata cannot be built Ready reports false and Next fails.
func New(lines []*Line, opts ...Option) *Tokenizer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tokenizer{lines: lines, opts: o, log: o.Logger}
	if t.log == nil {
		t.log = logger.L
	}

	// 1. Number and operator automata.
	t.ire = nfa.New(IntPattern, nfa.WithLogger(t.log))
	t.dre = nfa.New(RealPattern, nfa.WithLogger(t.log))
	t.ore = nfa.New(OperatorPattern, nfa.WithLogger(t.log))
	for _, n := range []*nfa.NFA{t.ire, t.dre, t.ore} {
		if !n.Ready() {
			t.log.Error("lexer: token automaton failed", "pattern", n.Pattern(), "reason", n.Err())
			return t
		}
	}

	// 2. Operator set, longest first so a longer operator wins over its prefix.
	ops := append([]string{Arrow}, o.Operators...)
	slices.SortFunc(ops, func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
	})
	ops = slices.Compact(ops)
	b := ahocorasick.NewBuilder()
	for _, op := range ops {
		b.AddPattern([]byte(op))
	}
	auto, err := b.Build()
	if err != nil {
		t.log.Error("lexer: operator automaton failed", "operators", ops, "reason", err)
		return t
	}
	t.ops = auto
	t.ready = true
	t.log.Debug("lexer: ready", "lines", len(lines), "operators", ops)

	return t
}

// NewFromFile reads path and prepares a Tokenizer over its lines.
func NewFromFile(path string, opts ...Option) (*Tokenizer, error) {
	lines, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	t := New(lines, opts...)
	if !t.ready {
		return t, ErrNotReady
	}

	return t, nil
}

// Ready reports whether every automaton was built.
func (t *Tokenizer) Ready() bool { return t.ready }

// Reset rewinds to the first line.
func (t *Tokenizer) Reset() {
	t.line, t.col, t.cur = 0, 0, nil
}

// Next returns the next token, or a token of type EOF once the input is
// exhausted. A numeric token that does not fit int64/float64 is returned
// together with an ErrConversion error; tokenizing may continue.
func (t *Tokenizer) Next() (Token, error) {
	if !t.ready {
		return Token{}, ErrNotReady
	}

	for t.line < len(t.lines) {
		l := t.lines[t.line]
		if t.cur == nil {
			t.cur = l.Bytes()
		}
		n := len(t.cur)

		// 1. Skip leading delimiters; move on at end of line.
		for t.col < n && t.isDelim(t.cur[t.col]) {
			t.col++
		}
		if t.col >= n {
			t.line, t.col, t.cur = t.line+1, 0, nil
			continue
		}

		// 2. Classify and consume.
		start := t.col
		typ, end := t.classify(l, start)
		t.col = end
		tok := Token{Type: typ, Text: string(t.cur[start:end]), Line: t.line + 1, Col: start + 1}

		// 3. Convert numeric values.
		return t.convert(tok)
	}

	return Token{Type: EOF, Line: len(t.lines) + 1, Col: 1}, nil
}

// All drains the tokenizer from its current position, stopping before EOF
// or at the first error.
func (t *Tokenizer) All() ([]Token, error) {
	var out []Token
	for {
		tok, err := t.Next()
		if err != nil {
			return out, err
		}
		if tok.Type == EOF {
			return out, nil
		}
		out = append(out, tok)
	}
}

func (t *Tokenizer) isDelim(c byte) bool {
	return strings.IndexByte(t.opts.Delimiters, c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// classify returns the type of the token starting at start and its end.
func (t *Tokenizer) classify(l *Line, start int) (TokenType, int) {
	if c := t.cur[start]; c == '-' || isDigit(c) {
		if end, ok := t.intToken(l, start); ok {
			return INT, end
		}
		if end, ok := t.realToken(l, start); ok {
			return REAL, end
		}
	}
	if end, ok := t.operator(l, start); ok {
		return OPERATOR, end
	}

	end := start
	for end < len(t.cur) && !t.isDelim(t.cur[end]) {
		end++
	}

	return STRING, end
}

// intToken scans an optional sign and digits. A following '.', 'e' or 'E'
// leaves the token to realToken.
func (t *Tokenizer) intToken(l *Line, start int) (int, bool) {
	end := start
	if t.cur[end] == '-' {
		end++
	}
	for end < len(t.cur) && isDigit(t.cur[end]) {
		end++
	}
	if end < len(t.cur) {
		switch t.cur[end] {
		case '.', 'e', 'E':
			return start, false
		}
	}

	return end, t.ire.RecognizesText(l, start, end)
}

// realToken scans the longest run of bytes a real literal can hold.
func (t *Tokenizer) realToken(l *Line, start int) (int, bool) {
	end := start + 1
	for end < len(t.cur) {
		c := t.cur[end]
		if !isDigit(c) && c != '.' && c != 'e' && c != 'E' && c != '-' {
			break
		}
		end++
	}

	return end, t.dre.RecognizesText(l, start, end)
}

// operator reports a registered operator starting exactly at start. The
// search stops at the next delimiter, so an operator never spans one. The
// built-in arrow is additionally confirmed by its NFA.
func (t *Tokenizer) operator(l *Line, start int) (int, bool) {
	stop := start
	for stop < len(t.cur) && !t.isDelim(t.cur[stop]) {
		stop++
	}
	m := t.ops.Find(t.cur[:stop], start)
	if m == nil || m.Start != start {
		return start, false
	}
	if string(t.cur[m.Start:m.End]) == Arrow && !t.ore.RecognizesText(l, m.Start, m.End) {
		return start, false
	}

	return m.End, true
}

func (t *Tokenizer) convert(tok Token) (Token, error) {
	var err error
	switch tok.Type {
	case INT:
		tok.Int, err = strconv.ParseInt(tok.Text, 10, 64)
	case REAL:
		tok.Real, err = strconv.ParseFloat(tok.Text, 64)
	}
	if err != nil {
		t.log.Warn("lexer: conversion failed", "token", tok.Text, "line", tok.Line, "col", tok.Col)
		return tok, fmt.Errorf("%w: %q at %d:%d: %w", ErrConversion, tok.Text, tok.Line, tok.Col, err)
	}

	return tok, nil
}
