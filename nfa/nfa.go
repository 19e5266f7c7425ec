// File: nfa.go
// Role: NFA construction and accessors.
// Concurrency:
//   - Construction results are immutable; matching reuses per-instance
//     scratch state, so one NFA must not match from two goroutines at once.

package nfa

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/regraph/dfs"
	"github.com/katalvlaran/regraph/graph"
	"github.com/katalvlaran/regraph/internal/logger"
)

// NFA is an epsilon-NFA compiled from a pattern. Its states are the
// positions of the corrected pattern plus one accepting state.
type NFA struct {
	pattern string
	opts    Options
	ready   bool
	err     error

	corrected []Symbol
	kinds     []stateKind
	ranges    []Range
	g         *graph.Digraph
	reach     *dfs.Reach

	initial    []int // closure of state 0, ascending
	initAccept bool
	advance    []int // scratch
}

// New compiles pattern. It never returns nil: on failure the NFA is not
// ready, Err reports why, and every match reports false.
//
// Steps:
//  1. Structural check (length, balance, outer parentheses).
//  2. Rewrite into the corrected pattern and range table.
//  3. Build the epsilon digraph over M+1 states.
//  4. Precompute the closure of state 0.
func New(pattern string, opts ...Option) *NFA {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := &NFA{pattern: pattern, opts: o}

	if err := n.compile(); err != nil {
		n.err = err
		attrs := []any{"pattern", pattern, "reason", err}
		var se *SyntaxError
		if errors.As(err, &se) {
			attrs = append(attrs, "pos", se.Pos)
		}
		n.logger().Warn("nfa: pattern rejected", attrs...)

		return n
	}
	n.ready = true
	n.logger().Debug("nfa: compiled", "pattern", pattern, "states", n.V(), "edges", n.E())

	return n
}

// Compile is New for callers that prefer an error to a readiness flag.
func Compile(pattern string, opts ...Option) (*NFA, error) {
	n := New(pattern, opts...)
	if !n.ready {
		return n, n.err
	}

	return n, nil
}

func (n *NFA) compile() error {
	// 1. Structure
	if err := checkStructure(n.pattern); err != nil {
		return err
	}

	// 2. Rewrite
	sym, ranges, err := preprocess(n.pattern)
	if err != nil {
		return err
	}
	n.corrected, n.ranges = sym, ranges
	n.kinds = classify(sym)

	// 3. Graph
	if n.g, err = build(sym, n.kinds); err != nil {
		return &SyntaxError{Pattern: n.pattern, Pos: -1, Err: err}
	}

	// 4. Initial closure
	if n.reach, err = dfs.NewReach(n.g); err != nil {
		return err
	}
	n.reach.Run(0)
	n.initial = n.reach.Reached()
	n.initAccept = n.reach.Marked(len(sym))
	n.advance = make([]int, 0, len(sym)+1)

	return nil
}

func (n *NFA) logger() *slog.Logger {
	if n.opts.Logger != nil {
		return n.opts.Logger
	}

	return logger.L
}

// Ready reports whether construction succeeded.
func (n *NFA) Ready() bool { return n.ready }

// Err returns the construction failure, or nil.
func (n *NFA) Err() error { return n.err }

// Pattern returns the pattern as given to New.
func (n *NFA) Pattern() string { return n.pattern }

// SetSanitize toggles input sanitization after construction.
func (n *NFA) SetSanitize(on bool) { n.opts.Sanitize = on }

// Sanitize reports whether input sanitization is on.
func (n *NFA) Sanitize() bool { return n.opts.Sanitize }

// M returns the length of the corrected pattern; state M accepts.
func (n *NFA) M() int { return len(n.corrected) }

// V returns the number of states, M+1, or 0 when not ready.
func (n *NFA) V() int {
	if n.g == nil {
		return 0
	}

	return n.g.V()
}

// E returns the number of epsilon edges, or 0 when not ready.
func (n *NFA) E() int {
	if n.g == nil {
		return 0
	}

	return n.g.E()
}

// Graph returns a copy of the epsilon digraph, or nil when not ready.
func (n *NFA) Graph() *graph.Digraph {
	if n.g == nil {
		return nil
	}

	return n.g.Clone()
}

// Symbols returns a copy of the corrected pattern.
func (n *NFA) Symbols() []Symbol {
	return append([]Symbol(nil), n.corrected...)
}

// Ranges returns a copy of the user range table.
func (n *NFA) Ranges() []Range {
	return append([]Range(nil), n.ranges...)
}
