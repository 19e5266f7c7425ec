// File: build.go
// Role: One left-to-right pass over the corrected pattern emitting the
//       epsilon edges of the automaton. State i is position i; state M is
//       the accepting state.

package nfa

import (
	"fmt"

	"github.com/katalvlaran/regraph/container"
	"github.com/katalvlaran/regraph/graph"
)

// stateKind says how a state treats the input byte.
type stateKind uint8

const (
	kindEpsilon stateKind = iota // ( ) * | : never consumes
	kindLiteral                  // matches one byte
	kindClass                    // matches a built-in class
	kindRange                    // matches a user range
	kindEscape                   // '\' of a pair: matches a '\' in the text
	kindEscaped                  // second half of a pair: matches its own byte
)

// classify assigns a kind to every position of sym.
func classify(sym []Symbol) []stateKind {
	kinds := make([]stateKind, len(sym))
	for i := 0; i < len(sym); i++ {
		s := sym[i]
		switch {
		case s == Escape && i+1 < len(sym):
			kinds[i], kinds[i+1] = kindEscape, kindEscaped
			i++
		case s == '(' || s == ')' || s == '*' || s == '|':
			kinds[i] = kindEpsilon
		case s.IsClass():
			kinds[i] = kindClass
		case s.IsRange():
			kinds[i] = kindRange
		default:
			kinds[i] = kindLiteral
		}
	}

	return kinds
}

// builder holds the operator stack and the '(' of the last closed group.
type builder struct {
	sym        []Symbol
	kinds      []stateKind
	g          *graph.Digraph
	ops        *container.Stack[int]
	lastClosed int
}

// build returns the epsilon digraph over M+1 states.
//
// Steps:
//  1. '(' : push, edge i->i+1.
//  2. '|' : push.
//  3. ')' : pop every '|' (edges OR->i, LP->OR+1), pop '(' (remember it as
//     the last closed group), edge i->i+1.
//  4. '*' : with lp the operand start (i-1, i-2 after an escape pair, or
//     the '(' of the group just closed): edges i->lp, lp->i, i->i+1.
func build(sym []Symbol, kinds []stateKind) (*graph.Digraph, error) {
	m := len(sym)
	b := &builder{
		sym:        sym,
		kinds:      kinds,
		g:          graph.NewDigraph(m + 1),
		ops:        container.NewStack[int](),
		lastClosed: -1,
	}
	defer b.ops.Release()

	for i := 0; i < m; i++ {
		if kinds[i] != kindEpsilon {
			continue
		}
		var err error
		switch sym[i] {
		case '(':
			err = b.open(i)
		case '|':
			err = b.ops.Push(i)
		case ')':
			err = b.close(i)
		case '*':
			err = b.star(i)
		}
		if err != nil {
			return nil, err
		}
	}

	return b.g, nil
}

func (b *builder) edge(v, w int) error {
	return b.g.AddEdge(v, w)
}

func (b *builder) open(i int) error {
	if err := b.ops.Push(i); err != nil {
		return err
	}

	return b.edge(i, i+1)
}

func (b *builder) close(i int) error {
	var ors []int
	lp := -1
	for {
		top, err := b.ops.Pop()
		if err != nil {
			return fmt.Errorf("%w: ')' at state %d has no '('", ErrUnbalanced, i)
		}
		if b.sym[top] == '(' {
			lp = top
			break
		}
		ors = append(ors, top)
	}
	for _, or := range ors {
		if err := b.edge(or, i); err != nil {
			return err
		}
		if err := b.edge(lp, or+1); err != nil {
			return err
		}
	}
	b.lastClosed = lp

	return b.edge(i, i+1)
}

func (b *builder) star(i int) error {
	lp := i - 1
	switch {
	case i == 0:
		return fmt.Errorf("%w: '*' at state 0", ErrDanglingQuantifier)
	case b.kinds[i-1] == kindEpsilon && b.sym[i-1] == ')':
		lp = b.lastClosed
	case b.kinds[i-1] == kindEscaped:
		lp = i - 2
	}
	if lp < 0 {
		return fmt.Errorf("%w: '*' at state %d", ErrDanglingQuantifier, i)
	}
	for _, e := range [][2]int{{i, lp}, {lp, i}, {i, i + 1}} {
		if err := b.edge(e[0], e[1]); err != nil {
			return err
		}
	}

	return nil
}
