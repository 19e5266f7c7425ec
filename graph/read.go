// File: read.go
// Role: Text readers for whitespace-separated graph descriptions.
// Format:
//   - V, E, then E edge records ("v w" or "v w weight").

package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// words yields whitespace-separated fields from r.
type words struct {
	sc  *bufio.Scanner
	pos int
}

func newWords(r io.Reader) *words {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &words{sc: sc}
}

func (w *words) next() (string, error) {
	if !w.sc.Scan() {
		if err := w.sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input after %d fields", ErrMalformedInput, w.pos)
	}
	w.pos++

	return w.sc.Text(), nil
}

func (w *words) readInt() (int, error) {
	s, err := w.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: field %d %q is not an integer", ErrMalformedInput, w.pos, s)
	}

	return n, nil
}

func (w *words) readFloat() (float64, error) {
	s, err := w.next()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %d %q is not a number", ErrMalformedInput, w.pos, s)
	}

	return f, nil
}

// header reads V and E, both non-negative.
func (w *words) header() (int, int, error) {
	v, err := w.readInt()
	if err != nil {
		return 0, 0, err
	}
	e, err := w.readInt()
	if err != nil {
		return 0, 0, err
	}
	if v < 0 || e < 0 {
		return 0, 0, fmt.Errorf("%w: negative header V=%d E=%d", ErrMalformedInput, v, e)
	}

	return v, e, nil
}

// ReadDigraph parses "V E" followed by E "v w" pairs.
func ReadDigraph(r io.Reader) (*Digraph, error) {
	w := newWords(r)
	nv, ne, err := w.header()
	if err != nil {
		return nil, err
	}
	g := NewDigraph(nv)
	for i := 0; i < ne; i++ {
		from, err := w.readInt()
		if err != nil {
			return nil, err
		}
		to, err := w.readInt()
		if err != nil {
			return nil, err
		}
		if err = g.AddEdge(from, to); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ReadEdgeWeightedDigraph parses "V E" followed by E "v w weight" records.
func ReadEdgeWeightedDigraph(r io.Reader) (*EdgeWeightedDigraph, error) {
	w := newWords(r)
	nv, ne, err := w.header()
	if err != nil {
		return nil, err
	}
	g := NewEdgeWeightedDigraph(nv)
	for i := 0; i < ne; i++ {
		var e Edge
		if e.From, err = w.readInt(); err != nil {
			return nil, err
		}
		if e.To, err = w.readInt(); err != nil {
			return nil, err
		}
		if e.Weight, err = w.readFloat(); err != nil {
			return nil, err
		}
		if err = g.AddEdge(e); err != nil {
			return nil, err
		}
	}

	return g, nil
}
