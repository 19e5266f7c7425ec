package lexer

import (
	"bytes"

	"github.com/katalvlaran/regraph/container"
)

// Line is one input line without its terminator, stored in a
// container.Array so that every line of a file can draw from one pool.
// Line implements nfa.Text.
type Line struct {
	buf *container.Array[byte]
}

// NewLine copies b into a new Line.
// Errors: alloc.ErrAllocationLimit (wrapped) past the pool ceiling.
func NewLine(b []byte, opts ...container.Option[byte]) (*Line, error) {
	opts = append([]container.Option[byte]{container.WithCapacity[byte](len(b))}, opts...)
	l := &Line{buf: container.NewArray(opts...)}
	for _, c := range b {
		if err := l.buf.Add(c); err != nil {
			l.buf.Release()
			return nil, err
		}
	}

	return l, nil
}

// Len returns the number of bytes.
func (l *Line) Len() int { return l.buf.Len() }

// At returns the byte at i, or 0 outside [0, Len).
func (l *Line) At(i int) byte {
	c, err := l.buf.Get(i)
	if err != nil {
		return 0
	}

	return c
}

// Set overwrites the byte at i.
func (l *Line) Set(i int, c byte) error { return l.buf.Set(i, c) }

// Bytes returns a copy of the contents.
func (l *Line) Bytes() []byte { return l.buf.Values() }

func (l *Line) String() string { return string(l.buf.Values()) }

// Compare orders lines bytewise, as bytes.Compare does.
func (l *Line) Compare(o *Line) int {
	return bytes.Compare(l.Bytes(), o.Bytes())
}

// Release returns the storage to the pool. The Line must not be used afterwards.
func (l *Line) Release() { l.buf.Release() }
