// File: types.go
// Role: Sentinel errors, the Adjacency contract and shared storage helpers.
// Concurrency:
//   - Helpers here are called with the owning graph's write lock held.

package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/regraph/alloc"
)

// Sentinel errors for graph construction and input parsing.
var (
	// ErrNegativeVertex is returned when an edge endpoint is negative.
	ErrNegativeVertex = errors.New("graph: negative vertex")

	// ErrVertexOutOfRange is returned when vertex storage cannot grow to hold an endpoint.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrMalformedInput is returned by the readers on truncated or non-numeric input.
	ErrMalformedInput = errors.New("graph: malformed input")
)

// Adjacency is the read-only view traversal packages work against.
// Vertices are dense integers in [0, V()).
type Adjacency interface {
	V() int
	Adj(v int) []int
}

// ensure grows adj so index need-1 is addressable, doubling through p.
// The returned slice replaces adj; the old one is invalid afterwards.
func ensure[E any](p *alloc.Pool[[]E], adj [][]E, need int) ([][]E, error) {
	if need <= len(adj) {
		return adj, nil
	}
	size := max(len(adj)*2, need)
	if size > p.MaxSize() {
		size = need
	}
	out, err := p.ResizeTo(adj, size)
	if err != nil {
		return adj, fmt.Errorf("%w: %d: %w", ErrVertexOutOfRange, need-1, err)
	}

	return out, nil
}

// newTable allocates the initial adjacency table for v vertices.
func newTable[E any](p *alloc.Pool[[]E], v int) [][]E {
	adj, err := p.Allocate(min(v, p.MaxSize()))
	if err != nil {
		// size is clamped to [0, MaxSize], which Allocate always accepts
		panic(err)
	}

	return adj
}
