// Package bfs provides tunable options and error definitions
// for breadth-first search over dense integer graphs.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/regraph/graph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when a source is outside [0, V).
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, with its depth.
	OnEnqueue func(v, depth int)

	// OnVisit is called when a vertex is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip arcs curr->next by returning false.
	FilterNeighbor func(curr, next int) bool

	err error
}

// DefaultOptions returns Background context, no depth limit, no filtering
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option -> ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(curr, next int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Graph is the adjacency view BFS consumes.
type Graph = graph.Adjacency

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists vertices in visit sequence.
	Order []int

	// Depth[v] is the edge count from the nearest source, or -1.
	Depth []int

	// Parent[v] is v's predecessor in the BFS forest, or -1 for sources
	// and unreached vertices.
	Parent []int
}

// HasPathTo reports whether v was reached from some source.
func (r *Result) HasPathTo(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// DistTo returns the number of edges on a shortest path to v, or -1.
func (r *Result) DistTo(v int) int {
	if !r.HasPathTo(v) {
		return -1
	}

	return r.Depth[v]
}

// PathTo reconstructs a shortest path from its source to v, or nil if v
// was not reached.
func (r *Result) PathTo(v int) []int {
	if !r.HasPathTo(v) {
		return nil
	}
	path := make([]int, 0, r.Depth[v]+1)
	for cur := v; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
