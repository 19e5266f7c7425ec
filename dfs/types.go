// Package dfs defines types and options for depth-first search over dense
// integer graphs: cancellation, pre-/post-order hooks, depth limiting,
// forest traversal, and multi-source reachability.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/regraph/graph"
)

// Vertex visitation state.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants are done.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to any entry point.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrSourceOutOfRange indicates a start vertex outside [0, V).
	ErrSourceOutOfRange = errors.New("dfs: source vertex out of range")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Graph is the adjacency view every routine in this package consumes.
type Graph = graph.Adjacency

// Option configures optional behavior of DFS and TopologicalSort.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex are
	// explored (post-order), before appending to Result.Order.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal restarts from every unvisited vertex in ascending order,
	// covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Background context, no hooks, no depth limit,
// single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for traversal. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal makes DFS cover every vertex, ignoring the source
// argument beyond using it as the first root.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth[v] is the tree depth of v, or -1 if v was not reached.
	Depth []int

	// Parent[v] is the vertex v was discovered from, or -1 for roots and
	// unreached vertices.
	Parent []int

	// Visited flags which vertices were reached.
	Visited []bool
}

// PathTo returns the tree path from the root of v's DFS tree to v,
// or nil if v was not visited.
func (r *Result) PathTo(v int) []int {
	if v < 0 || v >= len(r.Visited) || !r.Visited[v] {
		return nil
	}
	var path []int
	for x := v; x != -1; x = r.Parent[x] {
		path = append(path, x)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// isNil reports whether g is a nil interface.
func isNil(g Graph) bool {
	return g == nil
}
