// Package dijkstra defines configuration options and results for Dijkstra's
// shortest-path algorithm on graph.EdgeWeightedDigraph.
//
// Dijkstra computes the minimum-weight path from a single source vertex to
// all reachable vertices when every edge weight is non-negative. Unlike the
// acyclic package, cycles are allowed.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E) (lazy decrease-key keeps stale heap entries)
//
// Options:
//
//	– MaxDistance:      vertices farther than this are not explored.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the graph is nil.
//	– ErrSourceOutOfRange if the source is outside [0, V).
//	– ErrNegativeWeight   if a negative edge weight is present.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/regraph/graph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, V).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore. Must be >= 0.
// InfEdgeThreshold – edges with weight >= this threshold are skipped. Must be > 0.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold treats edges with weight >= threshold as walls.
// Panics with ErrBadInfThreshold on a non-positive value.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds single-source shortest distances and the last edge on each path.
type Result struct {
	source  int
	distTo  []float64
	edgeTo  []graph.Edge
	hasEdge []bool
}

// DistTo returns the shortest distance to v, or +Inf if v is unreachable.
func (r *Result) DistTo(v int) float64 {
	if v < 0 || v >= len(r.distTo) {
		return math.Inf(1)
	}

	return r.distTo[v]
}

// HasPathTo reports whether v was reached within MaxDistance.
func (r *Result) HasPathTo(v int) bool {
	return !math.IsInf(r.DistTo(v), 1)
}

// PathTo returns the edges of a shortest path from the source to v, or nil.
func (r *Result) PathTo(v int) []graph.Edge {
	if !r.HasPathTo(v) {
		return nil
	}
	path := []graph.Edge{}
	for x := v; r.hasEdge[x]; x = r.edgeTo[x].From {
		path = append(path, r.edgeTo[x])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
