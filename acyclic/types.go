// Package acyclic defines result types and errors for single-source
// shortest and longest paths in edge-weighted directed acyclic graphs.
//
// Both problems are solved by relaxing every vertex once, in topological
// order. Because a DAG has no cycles, negative weights are allowed, and
// negating the comparison turns shortest paths into longest paths.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
//
// Errors (sentinel):
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrSourceOutOfRange  if the source is outside [0, V).
//   - ErrCycleDetected     if the graph is not a DAG.
package acyclic

import (
	"errors"
	"math"

	"github.com/katalvlaran/regraph/graph"
)

// Sentinel errors returned by ShortestPaths and LongestPaths.
var (
	// ErrGraphNil indicates that a nil graph was passed.
	ErrGraphNil = errors.New("acyclic: graph is nil")

	// ErrSourceOutOfRange indicates a source vertex outside [0, V).
	ErrSourceOutOfRange = errors.New("acyclic: source vertex out of range")

	// ErrCycleDetected indicates the graph has a directed cycle.
	ErrCycleDetected = errors.New("acyclic: graph has a cycle")
)

// Paths holds single-source path distances and the last edge on each path.
type Paths struct {
	source  int
	longest bool
	distTo  []float64
	edgeTo  []graph.Edge
	hasEdge []bool
}

// unreached is the distance of a vertex not reachable from the source:
// +Inf for shortest paths, -Inf for longest paths.
func (p *Paths) unreached() float64 {
	if p.longest {
		return math.Inf(-1)
	}

	return math.Inf(1)
}

// Source returns the vertex the paths start from.
func (p *Paths) Source() int {
	return p.source
}

// DistTo returns the path weight to v: +Inf (shortest) or -Inf (longest)
// when v is unreachable or out of range.
func (p *Paths) DistTo(v int) float64 {
	if v < 0 || v >= len(p.distTo) {
		return p.unreached()
	}

	return p.distTo[v]
}

// HasPathTo reports whether v is reachable from the source.
func (p *Paths) HasPathTo(v int) bool {
	return v >= 0 && v < len(p.distTo) && p.distTo[v] != p.unreached()
}

// PathTo returns the edges from the source to v, in travel order.
// The path to the source itself is empty; an unreachable v yields nil.
func (p *Paths) PathTo(v int) []graph.Edge {
	if !p.HasPathTo(v) {
		return nil
	}
	path := []graph.Edge{}
	for x := v; p.hasEdge[x]; x = p.edgeTo[x].From {
		path = append(path, p.edgeTo[x])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
