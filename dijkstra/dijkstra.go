// Package dijkstra implements Dijkstra's shortest-path algorithm on
// graph.EdgeWeightedDigraph.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and fails fast.
//   - Any edge with weight >= InfEdgeThreshold is an impassable wall.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - Lazy decrease-key: duplicates are pushed and stale entries ignored on pop.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/regraph/graph"
)

// Dijkstra computes shortest distances from s to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. s must be in [0, V) (ErrSourceOutOfRange).
//  3. No edge may have a negative weight (ErrNegativeWeight).
func Dijkstra(g *graph.EdgeWeightedDigraph, s int, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.V()
	if s < 0 || s >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, s, n)
	}

	// 3) Pre-scan for negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s", ErrNegativeWeight, e)
		}
	}

	// 4) Run
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			source:  s,
			distTo:  make([]float64, n),
			edgeTo:  make([]graph.Edge, n),
			hasEdge: make([]bool, n),
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(s)
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.EdgeWeightedDigraph
	options Options
	res     *Result
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf except the source, and seeds the heap.
func (r *runner) init(s int) {
	for v := range r.res.distTo {
		r.res.distTo[v] = math.Inf(1)
	}
	r.res.distTo[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{v: s, dist: 0})
}

// process extracts the closest unfinished vertex until the heap is empty or
// the frontier passes MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.v] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.v] = true
		r.relax(item.v)
	}
}

// relax tries to improve each neighbour of u through u.
func (r *runner) relax(u int) {
	for _, e := range r.g.Adj(u) {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		if e.To >= len(r.res.distTo) {
			continue
		}
		newDist := r.res.distTo[u] + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.res.distTo[e.To] {
			continue
		}
		r.res.distTo[e.To] = newDist
		r.res.edgeTo[e.To] = e
		r.res.hasEdge[e.To] = true
		heap.Push(&r.pq, &nodeItem{v: e.To, dist: newDist})
	}
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	v    int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
