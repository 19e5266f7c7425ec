// File: weighted.go
// Role: Edge-weighted directed graph and its unweighted projection.
// Determinism:
//   - Adj(v) lists edges most-recently-added first; Edges() walks vertices
//     in ascending order using the same per-vertex order.
// Concurrency:
//   - Mutations under write lock, queries under read lock.

package graph

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/regraph/alloc"
)

// Edge is a weighted directed edge From->To.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// String renders the edge as "from->to weight".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d %.2f", e.From, e.To, e.Weight)
}

// EdgeWeightedDigraph is a directed graph whose edges carry a float64 weight.
type EdgeWeightedDigraph struct {
	mu   sync.RWMutex
	pool *alloc.Pool[[]Edge]
	adj  [][]Edge
	v    int
	e    int
}

// NewEdgeWeightedDigraph returns an empty graph with v isolated vertices.
func NewEdgeWeightedDigraph(v int) *EdgeWeightedDigraph {
	v = max(v, 0)
	pool := alloc.New[[]Edge]()

	return &EdgeWeightedDigraph{pool: pool, adj: newTable(pool, v), v: v}
}

// V returns the number of vertices.
func (g *EdgeWeightedDigraph) V() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.v
}

// E returns the number of edges.
func (g *EdgeWeightedDigraph) E() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.e
}

// AddEdge inserts e, growing vertex storage to cover both endpoints.
// Errors: ErrNegativeVertex, ErrVertexOutOfRange.
func (g *EdgeWeightedDigraph) AddEdge(e Edge) error {
	if e.From < 0 || e.To < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeVertex, e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	top := max(e.From, e.To) + 1
	adj, err := ensure(g.pool, g.adj, top)
	if err != nil {
		return err
	}
	g.adj = adj
	g.adj[e.From] = append(g.adj[e.From], e)
	g.v = max(g.v, top)
	g.e++

	return nil
}

// Adj returns a copy of the edges leaving v, most recent first.
func (g *EdgeWeightedDigraph) Adj(v int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjLocked(v)
}

func (g *EdgeWeightedDigraph) adjLocked(v int) []Edge {
	if v < 0 || v >= len(g.adj) || len(g.adj[v]) == 0 {
		return nil
	}
	src := g.adj[v]
	out := make([]Edge, len(src))
	for i, e := range src {
		out[len(src)-1-i] = e
	}

	return out
}

// Edges returns every edge, grouped by source vertex in ascending order.
func (g *EdgeWeightedDigraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.e)
	for v := range g.adj {
		out = append(out, g.adjLocked(v)...)
	}

	return out
}

// Digraph returns the unweighted projection: same vertices, one arc per edge.
func (g *EdgeWeightedDigraph) Digraph() *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	d := NewDigraph(g.v)
	for _, es := range g.adj {
		for _, e := range es {
			d.adj[e.From] = append(d.adj[e.From], e.To)
		}
	}
	d.e = g.e

	return d
}

// String lists the graph as "V vertices, E edges" followed by one line per vertex.
func (g *EdgeWeightedDigraph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d vertices, %d edges\n", g.v, g.e)
	for v := 0; v < g.v; v++ {
		fmt.Fprintf(&sb, "%d:", v)
		for _, e := range g.adjLocked(v) {
			fmt.Fprintf(&sb, "  %s", e)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
