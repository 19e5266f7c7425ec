// File: digraph.go
// Role: Unweighted directed graph over dense integer vertices.
// Determinism:
//   - Adj(v) lists neighbours most-recently-added first.
// Concurrency:
//   - Mutations under write lock, queries under read lock.

package graph

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/regraph/alloc"
)

// Digraph is a directed graph with vertices 0..V-1 and parallel edges allowed.
// Edges are never removed; adding an edge to an unseen vertex grows V.
type Digraph struct {
	mu   sync.RWMutex
	pool *alloc.Pool[[]int]
	adj  [][]int // adj[v] in insertion order; len(adj) may exceed v, the table grows by doubling
	v    int
	e    int
}

// NewDigraph returns an empty digraph with v isolated vertices.
// A negative v is treated as zero.
func NewDigraph(v int) *Digraph {
	v = max(v, 0)
	pool := alloc.New[[]int]()

	return &Digraph{pool: pool, adj: newTable(pool, v), v: v}
}

// V returns the number of vertices.
func (g *Digraph) V() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.v
}

// E returns the number of edges.
func (g *Digraph) E() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.e
}

// AddEdge adds the directed edge v->w.
//
// Steps:
//  1. Reject negative endpoints.
//  2. Grow vertex storage to cover max(v, w).
//  3. Append w to adj[v] and bump the counters.
//
// Errors: ErrNegativeVertex, ErrVertexOutOfRange (pool ceiling reached).
// Complexity: O(1) amortized.
func (g *Digraph) AddEdge(v, w int) error {
	if v < 0 || w < 0 {
		return fmt.Errorf("%w: %d->%d", ErrNegativeVertex, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	top := max(v, w) + 1
	adj, err := ensure(g.pool, g.adj, top)
	if err != nil {
		return err
	}
	g.adj = adj
	g.adj[v] = append(g.adj[v], w)
	g.v = max(g.v, top)
	g.e++

	return nil
}

// Adj returns a copy of the vertices adjacent from v, most recent first.
// Out-of-range v yields nil.
func (g *Digraph) Adj(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) || len(g.adj[v]) == 0 {
		return nil
	}
	src := g.adj[v]
	out := make([]int, len(src))
	for i, w := range src {
		out[len(src)-1-i] = w
	}

	return out
}

// OutDegree returns the number of edges leaving v.
func (g *Digraph) OutDegree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return 0
	}

	return len(g.adj[v])
}

// Reverse returns a new digraph with every edge flipped.
func (g *Digraph) Reverse() *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// r.adj already covers every endpoint of g
	r := NewDigraph(g.v)
	for v, ws := range g.adj {
		for _, w := range ws {
			r.adj[w] = append(r.adj[w], v)
		}
	}
	r.e = g.e

	return r
}

// Clone returns a deep copy with its own storage.
func (g *Digraph) Clone() *Digraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewDigraph(g.v)
	for v, ws := range g.adj {
		if len(ws) > 0 {
			c.adj[v] = append([]int(nil), ws...)
		}
	}
	c.e = g.e

	return c
}

// String lists the graph as "V vertices, E edges" followed by one
// "v: w w ..." line per vertex, neighbours in Adj order.
func (g *Digraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d vertices, %d edges\n", g.V(), g.E())
	for v := 0; v < g.V(); v++ {
		fmt.Fprintf(&sb, "%d:", v)
		for _, w := range g.Adj(v) {
			fmt.Fprintf(&sb, " %d", w)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
