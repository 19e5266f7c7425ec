package dfs

import (
	"slices"

	"github.com/katalvlaran/regraph/internal/sparse"
)

// Reach answers multi-source reachability queries against a fixed graph.
//
// NewReach snapshots the adjacency lists once, so later changes to the
// source graph are not observed. Run is iterative with an explicit stack;
// long chains of edges cannot overflow the goroutine stack. A Reach is not
// safe for concurrent use: Run overwrites the marks in place.
type Reach struct {
	adj    [][]int
	marked *sparse.Set
	stack  []int
}

// NewReach snapshots g for repeated reachability runs.
func NewReach(g Graph) (*Reach, error) {
	if isNil(g) {
		return nil, ErrGraphNil
	}
	n := g.V()
	adj := make([][]int, n)
	for v := range n {
		adj[v] = g.Adj(v)
	}

	return &Reach{adj: adj, marked: sparse.New(n)}, nil
}

// Run clears previous marks and marks every vertex reachable from any of
// sources. Sources outside [0, V) are ignored.
// Complexity: O(V + E) worst case; O(1) to reset.
func (r *Reach) Run(sources ...int) {
	r.marked.Clear()
	for _, s := range sources {
		if !r.marked.Insert(s) {
			// out of range or already reached from an earlier source
			continue
		}
		r.stack = append(r.stack[:0], s)
		for len(r.stack) > 0 {
			v := r.stack[len(r.stack)-1]
			r.stack = r.stack[:len(r.stack)-1]
			for _, w := range r.adj[v] {
				if r.marked.Insert(w) {
					r.stack = append(r.stack, w)
				}
			}
		}
	}
}

// Marked reports whether v was reached by the last Run.
func (r *Reach) Marked(v int) bool {
	return r.marked.Contains(v)
}

// Count returns the number of vertices reached by the last Run.
func (r *Reach) Count() int {
	return r.marked.Len()
}

// Reached returns the vertices reached by the last Run in ascending order.
func (r *Reach) Reached() []int {
	out := slices.Clone(r.marked.Values())
	slices.Sort(out)

	return out
}

// Members returns the vertices reached by the last Run in discovery order.
// The slice is owned by r and is overwritten by the next Run.
func (r *Reach) Members() []int {
	return r.marked.Values()
}

// V returns the vertex count of the snapshot.
func (r *Reach) V() int {
	return len(r.adj)
}
