// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u->v, u appears before v. If the graph contains a
// cycle, ErrCycleDetected is returned, wrapped with the offending cycle.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)

package dfs

import (
	"fmt"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph Graph
	opts  Options
	state []int // White, Gray or Black per vertex
	order []int // post-order
}

// TopologicalSort returns a topological order of all vertices of g.
// Only WithContext is honoured among the options.
func TopologicalSort(g Graph, options ...Option) ([]int, error) {
	// 1. Validate graph
	if isNil(g) {
		return nil, ErrGraphNil
	}

	// 2. Apply optional settings
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Initialize sorter state
	n := g.V()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n),
		order: make([]int, 0, n),
	}

	// 4. Drive DFS from every unvisited vertex
	for v := range n {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 5. Reverse post-order
	reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from v, marking states and detecting back edges.
func (t *topoSorter) visit(v int) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}

	// 2. Mark as in progress
	t.state[v] = Gray

	// 3. Explore each outgoing edge
	for _, w := range t.graph.Adj(v) {
		if w < 0 || w >= len(t.state) {
			continue
		}
		switch t.state[w] {
		case Gray:
			cycle, _ := FindCycle(t.graph)
			return fmt.Errorf("%w: %v", ErrCycleDetected, cycle)
		case White:
			if err := t.visit(w); err != nil {
				return err
			}
		}
	}

	// 4. Mark as done and record
	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}
