package dfs_test

import "github.com/katalvlaran/regraph/graph"

// buildChain creates a directed chain 0->1->...->n-1.
func buildChain(n int) *graph.Digraph {
	g := graph.NewDigraph(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1)
	}

	return g
}

// buildEdges creates a digraph with n vertices and the given arcs.
func buildEdges(n int, arcs ...[2]int) *graph.Digraph {
	g := graph.NewDigraph(n)
	for _, a := range arcs {
		_ = g.AddEdge(a[0], a[1])
	}

	return g
}

// position returns the index of v in order or -1.
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}
