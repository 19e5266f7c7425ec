// Package graph provides the two directed graph types used across regraph:
// Digraph for plain arcs and EdgeWeightedDigraph for float64-weighted edges.
//
// Vertices are dense integers 0..V-1. Both types only grow: AddEdge with an
// endpoint at or beyond V extends the vertex set, and nothing is ever
// removed. Parallel edges and self-loops are kept as given.
//
// Adjacency tables are issued and grown by an alloc.Pool, so the vertex
// count is bounded by the pool ceiling (alloc.DefaultMaxSize); AddEdge past
// it fails with ErrVertexOutOfRange.
//
// Adj(v) returns a fresh copy, newest edge first. Traversal packages (dfs,
// bfs) consume any value satisfying Adjacency; the weighted graph joins in
// through its Digraph() projection.
//
// Every method takes the graph's sync.RWMutex, so individual calls are safe
// for concurrent use.
package graph
