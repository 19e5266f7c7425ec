// Package bfs provides breadth-first search over any graph exposing dense
// integer vertices through V() and Adj(v).
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a set of
//     sources; every source starts at depth 0.
//   - Returns a Result with Order, Depth and Parent, plus DistTo, HasPathTo
//     and PathTo helpers.
//   - Hooks: OnEnqueue and OnVisit (the latter may abort with an error).
//   - WithFilterNeighbor prunes individual arcs; WithMaxDepth bounds the
//     search (d>0) or explicitly disables the bound (d==0).
//
// Determinism
//
//	Neighbours are enqueued in Adj order, so the visit sequence is fully
//	reproducible for a given graph.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V); the frontier lives in a container.Queue.
package bfs
