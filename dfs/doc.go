// Package dfs implements depth-first search, multi-source reachability,
// vertex orders, cycle finding and topological sort over any graph that
// exposes dense integer vertices through V() and Adj(v).
//
// What:
//
//   - Reach: repeated multi-source reachability against a snapshot of the
//     graph. Marks live in a sparse set, so each Run starts from an empty
//     set in O(1). This is the step an NFA simulation performs after every
//     input byte to follow epsilon transitions.
//   - DFS: single-source or forest traversal with pre-/post-order hooks,
//     cancellation and a depth limit; reports post-order, depth, parent
//     links and PathTo.
//   - Order: pre-order, post-order and reverse post-order of the whole graph.
//   - FindCycle: one directed cycle, as a closed walk.
//   - TopologicalSort: reverse post-order, or ErrCycleDetected.
//
// Complexity:
//
//   - Reach.Run:       Time O(V+E) worst case, O(1) reset
//   - DFS, Order:      Time O(V+E), Memory O(V)
//   - FindCycle:       Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil          graph is nil
//   - ErrSourceOutOfRange  DFS source not in [0, V)
//   - ErrCycleDetected     TopologicalSort on a cyclic graph
//   - context.Canceled     traversal cancelled via context
//   - hook errors          propagated from OnVisit or OnExit
//
// Neighbour order follows Adj, which for graph.Digraph is most recent edge
// first; roots of forest traversals are taken in ascending vertex order.
package dfs
