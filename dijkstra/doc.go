// Package dijkstra computes single-source shortest paths with Dijkstra's
// algorithm on a graph.EdgeWeightedDigraph whose weights are non-negative.
// It complements package acyclic, which handles negative weights but
// requires a DAG.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.DistTo(3), res.PathTo(3))
package dijkstra
