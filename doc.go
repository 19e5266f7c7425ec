// Package regraph compiles small regular expressions into epsilon-NFAs that
// live on a directed graph, and ships the graph toolkit they are built on.
//
// Layout:
//
//	alloc/      typed buffer pool with a size ceiling and sentinel fill
//	container/  Array, Stack and Queue drawing storage from alloc
//	graph/      Digraph and EdgeWeightedDigraph over dense int vertices
//	dfs/        multi-source reachability, DFS, orders, cycles, topological sort
//	bfs/        multi-source breadth-first paths
//	acyclic/    shortest and longest paths on weighted DAGs
//	dijkstra/   shortest paths with non-negative weights
//	nfa/        pattern preprocessor, epsilon-graph builder and matcher
//	lexer/      pooled lines and an NFA-backed tokenizer
//	cmd/regraph command-line front end (match, nfa, tokens, paths)
//
// Quick start:
//
//	n := nfa.New("([[:digit:]]+)")
//	n.Recognizes("41") // true
//	n.Recognizes("4a") // false
//
// The packages share one logger (internal/logger) that discards output
// until the command line enables it with --debug.
package regraph
