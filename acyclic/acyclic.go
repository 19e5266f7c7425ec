package acyclic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/regraph/dfs"
	"github.com/katalvlaran/regraph/graph"
)

// ShortestPaths computes minimum-weight paths from s in the DAG g.
//
// Steps:
//  1. Validate g and s.
//  2. Topologically sort the unweighted projection of g.
//  3. Relax the outgoing edges of each vertex in that order.
func ShortestPaths(g *graph.EdgeWeightedDigraph, s int) (*Paths, error) {
	return solve(g, s, false)
}

// LongestPaths computes maximum-weight paths from s in the DAG g.
func LongestPaths(g *graph.EdgeWeightedDigraph, s int) (*Paths, error) {
	return solve(g, s, true)
}

func solve(g *graph.EdgeWeightedDigraph, s int, longest bool) (*Paths, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.V()
	if s < 0 || s >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, s, n)
	}

	// 2) Topological order
	order, err := dfs.TopologicalSort(g.Digraph())
	if err != nil {
		if errors.Is(err, dfs.ErrCycleDetected) {
			return nil, fmt.Errorf("%w: %w", ErrCycleDetected, err)
		}
		return nil, err
	}

	// 3) Initialize distances
	p := &Paths{
		source:  s,
		longest: longest,
		distTo:  make([]float64, n),
		edgeTo:  make([]graph.Edge, n),
		hasEdge: make([]bool, n),
	}
	inf := p.unreached()
	for v := range p.distTo {
		p.distTo[v] = inf
	}
	p.distTo[s] = 0

	// 4) Relax vertices in topological order; unreached ones contribute nothing
	for _, v := range order {
		if p.distTo[v] == inf {
			continue
		}
		for _, e := range g.Adj(v) {
			p.relax(e)
		}
	}

	return p, nil
}

// relax improves distTo[e.To] through e when that is shorter (or longer).
func (p *Paths) relax(e graph.Edge) {
	cand := p.distTo[e.From] + e.Weight
	better := cand < p.distTo[e.To]
	if p.longest {
		better = cand > p.distTo[e.To]
	}
	if better {
		p.distTo[e.To] = cand
		p.edgeTo[e.To] = e
		p.hasEdge[e.To] = true
	}
}
