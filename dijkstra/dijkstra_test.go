package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regraph/dijkstra"
	"github.com/katalvlaran/regraph/graph"
)

func build(t *testing.T, n int, edges ...graph.Edge) *graph.EdgeWeightedDigraph {
	t.Helper()
	g := graph.NewEdgeWeightedDigraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e))
	}

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(build(t, 2), 2)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, err = dijkstra.Dijkstra(build(t, 2, graph.Edge{From: 0, To: 1, Weight: -1}), 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _ = dijkstra.Dijkstra(build(t, 1), 0, dijkstra.WithMaxDistance(-1))
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		_, _ = dijkstra.Dijkstra(build(t, 1), 0, dijkstra.WithInfEdgeThreshold(0))
	})
}

func TestDijkstra_CycleAndShortcut(t *testing.T) {
	// 0 -> 1 -> 2 -> 0 cycle, plus a costly shortcut 0 -> 2
	g := build(t, 4,
		graph.Edge{From: 0, To: 1, Weight: 1},
		graph.Edge{From: 1, To: 2, Weight: 2},
		graph.Edge{From: 2, To: 0, Weight: 1},
		graph.Edge{From: 0, To: 2, Weight: 5},
	)
	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.DistTo(0))
	assert.Equal(t, 1.0, res.DistTo(1))
	assert.Equal(t, 3.0, res.DistTo(2))
	assert.False(t, res.HasPathTo(3))
	assert.True(t, math.IsInf(res.DistTo(3), 1))
	assert.Equal(t, []graph.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}}, res.PathTo(2))
	assert.Empty(t, res.PathTo(0))
	assert.Nil(t, res.PathTo(3))
}

func TestDijkstra_Thresholds(t *testing.T) {
	g := build(t, 3,
		graph.Edge{From: 0, To: 1, Weight: 3},
		graph.Edge{From: 1, To: 2, Weight: 3},
		graph.Edge{From: 0, To: 2, Weight: 5},
	)

	res, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.DistTo(2))

	res, err = dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.DistTo(2), "the weight-5 edge is a wall")

	res, err = dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.DistTo(1))
	assert.False(t, res.HasPathTo(2))
}
