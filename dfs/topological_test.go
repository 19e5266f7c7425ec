package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regraph/dfs"
	"github.com/katalvlaran/regraph/graph"
)

func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(graph.NewDigraph(0))
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_RespectsEveryEdge checks u precedes v for each arc u->v.
func TestTopo_RespectsEveryEdge(t *testing.T) {
	arcs := [][2]int{
		{0, 1}, {0, 2}, {1, 3}, {2, 3}, {2, 6}, {3, 4}, {3, 5}, {6, 7},
	}
	g := buildEdges(8, arcs...)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 8)
	for _, a := range arcs {
		assert.Less(t, position(order, a[0]), position(order, a[1]), "%d->%d", a[0], a[1])
	}
}

func TestTopo_TwoCycle(t *testing.T) {
	_, err := dfs.TopologicalSort(buildEdges(3, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2}))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopo_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.TopologicalSort(buildChain(3), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
