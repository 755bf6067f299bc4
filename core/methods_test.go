package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/errand/core"
)

func TestNewGraph_BadVertexCount(t *testing.T) {
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)
}

func TestNewGraph_TooManyVertices(t *testing.T) {
	g, err := core.NewGraph(core.MaxVertices + 1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrTooManyVertices)
}

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasVertex(0))
}

// TestAddEdge_Symmetric verifies every edge is visible from both endpoints.
func TestAddEdge_Symmetric(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 7))

	nb0, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 1, Weight: 4}}, nb0)

	nb1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 0, Weight: 4}, {To: 2, Weight: 7}}, nb1)

	nb2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 1, Weight: 7}}, nb2)

	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 1))
	assert.False(t, g.HasEdge(0, 2))
}

// TestAddEdge_ParallelEdges checks that multi-edges keep one entry each.
func TestAddEdge_ParallelEdges(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 0, 2))

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	nb, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 0, Weight: 5}, {To: 0, Weight: 2}}, nb)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 5}, {From: 1, To: 0, Weight: 2}}, g.Edges())
}

func TestAddEdge_Rejections(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	tests := []struct {
		name    string
		u, v    int
		w       int64
		wantErr error
	}{
		{"negative u", -1, 0, 1, core.ErrVertexOutOfRange},
		{"v too large", 0, 3, 1, core.ErrVertexOutOfRange},
		{"negative weight", 0, 1, -2, core.ErrNegativeWeight},
		{"self loop", 2, 2, 1, core.ErrLoopNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tt.u, tt.v, tt.w), tt.wantErr)
		})
	}
	assert.Equal(t, 0, g.EdgeCount(), "rejected edges must not be recorded")
}

func TestAddEdge_LoopRecordedOnce(t *testing.T) {
	g, err := core.NewGraph(1, core.WithLoops())
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 3))

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 0, Weight: 3}}, nb)
	assert.True(t, g.Looped())
}

func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	_, err = core.FromEdges(2, []core.Edge{{From: 0, To: 1}, {From: 1, To: 9}})
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.Contains(t, err.Error(), "edge #1")
}

// TestNeighbors_ViewIsClipped makes sure appending to a returned view never
// leaks into the graph.
func TestNeighbors_ViewIsClipped(t *testing.T) {
	g, err := core.NewGraph(3, core.WithEdgeCapacity(8))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	_ = append(nb, core.Neighbor{To: 2, Weight: 99})

	require.NoError(t, g.AddEdge(0, 2, 5))
	nb, err = g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 1, Weight: 1}, {To: 2, Weight: 5}}, nb)
}

func TestNeighbors_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	_, err = g.Neighbors(2)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	assert.False(t, g.HasEdge(0, 5))
}
