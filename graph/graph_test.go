package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/graph"
)

func TestAddNodeAssignsDenseIDs(t *testing.T) {
	g := graph.New()
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3, g.NodeCount())
}

func TestAddEdgeUndirectedMirrors(t *testing.T) {
	g := graph.New()
	a := g.AddNode(0)
	b := g.AddNode(0)
	require.NoError(t, g.AddEdge(a, b))

	assert.True(t, g.HasEdge(a, b))
	assert.True(t, g.HasEdge(b, a))
	assert.Equal(t, []int32{int32(b)}, g.Neighbors(a))
	assert.Equal(t, []int32{int32(a)}, g.Neighbors(b))
}

func TestAddEdgeDirectedDoesNotMirror(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	a := g.AddNode(0)
	b := g.AddNode(0)
	require.NoError(t, g.AddEdge(a, b))

	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a))
	assert.Equal(t, []int32{int32(b)}, g.Neighbors(a))
	assert.Empty(t, g.Neighbors(b))
	assert.Equal(t, []int32{int32(a)}, g.InNeighbors(b))
}

func TestAddEdgeRejectsOutOfRangeNodes(t *testing.T) {
	g := graph.New()
	a := g.AddNode(0)
	err := g.AddEdge(a, 99)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestAddEdgeRejectsLoopByDefault(t *testing.T) {
	g := graph.New()
	a := g.AddNode(0)
	err := g.AddEdge(a, a)
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)
}

func TestAddEdgeWithLoopsAllowsSelfEdge(t *testing.T) {
	g := graph.New(graph.WithLoops())
	a := g.AddNode(0)
	require.NoError(t, g.AddEdge(a, a))
	assert.True(t, g.HasEdge(a, a))
}

func TestAddEdgeRejectsDuplicateByDefault(t *testing.T) {
	g := graph.New()
	a := g.AddNode(0)
	b := g.AddNode(0)
	require.NoError(t, g.AddEdge(a, b))
	err := g.AddEdge(a, b)
	assert.ErrorIs(t, err, graph.ErrMultiEdgeNotAllowed)
}

func TestAddEdgeWithMultiEdgesAllowsDuplicates(t *testing.T) {
	g := graph.New(graph.WithMultiEdges())
	a := g.AddNode(0)
	b := g.AddNode(0)
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestDegreeUndirectedVsDirected(t *testing.T) {
	u := graph.New()
	a, b, c := u.AddNode(0), u.AddNode(0), u.AddNode(0)
	require.NoError(t, u.AddEdge(a, b))
	require.NoError(t, u.AddEdge(a, c))
	assert.Equal(t, 2, u.Degree(a))

	d := graph.New(graph.WithDirected(true))
	x, y, z := d.AddNode(0), d.AddNode(0), d.AddNode(0)
	require.NoError(t, d.AddEdge(x, y))
	require.NoError(t, d.AddEdge(z, x))
	assert.Equal(t, 2, d.Degree(x))
}

func TestLabel(t *testing.T) {
	g := graph.New()
	a := g.AddNode(graph.Label(42))
	lbl, err := g.Label(a)
	require.NoError(t, err)
	assert.Equal(t, graph.Label(42), lbl)

	_, err = g.Label(99)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}
