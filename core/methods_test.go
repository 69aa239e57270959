// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terra/core"
)

func TestAddEdge_Undirected(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 2, 7))

	_, ok := g.Weight(0, 1)
	assert.False(t, ok)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 3, g.VertexCount())

	for _, pair := range [][2]int{{0, 2}, {2, 0}} {
		w, ok := g.Weight(pair[0], pair[1])
		require.True(t, ok)
		assert.EqualValues(t, 7, w)
	}
}

func TestAddEdge_KeepsMinimum(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(1, 0, 4))
	require.NoError(t, g.AddEdge(0, 1, 6))

	w, _ := g.Weight(0, 1)
	assert.EqualValues(t, 4, w)
	w, _ = g.Weight(1, 0)
	assert.EqualValues(t, 4, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph(2)
	assert.ErrorIs(t, g.AddEdge(0, 5, 1), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(1, 1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 1, -3), core.ErrNegativeWeight)
	assert.Zero(t, g.EdgeCount())
}

func TestNeighbors_Sorted(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(2, 0, 3))

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nb, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{nb[0].To, nb[1].To, nb[2].To})
	for _, e := range nb {
		assert.Equal(t, 0, e.From)
	}

	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 2, Weight: 3},
		{From: 0, To: 3, Weight: 1},
	}, nb)

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
