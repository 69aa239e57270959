package bfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terra/core"
)

// ladder: 0-1-2-3 with a shortcut 0-4-3, plus isolated 5 and pair 6-7.
func ladder(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(8)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 4}, {4, 3}, {6, 7}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	return g
}

func TestBFS_Order(t *testing.T) {
	order, err := BFS(ladder(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 2, 3}, order)

	order, err = BFS(ladder(t), 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6}, order)

	order, err = BFS(ladder(t), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, order)
}

func TestBFS_Errors(t *testing.T) {
	_, err := BFS(nil, 0)
	assert.ErrorIs(t, err, ErrGraphNil)

	_, err = BFS(ladder(t), 8)
	assert.ErrorIs(t, err, ErrStartVertexNotFound)

	_, err = BFS(ladder(t), -1)
	assert.ErrorIs(t, err, ErrStartVertexNotFound)
}

func TestComponents(t *testing.T) {
	label, count, err := Components(ladder(t))
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 2, 2}, label)

	label, count, err = Components(core.NewGraph(0))
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, label)

	_, _, err = Components(nil)
	assert.ErrorIs(t, err, ErrGraphNil)
}
