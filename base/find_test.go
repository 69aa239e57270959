package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terra/terrain"
)

func openGrid(w, h int) *terrain.Grid {
	g := terrain.NewGrid(w, h)
	g.FillTiles(terrain.TilePosition{}, terrain.TilePosition{X: w - 1, Y: h - 1}, true)
	return g
}

// mineralLine adds n 2×1 patches stacked vertically from (x,y).
func mineralLine(g *terrain.Grid, x, y, n int) []int {
	var ids []int
	for k := 0; k < n; k++ {
		ids = append(ids, g.AddResource(terrain.Mineral, terrain.TilePosition{X: x, Y: y + k}, 1500))
	}
	return ids
}

func TestFind_OneFieldOneBase(t *testing.T) {
	g := openGrid(40, 32)
	want := mineralLine(g, 20, 10, 8)
	want = append(want, g.AddResource(terrain.Geyser, terrain.TilePosition{X: 20, Y: 19}, 5000))

	bases := Find(g, DefaultOptions())
	require.Len(t, bases, 1)
	assert.Equal(t, want, bases[0].Resources)
	assert.Equal(t, terrain.TilePosition{X: 25, Y: 13}, bases[0].Location)
	assert.Equal(t, 900, bases[0].Score)
	assert.Equal(t, terrain.Position{X: 864, Y: 464}, bases[0].Center())
}

func TestFind_TwoFieldsOrderedByScore(t *testing.T) {
	g := openGrid(80, 32)
	first := mineralLine(g, 20, 10, 8)
	second := mineralLine(g, 60, 10, 6)

	bases := Find(g, DefaultOptions())
	require.Len(t, bases, 2)
	assert.Equal(t, first, bases[0].Resources)
	assert.Equal(t, 800, bases[0].Score)
	assert.Equal(t, terrain.TilePosition{X: 13, Y: 12}, bases[0].Location)
	assert.Equal(t, second, bases[1].Resources)
	assert.Equal(t, 600, bases[1].Score)
}

func TestFind_IgnoresPoorAndInvalidDeposits(t *testing.T) {
	g := openGrid(40, 32)
	for k := 0; k < 8; k++ {
		g.AddResource(terrain.Mineral, terrain.TilePosition{X: 20, Y: 10 + k}, 499)
	}
	g.AddResource(terrain.Geyser, terrain.TilePosition{X: 20, Y: 19}, 0)
	g.AddResource(terrain.Mineral, terrain.TilePosition{X: -3, Y: 2}, 1500)
	g.AddResource(terrain.Geyser, terrain.TilePosition{X: 38, Y: 5}, 5000) // footprint leaves the map

	assert.Empty(t, Find(g, DefaultOptions()))

	kept, outside := Usable(g, DefaultOptions())
	assert.Empty(t, kept)
	assert.Equal(t, 2, outside)
}

func TestFind_NoResources(t *testing.T) {
	assert.Empty(t, Find(openGrid(10, 10), DefaultOptions()))
}

func TestFind_Deterministic(t *testing.T) {
	g := openGrid(80, 32)
	mineralLine(g, 20, 10, 8)
	mineralLine(g, 60, 10, 6)
	assert.Equal(t, Find(g, DefaultOptions()), Find(g, DefaultOptions()))
}

func TestLaneStopsAtUnwalkableTile(t *testing.T) {
	g := openGrid(30, 30)
	g.SetTileWalkable(terrain.TilePosition{X: 2, Y: 10}, false)
	r := terrain.Resource{ID: 0, Kind: terrain.Mineral, Position: terrain.TilePosition{X: 10, Y: 10}, Amount: 1500}

	fd := newFinder(g, DefaultOptions())
	fd.block(r)
	fd.contribute(r, 1)

	assert.Equal(t, 100, fd.score[fd.index(3, 10)])
	assert.Zero(t, fd.score[fd.index(2, 10)])
	assert.Zero(t, fd.score[fd.index(1, 10)])
	assert.Equal(t, 88, fd.score[fd.index(2, 11)])
	assert.True(t, fd.blocked[fd.index(4, 10)])
	assert.False(t, fd.blocked[fd.index(3, 10)])

	fd.contribute(r, -1)
	for i, s := range fd.score {
		assert.Zero(t, s, "tile %d", i)
	}
}

func TestTileWalkableIsAnyCell(t *testing.T) {
	g := terrain.NewGrid(2, 2)
	g.SetWalkable(terrain.WalkPosition{X: 7, Y: 4}, true)
	assert.True(t, tileWalkable(g, terrain.TilePosition{X: 1, Y: 1}))
	assert.False(t, tileWalkable(g, terrain.TilePosition{X: 0, Y: 1}))
}
