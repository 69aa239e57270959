package terrain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		p    Position
		w    WalkPosition
		t    TilePosition
	}{
		{"origin", Position{0, 0}, WalkPosition{0, 0}, TilePosition{0, 0}},
		{"inside", Position{70, 33}, WalkPosition{8, 4}, TilePosition{2, 1}},
		{"negative", Position{-1, -33}, WalkPosition{-1, -5}, TilePosition{-1, -2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.w, tc.p.ToWalk())
			assert.Equal(t, tc.t, tc.p.ToTile())
			assert.Equal(t, tc.t, tc.w.ToTile())
		})
	}
	assert.Equal(t, WalkPosition{12, 8}, TilePosition{3, 2}.ToWalk())
	assert.Equal(t, Position{96, 64}, TilePosition{3, 2}.ToPosition())
	assert.Equal(t, Position{24, 16}, WalkPosition{3, 2}.ToPosition())
	assert.Equal(t, "(3,2)t", TilePosition{3, 2}.String())
}

func TestDimsValidity(t *testing.T) {
	d := Dims{Width: 3, Height: 2}
	assert.Equal(t, 12, d.WalkWidth())
	assert.Equal(t, 8, d.WalkHeight())

	assert.True(t, d.ValidTile(TilePosition{2, 1}))
	assert.False(t, d.ValidTile(TilePosition{3, 1}))
	assert.True(t, d.ValidWalk(WalkPosition{11, 7}))
	assert.False(t, d.ValidWalk(WalkPosition{11, 8}))
	assert.False(t, d.ValidWalk(WalkPosition{-1, 0}))
	assert.True(t, d.ValidPosition(Position{95, 63}))
	assert.False(t, d.ValidPosition(Position{96, 0}))
}

func TestGridFromTiles(t *testing.T) {
	g, err := NewGridFromTiles([]string{"#.", ".#"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.True(t, g.Walkable(WalkPosition{4, 0}))
	assert.True(t, g.Walkable(WalkPosition{7, 3}))
	assert.False(t, g.Walkable(WalkPosition{3, 3}))
	assert.True(t, g.Walkable(WalkPosition{0, 4}))
	assert.False(t, g.Walkable(WalkPosition{8, 0}))

	_, err = NewGridFromTiles(nil)
	assert.ErrorIs(t, err, ErrEmptyMap)
	_, err = NewGridFromTiles([]string{"..", "."})
	assert.ErrorIs(t, err, ErrNonRectangular)
}

func TestGridFromWalk(t *testing.T) {
	g, err := NewGridFromWalk([]string{
		"....####",
		"....####",
		"....####",
		"...#####",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.False(t, g.Walkable(WalkPosition{3, 3}))
	assert.True(t, g.Walkable(WalkPosition{2, 3}))

	_, err = NewGridFromWalk([]string{"...."})
	assert.ErrorIs(t, err, ErrWalkAlignment)
}

func TestGridMutators(t *testing.T) {
	g := NewGrid(3, 3)
	g.FillTiles(TilePosition{1, 1}, TilePosition{2, 2}, true)
	assert.True(t, g.Walkable(WalkPosition{4, 4}))
	assert.True(t, g.Walkable(WalkPosition{11, 11}))
	assert.False(t, g.Walkable(WalkPosition{3, 4}))

	g.SetWalkable(WalkPosition{99, 99}, true) // ignored

	id := g.AddResource(Geyser, TilePosition{0, 0}, 10)
	assert.Equal(t, 0, id)
	assert.Equal(t, 1, g.AddResource(Mineral, TilePosition{1, 0}, 20))
	res := g.StaticResources()
	res[0].Amount = 0
	assert.Equal(t, 10, g.StaticResources()[0].Amount, "copy returned")

	g.AddStartLocation(TilePosition{1, 1})
	assert.Equal(t, []TilePosition{{1, 1}}, g.StartLocations())
}

func TestResourceGeometry(t *testing.T) {
	assert.Equal(t, TilePosition{2, 1}, Mineral.Size())
	assert.Equal(t, TilePosition{4, 2}, Geyser.Size())

	x2, y2 := Resource{Kind: Geyser, Position: TilePosition{10, 4}}.Center()
	assert.Equal(t, 24, x2)
	assert.Equal(t, 10, y2)

	k, err := ParseKind("gas")
	require.NoError(t, err)
	assert.Equal(t, Geyser, k)
	_, err = ParseKind("vespene")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "mineral", Mineral.String())
}

func TestParse(t *testing.T) {
	g, err := Parse([]byte(`
rows:
  - "####"
  - "#..#"
resources:
  - {kind: mineral, x: 1, y: 1, amount: 1500}
  - {kind: geyser, x: 0, y: 0, amount: 5000}
starts:
  - {x: 2, y: 1}
`))
	require.NoError(t, err)
	assert.Equal(t, Dims{4, 2}, DimsOf(g))
	assert.True(t, g.Walkable(WalkPosition{5, 5}))
	require.Len(t, g.StaticResources(), 2)
	assert.Equal(t, Resource{ID: 0, Kind: Mineral, Position: TilePosition{1, 1}, Amount: 1500}, g.StaticResources()[0])
	assert.Equal(t, []TilePosition{{2, 1}}, g.StartLocations())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "rows: []", ErrEmptyMap},
		{"ragged", "rows: ['..', '.']", ErrNonRectangular},
		{"scale", "scale: pixel\nrows: ['..']", ErrUnknownScale},
		{"kind", "rows: ['..']\nresources: [{kind: gold, x: 0, y: 0, amount: 1}]", ErrUnknownKind},
		{"walk alignment", "scale: walk\nrows: ['..']", ErrWalkAlignment},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := Parse([]byte("rows: {"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: ['.#', '..']\n"), 0o644))
	g, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
