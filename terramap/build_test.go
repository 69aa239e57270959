package terramap

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terra/altitude"
	"github.com/katalvlaran/terra/choke"
	"github.com/katalvlaran/terra/chokegraph"
	"github.com/katalvlaran/terra/config"
	"github.com/katalvlaran/terra/terrain"
)

// twoRooms is two 8×8 rooms joined by a one-tile-wide, five-tile-long corridor.
var twoRooms = []string{
	"########################",
	"########################",
	"#........#####........##",
	"#........#####........##",
	"#........#####........##",
	"#.....................##",
	"#........#####........##",
	"#........#####........##",
	"#........#####........##",
	"#........#####........##",
	"########################",
	"########################",
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func buildRows(t *testing.T, rows []string, opts ...Option) *Map {
	t.Helper()
	g, err := terrain.NewGridFromTiles(rows)
	require.NoError(t, err)
	m, err := Build(context.Background(), g, append([]Option{WithLogger(quiet())}, opts...)...)
	require.NoError(t, err)
	return m
}

func TestBuild_TwoRoomsOneCorridor(t *testing.T) {
	m := buildRows(t, twoRooms)

	assert.Equal(t, terrain.Dims{Width: 24, Height: 12}, m.Dims())
	require.Len(t, m.Areas(), 2)
	cps := m.Chokepoints()
	require.Len(t, cps, 1)

	top := cps[0].Pos(choke.Middle).ToTile()
	assert.Equal(t, 5, top.Y)
	assert.True(t, top.X >= 9 && top.X <= 13, "top tile %v outside the corridor", top)

	cp, ok := m.Chokepoint(0)
	require.True(t, ok)
	assert.Equal(t, cps[0].Top, cp.Top)
	_, ok = m.Chokepoint(1)
	assert.False(t, ok)

	assert.Empty(t, m.Bases())
	assert.Equal(t, altitude.Walkable, m.Altitude(terrain.WalkPosition{X: 19, Y: 23}).Kind)
	assert.Equal(t, altitude.Invalid, m.Altitude(terrain.WalkPosition{X: -1, Y: 0}).Kind)
	assert.EqualValues(t, 128, m.MaxAltitude())
}

func TestBuild_EveryWalkableCellHasArea(t *testing.T) {
	m := buildRows(t, twoRooms)
	for y := 0; y < m.Dims().WalkHeight(); y++ {
		for x := 0; x < m.Dims().WalkWidth(); x++ {
			w := terrain.WalkPosition{X: x, Y: y}
			if m.Altitude(w).Walkable() {
				assert.Positive(t, m.AreaID(w), "%v", w)
			} else {
				assert.Zero(t, m.AreaID(w), "%v", w)
			}
		}
	}
}

func TestPath(t *testing.T) {
	m := buildRows(t, twoRooms)
	a := terrain.WalkPosition{X: 10, Y: 10}

	t.Run("same area", func(t *testing.T) {
		b := terrain.WalkPosition{X: 16, Y: 18}
		path, dist := m.Path(a.ToPosition(), b.ToPosition())
		assert.NotNil(t, path)
		assert.Empty(t, path)
		assert.EqualValues(t, chokegraph.Direct(a, b), dist)
		assert.EqualValues(t, 80, dist)
	})
	t.Run("across the corridor", func(t *testing.T) {
		b := terrain.WalkPosition{X: 72, Y: 23}
		path, dist := m.Path(a.ToPosition(), b.ToPosition())
		assert.Equal(t, []ChokepointRef{0}, path)
		mid := m.Chokepoints()[0].Pos(choke.Middle)
		assert.EqualValues(t, chokegraph.Direct(a, mid)+chokegraph.Direct(mid, b), dist)
	})
	t.Run("out of bounds", func(t *testing.T) {
		path, dist := m.Path(a.ToPosition(), terrain.Position{X: 24 * 32, Y: 5})
		assert.Nil(t, path)
		assert.Zero(t, dist)
	})
}

func TestBuild_Idempotent(t *testing.T) {
	m1 := buildRows(t, twoRooms, WithWorkers(1))
	m2 := buildRows(t, twoRooms, WithWorkers(4))

	assert.Equal(t, m1.part, m2.part)
	assert.Equal(t, m1.Chokepoints(), m2.Chokepoints())
	n := m1.ChokepointGraph().Count()
	require.Equal(t, n, m2.ChokepointGraph().Count())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, m1.ChokepointGraph().Distance(i, j), m2.ChokepointGraph().Distance(i, j))
		}
	}
}

func TestBuild_BasesGetArea(t *testing.T) {
	g := terrain.NewGrid(40, 32)
	g.FillTiles(terrain.TilePosition{X: 1, Y: 1}, terrain.TilePosition{X: 38, Y: 30}, true)
	for k := 0; k < 8; k++ {
		g.AddResource(terrain.Mineral, terrain.TilePosition{X: 20, Y: 10 + k}, 1500)
	}
	g.AddResource(terrain.Geyser, terrain.TilePosition{X: 20, Y: 19}, 5000)
	g.AddResource(terrain.Mineral, terrain.TilePosition{X: 90, Y: 90}, 1500)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m, err := Build(context.Background(), g, WithLogger(logger))
	require.NoError(t, err)

	bases := m.Bases()
	require.Len(t, bases, 1)
	assert.Len(t, bases[0].Resources, 9)
	assert.EqualValues(t, 1, bases[0].Area)

	assert.Contains(t, logs.String(), "terrain analysed")
	assert.Contains(t, logs.String(), "resources outside the map skipped")
	assert.Contains(t, logs.String(), "chokepoint graph built")
}

func TestNearestArea(t *testing.T) {
	m := buildRows(t, twoRooms)

	assert.EqualValues(t, 1, m.NearestArea(terrain.WalkPosition{X: 19, Y: 23}))
	assert.EqualValues(t, 1, m.NearestArea(terrain.WalkPosition{X: 1, Y: 20}), "wall left of room A")
	assert.EqualValues(t, 2, m.NearestArea(terrain.WalkPosition{X: 90, Y: 20}), "wall right of room B")
	assert.Zero(t, m.NearestArea(terrain.WalkPosition{X: -4, Y: 2}))
}

func TestConnected(t *testing.T) {
	m := buildRows(t, twoRooms)
	assert.True(t, m.Connected(terrain.WalkPosition{X: 10, Y: 10}, terrain.WalkPosition{X: 72, Y: 23}))
	assert.False(t, m.Connected(terrain.WalkPosition{X: 0, Y: 0}, terrain.WalkPosition{X: 72, Y: 23}))
}

func TestBuild_WithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Areas.MergeSize = 1 << 20
	m := buildRows(t, twoRooms, WithConfig(cfg))

	assert.Len(t, m.Areas(), 1)
	assert.Empty(t, m.Chokepoints())
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(context.Background(), nil)
	require.ErrorIs(t, err, ErrNilSource)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := terrain.NewGridFromTiles(twoRooms)
	require.NoError(t, err)
	_, err = Build(ctx, g)
	require.ErrorIs(t, err, context.Canceled)

	_, err = Build(context.Background(), terrain.NewGrid(0, 0), WithLogger(quiet()))
	require.ErrorIs(t, err, altitude.ErrEmptyMap)
}

func TestMap_ConcurrentReaders(t *testing.T) {
	m := buildRows(t, twoRooms)
	from := terrain.WalkPosition{X: 10, Y: 10}.ToPosition()
	to := terrain.WalkPosition{X: 72, Y: 23}.ToPosition()
	want, wantDist := m.Path(from, to)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < 50; k++ {
				path, dist := m.Path(from, to)
				assert.Equal(t, want, path)
				assert.Equal(t, wantDist, dist)
				_ = m.NearestArea(terrain.WalkPosition{X: k, Y: k})
			}
		}()
	}
	wg.Wait()
}

// clutteredGrid is a 64×64 tile map with random rectangular obstacles and,
// when noisy, scattered unwalkable walk cells.
func clutteredGrid(seed int64, noisy bool) *terrain.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := terrain.NewGrid(64, 64)
	g.FillTiles(terrain.TilePosition{}, terrain.TilePosition{X: 63, Y: 63}, true)
	for k := 0; k < 60; k++ {
		x, y := rng.Intn(60), rng.Intn(60)
		w, h := 1+rng.Intn(6), 1+rng.Intn(6)
		g.FillTiles(terrain.TilePosition{X: x, Y: y}, terrain.TilePosition{X: x + w - 1, Y: y + h - 1}, false)
	}
	if noisy {
		for k := 0; k < 2000; k++ {
			g.SetWalkable(terrain.WalkPosition{X: rng.Intn(256), Y: rng.Intn(256)}, false)
		}
	}
	return g
}

func TestBuild_ClutteredMaps(t *testing.T) {
	for seed := int64(0); seed < 6; seed++ {
		m, err := Build(context.Background(), clutteredGrid(seed, seed%2 == 0), WithLogger(quiet()))
		require.NoError(t, err, "seed %d", seed)

		d := m.Dims()
		for y := 0; y < d.WalkHeight(); y++ {
			for x := 0; x < d.WalkWidth(); x++ {
				w := terrain.WalkPosition{X: x, Y: y}
				if m.Altitude(w).Walkable() {
					require.NotZero(t, m.AreaID(w), "seed %d cell %v", seed, w)
				}
			}
		}
		g := m.ChokepointGraph()
		for i := 0; i < g.Count(); i++ {
			for j := i + 1; j < g.Count(); j++ {
				assert.Equal(t, g.Distance(i, j), g.Distance(j, i), "seed %d pair %d-%d", seed, i, j)
			}
		}
	}
}
