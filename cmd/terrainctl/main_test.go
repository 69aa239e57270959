package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terra/terrain"
)

const twoRoomsYAML = `
scale: tile
rows:
  - "########################"
  - "########################"
  - "#........#####........##"
  - "#........#####........##"
  - "#........#####........##"
  - "#.....................##"
  - "#........#####........##"
  - "#........#####........##"
  - "#........#####........##"
  - "#........#####........##"
  - "########################"
  - "########################"
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.yaml")
	require.NoError(t, os.WriteFile(mapPath, []byte(twoRoomsYAML), 0o644))
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("graph:\n  workers: 2\n"), 0o644))
	pngPath := filepath.Join(dir, "out.png")

	var out bytes.Buffer
	err := run(context.Background(), &out, options{
		mapPath:    mapPath,
		configPath: cfgPath,
		from:       "80,80",
		to:         "576,184",
		pngPath:    pngPath,
	})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "map 24x12 tiles")
	assert.Contains(t, s, "area 1:")
	assert.Contains(t, s, "area 2:")
	assert.Contains(t, s, "chokepoint 0: areas 1-2, 4 cells")
	assert.Contains(t, s, "chokepoints [0]")

	info, err := os.Stat(pngPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRun_MissingMap(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, options{mapPath: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 12, 40")
	require.NoError(t, err)
	assert.Equal(t, terrain.Position{X: 12, Y: 40}, p)

	for _, bad := range []string{"", "12", "a,3", "3,b"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}
