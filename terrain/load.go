package terrain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// mapFile mirrors the YAML map description.
type mapFile struct {
	Scale     string         `yaml:"scale"`
	Rows      []string       `yaml:"rows"`
	Resources []resourceSpec `yaml:"resources"`
	Starts    []tileSpec     `yaml:"starts"`
}

type resourceSpec struct {
	Kind   string `yaml:"kind"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Amount int    `yaml:"amount"`
}

type tileSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LoadFile reads a YAML map description from path.
func LoadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
	}
	return g, nil
}

// Parse decodes a YAML map description. Scale defaults to "tile".
func Parse(data []byte) (*Grid, error) {
	var mf mapFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, err
	}

	var (
		g   *Grid
		err error
	)
	switch mf.Scale {
	case "", "tile":
		g, err = NewGridFromTiles(mf.Rows)
	case "walk":
		g, err = NewGridFromWalk(mf.Rows)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, mf.Scale)
	}
	if err != nil {
		return nil, err
	}

	for i, r := range mf.Resources {
		kind, err := ParseKind(r.Kind)
		if err != nil {
			return nil, fmt.Errorf("resource %d: %w: %q", i, err, r.Kind)
		}
		g.AddResource(kind, TilePosition{r.X, r.Y}, r.Amount)
	}
	for _, s := range mf.Starts {
		g.AddStartLocation(TilePosition{s.X, s.Y})
	}
	return g, nil
}
