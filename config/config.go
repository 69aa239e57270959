// Package config loads the tunable analysis parameters from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all analysis parameters.
type Config struct {
	Altitude    AltitudeConfig    `yaml:"altitude"`
	Areas       AreasConfig       `yaml:"areas"`
	Chokepoints ChokepointsConfig `yaml:"chokepoints"`
	Bases       BasesConfig       `yaml:"bases"`
	Graph       GraphConfig       `yaml:"graph"`
}

// AltitudeConfig holds hole-detection thresholds, in walk cells.
type AltitudeConfig struct {
	HoleMaxCells  int `yaml:"hole_max_cells"`
	HoleMaxExtent int `yaml:"hole_max_extent"`
}

// AreasConfig holds partitioning parameters.
type AreasConfig struct {
	MergeSize    int `yaml:"merge_size"`    // walk cells
	AnchorRadius int `yaml:"anchor_radius"` // tiles
}

// ChokepointsConfig holds frontier clustering parameters.
type ChokepointsConfig struct {
	ClusterDistance int `yaml:"cluster_distance"` // walk cells, Chebyshev
	SupportAltitude int `yaml:"support_altitude"` // altitude units
}

// BasesConfig holds base placement parameters.
type BasesConfig struct {
	MinMinerals    int `yaml:"min_minerals"`
	ScoreThreshold int `yaml:"score_threshold"`
	ClaimRadius    int `yaml:"claim_radius"` // tiles
}

// GraphConfig holds chokepoint graph parameters.
type GraphConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file. Missing fields take defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration from YAML bytes. Missing fields take defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Altitude.HoleMaxCells == 0 {
		cfg.Altitude.HoleMaxCells = 200
	}
	if cfg.Altitude.HoleMaxExtent == 0 {
		cfg.Altitude.HoleMaxExtent = 20
	}
	if cfg.Areas.MergeSize == 0 {
		cfg.Areas.MergeSize = 400
	}
	if cfg.Areas.AnchorRadius == 0 {
		cfg.Areas.AnchorRadius = 3
	}
	if cfg.Chokepoints.ClusterDistance == 0 {
		cfg.Chokepoints.ClusterDistance = 17
	}
	if cfg.Chokepoints.SupportAltitude == 0 {
		cfg.Chokepoints.SupportAltitude = 48
	}
	if cfg.Bases.MinMinerals == 0 {
		cfg.Bases.MinMinerals = 500
	}
	if cfg.Bases.ScoreThreshold == 0 {
		cfg.Bases.ScoreThreshold = 400
	}
	if cfg.Bases.ClaimRadius == 0 {
		cfg.Bases.ClaimRadius = 9
	}
}
