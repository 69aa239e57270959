package terramap

import (
	"log/slog"

	"github.com/katalvlaran/terra/altitude"
	"github.com/katalvlaran/terra/area"
	"github.com/katalvlaran/terra/base"
	"github.com/katalvlaran/terra/choke"
	"github.com/katalvlaran/terra/chokegraph"
	"github.com/katalvlaran/terra/config"
)

// Option configures Build.
type Option func(*settings)

type settings struct {
	cfg     *config.Config
	logger  *slog.Logger
	workers int
}

// WithConfig sets the analysis parameters. A nil cfg keeps the defaults.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithLogger sets the logger for stage reports. A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkers overrides the configured number of chokepoint-graph workers.
func WithWorkers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

func newSettings(opts []Option) settings {
	s := settings{cfg: config.Default(), logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.workers == 0 {
		s.workers = s.cfg.Graph.Workers
	}
	return s
}

func (s settings) altitude() altitude.Options {
	return altitude.Options{
		HoleMaxCells:  s.cfg.Altitude.HoleMaxCells,
		HoleMaxExtent: s.cfg.Altitude.HoleMaxExtent,
	}
}

func (s settings) areas() area.Options {
	return area.Options{
		MergeSize:    s.cfg.Areas.MergeSize,
		AnchorRadius: s.cfg.Areas.AnchorRadius,
	}
}

func (s settings) chokepoints() choke.Options {
	return choke.Options{
		ClusterDistance: s.cfg.Chokepoints.ClusterDistance,
		SupportAltitude: int32(s.cfg.Chokepoints.SupportAltitude),
	}
}

func (s settings) bases() base.Options {
	return base.Options{
		MinMinerals:    s.cfg.Bases.MinMinerals,
		ScoreThreshold: s.cfg.Bases.ScoreThreshold,
		ClaimRadius:    s.cfg.Bases.ClaimRadius,
	}
}

func (s settings) graph() chokegraph.Options {
	return chokegraph.Options{Workers: s.workers}
}
