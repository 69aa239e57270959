package terramap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/terra/altitude"
	"github.com/katalvlaran/terra/area"
	"github.com/katalvlaran/terra/base"
	"github.com/katalvlaran/terra/choke"
	"github.com/katalvlaran/terra/chokegraph"
	"github.com/katalvlaran/terra/terrain"
)

// ErrNilSource indicates Build was called without a terrain source.
var ErrNilSource = errors.New("terramap: terrain source is nil")

// ChokepointRef identifies a chokepoint by its index in Chokepoints().
type ChokepointRef int

// Map is the immutable analysis of one terrain snapshot.
type Map struct {
	dims  terrain.Dims
	field *altitude.Field
	part  *area.Partition
	cps   []choke.Chokepoint
	bases []base.Base
	graph *chokegraph.Graph
}

// Build analyses src. The context is consulted once, before any work starts;
// a started build always runs to completion.
func Build(ctx context.Context, src terrain.Source, opts ...Option) (*Map, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := newSettings(opts)
	log := s.logger.With("component", "terramap")
	start := time.Now()

	bopts := s.bases()
	if _, outside := base.Usable(src, bopts); outside > 0 {
		log.Debug("resources outside the map skipped", "count", outside)
	}
	found := make(chan []base.Base, 1)
	go func() {
		t := time.Now()
		bases := base.Find(src, bopts)
		log.Debug("bases found", "count", len(bases), "elapsed", time.Since(t))
		found <- bases
	}()

	t := time.Now()
	field, err := altitude.Compute(src, s.altitude())
	if err != nil {
		return nil, fmt.Errorf("altitude: %w", err)
	}
	log.Debug("altitude computed", "max_altitude", field.MaxAltitude(), "elapsed", time.Since(t))

	t = time.Now()
	part, err := area.Compute(field, src.StartLocations(), s.areas())
	if err != nil {
		return nil, fmt.Errorf("areas: %w", err)
	}
	log.Debug("areas partitioned", "areas", part.Count(), "frontier", len(part.Frontier()), "elapsed", time.Since(t))

	t = time.Now()
	cps, err := choke.Extract(field, part, s.chokepoints())
	if err != nil {
		return nil, fmt.Errorf("chokepoints: %w", err)
	}
	log.Debug("chokepoints extracted", "count", len(cps), "elapsed", time.Since(t))

	bases := <-found

	t = time.Now()
	graph, err := chokegraph.Build(field, part, cps, s.graph())
	if err != nil {
		return nil, fmt.Errorf("chokepoint graph: %w", err)
	}
	log.Debug("chokepoint graph built", "edges", graph.Edges().EdgeCount(), "elapsed", time.Since(t))

	m := &Map{
		dims:  terrain.DimsOf(src),
		field: field,
		part:  part,
		cps:   cps,
		bases: bases,
		graph: graph,
	}
	for i := range m.bases {
		m.bases[i].Area = m.NearestArea(m.bases[i].Center().ToWalk())
	}

	log.Info("terrain analysed",
		"width", m.dims.Width,
		"height", m.dims.Height,
		"areas", part.Count(),
		"chokepoints", len(cps),
		"bases", len(bases),
		"elapsed", time.Since(start),
	)
	return m, nil
}
