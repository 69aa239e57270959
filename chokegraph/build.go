package chokegraph

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/terra/altitude"
	"github.com/katalvlaran/terra/area"
	"github.com/katalvlaran/terra/bfs"
	"github.com/katalvlaran/terra/choke"
	"github.com/katalvlaran/terra/core"
	"github.com/katalvlaran/terra/dijkstra"
	"github.com/katalvlaran/terra/gridgraph"
)

// Graph is the relaxed chokepoint graph of one map.
type Graph struct {
	f      *altitude.Field
	p      *area.Partition
	cps    []choke.Chokepoint
	n      int
	edges  *core.Graph
	dist   []int64 // n×n, row-major
	paths  [][]int // n×n, nil when unreachable
	byArea [][]int // byArea[id]: chokepoints bordering area id, ascending
	groups []int   // groups[id]: ground-connected component of area id
}

// pairJob is one local search; slot indexes the result slice.
type pairJob struct {
	a, b, slot int
}

type pairResult struct {
	weight int64
	ok     bool
}

// Build computes local distances and relaxes them into the all-pairs matrix.
func Build(f *altitude.Field, p *area.Partition, cps []choke.Chokepoint, opts Options) (*Graph, error) {
	if f == nil || p == nil {
		return nil, ErrNilInput
	}
	n := len(cps)
	g := &Graph{
		f:      f,
		p:      p,
		cps:    cps,
		n:      n,
		edges:  core.NewGraph(n),
		dist:   make([]int64, n*n),
		paths:  make([][]int, n*n),
		byArea: make([][]int, p.Count()+1),
	}
	for i, cp := range cps {
		for _, id := range cp.Areas {
			if int(id) < len(g.byArea) {
				g.byArea[id] = append(g.byArea[id], i)
			}
		}
	}

	if err := g.groupAreas(); err != nil {
		return nil, err
	}
	if err := g.localDistances(opts.workers()); err != nil {
		return nil, err
	}
	if err := g.relax(); err != nil {
		return nil, err
	}
	return g, nil
}

// groupAreas labels areas joined through chokepoints with a common group.
// Vertex 0 stands for "no area" and is always alone.
func (g *Graph) groupAreas() error {
	ag := core.NewGraph(len(g.byArea))
	for _, cp := range g.cps {
		if err := ag.AddEdge(int(cp.Areas[0]), int(cp.Areas[1]), 1); err != nil {
			return fmt.Errorf("area graph: %w", err)
		}
	}
	groups, _, err := bfs.Components(ag)
	if err != nil {
		return err
	}
	g.groups = groups
	return nil
}

// sharesArea reports whether two chokepoints border a common area.
func sharesArea(a, b *choke.Chokepoint) bool {
	return a.Borders(b.Areas[0]) || a.Borders(b.Areas[1])
}

// localDistances runs the pair searches on a bounded worker pool and adds
// one edge per reachable pair.
func (g *Graph) localDistances(workers int) error {
	var jobs []pairJob
	for a := 0; a < g.n; a++ {
		for b := a + 1; b < g.n; b++ {
			if sharesArea(&g.cps[a], &g.cps[b]) {
				jobs = append(jobs, pairJob{a: a, b: b, slot: len(jobs)})
			}
		}
	}
	if len(jobs) == 0 {
		return nil
	}
	workers = min(workers, len(jobs))

	results := make([]pairResult, len(jobs))
	errs := make([]error, workers)
	queue := make(chan pairJob)
	passable := g.f.Walkable

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			s := gridgraph.NewSearcher(g.p.Grid())
			for job := range queue {
				if errs[w] != nil {
					continue
				}
				cost, ok, err := s.Search(g.cps[job.a].Top, g.cps[job.b].Top, passable)
				if err != nil {
					errs[w] = fmt.Errorf("chokepoints %d-%d: %w", job.a, job.b, err)
					continue
				}
				results[job.slot] = pairResult{weight: rescale(cost), ok: ok}
			}
		}(w)
	}
	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	for _, job := range jobs {
		if r := results[job.slot]; r.ok {
			if err := g.edges.AddEdge(job.a, job.b, r.weight); err != nil {
				return err
			}
		}
	}
	return nil
}

// rescale converts a search cost to altitude units, rounding half up.
func rescale(cost int64) int64 {
	return (cost*altitude.Scale + gridgraph.OrthogonalCost/2) / gridgraph.OrthogonalCost
}

// relax runs Dijkstra from every chokepoint and caches distances and paths.
func (g *Graph) relax() error {
	for src := 0; src < g.n; src++ {
		dist, prev, err := dijkstra.Dijkstra(g.edges, dijkstra.Source(src), dijkstra.WithReturnPath())
		if err != nil {
			return fmt.Errorf("relax from chokepoint %d: %w", src, err)
		}
		copy(g.dist[src*g.n:(src+1)*g.n], dist)
		for dst := 0; dst < g.n; dst++ {
			g.paths[src*g.n+dst] = dijkstra.PathTo(prev, src, dst)
		}
	}
	return nil
}
