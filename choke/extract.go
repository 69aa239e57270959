package choke

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/terra/altitude"
	"github.com/katalvlaran/terra/area"
	"github.com/katalvlaran/terra/gridgraph"
	"github.com/katalvlaran/terra/terrain"
)

// Extract builds the chokepoints of partition p over field f, indexed from 0
// in ascending area-pair order.
//
// Returns ErrUnresolvedEnd if a chokepoint's flood reaches no cell of one of
// its two areas.
func Extract(f *altitude.Field, p *area.Partition, opts Options) ([]Chokepoint, error) {
	if f == nil || p == nil {
		return nil, ErrNilInput
	}
	gg := p.Grid()

	groups := make(map[[2]area.ID][]int)
	var pairs [][2]area.ID
	for _, fr := range p.Frontier() {
		if _, ok := groups[fr.Areas]; !ok {
			pairs = append(pairs, fr.Areas)
		}
		groups[fr.Areas] = append(groups[fr.Areas], fr.Cell)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	fl := &flooder{f: f, p: p, gg: gg, marks: gridgraph.NewMarks(gg.Size()), support: opts.SupportAltitude}
	var out []Chokepoint
	for _, pair := range pairs {
		for _, cells := range clusterCells(gg, groups[pair], opts.ClusterDistance) {
			cp := Chokepoint{
				Index:    len(out),
				Areas:    pair,
				Frontier: cells,
				Top:      highest(f, cells),
			}
			if err := fl.resolve(&cp); err != nil {
				return nil, err
			}
			cp.nodes = [3]terrain.WalkPosition{pos(gg, cp.Ends[0]), pos(gg, cp.Top), pos(gg, cp.Ends[1])}
			cp.center = pos(gg, cells[len(cells)/2])
			out = append(out, cp)
		}
	}
	return out, nil
}

func pos(gg *gridgraph.Grid, i int) terrain.WalkPosition {
	x, y := gg.Coordinate(i)
	return terrain.WalkPosition{X: x, Y: y}
}

// chain is a double-ended cell sequence: front holds the prepended cells in
// reverse order.
type chain struct {
	front, back []int
}

func (c *chain) first() int {
	if len(c.front) > 0 {
		return c.front[len(c.front)-1]
	}
	return c.back[0]
}

func (c *chain) last() int {
	if len(c.back) > 0 {
		return c.back[len(c.back)-1]
	}
	return c.front[0]
}

func (c *chain) cells() []int {
	out := make([]int, 0, len(c.front)+len(c.back))
	for i := len(c.front) - 1; i >= 0; i-- {
		out = append(out, c.front[i])
	}
	return append(out, c.back...)
}

// clusterCells chains cells by nearest end. Ties go to the earlier cluster,
// and within a cluster to the back.
func clusterCells(gg *gridgraph.Grid, cells []int, maxDist int) [][]int {
	var chains []*chain
	for _, c := range cells {
		var best *chain
		bestDist, atFront := maxDist, false
		for _, ch := range chains {
			if d := gg.Chebyshev(c, ch.last()); d < bestDist {
				best, bestDist, atFront = ch, d, false
			}
			if d := gg.Chebyshev(c, ch.first()); d < bestDist {
				best, bestDist, atFront = ch, d, true
			}
		}
		switch {
		case best == nil:
			chains = append(chains, &chain{back: []int{c}})
		case atFront:
			best.front = append(best.front, c)
		default:
			best.back = append(best.back, c)
		}
	}

	out := make([][]int, len(chains))
	for i, ch := range chains {
		out[i] = ch.cells()
	}
	return out
}

// highest returns the first cell of maximal altitude.
func highest(f *altitude.Field, cells []int) int {
	top := cells[0]
	for _, c := range cells[1:] {
		if f.Value(c) > f.Value(top) {
			top = c
		}
	}
	return top
}

// flooder resolves end nodes, reusing one visited set across chokepoints.
type flooder struct {
	f       *altitude.Field
	p       *area.Partition
	gg      *gridgraph.Grid
	marks   *gridgraph.Marks
	support int32
	queue   []int
}

// resolve runs the breadth-first flood from cp.Frontier over the cells of
// its two areas and fills ChokeArea and Ends.
func (fl *flooder) resolve(cp *Chokepoint) error {
	gen := fl.marks.Next()
	threshold := fl.f.Value(cp.Top) + fl.support

	side := func(i int) int {
		switch fl.p.IDAt(i) {
		case cp.Areas[0]:
			return 0
		case cp.Areas[1]:
			return 1
		}
		return -1
	}

	var (
		found   [2]bool
		deepest = [2]int{-1, -1}
		visited []int
	)
	note := func(i, s int) {
		visited = append(visited, i)
		if deepest[s] < 0 || fl.f.Value(i) > fl.f.Value(deepest[s]) {
			deepest[s] = i
		}
	}

	fl.queue = fl.queue[:0]
	for _, c := range cp.Frontier {
		s := side(c)
		if s < 0 || !fl.marks.Visit(c, gen) {
			continue
		}
		note(c, s)
		fl.queue = append(fl.queue, c)
	}

	var nbuf [4]int
	for head := 0; head < len(fl.queue) && !(found[0] && found[1]); head++ {
		u := fl.queue[head]
		for _, v := range fl.gg.Neighbors(u, nbuf[:0]) {
			s := side(v)
			if s < 0 || !fl.f.Walkable(v) || !fl.marks.Visit(v, gen) {
				continue
			}
			note(v, s)
			if fl.f.Value(v) > threshold {
				if !found[s] {
					found[s] = true
					cp.Ends[s] = v
				}
				continue
			}
			fl.queue = append(fl.queue, v)
		}
	}

	for s := 0; s < 2; s++ {
		if found[s] {
			continue
		}
		if deepest[s] < 0 {
			x, y := fl.gg.Coordinate(cp.Top)
			return fmt.Errorf("%w: chokepoint %d (areas %d/%d, top (%d,%d)) has no cell in area %d",
				ErrUnresolvedEnd, cp.Index, cp.Areas[0], cp.Areas[1], x, y, cp.Areas[s])
		}
		cp.Ends[s] = deepest[s]
	}
	cp.ChokeArea = visited
	return nil
}
