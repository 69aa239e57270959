package area

import (
	"sort"

	"github.com/katalvlaran/terra/altitude"
	"github.com/katalvlaran/terra/gridgraph"
	"github.com/katalvlaran/terra/terrain"
)

// Partition is the immutable result of Compute.
type Partition struct {
	grid     *gridgraph.Grid
	ids      []ID
	frontier []Frontier
	areas    []Info // areas[id-1]
}

// partitioner holds the mutable state of one Compute call.
type partitioner struct {
	f        *altitude.Field
	gg       *gridgraph.Grid
	opts     Options
	anchors  []terrain.TilePosition
	ids      []ID
	counts   []int // counts[id]; counts[0] unused
	frontier []Frontier
	turns    map[[2]ID]int
	marks    *gridgraph.Marks
}

// Compute partitions the walkable cells of f. anchors are strategic start
// tiles whose surroundings must not be split between areas.
//
// Time: O(C log C) for the sort plus O(C) per merge, C = walkable cells.
func Compute(f *altitude.Field, anchors []terrain.TilePosition, opts Options) (*Partition, error) {
	if f == nil {
		return nil, ErrNilField
	}
	gg := f.Grid()
	p := &partitioner{
		f:       f,
		gg:      gg,
		opts:    opts,
		anchors: make([]terrain.TilePosition, len(anchors)),
		ids:     make([]ID, gg.Size()),
		counts:  []int{0},
		turns:   make(map[[2]ID]int),
		marks:   gridgraph.NewMarks(gg.Size()),
	}
	for i, a := range anchors {
		p.anchors[i] = a.Add(anchorOffset)
	}

	order := descendingOrder(f)
	for _, i := range order {
		p.place(i)
	}

	return p.finish(order), nil
}

// descendingOrder lists walkable cells by descending altitude, row-major on ties.
func descendingOrder(f *altitude.Field) []int {
	gg := f.Grid()
	order := make([]int, 0, gg.Size())
	for i := 0; i < gg.Size(); i++ {
		if f.Walkable(i) {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(x, y int) bool {
		vx, vy := f.Value(order[x]), f.Value(order[y])
		if vx != vy {
			return vx > vy
		}
		return order[x] < order[y]
	})
	return order
}

// place labels cell i from the areas of its already labelled neighbours.
func (p *partitioner) place(i int) {
	var nbuf [4]int
	a, b, n := distinctAreas(p.ids, p.gg.Neighbors(i, nbuf[:0]))
	switch n {
	case 0:
		p.counts = append(p.counts, 1)
		p.ids[i] = ID(len(p.counts) - 1)
	case 1:
		p.assign(i, a)
	default:
		p.join(i, a, b)
	}
}

// distinctAreas returns the first non-zero id among nbrs, the lowest of the
// other distinct non-zero ids, and the number of distinct ids seen. A cell at
// a junction of three or four areas thus joins a deterministic pair.
func distinctAreas(ids []ID, nbrs []int) (a, b ID, n int) {
	var seen [4]ID
	for _, j := range nbrs {
		id := ids[j]
		if id == 0 {
			continue
		}
		dup := false
		for _, s := range seen[:n] {
			if s == id {
				dup = true
				break
			}
		}
		if !dup {
			seen[n] = id
			n++
		}
	}
	b = seen[1]
	for k := 2; k < n; k++ {
		b = min(b, seen[k])
	}
	return seen[0], b, n
}

func (p *partitioner) assign(i int, id ID) {
	p.ids[i] = id
	p.counts[id]++
}

// join handles a cell touching areas a and b.
func (p *partitioner) join(i int, a, b ID) {
	small, big := a, b
	if p.counts[small] > p.counts[big] || (p.counts[small] == p.counts[big] && small < big) {
		small, big = big, small
	}
	if p.counts[small] < p.opts.MergeSize || p.nearAnchor(i) {
		p.merge(small, big, i)
		p.assign(i, big)
		return
	}

	pair := pairOf(a, b)
	owner := pair[p.turns[pair]%2]
	p.turns[pair]++
	p.assign(i, owner)
	p.frontier = append(p.frontier, Frontier{Cell: i, Areas: pair})
}

// merge relabels every cell of small as big, starting from a neighbour of
// cell, and rewrites the frontier.
func (p *partitioner) merge(small, big ID, cell int) {
	inSmall := func(j int) bool { return p.ids[j] == small }
	var nbuf [4]int
	for _, j := range p.gg.Neighbors(cell, nbuf[:0]) {
		if p.ids[j] != small {
			continue
		}
		for _, k := range p.gg.Flood(j, inSmall, p.marks) {
			p.ids[k] = big
		}
		break
	}
	p.counts[big] += p.counts[small]
	p.counts[small] = 0

	kept := p.frontier[:0]
	for _, fr := range p.frontier {
		a, b := fr.Areas[0], fr.Areas[1]
		if a == small {
			a = big
		}
		if b == small {
			b = big
		}
		if a == b {
			continue
		}
		fr.Areas = pairOf(a, b)
		kept = append(kept, fr)
	}
	p.frontier = kept
}

// nearAnchor reports whether cell i lies within AnchorRadius tiles of an anchor centre.
func (p *partitioner) nearAnchor(i int) bool {
	x, y := p.gg.Coordinate(i)
	t := terrain.WalkPosition{X: x, Y: y}.ToTile()
	r2 := p.opts.AnchorRadius * p.opts.AnchorRadius
	for _, a := range p.anchors {
		dx, dy := t.X-a.X, t.Y-a.Y
		if dx*dx+dy*dy <= r2 {
			return true
		}
	}
	return false
}

// finish renumbers surviving ids densely and builds the per-area summaries.
func (p *partitioner) finish(order []int) *Partition {
	remap := make([]ID, len(p.counts))
	var n ID
	for id := 1; id < len(p.counts); id++ {
		if p.counts[id] > 0 {
			n++
			remap[id] = n
		}
	}
	for i, id := range p.ids {
		p.ids[i] = remap[id]
	}
	for k := range p.frontier {
		fr := &p.frontier[k]
		fr.Areas = pairOf(remap[fr.Areas[0]], remap[fr.Areas[1]])
	}

	areas := make([]Info, n)
	for k := range areas {
		areas[k] = Info{ID: ID(k + 1), Top: -1}
	}
	for _, i := range order {
		id := p.ids[i]
		if id == 0 {
			continue
		}
		x, y := p.gg.Coordinate(i)
		info := &areas[id-1]
		if info.Top < 0 {
			info.Top = i
			info.MaxAltitude = p.f.Value(i)
			info.Min = terrain.WalkPosition{X: x, Y: y}
			info.Max = info.Min
		}
		info.Cells++
		info.Min.X, info.Min.Y = min(info.Min.X, x), min(info.Min.Y, y)
		info.Max.X, info.Max.Y = max(info.Max.X, x), max(info.Max.Y, y)
	}

	return &Partition{
		grid:     p.gg,
		ids:      p.ids,
		frontier: p.frontier,
		areas:    areas,
	}
}
