package base

import (
	"sort"

	"github.com/katalvlaran/terra/terrain"
)

// finder holds the tile grids of one Find call.
type finder struct {
	dims     terrain.Dims
	opts     Options
	walkable []bool
	blocked  []bool
	score    []int
}

// Find returns the selected bases in selection order. Deposits outside the
// map, minerals below MinMinerals and empty geysers are ignored.
func Find(src terrain.Source, opts Options) []Base {
	fd := newFinder(src, opts)
	deposits := fd.usable(src.StaticResources())
	for _, r := range deposits {
		fd.block(r)
		fd.contribute(r, 1)
	}
	return fd.selectBases(deposits, fd.candidates())
}

func newFinder(src terrain.Source, opts Options) *finder {
	dims := terrain.DimsOf(src)
	n := dims.Width * dims.Height
	fd := &finder{
		dims:     dims,
		opts:     opts,
		walkable: make([]bool, n),
		blocked:  make([]bool, n),
		score:    make([]int, n),
	}
	for ty := 0; ty < dims.Height; ty++ {
		for tx := 0; tx < dims.Width; tx++ {
			fd.walkable[ty*dims.Width+tx] = tileWalkable(src, terrain.TilePosition{X: tx, Y: ty})
		}
	}
	return fd
}

// tileWalkable reports whether any walk cell of t is walkable.
func tileWalkable(src terrain.Source, t terrain.TilePosition) bool {
	w := t.ToWalk()
	for dy := 0; dy < terrain.WalkPerTile; dy++ {
		for dx := 0; dx < terrain.WalkPerTile; dx++ {
			if src.Walkable(terrain.WalkPosition{X: w.X + dx, Y: w.Y + dy}) {
				return true
			}
		}
	}
	return false
}

// Usable filters deposits the way Find does and reports how many were
// dropped for lying outside the map.
func Usable(src terrain.Source, opts Options) (kept []terrain.Resource, outside int) {
	fd := &finder{dims: terrain.DimsOf(src), opts: opts}
	all := src.StaticResources()
	kept = fd.usable(all)
	for _, r := range all {
		if !fd.inside(r) {
			outside++
		}
	}
	return kept, outside
}

func (fd *finder) usable(all []terrain.Resource) []terrain.Resource {
	var out []terrain.Resource
	for _, r := range all {
		if !fd.inside(r) {
			continue
		}
		switch r.Kind {
		case terrain.Mineral:
			if r.Amount < fd.opts.MinMinerals {
				continue
			}
		case terrain.Geyser:
			if r.Amount <= 0 {
				continue
			}
		default:
			continue
		}
		out = append(out, r)
	}
	return out
}

func (fd *finder) inside(r terrain.Resource) bool {
	s := r.Kind.Size()
	return fd.dims.ValidTile(r.Position) &&
		fd.dims.ValidTile(r.Position.Add(terrain.TilePosition{X: s.X - 1, Y: s.Y - 1}))
}

func (fd *finder) index(x, y int) int { return y*fd.dims.Width + x }

// blockedRect returns the inclusive range of hall top-left tiles that would
// leave fewer than three tiles between the hall and r.
func blockedRect(r terrain.Resource) (x0, y0, x1, y1 int) {
	s := r.Kind.Size()
	return r.Position.X - HallSize.X - 2, r.Position.Y - HallSize.Y - 2,
		r.Position.X + s.X + 2, r.Position.Y + s.Y + 2
}

func (fd *finder) block(r terrain.Resource) {
	x0, y0, x1, y1 := blockedRect(r)
	for y := max(y0, 0); y <= min(y1, fd.dims.Height-1); y++ {
		for x := max(x0, 0); x <= min(x1, fd.dims.Width-1); x++ {
			fd.blocked[fd.index(x, y)] = true
		}
	}
}

// contribute adds (sign=1) or withdraws (sign=-1) the lane scores of r.
func (fd *finder) contribute(r terrain.Resource, sign int) {
	x0, y0, x1, y1 := blockedRect(r)
	for y := y0; y <= y1; y++ {
		fd.lane(x0-1, y, -1, 0, sign)
		fd.lane(x1+1, y, 1, 0, sign)
	}
	for x := x0; x <= x1; x++ {
		fd.lane(x, y0-1, 0, -1, sign)
		fd.lane(x, y1+1, 0, 1, sign)
	}
}

func (fd *finder) lane(x, y, dx, dy, sign int) {
	for _, v := range laneScores {
		if !fd.dims.ValidTile(terrain.TilePosition{X: x, Y: y}) {
			return
		}
		i := fd.index(x, y)
		if !fd.walkable[i] {
			return
		}
		fd.score[i] += sign * v
		x, y = x+dx, y+dy
	}
}

// hallFits reports whether the hall footprint at t is inside the map and walkable.
func (fd *finder) hallFits(x, y int) bool {
	for dy := 0; dy < HallSize.Y; dy++ {
		for dx := 0; dx < HallSize.X; dx++ {
			if !fd.dims.ValidTile(terrain.TilePosition{X: x + dx, Y: y + dy}) || !fd.walkable[fd.index(x+dx, y+dy)] {
				return false
			}
		}
	}
	return true
}

// candidates lists qualifying tiles by descending score, index on ties.
func (fd *finder) candidates() []int {
	var out []int
	for i, s := range fd.score {
		if s <= fd.opts.ScoreThreshold || fd.blocked[i] {
			continue
		}
		if fd.hallFits(i%fd.dims.Width, i/fd.dims.Width) {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return fd.score[out[a]] > fd.score[out[b]] })
	return out
}

// selectBases greedily materialises bases from cands, re-reading the
// current score of every remaining candidate on each round.
func (fd *finder) selectBases(deposits []terrain.Resource, cands []int) []Base {
	claimed := make([]bool, len(deposits))
	r2 := 4 * fd.opts.ClaimRadius * fd.opts.ClaimRadius
	var bases []Base

	for len(cands) > 0 {
		best := -1
		for k, i := range cands {
			if best < 0 || fd.score[i] > fd.score[cands[best]] {
				best = k
			}
		}
		i := cands[best]
		if fd.score[i] <= fd.opts.ScoreThreshold {
			break
		}
		cands = append(cands[:best], cands[best+1:]...)

		loc := terrain.TilePosition{X: i % fd.dims.Width, Y: i / fd.dims.Width}
		hx, hy := 2*loc.X+HallSize.X, 2*loc.Y+HallSize.Y
		b := Base{Location: loc, Score: fd.score[i]}
		for k, r := range deposits {
			if claimed[k] {
				continue
			}
			rx, ry := r.Center()
			if (rx-hx)*(rx-hx)+(ry-hy)*(ry-hy) > r2 {
				continue
			}
			claimed[k] = true
			b.Resources = append(b.Resources, r.ID)
			fd.contribute(r, -1)
		}
		if len(b.Resources) == 0 {
			continue
		}
		sort.Ints(b.Resources)
		bases = append(bases, b)
	}
	return bases
}
