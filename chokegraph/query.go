package chokegraph

import (
	"math"

	"github.com/katalvlaran/terra/altitude"
	"github.com/katalvlaran/terra/area"
	"github.com/katalvlaran/terra/choke"
	"github.com/katalvlaran/terra/core"
	"github.com/katalvlaran/terra/terrain"
)

// Count returns the number of chokepoints.
func (g *Graph) Count() int { return g.n }

// Edges returns the local-distance graph. It must not be modified.
func (g *Graph) Edges() *core.Graph { return g.edges }

// Local returns the direct edge weight between chokepoints i and j.
func (g *Graph) Local(i, j int) (int64, bool) {
	if !g.valid(i) || !g.valid(j) {
		return 0, false
	}
	return g.edges.Weight(i, j)
}

// Distance returns the relaxed distance between chokepoints i and j,
// or Unreachable.
func (g *Graph) Distance(i, j int) int64 {
	if !g.valid(i) || !g.valid(j) {
		return Unreachable
	}
	return g.dist[i*g.n+j]
}

// Reachable reports whether a route joins chokepoints i and j.
func (g *Graph) Reachable(i, j int) bool {
	return g.Distance(i, j) != Unreachable
}

// PathBetween returns the cached chokepoint path from i to j, both ends
// included, or nil when unreachable. The result is a copy.
func (g *Graph) PathBetween(i, j int) []int {
	if !g.valid(i) || !g.valid(j) {
		return nil
	}
	return append([]int(nil), g.paths[i*g.n+j]...)
}

// Bordering returns the chokepoints bordering area id.
func (g *Graph) Bordering(id area.ID) []int {
	if id <= 0 || int(id) >= len(g.byArea) {
		return nil
	}
	return append([]int(nil), g.byArea[id]...)
}

// Group returns the ground-connected group of area id, or -1 for id 0 and
// unknown ids. Areas in different groups have no route between them.
func (g *Graph) Group(id area.ID) int {
	if id <= 0 || int(id) >= len(g.groups) {
		return -1
	}
	return g.groups[id]
}

func (g *Graph) valid(i int) bool { return i >= 0 && i < g.n }

// Path returns the chokepoints to cross from a to b and the approximate
// ground distance in altitude units.
//
// Points in the same area give an empty, non-nil path and their direct
// distance. Points outside the map or on unwalkable cells, and points with
// no route between their areas, give (nil, 0).
func (g *Graph) Path(a, b terrain.Position) ([]int, uint32) {
	dims := g.f.Dims()
	if !dims.ValidPosition(a) || !dims.ValidPosition(b) {
		return nil, 0
	}
	wa, wb := a.ToWalk(), b.ToWalk()
	ida, idb := g.p.ID(wa), g.p.ID(wb)
	if ida == 0 || idb == 0 {
		return nil, 0
	}
	if ida == idb {
		return []int{}, uint32(Direct(wa, wb))
	}
	if g.groups[ida] != g.groups[idb] {
		return nil, 0
	}

	best, bestFrom, bestTo := int64(-1), -1, -1
	for _, i := range g.byArea[ida] {
		from := Direct(wa, g.cps[i].Pos(choke.Middle))
		for _, j := range g.byArea[idb] {
			d := g.dist[i*g.n+j]
			if d == Unreachable {
				continue
			}
			total := from + d + Direct(g.cps[j].Pos(choke.Middle), wb)
			if best < 0 || total < best {
				best, bestFrom, bestTo = total, i, j
			}
		}
	}
	if best < 0 {
		return nil, 0
	}
	return g.PathBetween(bestFrom, bestTo), uint32(min(best, math.MaxUint32))
}

// Direct is the straight-line distance between two walk cells in altitude
// units, rounded to nearest.
func Direct(a, b terrain.WalkPosition) int64 {
	return int64(math.Round(math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y)) * altitude.Scale))
}
