package terramap

import (
	"github.com/katalvlaran/terra/altitude"
	"github.com/katalvlaran/terra/area"
	"github.com/katalvlaran/terra/base"
	"github.com/katalvlaran/terra/choke"
	"github.com/katalvlaran/terra/chokegraph"
	"github.com/katalvlaran/terra/terrain"
)

// Dims returns the map dimensions.
func (m *Map) Dims() terrain.Dims { return m.dims }

// Altitude returns the classification and altitude of w; Invalid outside the map.
func (m *Map) Altitude(w terrain.WalkPosition) altitude.Altitude { return m.field.At(w) }

// MaxAltitude returns the highest altitude on the map.
func (m *Map) MaxAltitude() int32 { return m.field.MaxAltitude() }

// AreaID returns the area of w, or 0.
func (m *Map) AreaID(w terrain.WalkPosition) area.ID { return m.part.ID(w) }

// Areas returns the per-area summaries in id order.
func (m *Map) Areas() []area.Info { return m.part.Areas() }

// Bases returns the proposed bases in selection order.
func (m *Map) Bases() []base.Base {
	out := make([]base.Base, len(m.bases))
	for i, b := range m.bases {
		b.Resources = append([]int(nil), b.Resources...)
		out[i] = b
	}
	return out
}

// Chokepoints returns the chokepoints in index order. The cell slices are
// shared and must not be modified.
func (m *Map) Chokepoints() []choke.Chokepoint {
	return append([]choke.Chokepoint(nil), m.cps...)
}

// Chokepoint returns the chokepoint ref.
func (m *Map) Chokepoint(ref ChokepointRef) (choke.Chokepoint, bool) {
	if ref < 0 || int(ref) >= len(m.cps) {
		return choke.Chokepoint{}, false
	}
	return m.cps[ref], true
}

// ChokepointGraph returns the relaxed chokepoint graph.
func (m *Map) ChokepointGraph() *chokegraph.Graph { return m.graph }

// Path returns the chokepoints crossed from a to b and the approximate
// ground distance. Same-area points give an empty path and their direct
// distance; out-of-map or unconnected points give (nil, 0).
func (m *Map) Path(a, b terrain.Position) ([]ChokepointRef, uint32) {
	idx, dist := m.graph.Path(a, b)
	if idx == nil {
		return nil, 0
	}
	refs := make([]ChokepointRef, len(idx))
	for i, v := range idx {
		refs[i] = ChokepointRef(v)
	}
	return refs, dist
}

// Connected reports whether ground units can travel between a and b.
func (m *Map) Connected(a, b terrain.WalkPosition) bool {
	ga, gb := m.graph.Group(m.part.ID(a)), m.graph.Group(m.part.ID(b))
	return ga >= 0 && ga == gb
}

// NearestArea returns the area of w, or when w has none, the area of the
// closest cell that has one, searching square rings of growing radius in
// row-major order. Returns 0 outside the map or when no area exists.
func (m *Map) NearestArea(w terrain.WalkPosition) area.ID {
	if !m.dims.ValidWalk(w) {
		return 0
	}
	if id := m.part.ID(w); id != 0 {
		return id
	}
	maxR := max(m.dims.WalkWidth(), m.dims.WalkHeight())
	for r := 1; r < maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			step := 2 * r
			if dy == -r || dy == r {
				step = 1
			}
			for dx := -r; dx <= r; dx += step {
				if id := m.part.ID(terrain.WalkPosition{X: w.X + dx, Y: w.Y + dy}); id != 0 {
					return id
				}
			}
		}
	}
	return 0
}
