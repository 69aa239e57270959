package area

import (
	"github.com/katalvlaran/terra/gridgraph"
	"github.com/katalvlaran/terra/terrain"
)

// Grid returns the walk-cell grid the partition is indexed on.
func (p *Partition) Grid() *gridgraph.Grid { return p.grid }

// ID returns the area of w, or 0 if w is unwalkable or out of range.
func (p *Partition) ID(w terrain.WalkPosition) ID {
	if !p.grid.InBounds(w.X, w.Y) {
		return 0
	}
	return p.ids[p.grid.Index(w.X, w.Y)]
}

// IDAt returns the area of cell i (row-major walk index).
func (p *Partition) IDAt(i int) ID {
	if i < 0 || i >= len(p.ids) {
		return 0
	}
	return p.ids[i]
}

// Count returns the number of areas.
func (p *Partition) Count() int { return len(p.areas) }

// Info returns the summary of area id.
func (p *Partition) Info(id ID) (Info, bool) {
	if id < 1 || int(id) > len(p.areas) {
		return Info{}, false
	}
	return p.areas[id-1], true
}

// Areas returns the summaries of all areas in id order.
func (p *Partition) Areas() []Info {
	out := make([]Info, len(p.areas))
	copy(out, p.areas)
	return out
}

// Frontier returns the surviving frontier cells in arrival order.
func (p *Partition) Frontier() []Frontier {
	out := make([]Frontier, len(p.frontier))
	copy(out, p.frontier)
	return out
}
