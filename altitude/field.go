package altitude

import (
	"fmt"
	"math"

	"github.com/katalvlaran/terra/gridgraph"
	"github.com/katalvlaran/terra/terrain"
)

// holeEdgeMargin keeps patches touching the map edge region from being holes.
const holeEdgeMargin = 2

// Field is the immutable per-cell classification and altitude of a map.
type Field struct {
	dims        terrain.Dims
	grid        *gridgraph.Grid
	cells       []Altitude
	maxAltitude int32
}

// Compute classifies src and expands altitudes from its boundaries.
func Compute(src terrain.Source, opts Options) (*Field, error) {
	dims := terrain.DimsOf(src)
	grid, err := gridgraph.New(dims.WalkWidth(), dims.WalkHeight(), gridgraph.Conn4)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d tiles", ErrEmptyMap, dims.Width, dims.Height)
	}

	f := &Field{
		dims:  dims,
		grid:  grid,
		cells: make([]Altitude, grid.Size()),
	}
	pending := f.classify(src, opts)
	f.expand(pending)

	return f, nil
}

// classify runs pass 1 and returns the cells still awaiting an altitude.
func (f *Field) classify(src terrain.Source, opts Options) []bool {
	gg := f.grid
	walkable := make([]bool, gg.Size())
	pending := make([]bool, gg.Size())
	for i := range walkable {
		x, y := gg.Coordinate(i)
		if src.Walkable(terrain.WalkPosition{X: x, Y: y}) {
			walkable[i] = true
			pending[i] = true
			f.cells[i] = Altitude{Kind: Walkable}
		}
	}

	solid := func(i int) bool { return !walkable[i] }
	var nbuf [4]int
	for _, comp := range gg.ConnectedComponents(solid, gridgraph.NewMarks(gg.Size())) {
		if f.isHole(comp, opts) {
			for _, i := range comp {
				f.cells[i] = Altitude{Kind: Hole}
			}
			continue
		}
		for _, i := range comp {
			f.cells[i] = Altitude{Kind: Unwalkable}
			pending[i] = true
			for _, j := range gg.Neighbors(i, nbuf[:0]) {
				if walkable[j] {
					f.cells[i] = Altitude{Kind: Border}
					pending[i] = false
					break
				}
			}
		}
	}
	return pending
}

// isHole applies the size, extent and edge-distance thresholds.
func (f *Field) isHole(comp []int, opts Options) bool {
	if len(comp) >= opts.HoleMaxCells {
		return false
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := -1, -1
	for _, i := range comp {
		x, y := f.grid.Coordinate(i)
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	if maxX-minX+1 >= opts.HoleMaxExtent || maxY-minY+1 >= opts.HoleMaxExtent {
		return false
	}
	return minX >= holeEdgeMargin && minY >= holeEdgeMargin &&
		maxX < f.grid.Width-holeEdgeMargin && maxY < f.grid.Height-holeEdgeMargin
}

// farSquared stands for "no seed on this line" in the distance transform.
const farSquared = 1 << 40

// expand runs pass 2, writing into every pending cell the altitude of its
// nearest seed: int(0.5 + d·Scale) for Euclidean distance d. Seeds are the
// Border cells and the ring just outside the map, so the transform runs on
// the grid padded by one cell on each side.
func (f *Field) expand(pending []bool) {
	gg := f.grid
	w, h := gg.Width+2, gg.Height+2
	sq := make([]int64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !gg.InBounds(x-1, y-1) || f.cells[gg.Index(x-1, y-1)].Kind == Border {
				continue
			}
			sq[y*w+x] = farSquared
		}
	}

	t := newTransform(max(w, h))
	col := make([]int64, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = sq[y*w+x]
		}
		t.run(col)
		for y := 0; y < h; y++ {
			sq[y*w+x] = col[y]
		}
	}
	for y := 0; y < h; y++ {
		t.run(sq[y*w : (y+1)*w])
	}

	for i, p := range pending {
		if !p {
			continue
		}
		x, y := gg.Coordinate(i)
		v := int32(0.5 + math.Sqrt(float64(sq[(y+1)*w+x+1]))*Scale)
		f.cells[i].Value = v
		f.maxAltitude = max(f.maxAltitude, v)
	}
}

// transform is the one-dimensional squared distance transform of
// Felzenszwalb and Huttenlocher, reusing its buffers across lines.
type transform struct {
	out []int64
	v   []int
	z   []float64
}

func newTransform(n int) *transform {
	return &transform{
		out: make([]int64, n),
		v:   make([]int, n),
		z:   make([]float64, n+1),
	}
}

// run replaces f[q] with min over p of (q-p)² + f[p].
func (t *transform) run(f []int64) {
	n := len(f)
	if n == 0 {
		return
	}
	meet := func(q, p int) float64 {
		return (float64(f[q]+int64(q*q)) - float64(f[p]+int64(p*p))) / float64(2*q-2*p)
	}
	k := 0
	t.v[0] = 0
	t.z[0], t.z[1] = math.Inf(-1), math.Inf(1)
	for q := 1; q < n; q++ {
		s := meet(q, t.v[k])
		for s <= t.z[k] {
			k--
			s = meet(q, t.v[k])
		}
		k++
		t.v[k] = q
		t.z[k], t.z[k+1] = s, math.Inf(1)
	}
	k = 0
	for q := 0; q < n; q++ {
		for t.z[k+1] < float64(q) {
			k++
		}
		d := int64(q - t.v[k])
		t.out[q] = d*d + f[t.v[k]]
	}
	copy(f, t.out[:n])
}

// Dims returns the map dimensions.
func (f *Field) Dims() terrain.Dims { return f.dims }

// Grid returns the walk-cell grid (Conn4) the field is indexed on.
func (f *Field) Grid() *gridgraph.Grid { return f.grid }

// MaxAltitude returns the highest altitude written.
func (f *Field) MaxAltitude() int32 { return f.maxAltitude }

// At returns the altitude of w, or Invalid outside the map.
func (f *Field) At(w terrain.WalkPosition) Altitude {
	if !f.grid.InBounds(w.X, w.Y) {
		return Altitude{Kind: Invalid}
	}
	return f.cells[f.grid.Index(w.X, w.Y)]
}

// AtIndex returns the altitude of cell i (row-major walk index).
func (f *Field) AtIndex(i int) Altitude {
	if i < 0 || i >= len(f.cells) {
		return Altitude{Kind: Invalid}
	}
	return f.cells[i]
}

// Walkable reports whether cell i is walkable.
func (f *Field) Walkable(i int) bool {
	return f.AtIndex(i).Kind == Walkable
}

// Value returns the altitude magnitude of cell i (0 for non-graded kinds).
func (f *Field) Value(i int) int32 {
	return f.AtIndex(i).Value
}
