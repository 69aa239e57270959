package gridgraph

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New constructs a width×height Grid with the given connectivity.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(1).
func New(width, height int, conn Connectivity) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	offs := offsets4
	if conn == Conn8 {
		offs = offsets8
	}

	return &Grid{
		Width:           width,
		Height:          height,
		Conn:            conn,
		neighborOffsets: offs,
	}, nil
}

// Size returns the number of cells, W×H.
func (gg *Grid) Size() int {
	return gg.Width * gg.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// The slice must not be modified.
func (gg *Grid) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *Grid) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *Grid) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Neighbors appends the in-bounds neighbors of idx to buf and returns it.
// Passing buf[:0] avoids allocation in hot loops.
func (gg *Grid) Neighbors(idx int, buf []int) []int {
	x, y := gg.Coordinate(idx)
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if gg.InBounds(nx, ny) {
			buf = append(buf, gg.Index(nx, ny))
		}
	}
	return buf
}

// Chebyshev returns the king-move distance between two cells.
func (gg *Grid) Chebyshev(a, b int) int {
	ax, ay := gg.Coordinate(a)
	bx, by := gg.Coordinate(b)
	return max(abs(ax-bx), abs(ay-by))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
