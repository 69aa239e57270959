// Package gridgraph defines core types, options, and sentinel errors
// for grid traversal.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrIndexRange indicates a cell index outside the grid.
	ErrIndexRange = errors.New("gridgraph: cell index out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Move costs for 8-directional search. Diagonal is 10000·√2 rounded.
const (
	OrthogonalCost int64 = 10000
	DiagonalCost   int64 = 14142
)

// Grid is an immutable W×H lattice of cells addressed by row-major index.
// It holds no per-cell data; callers keep their own slices of length Size().
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	neighborOffsets [][2]int
}
