package area

import (
	"errors"

	"github.com/katalvlaran/terra/terrain"
)

// ErrNilField indicates Compute was called without an altitude field.
var ErrNilField = errors.New("area: altitude field is nil")

// ID identifies an area. Zero means "no area".
type ID int32

// Frontier is a cell left on the boundary between two unmerged areas.
// Areas is normalised so that Areas[0] < Areas[1].
type Frontier struct {
	Cell  int
	Areas [2]ID
}

// Info summarises one area.
type Info struct {
	ID    ID
	Cells int
	// Top is the highest cell of the area (first in processing order).
	Top         int
	MaxAltitude int32
	// Min and Max bound the area, inclusive.
	Min, Max terrain.WalkPosition
}

// Options configures the partitioner.
type Options struct {
	// MergeSize is the cell count below which the smaller of two touching
	// areas is absorbed by the larger.
	MergeSize int
	// AnchorRadius, in tiles, around each anchor centre where touching areas
	// are always merged.
	AnchorRadius int
}

// DefaultOptions returns MergeSize=400, AnchorRadius=3.
func DefaultOptions() Options {
	return Options{
		MergeSize:    400,
		AnchorRadius: 3,
	}
}

// anchorOffset moves a start tile to the centre of the 4×3 hall placed on it.
var anchorOffset = terrain.TilePosition{X: 2, Y: 1}

func pairOf(a, b ID) [2]ID {
	if a > b {
		a, b = b, a
	}
	return [2]ID{a, b}
}
