package altitude

import (
	"errors"
	"fmt"
)

// ErrEmptyMap indicates a source with no walk cells.
var ErrEmptyMap = errors.New("altitude: map has no cells")

// Scale is the altitude of one walk cell of distance.
const Scale = 8

// Kind tags a cell's classification.
type Kind uint8

const (
	// Invalid is reported for positions outside the map.
	Invalid Kind = iota
	// Border is unwalkable terrain touching a walkable cell; altitude seed.
	Border
	// Walkable terrain, Value = distance to the nearest boundary.
	Walkable
	// Unwalkable interior terrain, Value = distance to the nearest boundary.
	Unwalkable
	// Hole is a small enclosed unwalkable patch.
	Hole
)

func (k Kind) String() string {
	switch k {
	case Border:
		return "border"
	case Walkable:
		return "walkable"
	case Unwalkable:
		return "unwalkable"
	case Hole:
		return "hole"
	default:
		return "invalid"
	}
}

// Altitude is a tagged altitude value. Value is meaningful for Walkable and
// Unwalkable and zero otherwise.
type Altitude struct {
	Kind  Kind
	Value int32
}

// Walkable reports whether the cell can be walked on.
func (a Altitude) Walkable() bool { return a.Kind == Walkable }

func (a Altitude) String() string {
	switch a.Kind {
	case Walkable, Unwalkable:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Value)
	default:
		return a.Kind.String()
	}
}

// Options holds hole-detection thresholds in walk cells.
type Options struct {
	HoleMaxCells  int
	HoleMaxExtent int
}

// DefaultOptions returns HoleMaxCells=200, HoleMaxExtent=20.
func DefaultOptions() Options {
	return Options{
		HoleMaxCells:  200,
		HoleMaxExtent: 20,
	}
}
