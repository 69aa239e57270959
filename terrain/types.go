package terrain

import "errors"

// Sentinel errors for map construction and loading.
var (
	// ErrEmptyMap indicates the map description has no rows or no columns.
	ErrEmptyMap = errors.New("terrain: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrUnknownKind indicates a resource kind other than mineral or geyser.
	ErrUnknownKind = errors.New("terrain: unknown resource kind")
	// ErrUnknownScale indicates a map scale other than tile or walk.
	ErrUnknownScale = errors.New("terrain: unknown map scale")
	// ErrWalkAlignment indicates walk-scale rows that do not cover whole tiles.
	ErrWalkAlignment = errors.New("terrain: walk-scale dimensions must be multiples of 4")
)

// Source is the frozen terrain snapshot consumed by the analysis.
// Implementations must return identical answers for the lifetime of a build.
type Source interface {
	// Width and Height are the map dimensions in tiles.
	Width() int
	Height() int
	// Walkable reports whether the walk cell w can be traversed by ground units.
	// Out-of-range positions are unwalkable.
	Walkable(w WalkPosition) bool
	// StaticResources lists the resource deposits present at the snapshot.
	StaticResources() []Resource
	// StartLocations lists strategic anchor tiles (player start positions).
	StartLocations() []TilePosition
}

// Kind distinguishes resource deposits.
type Kind uint8

const (
	// Mineral is a 2×1 tile mineral patch.
	Mineral Kind = iota
	// Geyser is a 4×2 tile gas geyser.
	Geyser
)

// Size returns the footprint of the deposit kind in tiles.
func (k Kind) Size() TilePosition {
	if k == Geyser {
		return TilePosition{4, 2}
	}
	return TilePosition{2, 1}
}

func (k Kind) String() string {
	switch k {
	case Mineral:
		return "mineral"
	case Geyser:
		return "geyser"
	default:
		return "unknown"
	}
}

// ParseKind maps "mineral"/"geyser" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "mineral", "minerals":
		return Mineral, nil
	case "geyser", "gas":
		return Geyser, nil
	}
	return 0, ErrUnknownKind
}

// Resource is a static deposit. Position is the top-left tile of its footprint.
type Resource struct {
	ID       int
	Kind     Kind
	Position TilePosition
	Amount   int
}

// Center returns the centre of the footprint in half-tile units, which keeps
// distance comparisons in integer arithmetic.
func (r Resource) Center() (x2, y2 int) {
	s := r.Kind.Size()
	return 2*r.Position.X + s.X, 2*r.Position.Y + s.Y
}
