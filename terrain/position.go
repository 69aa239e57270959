package terrain

import "fmt"

// Scale factors between the three coordinate systems.
const (
	WalkPerTile   = 4
	PixelsPerWalk = 8
	PixelsPerTile = WalkPerTile * PixelsPerWalk
)

// Position is a pixel coordinate.
type Position struct{ X, Y int }

// WalkPosition is a walk-cell coordinate, the finest analysis unit.
type WalkPosition struct{ X, Y int }

// TilePosition is a coarse tile coordinate.
type TilePosition struct{ X, Y int }

// ToWalk returns the walk cell containing p.
func (p Position) ToWalk() WalkPosition {
	return WalkPosition{floorDiv(p.X, PixelsPerWalk), floorDiv(p.Y, PixelsPerWalk)}
}

// ToTile returns the tile containing p.
func (p Position) ToTile() TilePosition {
	return TilePosition{floorDiv(p.X, PixelsPerTile), floorDiv(p.Y, PixelsPerTile)}
}

// ToPosition returns the pixel at the top-left corner of w.
func (w WalkPosition) ToPosition() Position {
	return Position{w.X * PixelsPerWalk, w.Y * PixelsPerWalk}
}

// ToTile returns the tile containing w.
func (w WalkPosition) ToTile() TilePosition {
	return TilePosition{floorDiv(w.X, WalkPerTile), floorDiv(w.Y, WalkPerTile)}
}

// Add returns w translated by d.
func (w WalkPosition) Add(d WalkPosition) WalkPosition {
	return WalkPosition{w.X + d.X, w.Y + d.Y}
}

// ToWalk returns the top-left walk cell of t.
func (t TilePosition) ToWalk() WalkPosition {
	return WalkPosition{t.X * WalkPerTile, t.Y * WalkPerTile}
}

// ToPosition returns the pixel at the top-left corner of t.
func (t TilePosition) ToPosition() Position {
	return Position{t.X * PixelsPerTile, t.Y * PixelsPerTile}
}

// Add returns t translated by d.
func (t TilePosition) Add(d TilePosition) TilePosition {
	return TilePosition{t.X + d.X, t.Y + d.Y}
}

func (p Position) String() string     { return fmt.Sprintf("(%d,%d)px", p.X, p.Y) }
func (w WalkPosition) String() string { return fmt.Sprintf("(%d,%d)w", w.X, w.Y) }
func (t TilePosition) String() string { return fmt.Sprintf("(%d,%d)t", t.X, t.Y) }

// floorDiv rounds toward negative infinity so that positions just outside
// the map stay outside after conversion.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Dims holds map dimensions in tiles and answers bounds checks at every scale.
type Dims struct {
	Width, Height int
}

// DimsOf returns the dimensions of src.
func DimsOf(src Source) Dims {
	return Dims{Width: src.Width(), Height: src.Height()}
}

// WalkWidth is the map width in walk cells.
func (d Dims) WalkWidth() int { return d.Width * WalkPerTile }

// WalkHeight is the map height in walk cells.
func (d Dims) WalkHeight() int { return d.Height * WalkPerTile }

// ValidTile reports whether t lies inside the map.
func (d Dims) ValidTile(t TilePosition) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < d.Width && t.Y < d.Height
}

// ValidWalk reports whether w lies inside the map.
func (d Dims) ValidWalk(w WalkPosition) bool {
	return w.X >= 0 && w.Y >= 0 && w.X < d.WalkWidth() && w.Y < d.WalkHeight()
}

// ValidPosition reports whether p lies inside the map.
func (d Dims) ValidPosition(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < d.Width*PixelsPerTile && p.Y < d.Height*PixelsPerTile
}
