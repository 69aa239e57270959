package terrain

// Grid is an in-memory Source backed by a row-major walkability slice.
// It is mutable while being assembled; once handed to an analysis it
// must not change.
type Grid struct {
	dims      Dims
	walkable  []bool
	resources []Resource
	starts    []TilePosition
}

// NewGrid returns an all-unwalkable grid of width×height tiles.
func NewGrid(width, height int) *Grid {
	d := Dims{Width: width, Height: height}
	return &Grid{
		dims:     d,
		walkable: make([]bool, d.WalkWidth()*d.WalkHeight()),
	}
}

// NewGridFromTiles builds a grid where every character of rows describes a
// whole tile; '.' is walkable.
func NewGridFromTiles(rows []string) (*Grid, error) {
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '.' {
				g.SetTileWalkable(TilePosition{x, y}, true)
			}
		}
	}
	return g, nil
}

// NewGridFromWalk builds a grid where every character of rows describes one
// walk cell. Dimensions must be multiples of WalkPerTile.
func NewGridFromWalk(rows []string) (*Grid, error) {
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	if len(rows)%WalkPerTile != 0 || len(rows[0])%WalkPerTile != 0 {
		return nil, ErrWalkAlignment
	}
	g := NewGrid(len(rows[0])/WalkPerTile, len(rows)/WalkPerTile)
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '.' {
				g.SetWalkable(WalkPosition{x, y}, true)
			}
		}
	}
	return g, nil
}

func checkRows(rows []string) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmptyMap
	}
	for _, r := range rows {
		if len(r) != len(rows[0]) {
			return ErrNonRectangular
		}
	}
	return nil
}

// Width implements Source.
func (g *Grid) Width() int { return g.dims.Width }

// Height implements Source.
func (g *Grid) Height() int { return g.dims.Height }

// Walkable implements Source.
func (g *Grid) Walkable(w WalkPosition) bool {
	if !g.dims.ValidWalk(w) {
		return false
	}
	return g.walkable[w.Y*g.dims.WalkWidth()+w.X]
}

// StaticResources implements Source. The returned slice is a copy.
func (g *Grid) StaticResources() []Resource {
	out := make([]Resource, len(g.resources))
	copy(out, g.resources)
	return out
}

// StartLocations implements Source. The returned slice is a copy.
func (g *Grid) StartLocations() []TilePosition {
	out := make([]TilePosition, len(g.starts))
	copy(out, g.starts)
	return out
}

// SetWalkable sets one walk cell; out-of-range positions are ignored.
func (g *Grid) SetWalkable(w WalkPosition, walkable bool) {
	if !g.dims.ValidWalk(w) {
		return
	}
	g.walkable[w.Y*g.dims.WalkWidth()+w.X] = walkable
}

// SetTileWalkable sets all 16 walk cells of tile t.
func (g *Grid) SetTileWalkable(t TilePosition, walkable bool) {
	base := t.ToWalk()
	for dy := 0; dy < WalkPerTile; dy++ {
		for dx := 0; dx < WalkPerTile; dx++ {
			g.SetWalkable(WalkPosition{base.X + dx, base.Y + dy}, walkable)
		}
	}
}

// FillTiles sets every tile in the inclusive rectangle [lo, hi].
func (g *Grid) FillTiles(lo, hi TilePosition, walkable bool) {
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			g.SetTileWalkable(TilePosition{x, y}, walkable)
		}
	}
}

// AddResource appends a deposit and returns its assigned ID.
func (g *Grid) AddResource(kind Kind, pos TilePosition, amount int) int {
	id := len(g.resources)
	g.resources = append(g.resources, Resource{ID: id, Kind: kind, Position: pos, Amount: amount})
	return id
}

// AddStartLocation appends a strategic anchor tile.
func (g *Grid) AddStartLocation(t TilePosition) {
	g.starts = append(g.starts, t)
}
