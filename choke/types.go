package choke

import (
	"errors"

	"github.com/katalvlaran/terra/area"
	"github.com/katalvlaran/terra/terrain"
)

// Sentinel errors for chokepoint extraction.
var (
	// ErrUnresolvedEnd indicates a chokepoint whose flood reached no cell of
	// one of its bordered areas. The partition is inconsistent.
	ErrUnresolvedEnd = errors.New("choke: chokepoint end not found in bordered area")
	// ErrNilInput indicates a nil altitude field or partition.
	ErrNilInput = errors.New("choke: altitude field and partition are required")
)

// Node selects one of the three nodes of a chokepoint.
type Node int

const (
	// End1 lies in Areas[0].
	End1 Node = iota
	// Middle is the highest frontier cell.
	Middle
	// End2 lies in Areas[1].
	End2
)

func (n Node) String() string {
	switch n {
	case End1:
		return "end1"
	case Middle:
		return "middle"
	case End2:
		return "end2"
	default:
		return "unknown"
	}
}

// Chokepoint is a corridor between exactly two areas. Cells are row-major
// walk indices. Chokepoints are addressed by Index; nothing links to them
// by pointer.
type Chokepoint struct {
	Index int
	// Areas is ordered so that Areas[0] < Areas[1].
	Areas [2]area.ID
	// Frontier is the chained cluster, end to end.
	Frontier []int
	// ChokeArea is every cell visited by the end-node flood.
	ChokeArea []int
	Top       int
	Ends      [2]int

	nodes  [3]terrain.WalkPosition
	center terrain.WalkPosition
}

// Cell returns the walk index of node n.
func (c *Chokepoint) Cell(n Node) int {
	switch n {
	case End1:
		return c.Ends[0]
	case End2:
		return c.Ends[1]
	default:
		return c.Top
	}
}

// Pos returns the walk position of node n.
func (c *Chokepoint) Pos(n Node) terrain.WalkPosition {
	if n < End1 || n > End2 {
		n = Middle
	}
	return c.nodes[n]
}

// Center returns the middle cell of the frontier chain.
func (c *Chokepoint) Center() terrain.WalkPosition { return c.center }

// Borders reports whether the chokepoint separates id from another area.
func (c *Chokepoint) Borders(id area.ID) bool {
	return id != 0 && (c.Areas[0] == id || c.Areas[1] == id)
}

// Options configures extraction.
type Options struct {
	// ClusterDistance is the exclusive Chebyshev bound, in walk cells, for
	// chaining a frontier cell onto a cluster end.
	ClusterDistance int
	// SupportAltitude is how far above the top an end node must rise.
	SupportAltitude int32
}

// DefaultOptions returns ClusterDistance=17, SupportAltitude=48.
func DefaultOptions() Options {
	return Options{
		ClusterDistance: 17,
		SupportAltitude: 48,
	}
}
