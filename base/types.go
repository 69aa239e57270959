package base

import (
	"github.com/katalvlaran/terra/area"
	"github.com/katalvlaran/terra/terrain"
)

// HallSize is the footprint of a resource hall in tiles.
var HallSize = terrain.TilePosition{X: 4, Y: 3}

// laneScores is the per-step contribution along one cardinal lane.
var laneScores = [...]int{100, 88, 76, 64, 52, 40, 28, 16}

// Base is a proposed hall site.
type Base struct {
	// Location is the top-left tile of the hall footprint.
	Location terrain.TilePosition
	// Resources lists the IDs of the claimed deposits in ascending order.
	Resources []int
	// Score is the candidate score at selection time.
	Score int
	// Area is filled in by the caller once areas are known.
	Area area.ID
}

// Center returns the pixel centre of the hall footprint.
func (b Base) Center() terrain.Position {
	p := b.Location.ToPosition()
	return terrain.Position{
		X: p.X + HallSize.X*terrain.PixelsPerTile/2,
		Y: p.Y + HallSize.Y*terrain.PixelsPerTile/2,
	}
}

// Options configures the finder.
type Options struct {
	// MinMinerals is the smallest mineral amount worth claiming.
	MinMinerals int
	// ScoreThreshold is the exclusive minimum candidate score.
	ScoreThreshold int
	// ClaimRadius is the hall-centre to deposit-centre claim distance in tiles.
	ClaimRadius int
}

// DefaultOptions returns MinMinerals=500, ScoreThreshold=400, ClaimRadius=9.
func DefaultOptions() Options {
	return Options{
		MinMinerals:    500,
		ScoreThreshold: 400,
		ClaimRadius:    9,
	}
}
