// Package terrain describes the input side of the analysis: coordinate
// scales, the Source contract, and an in-memory Source for tests and tools.
//
// What:
//
//   - Three coordinate scales: Position (pixels), WalkPosition (walk cells)
//     and TilePosition (tiles). One tile is 4×4 walk cells and 32×32 pixels.
//   - Source supplies map dimensions, walk-cell walkability, resource
//     deposits and start locations.
//   - Grid is a mutable in-memory Source built from text rows; LoadFile and
//     Parse read the same description from YAML.
//
// Map file format (YAML):
//
//	scale: tile            # "tile" (each char is a 4×4 block) or "walk"
//	rows:
//	  - "##########"
//	  - "#........#"
//	resources:
//	  - {kind: mineral, x: 3, y: 1, amount: 1500}
//	  - {kind: geyser,  x: 6, y: 4, amount: 5000}
//	starts:
//	  - {x: 2, y: 2}
//
// '.' marks a walkable cell, any other character an unwalkable one.
//
// Errors:
//
//   - ErrEmptyMap: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownKind: resource kind other than mineral or geyser.
//   - ErrUnknownScale: scale other than tile or walk.
package terrain
