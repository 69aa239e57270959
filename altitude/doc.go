// Package altitude classifies every walk cell and computes its altitude: an
// integer-scaled approximation of the distance to the nearest boundary
// between walkable and unwalkable terrain.
//
// Classification (pass 1):
//
//   - Walkable cells are pending Walkable(0).
//   - Each 4-connected unwalkable component is flooded once. Small components
//     (fewer than HoleMaxCells cells, bounding box narrower and shorter than
//     HoleMaxExtent, and at least two cells away from the map edge) become
//     Hole: they block walking but never seed altitude.
//   - Other components split into Border cells (touching a walkable cell;
//     altitude 0, expansion seeds) and interior cells, pending Unwalkable(0).
//
// Expansion (pass 2):
//
//   - Seeds are every Border cell plus the ring of positions just outside
//     the map. Each pending cell takes int(0.5 + d·Scale), d being the
//     Euclidean distance to its nearest seed. This is the value a wave of
//     offsets in ascending weight order, first write wins, would assign.
//   - Hole cells are neither seeds nor written, so walkable cells around a
//     hole keep the altitude they would have on open ground.
//
// Complexity: O(W·H) using a separable squared distance transform.
package altitude
