// Package gridgraph treats the walk-cell grid of a map as an implicit graph,
// providing the traversal primitives shared by every analysis stage.
//
// What:
//
//   - Grid maps (x,y) to a row-major index and back, with Conn4 or Conn8
//     neighbor offsets precomputed once.
//   - Marks is a generation-stamped visited set: each traversal takes a
//     fresh generation from Next() and never clears the backing array.
//   - ConnectedComponents and Flood collect regions with an explicit stack,
//     so stack depth does not grow with region size.
//   - Searcher runs an 8-directional best-first (A*) search with integer
//     costs (orthogonal 10000, diagonal 14142) and a Chebyshev heuristic.
//
// Why:
//
//   - Altitude classification floods unwalkable components.
//   - Area merging relabels a region in place.
//   - Chokepoint distances need exact grid shortest paths between nodes.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - Flood:               O(R×d) for a region of R cells.
//   - Searcher.Search:     O(W×H×log(W×H)) worst case, Memory: O(W×H) reused across calls.
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrIndexRange: start or goal index lies outside the grid.
package gridgraph
