// Package terra analyses 2D tile maps for ground navigation.
//
// Given walkability at walk-cell resolution (4×4 cells per tile) and the
// static resource deposits, terra computes:
//
//   - an altitude field: distance of every cell from the nearest boundary
//     between walkable and unwalkable terrain;
//   - a partition of walkable cells into areas separated at corridors;
//   - chokepoints describing those corridors, each with a middle node and
//     an end node inside either bordered area;
//   - proposed resource-collection bases;
//   - a relaxed graph over chokepoints for fast distance and route queries.
//
// Packages, leaves first:
//
//	terrain/    — coordinate scales, Source contract, in-memory Grid, YAML maps
//	gridgraph/  — walk-cell grid, generation-stamped Marks, flood fill, A*
//	altitude/   — classification and altitude expansion
//	area/       — descending-altitude partition with merges and frontier
//	choke/      — frontier clustering and end-node resolution
//	base/       — lane scoring and greedy base selection
//	core/       — weighted undirected graph with integer vertices
//	bfs/        — breadth-first search and components over core.Graph
//	dijkstra/   — shortest paths over core.Graph
//	chokegraph/ — local distances, relaxation, cached paths
//	terramap/   — pipeline orchestration and the read-only Map
//	render/     — diagnostic PNG output
//	config/     — YAML analysis parameters
//
// Quick start:
//
//	src, _ := terrain.LoadFile("map.yaml")
//	m, err := terramap.Build(ctx, src)
//	refs, dist := m.Path(from, to)
package terra
