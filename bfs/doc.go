// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - BFS lists the vertices reachable from a start vertex in non-decreasing
//     hop count.
//   - Components labels connected components; the chokepoint graph uses it to
//     find which areas ground units can travel between.
//
// Determinism
//
//	core.Graph.Neighbors returns edges sorted by target, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
