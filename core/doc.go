// Package core provides a small, thread-safe, weighted undirected Graph whose
// vertices are the dense integers 0..n-1.
//
// The chokepoint graph uses it as its edge store: vertex i is chokepoint i,
// and an edge carries the local ground distance between two chokepoints that
// border a common area.
//
// Properties:
//
//   - Vertices are fixed at construction (NewGraph(n)).
//   - Edges are undirected; adding an existing edge keeps the smaller weight.
//   - Self-loops and negative weights are rejected.
//   - Deterministic iteration: Neighbors() returns edges sorted by target.
//   - A single sync.RWMutex guards the adjacency; queries take a read lock.
//
// Errors:
//
//	ErrVertexNotFound  - vertex id outside 0..n-1.
//	ErrLoopNotAllowed  - edge from a vertex to itself.
//	ErrNegativeWeight  - negative edge weight.
//
// Complexity:
//
//   - AddEdge, Weight: O(deg).
//   - Neighbors: O(deg log deg).
package core
