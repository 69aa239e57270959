// SPDX-License-Identifier: MIT
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is an undirected weighted connection. Edges returned by the Graph
// are oriented so that From is the queried vertex.
type Edge struct {
	From, To int
	Weight   int64
}

// Graph is a weighted undirected graph over vertices 0..n-1.
type Graph struct {
	mu        sync.RWMutex
	adjacency [][]Edge // adjacency[v] lists edges leaving v
	edges     int
}

// NewGraph creates a Graph with n isolated vertices.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{adjacency: make([][]Edge, n)}
}
