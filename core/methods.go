// SPDX-License-Identifier: MIT
package core

import (
	"fmt"
	"sort"
)

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(id)
}

func (g *Graph) hasVertex(id int) bool {
	return id >= 0 && id < len(g.adjacency)
}

// AddEdge connects from and to with the given weight. If the edge already
// exists, the smaller of the two weights is kept.
// Thread-safe: acquires a write lock.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(from) || !g.hasVertex(to) {
		return fmt.Errorf("%w: %d-%d", ErrVertexNotFound, from, to)
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d-%d weight=%d", ErrNegativeWeight, from, to, weight)
	}

	if i := g.find(from, to); i >= 0 {
		if weight < g.adjacency[from][i].Weight {
			g.adjacency[from][i].Weight = weight
			g.adjacency[to][g.find(to, from)].Weight = weight
		}
		return nil
	}
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
	g.edges++

	return nil
}

// find returns the position of to in from's adjacency, or -1.
func (g *Graph) find(from, to int) int {
	for i, e := range g.adjacency[from] {
		if e.To == to {
			return i
		}
	}
	return -1
}

// Weight returns the weight of the edge from–to, if present.
func (g *Graph) Weight(from, to int) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(from) || !g.hasVertex(to) {
		return 0, false
	}
	if i := g.find(from, to); i >= 0 {
		return g.adjacency[from][i].Weight, true
	}
	return 0, false
}

// Neighbors returns a copy of the edges leaving id, sorted by To.
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}
