package bfs

import (
	"fmt"

	"github.com/katalvlaran/terra/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	queue   []int
	visited []bool
}

// BFS runs breadth-first search on g from start and returns the vertices in
// visit order. Returns ErrGraphNil or ErrStartVertexNotFound.
func BFS(g *core.Graph, start int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	w := &walker{graph: g, visited: make([]bool, g.VertexCount())}
	if err := w.walk(start); err != nil {
		return nil, err
	}
	return w.queue, nil
}

// walk appends every vertex reachable from start to the queue.
func (w *walker) walk(start int) error {
	w.visited[start] = true
	w.queue = append(w.queue, start)
	for head := len(w.queue) - 1; head < len(w.queue); head++ {
		edges, err := w.graph.Neighbors(w.queue[head])
		if err != nil {
			return err
		}
		for _, e := range edges {
			if w.visited[e.To] {
				continue
			}
			w.visited[e.To] = true
			w.queue = append(w.queue, e.To)
		}
	}
	return nil
}

// Components labels every vertex of g with the index of its connected
// component, numbering components in order of their lowest vertex.
func Components(g *core.Graph) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.VertexCount()
	label := make([]int, n)
	w := &walker{graph: g, visited: make([]bool, n)}
	count := 0
	for v := 0; v < n; v++ {
		if w.visited[v] {
			continue
		}
		from := len(w.queue)
		if err := w.walk(v); err != nil {
			return nil, 0, err
		}
		for _, u := range w.queue[from:] {
			label[u] = count
		}
		count++
	}
	return label, count, nil
}
