package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/terra/core"
)

// Dijkstra computes shortest distances from Options.Source to all vertices of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, or Unreachable.
//   - prev: if ReturnPath, prev[v] is v's predecessor on a shortest path
//     (-1 for the source and unreachable vertices); nil otherwise.
//   - err:  ErrNoSource, ErrNilGraph or ErrVertexNotFound.
//
// Ties between equal-distance vertices are broken by lower vertex id, and a
// predecessor is replaced only on a strictly shorter distance, so results
// are deterministic for a given graph.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// PathTo unwinds prev from dst back to src and returns the ordered vertex
// sequence src..dst. Returns [src] when src == dst and nil when dst was not
// reached.
func PathTo(prev []int, src, dst int) []int {
	if src == dst {
		return []int{src}
	}
	if dst < 0 || dst >= len(prev) || prev[dst] < 0 {
		return nil
	}
	var rev []int
	for at := dst; at != src; at = prev[at] {
		if at < 0 {
			return nil
		}
		rev = append(rev, at)
	}
	rev = append(rev, src)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to Unreachable and pushes the source at 0.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its edges.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of each neighbor of u.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.To
		newDist := r.dist[u] + e.Weight
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a vertex with its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id. Stale entries
// are left in place and skipped when popped (lazy decrease-key).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)   { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
