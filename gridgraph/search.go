package gridgraph

import (
	"container/heap"
)

// Searcher runs repeated best-first searches over one Grid, reusing its
// cost array and visited set between calls. A Searcher is not safe for
// concurrent use; give each worker its own.
type Searcher struct {
	gg    *Grid
	marks *Marks
	cost  []int64
	open  openPQ
}

// NewSearcher allocates the scratch space for searches over gg.
func NewSearcher(gg *Grid) *Searcher {
	return &Searcher{
		gg:    gg,
		marks: NewMarks(gg.Size()),
		cost:  make([]int64, gg.Size()),
	}
}

// Search finds the minimum 8-directional cost from start to goal moving only
// through cells accepted by passable. Orthogonal steps cost OrthogonalCost,
// diagonal steps DiagonalCost; the heuristic is Chebyshev distance times
// OrthogonalCost, which is consistent for these costs. start and goal are
// entered regardless of passable.
//
// Returns (cost, true) when goal is reachable, (0, false) otherwise.
// Returns ErrIndexRange if start or goal lies outside the grid.
func (s *Searcher) Search(start, goal int, passable func(idx int) bool) (int64, bool, error) {
	n := s.gg.Size()
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return 0, false, ErrIndexRange
	}
	if start == goal {
		return 0, true, nil
	}

	gen := s.marks.Next()
	s.open = s.open[:0]
	h := func(i int) int64 { return int64(s.gg.Chebyshev(i, goal)) * OrthogonalCost }

	s.marks.Visit(start, gen)
	s.cost[start] = 0
	heap.Push(&s.open, openItem{idx: start, g: 0, f: h(start)})

	offs := offsets8
	for s.open.Len() > 0 {
		cur := heap.Pop(&s.open).(openItem)
		if cur.g > s.cost[cur.idx] {
			continue // stale entry
		}
		if cur.idx == goal {
			return cur.g, true, nil
		}
		x, y := s.gg.Coordinate(cur.idx)
		for k, d := range offs {
			nx, ny := x+d[0], y+d[1]
			if !s.gg.InBounds(nx, ny) {
				continue
			}
			v := s.gg.Index(nx, ny)
			if v != goal && !passable(v) {
				continue
			}
			step := OrthogonalCost
			if k%2 == 1 {
				step = DiagonalCost
			}
			ng := cur.g + step
			if s.marks.Visit(v, gen) || ng < s.cost[v] {
				s.cost[v] = ng
				heap.Push(&s.open, openItem{idx: v, g: ng, f: ng + h(v)})
			}
		}
	}
	return 0, false, nil
}

// openItem is a frontier entry keyed on estimated total cost f.
type openItem struct {
	idx  int
	g, f int64
}

// openPQ is a min-heap of openItem ordered by f, then g, then index,
// so expansion order is fully deterministic.
type openPQ []openItem

func (pq openPQ) Len() int { return len(pq) }
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}
	return pq[i].idx < pq[j].idx
}
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *openPQ) Push(x any)   { *pq = append(*pq, x.(openItem)) }
func (pq *openPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
