package gridgraph

// Marks is a visited set over grid cells that is never cleared. A traversal
// obtains a generation with Next and treats a cell as visited iff its stamp
// equals that generation. Marks is not safe for concurrent use; give each
// goroutine its own.
type Marks struct {
	stamp []uint32
	gen   uint32
}

// NewMarks returns a Marks covering n cells.
func NewMarks(n int) *Marks {
	return &Marks{stamp: make([]uint32, n)}
}

// Next advances and returns the current generation. On counter wrap-around
// the stamps are reset so stale marks can never alias a new generation.
func (m *Marks) Next() uint32 {
	m.gen++
	if m.gen == 0 {
		for i := range m.stamp {
			m.stamp[i] = 0
		}
		m.gen = 1
	}
	return m.gen
}

// Visited reports whether cell i carries generation gen.
func (m *Marks) Visited(i int, gen uint32) bool {
	return m.stamp[i] == gen
}

// Visit stamps cell i with gen and reports whether it was previously unvisited.
func (m *Marks) Visit(i int, gen uint32) bool {
	if m.stamp[i] == gen {
		return false
	}
	m.stamp[i] = gen
	return true
}

// Len returns the number of cells covered.
func (m *Marks) Len() int {
	return len(m.stamp)
}
