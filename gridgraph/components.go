package gridgraph

// ConnectedComponents finds all contiguous regions of cells accepted by in,
// according to gg.Conn connectivity, scanning seeds in row-major order.
// Returns a slice of components; each component lists cell indices in
// discovery order, beginning with its lowest-index cell.
//
// marks supplies the visited set; a single generation is used for the whole scan.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for output; the visited set is reused.
func (gg *Grid) ConnectedComponents(in func(idx int) bool, marks *Marks) [][]int {
	gen := marks.Next()
	var comps [][]int
	for i := 0; i < gg.Size(); i++ {
		if !in(i) || marks.Visited(i, gen) {
			continue
		}
		comps = append(comps, gg.flood(i, in, marks, gen))
	}
	return comps
}

// Flood collects every cell reachable from seed through cells accepted by in.
// The seed itself is included only if in(seed) holds. A fresh generation
// is taken from marks.
//
// Time: O(R·d) for a region of R cells.
func (gg *Grid) Flood(seed int, in func(idx int) bool, marks *Marks) []int {
	gen := marks.Next()
	if !in(seed) {
		return nil
	}
	return gg.flood(seed, in, marks, gen)
}

// flood is an explicit-stack depth-first fill.
func (gg *Grid) flood(seed int, in func(idx int) bool, marks *Marks, gen uint32) []int {
	marks.Visit(seed, gen)
	stack := []int{seed}
	var region []int
	var nbuf [8]int

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, u)
		for _, v := range gg.Neighbors(u, nbuf[:0]) {
			if in(v) && marks.Visit(v, gen) {
				stack = append(stack, v)
			}
		}
	}
	return region
}
