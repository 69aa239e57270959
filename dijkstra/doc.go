// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative integer weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source vertex to
//     every vertex in O((V + E) log V) time.
//   - It relies on a min-heap keyed directly on distance (ties broken by
//     vertex id) to always expand the next-closest vertex.
//   - Supports optional predecessor output.
//
// Results are slices indexed by vertex id: dist[v] is math.MaxInt64 when v
// is unreachable, prev[v] is -1 for the source and unreachable vertices.
// PathTo unwinds prev into an ordered vertex sequence.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        no Source option was supplied.
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrVertexNotFound:  the source vertex does not exist in the graph.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	path := dijkstra.PathTo(prev, 0, 3)
package dijkstra
