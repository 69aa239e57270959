// Package chokegraph answers approximate ground distance and route queries
// through a graph whose vertices are chokepoints.
//
// Build runs in two steps:
//
//  1. Local distances. For every pair of chokepoints that border a common
//     area, an 8-directional best-first search runs from one Middle node to
//     the other over walkable cells. The pair searches are independent and
//     fan out over a bounded pool of workers, each with its own Searcher.
//     Costs are rescaled to altitude units (×Scale/OrthogonalCost, rounded).
//  2. Relaxation. The local distances become the edges of a core.Graph and
//     dijkstra.Dijkstra runs once per chokepoint. The full distance matrix
//     and every shortest chokepoint path are stored; queries never search.
//
// A finished Graph is immutable and safe for concurrent readers.
package chokegraph
