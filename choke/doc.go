// Package choke turns the frontier left by area partitioning into
// chokepoints.
//
// Frontier cells are grouped by area pair (pairs in ascending order, cells in
// arrival order) and chained into clusters: a cell joins the open cluster
// whose nearer end lies within ClusterDistance (Chebyshev) and extends it at
// that end, otherwise it opens a new cluster. Disjoint corridors between the
// same two areas therefore become separate chokepoints.
//
// Each chokepoint gets three nodes: Middle is the highest frontier cell, and
// End1/End2 are the first cells reached, by a breadth-first flood from the
// frontier, whose altitude exceeds Middle's by more than SupportAltitude in
// the first and second bordered area respectively.
package choke
