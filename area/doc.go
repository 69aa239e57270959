// Package area partitions the walkable cells of an altitude field into
// areas: maximal connected regions separated at natural corridors.
//
// Cells are visited once, in strictly descending altitude with row-major
// index as the tiebreak, so every 4-neighbour at equal or higher altitude
// already carries an id when a cell is reached:
//
//   - no labelled neighbour: the cell opens a new area;
//   - one neighbouring area: the cell joins it;
//   - two neighbouring areas: the smaller one is merged into the larger when
//     it holds fewer than MergeSize cells or the cell lies within
//     AnchorRadius tiles of a strategic anchor; otherwise the cell becomes a
//     frontier cell of the pair and is owned by the two areas in turn.
//
// Surviving ids are renumbered densely 1..N in order of creation.
// Cells that are not walkable keep id 0.
package area
