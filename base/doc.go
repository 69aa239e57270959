// Package base proposes resource-collection sites from deposit layout.
//
// The search works on tiles. Every usable deposit blocks the hall positions
// closer than three tiles to it and adds a decaying score, read from a fixed
// table, along the four cardinal lanes leaving that blocked rectangle. A
// lane stops at the first unwalkable tile. Unblocked tiles whose hall
// footprint is walkable and whose score exceeds ScoreThreshold become
// candidates; the best current candidate claims the unclaimed deposits
// within ClaimRadius tiles, their scores are withdrawn, and the process
// repeats until no candidate clears the threshold.
//
// Only integer arithmetic is used, so results are identical across runs.
package base
