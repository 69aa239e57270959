// Package terramap builds the full terrain analysis of a map and answers
// read-only queries against it.
//
// Build runs the pipeline once:
//
//	altitude.Compute → area.Compute → choke.Extract ┐
//	base.Find (separate goroutine) ─────────────────┴→ chokegraph.Build
//
// The finished Map is immutable and may be shared by any number of
// goroutines without locking. Stage timings and counts are logged through
// an injectable *slog.Logger.
package terramap
