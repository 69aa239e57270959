package chokegraph

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/terra/dijkstra"
)

// ErrNilInput indicates a nil altitude field or partition.
var ErrNilInput = errors.New("chokegraph: altitude field and partition are required")

// Unreachable marks chokepoint pairs with no connecting route.
const Unreachable = dijkstra.Unreachable

// Options configures Build.
type Options struct {
	// Workers bounds the number of concurrent pair searches.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions returns Workers=0.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}
