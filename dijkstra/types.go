package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was provided.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
)

// Unreachable is the distance reported for vertices not reached from the source.
const Unreachable = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
//
// Source     – starting vertex id (must be set and present in the graph).
// ReturnPath – if true, return the predecessor slice; otherwise prev is nil.
type Options struct {
	Source     int
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options with no source and no predecessor output.
func DefaultOptions() Options {
	return Options{
		Source:     -1,
		ReturnPath: false,
	}
}
