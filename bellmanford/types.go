package bellmanford

import (
	"context"
	"errors"
)

// Sentinel errors returned by BellmanFord and ShortestPath.
var (
	// ErrEmptySource indicates that no source vertex was supplied.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is absent.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrTargetNotFound indicates that the target vertex is absent.
	ErrTargetNotFound = errors.New("bellmanford: target vertex not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the
	// source. Every undirected edge is a two-edge cycle, so a single
	// reachable negative edge is enough.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrNoPath is returned by ShortestPath when the target is unreachable.
	ErrNoPath = errors.New("bellmanford: no path")
)

// Options configures a Bellman-Ford run.
type Options struct {
	Ctx    context.Context // checked once per relaxation round
	Source string          // start vertex, required
}

// Option is a functional option for BellmanFord.
type Option func(*Options)

// Source sets the start vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with a background context and the given source.
func DefaultOptions(source string) Options {
	return Options{Ctx: context.Background(), Source: source}
}
