package astar

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors for A* search.
var (
	ErrNilGraph       = errors.New("astar: graph is nil")
	ErrVertexNotFound = errors.New("astar: source vertex not found in graph")
	ErrTargetNotFound = errors.New("astar: target vertex not found in graph")
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")
	ErrNoPath         = errors.New("astar: no path")
)

// Heuristic estimates the remaining cost from id to goal. It must never
// overestimate the true cost for the returned path to be optimal.
type Heuristic func(id, goal string) float64

// Coordinates looks up the planar position of a vertex. ok is false when
// the vertex has no known position.
type Coordinates func(id string) (x, y float64, ok bool)

// Zero is the null heuristic; A* with Zero expands like Dijkstra.
func Zero(string, string) float64 { return 0 }

// Euclidean returns the straight-line distance between the positions of
// id and goal, or 0 when either position is unknown. A nil lookup yields
// Zero.
func Euclidean(lookup Coordinates) Heuristic {
	if lookup == nil {
		return Zero
	}

	return func(id, goal string) float64 {
		x1, y1, ok1 := lookup(id)
		x2, y2, ok2 := lookup(goal)
		if !ok1 || !ok2 {
			return 0
		}

		return math.Hypot(x1-x2, y1-y2)
	}
}

// Options configures a search.
type Options struct {
	Heuristic Heuristic
}

// Option is a functional option for Search and ShortestPath.
type Option func(*Options)

// WithHeuristic sets the heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithCoordinates is shorthand for WithHeuristic(Euclidean(lookup)).
func WithCoordinates(lookup Coordinates) Option {
	return WithHeuristic(Euclidean(lookup))
}

// DefaultOptions returns Options using the Zero heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: Zero}
}

// Result is the outcome of a successful search.
type Result struct {
	Path     []string // src..dst inclusive
	Cost     int64    // sum of edge weights along Path
	Expanded int      // vertices popped from the open set, stale entries excluded
}

// ctxDone returns ctx.Err() without blocking.
func ctxDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
