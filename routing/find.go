package routing

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netroute/astar"
	"github.com/katalvlaran/netroute/bellmanford"
	"github.com/katalvlaran/netroute/bfs"
	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/dfs"
	"github.com/katalvlaran/netroute/dijkstra"
)

var (
	// ErrNoPath reports that the destination is unreachable. It is an
	// answer, not a failure.
	ErrNoPath = errors.New("routing: no path")

	// ErrUnknownKind is returned for a Kind outside the declared set.
	ErrUnknownKind = errors.New("routing: unknown algorithm kind")

	// ErrInvalidPath is returned by Path.Cost and Path.Validate.
	ErrInvalidPath = errors.New("routing: invalid path")

	// ErrNilGraph is returned by Find for a nil graph.
	ErrNilGraph = errors.New("routing: graph is nil")
)

// Options holds per-call settings for Find.
type Options struct {
	Coordinates astar.Coordinates
}

// Option configures Find.
type Option func(*Options)

// WithCoordinates supplies vertex positions for the A* heuristic. Other
// kinds ignore it. Without it A* runs with a zero heuristic.
func WithCoordinates(lookup func(id string) (x, y float64, ok bool)) Option {
	return func(o *Options) { o.Coordinates = lookup }
}

// Find runs one algorithm between src and dst. Every kind shares this
// signature; an unreachable dst yields ErrNoPath. Other errors carry the
// algorithm's own sentinel (for example bellmanford.ErrNegativeCycle) and
// can be matched with errors.Is.
//
// Find only reads g and may run concurrently with other Find calls on the
// same graph.
func Find(ctx context.Context, kind Kind, g *core.Graph, src, dst string, opts ...Option) (Path, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	var (
		p   []string
		err error
	)
	switch kind {
	case KindBFS:
		p, err = bfs.ShortestPath(ctx, g, src, dst)
	case KindDFS:
		p, err = dfs.Path(ctx, g, src, dst)
	case KindDijkstra:
		p, _, err = dijkstra.ShortestPath(ctx, g, src, dst)
	case KindBellmanFord:
		p, _, err = bellmanford.ShortestPath(ctx, g, src, dst)
	case KindAStar:
		p, _, err = astar.ShortestPath(ctx, g, src, dst, astar.WithCoordinates(cfg.Coordinates))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	switch {
	case err == nil:
		return Path(p), nil
	case isNoPath(err):
		return nil, fmt.Errorf("%w: %s→%s (%s)", ErrNoPath, src, dst, kind)
	default:
		return nil, fmt.Errorf("routing: %s: %w", kind, err)
	}
}

func isNoPath(err error) bool {
	return errors.Is(err, bfs.ErrNoPath) ||
		errors.Is(err, dfs.ErrNoPath) ||
		errors.Is(err, dijkstra.ErrNoPath) ||
		errors.Is(err, bellmanford.ErrNoPath) ||
		errors.Is(err, astar.ErrNoPath)
}
