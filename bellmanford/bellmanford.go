package bellmanford

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/netroute/core"
)

// BellmanFord computes shortest distances from Options.Source by repeated
// edge relaxation. Each round relaxes both orientations of every edge in
// edge-ID order; at most |V|-1 rounds run, and a round that changes nothing
// ends the loop early. One extra round then checks for a reachable negative
// cycle.
//
// dist[v] is math.MaxInt64 for unreachable v; prev[v] is "" for the source
// and unreachable vertices.
//
// Errors: ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrNegativeCycle,
// or ctx.Err().
//
// Complexity: O(V·E) time, O(V) extra space.
func BellmanFord(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns a minimum-cost src→dst path and its cost.
//
// Errors: those of BellmanFord, ErrTargetNotFound, and ErrNoPath when dst is
// unreachable.
func ShortestPath(ctx context.Context, g *core.Graph, src, dst string) ([]string, int64, error) {
	dist, prev, err := BellmanFord(g, Source(src), WithContext(ctx))
	if err != nil {
		return nil, 0, err
	}
	d, ok := dist[dst]
	if !ok {
		return nil, 0, ErrTargetNotFound
	}
	if d == math.MaxInt64 {
		return nil, 0, fmt.Errorf("%w: %s unreachable from %s", ErrNoPath, dst, src)
	}

	path := []string{dst}
	for cur := dst; cur != src; {
		cur = prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d, nil
}

// runner holds the state of one execution.
type runner struct {
	ctx   context.Context
	src   string
	edges []*core.Edge
	n     int
	dist  map[string]int64
	prev  map[string]string
}

func newRunner(g *core.Graph, cfg Options) *runner {
	ids := g.Vertices()
	r := &runner{
		ctx:   cfg.Ctx,
		src:   cfg.Source,
		edges: g.Edges(),
		n:     len(ids),
		dist:  make(map[string]int64, len(ids)),
		prev:  make(map[string]string, len(ids)),
	}
	for _, id := range ids {
		r.dist[id] = math.MaxInt64
		r.prev[id] = ""
	}
	r.dist[r.src] = 0

	return r
}

// process runs the relaxation rounds and the negative-cycle check.
func (r *runner) process() error {
	for round := 1; round < r.n; round++ {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if !r.round() {
			return nil
		}
	}

	// A further improvement after |V|-1 rounds means a negative cycle.
	for _, e := range r.edges {
		if r.improves(e.From, e.To, e.Weight) || r.improves(e.To, e.From, e.Weight) {
			return fmt.Errorf("%w: edge %s-%s weight=%d", ErrNegativeCycle, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// round relaxes every edge in both orientations and reports whether any
// distance changed.
func (r *runner) round() bool {
	changed := false
	for _, e := range r.edges {
		if r.relax(e.From, e.To, e.Weight) {
			changed = true
		}
		if r.relax(e.To, e.From, e.Weight) {
			changed = true
		}
	}

	return changed
}

// improves reports whether u→v with weight w would shorten dist[v].
func (r *runner) improves(u, v string, w int64) bool {
	du := r.dist[u]

	return du != math.MaxInt64 && du+w < r.dist[v]
}

func (r *runner) relax(u, v string, w int64) bool {
	if !r.improves(u, v, w) {
		return false
	}
	r.dist[v] = r.dist[u] + w
	r.prev[v] = u

	return true
}
