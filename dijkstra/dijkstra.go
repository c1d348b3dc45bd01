package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/netroute/core"
)

// Dijkstra computes shortest distances from Options.Source to every
// reachable vertex of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise); prev[v] == ""
//     for the source and for unreachable vertices.
//   - err:  validation failure, ErrNegativeWeight, or ctx.Err().
//
// Validation order:
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. Target, when set, must be in g (ErrTargetNotFound).
//  5. No edge may carry a negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
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
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, ErrTargetNotFound
	}

	// Fail fast on negative weights; the greedy settle order depends on it.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s-%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns a minimum-cost src→dst path and its cost. The search
// stops as soon as dst is settled.
//
// Errors: those of Dijkstra, ErrTargetNotFound when dst is not a vertex
// (including the empty ID), and ErrNoPath when dst is unreachable.
func ShortestPath(ctx context.Context, g *core.Graph, src, dst string) ([]string, int64, error) {
	dist, prev, err := Dijkstra(g, Source(src), WithTarget(dst), WithContext(ctx), WithReturnPath())
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

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets every distance to +∞, the source to 0, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled vertex and relaxes its edges until the
// heap drains, MaxDistance is exceeded, Target is settled or ctx is done.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist
		// stale entry
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.options.Target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of the settled
// vertex u, pushing a fresh heap entry for each improvement.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range edges {
		v := e.Other(u)
		if r.visited[v] || e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		nd := r.dist[u] + e.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and a candidate distance.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by vertex ID so
// that equal-cost frontiers settle deterministically. Outdated entries stay
// in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return core.LessID(pq[i].id, pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
