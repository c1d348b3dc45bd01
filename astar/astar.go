package astar

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// Search finds a minimum-cost src→dst path. The open set is a binary heap
// keyed by f = g + h. A vertex may be reopened when a cheaper g is found,
// so the result is optimal for any admissible heuristic, consistent or not.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrTargetNotFound,
// ErrNegativeWeight, ErrNoPath, or ctx.Err() checked once per pop.
func Search(ctx context.Context, g *core.Graph, src, dst string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(src) {
		return nil, ErrVertexNotFound
	}
	if !g.HasVertex(dst) {
		return nil, ErrTargetNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s-%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	h := cfg.Heuristic
	gScore := map[string]int64{src: 0}
	parent := make(map[string]string)
	open := openSet{{id: src, g: 0, f: h(src, dst)}}
	expanded := 0

	for open.Len() > 0 {
		if err := ctxDone(ctx); err != nil {
			return nil, err
		}

		cur := heap.Pop(&open).(*entry)
		if cur.g > gScore[cur.id] {
			continue
		}
		expanded++
		if cur.id == dst {
			return &Result{Path: unwind(parent, src, dst), Cost: cur.g, Expanded: expanded}, nil
		}

		edges, err := g.Neighbors(cur.id)
		if err != nil {
			return nil, fmt.Errorf("astar: neighbors of %q: %w", cur.id, err)
		}
		for _, e := range edges {
			v := e.Other(cur.id)
			ng := cur.g + e.Weight
			if old, seen := gScore[v]; seen && ng >= old {
				continue
			}
			gScore[v] = ng
			parent[v] = cur.id
			heap.Push(&open, &entry{id: v, g: ng, f: float64(ng) + h(v, dst)})
		}
	}

	return nil, fmt.Errorf("%w: %s unreachable from %s", ErrNoPath, dst, src)
}

// ShortestPath is Search reduced to its path and cost.
func ShortestPath(ctx context.Context, g *core.Graph, src, dst string, opts ...Option) ([]string, int64, error) {
	res, err := Search(ctx, g, src, dst, opts...)
	if err != nil {
		return nil, 0, err
	}

	return res.Path, res.Cost, nil
}

func unwind(parent map[string]string, src, dst string) []string {
	path := []string{dst}
	for cur := dst; cur != src; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// entry is an open-set item.
type entry struct {
	id string
	g  int64
	f  float64
}

// openSet orders by f, then by larger g (deeper entries first), then by
// natural vertex ID.
type openSet []*entry

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	a, b := s[i], s[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}

	return core.LessID(a.id, b.id)
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(*entry)) }

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]

	return it
}
