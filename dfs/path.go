package dfs

import (
	"context"

	"github.com/katalvlaran/netroute/core"
)

// Path returns the first src→dst path reached by DFS with WithStopAt(dst).
// The path is valid but neither fewest-hop nor cheapest.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound,
// ErrNoPath, or ctx.Err() when ctx is done between pops.
func Path(ctx context.Context, g *core.Graph, src, dst string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(src) {
		return nil, ErrStartVertexNotFound
	}
	if !g.HasVertex(dst) {
		return nil, ErrTargetVertexNotFound
	}

	res, err := DFS(g, src, WithContext(ctx), WithStopAt(dst))
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, ErrNoPath
	}

	return unwind(res.Parent, src, dst), nil
}

// unwind follows parent links from dst back to src and returns src→dst.
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
