package dfs

import (
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// DFS walks g depth-first from startID with an explicit stack. A vertex is
// marked visited when it is pushed and remembers the vertex that pushed it.
// Neighbors are pushed in natural ID order, so the highest-ordered one is
// popped first.
//
// On cancellation the partial result is returned with ctx.Err().
//
// Complexity: O(V + E log d), memory O(V).
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &DFSResult{
		Depth:   map[string]int{startID: 0},
		Parent:  make(map[string]string),
		Visited: map[string]bool{startID: true},
	}
	stack := []string{startID}
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Order = append(res.Order, id)
		if o.StopAt != "" && id == o.StopAt {
			res.Found = true
			return res, nil
		}

		nbs, err := g.NeighborIDs(id)
		if err != nil {
			return res, fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
		}
		for _, nb := range nbs {
			if res.Visited[nb] {
				continue
			}
			res.Visited[nb] = true
			res.Parent[nb] = id
			res.Depth[nb] = res.Depth[id] + 1
			stack = append(stack, nb)
		}
	}

	return res, nil
}
