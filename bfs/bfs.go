package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errStop unwinds the loop once StopAt is discovered.
var errStop = errors.New("bfs: stop")

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Neighbors are expanded in natural ID order, so the traversal is
// deterministic.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrNeighbors for graph failures, or the context error on cancellation.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start vertex (no parent)
	if w.enqueue(startID, 0, "") {
		return w.res, nil
	}
	if err := w.loop(); err != nil && !errors.Is(err, errStop) {
		return w.res, err
	}

	return w.res, nil
}

// ShortestPath returns a fewest-hop path from src to dst. Among equal-hop
// paths the one discovered first wins; weights are not considered.
// Returns ErrNoPath when dst is unreachable.
func ShortestPath(ctx context.Context, g *core.Graph, src, dst string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(dst) {
		return nil, ErrTargetVertexNotFound
	}
	res, err := BFS(g, src, WithContext(ctx), WithStopAt(dst))
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst)
}

// enqueue marks id visited at depth d, records its parent and adds it to
// the queue. It reports whether id is the StopAt vertex.
func (w *walker) enqueue(id string, d int, parent string) bool {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})

	return w.opts.StopAt != "" && id == w.opts.StopAt
}

// loop processes the queue until empty, error, early stop or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor of item. Returns ErrNeighbors on lookup failure
// and errStop when the StopAt vertex is discovered.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if w.enqueue(nbr, nextDepth, item.id) {
			return errStop
		}
	}

	return nil
}
