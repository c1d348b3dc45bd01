// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge/RemoveEdge/SetWeight/HasEdge/
//       Edge/Weight/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (Edge.ID sequence).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, reads under mu read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix keeps IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge joins u and v with an undirected edge of weight w and returns its ID.
//
// Steps:
//  1. Validate IDs, loop and weight.
//  2. Lock mu; both endpoints must exist.
//  3. Reject an existing {u,v} pair in either orientation.
//  4. Allocate the edge ID, store the edge and mirror the adjacency.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrInvalidWeight,
// ErrUnknownNode, ErrDuplicateEdge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w int64) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if u == v {
		return "", ErrLoopNotAllowed
	}
	if !g.validWeight(w) {
		return "", ErrInvalidWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return "", ErrUnknownNode
	}
	if _, ok := g.vertices[v]; !ok {
		return "", ErrUnknownNode
	}
	if _, ok := g.adjacency[u][v]; ok {
		return "", ErrDuplicateEdge
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: u, To: v, Weight: w}
	g.link(u, v, eid)
	g.link(v, u, eid)

	return eid, nil
}

// RemoveEdge deletes the edge joining u and v.
// Errors: ErrEdgeNotFound when no such edge exists.
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.adjacency[u][v]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.unlink(u, v)
	g.unlink(v, u)

	return nil
}

// SetWeight replaces the weight of the edge joining u and v.
// The previous *Edge value is left untouched; a new one takes its place.
// Errors: ErrInvalidWeight, ErrEdgeNotFound.
func (g *Graph) SetWeight(u, v string, w int64) error {
	if !g.validWeight(w) {
		return ErrInvalidWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	eid, ok := g.adjacency[u][v]
	if !ok {
		return ErrEdgeNotFound
	}
	old := g.edges[eid]
	g.edges[eid] = &Edge{ID: eid, From: old.From, To: old.To, Weight: w}

	return nil
}

// HasEdge reports whether u and v are adjacent. Orientation does not matter.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edge returns the edge joining u and v.
// Errors: ErrEdgeNotFound.
func (g *Graph) Edge(u, v string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.adjacency[u][v]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Weight returns the weight of the edge joining u and v.
// Errors: ErrEdgeNotFound.
func (g *Graph) Weight(u, v string) (int64, error) {
	e, err := g.Edge(u, v)
	if err != nil {
		return 0, err
	}

	return e.Weight, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return lessEdgeID(out[i].ID, out[j].ID) })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// link records adjacency u→v. Caller holds the write lock.
func (g *Graph) link(u, v, eid string) {
	inner, ok := g.adjacency[u]
	if !ok {
		inner = make(map[string]string)
		g.adjacency[u] = inner
	}
	inner[v] = eid
}

// unlink drops adjacency u→v and an emptied bucket. Caller holds the write lock.
func (g *Graph) unlink(u, v string) {
	delete(g.adjacency[u], v)
	if len(g.adjacency[u]) == 0 {
		delete(g.adjacency, u)
	}
}

// nextEdgeID returns "e<n>" for the next counter value without fmt.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	var buf [1 + 20]byte
	b := append(buf[:0], edgeIDPrefix)
	b = strconv.AppendUint(b, n, 10)

	return string(b)
}
