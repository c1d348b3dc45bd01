// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Degree).
// Determinism:
//   - Neighbors() sorts incident edges by Edge.ID sequence.
//   - NeighborIDs() returns adjacent IDs in natural order.
// Concurrency:
//   - Read lock only.

package core

import "sort"

// Neighbors returns the edges incident to id, sorted by Edge.ID sequence.
// The returned *Edge values are shared with the graph and must be treated
// as read-only.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrUnknownNode if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()
		return nil, ErrUnknownNode
	}
	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return lessEdgeID(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in natural order.
//
// Errors: as Neighbors.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()
		return nil, ErrUnknownNode
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	g.mu.RUnlock()

	return SortIDs(out), nil
}

// Degree returns the number of edges incident to id.
// Errors: ErrEmptyVertexID, ErrUnknownNode.
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrUnknownNode
	}

	return len(g.adjacency[id]), nil
}
