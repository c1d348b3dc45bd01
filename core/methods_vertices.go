// File: methods_vertices.go
// Role: Vertex lifecycle and queries: AddVertex/HasVertex/RemoveVertex/
//       Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs in natural order (see LessID).
// Concurrency:
//   - Mutations under mu write lock, reads under mu read lock.

package core

// AddVertex inserts a new isolated vertex.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrDuplicateNode if id already exists.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; ok {
		return ErrDuplicateNode
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes id together with every incident edge.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrUnknownNode if id does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrUnknownNode
	}
	for nb, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		delete(g.adjacency[nb], id)
		if len(g.adjacency[nb]) == 0 {
			delete(g.adjacency, nb)
		}
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in natural order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := g.vertexIDsLocked()
	g.mu.RUnlock()

	return SortIDs(ids)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// vertexIDsLocked returns an unsorted copy of the vertex set. Caller holds mu.
func (g *Graph) vertexIDsLocked() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}

	return ids
}
