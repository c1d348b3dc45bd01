// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries nextEdgeID so edge IDs stay monotonic on the copy.

package core

import "sync/atomic"

// Clone returns a deep copy: configuration, vertices, edges and adjacency.
// Edge IDs are preserved. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.signed = g.signed
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		clone.link(e.From, e.To, eid)
		clone.link(e.To, e.From, eid)
	}

	return clone
}

// Clear removes every vertex and edge and resets the edge ID counter.
// Configuration flags are preserved.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[string]struct{})
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
}
