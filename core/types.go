// File: types.go
// Role: Edge, Graph, GraphOption, the sentinel errors and NewGraph.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrDuplicateNode  - AddVertex on an existing ID.
//	ErrUnknownNode    - operation referenced a missing vertex.
//	ErrDuplicateEdge  - {u,v} already joined (either orientation).
//	ErrInvalidWeight  - weight <= 0 (or == 0 on signed graphs).
//	ErrLoopNotAllowed - AddEdge(v, v).
//	ErrEdgeNotFound   - requested edge does not exist.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateNode indicates AddVertex was called with an ID already present.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrUnknownNode indicates an operation referenced a non-existent vertex.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrDuplicateEdge indicates the unordered pair {u,v} already has an edge.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrInvalidWeight indicates a weight outside the graph's accepted domain.
	ErrInvalidWeight = errors.New("core: invalid weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is an undirected weighted connection between two distinct vertices.
//
// From and To record the orientation the edge was added with; the edge is
// traversable both ways. Edges handed out by a Graph are never mutated
// afterwards: SetWeight installs a fresh *Edge instead.
type Edge struct {
	// ID is "e1", "e2", ... in insertion order.
	ID string

	// From is the first endpoint passed to AddEdge.
	From string

	// To is the second endpoint passed to AddEdge.
	To string

	// Weight is the traversal cost.
	Weight int64
}

// Other returns the endpoint opposite to id. If id is not an endpoint, it
// returns From.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithSignedWeights accepts negative edge weights. Zero stays invalid.
// Only Bellman-Ford is defined on such graphs; the other searches reject them.
func WithSignedWeights() GraphOption {
	return func(g *Graph) { g.signed = true }
}

// Graph is a thread-safe, simple, weighted, undirected graph.
//
// mu guards every field below it. Mutators hold the write lock, queries
// the read lock, so a comparison run never observes a half-applied edit.
type Graph struct {
	mu sync.RWMutex

	signed bool // negative weights accepted

	nextEdgeID uint64              // monotonic edge counter
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID → Edge

	// adjacency[u][v] = edge ID, mirrored for v→u.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph. By default only positive weights are
// accepted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// SignedWeights reports whether the graph accepts negative weights.
func (g *Graph) SignedWeights() bool { return g.signed }

// validWeight reports whether w is acceptable for this graph.
func (g *Graph) validWeight(w int64) bool {
	if g.signed {
		return w != 0
	}

	return w > 0
}
