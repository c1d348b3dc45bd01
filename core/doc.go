// Package core provides a thread-safe in-memory Graph: simple, undirected,
// integer-weighted. It is the model every generator builds and every path
// search reads.
//
// Shape of the model:
//
//   - Vertices are opaque non-empty string IDs.
//   - Edges join two distinct vertices; at most one edge per unordered pair.
//   - Weights are int64 and must be > 0 (WithSignedWeights relaxes this to != 0).
//   - Constant-time adjacency via adjacency[u][v] = edgeID, mirrored for v→u.
//   - Edge IDs are generated atomically ("e1", "e2", …) in insertion order.
//   - One sync.RWMutex guards the whole graph: edits take the write lock,
//     queries the read lock (single writer, many readers).
//
// Deterministic iteration:
//
//	Vertices()     natural order: numeric IDs numerically, then the rest lexicographically
//	NeighborIDs()  natural order
//	Edges()        insertion order
//	Neighbors()    insertion order
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1)
//	HasVertex(id string) bool            // O(1)
//	RemoveVertex(id string) error        // O(deg(v)), cascades incident edges
//
//	// Edge lifecycle
//	AddEdge(u, v string, w int64) (edgeID string, err error) // O(1)
//	RemoveEdge(u, v string) error        // O(1)
//	SetWeight(u, v string, w int64) error
//	HasEdge(u, v string) bool            // orientation-free
//	Edge(u, v string) (*Edge, error)
//	Weight(u, v string) (int64, error)
//
//	// Metrics
//	VertexCount(), EdgeCount(), Degree(id)
//	Density() float64                    // 2|E| / (|V|(|V|-1))
//	IsConnected() bool                   // single traversal
//	Components() [][]string
//	Stats() GraphStats
//
//	// Maintenance
//	Clone() *Graph
//	Clear()
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrDuplicateNode  – vertex already present
//	ErrUnknownNode    – missing vertex
//	ErrDuplicateEdge  – pair already joined
//	ErrInvalidWeight  – weight outside the accepted domain
//	ErrLoopNotAllowed – u == v
//	ErrEdgeNotFound   – missing edge
package core
