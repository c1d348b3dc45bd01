// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - WithStopAt ends the search the moment a target is discovered;
//     ShortestPath is built on it.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in natural ID order and BFS enqueues
//	them in that order, so the visit sequence and the chosen fewest-hop path
//	are reproducible. Among equal-hop paths the first discovered wins; edge
//	weights play no part, so the result need not be the cheapest path.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d) (neighbor lists are sorted per expansion)
//   - Memory: O(V)
//
// Cancellation
//
//	The context passed via WithContext is checked once per dequeued vertex.
package bfs
