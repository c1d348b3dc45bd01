// Package dijkstra implements Dijkstra's shortest-path algorithm on
// core.Graph values with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source to every
//     reachable vertex using a binary min-heap with lazy decrease-key:
//     improved distances are pushed as new entries and stale ones are
//     skipped when popped.
//   - ShortestPath(ctx, g, src, dst) stops as soon as dst is settled and
//     rebuilds the path from predecessor links.
//   - Equal-distance heap entries are ordered by natural vertex ID, so runs
//     are deterministic.
//
// Options:
//
//   - Source(id)               required start vertex
//   - WithTarget(id)           early exit once id is settled
//   - WithContext(ctx)         cancellation, checked once per heap pop
//   - WithReturnPath()         return the predecessor map
//   - WithMaxDistance(x)       do not explore beyond distance x
//   - WithInfEdgeThreshold(t)  edges with weight ≥ t are walls
//
// Errors:
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrTargetNotFound
//   - ErrNegativeWeight  an edge with weight < 0 exists (checked up front)
//   - ErrNoPath          ShortestPath target unreachable
//   - context errors     propagated from the supplied ctx
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
package dijkstra
