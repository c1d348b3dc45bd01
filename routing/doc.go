// Package routing puts the five pathfinding algorithms behind one closed
// variant and one call signature.
//
//	p, err := routing.Find(ctx, routing.KindAStar, g, "1", "16",
//	    routing.WithCoordinates(pos.Lookup))
//
// Kind enumerates BFS, DFS, Dijkstra, Bellman-Ford and A*. Path carries the
// result and derives Hops and Cost from the graph.
//
// Guarantees per kind:
//
//   - BFS: fewest hops; ties go to the first discovered route.
//   - DFS: a valid simple path, neither shortest nor cheapest.
//   - Dijkstra, Bellman-Ford: minimum total weight.
//   - A*: minimum total weight when the coordinates never overestimate the
//     remaining cost; with no coordinates it behaves like Dijkstra.
package routing
