// Package bellmanford implements the Bellman-Ford single-source shortest
// path algorithm on core.Graph values.
//
// Unlike Dijkstra it tolerates negative weights (on graphs built with
// core.WithSignedWeights) and reports ErrNegativeCycle instead of a wrong
// answer. Because every edge is undirected, any negative edge reachable
// from the source forms a negative cycle of length two, so in practice the
// package returns correct distances on positive graphs and a cycle error
// otherwise.
//
// BellmanFord(g, Source(id), WithContext(ctx)) returns distance and
// predecessor maps. ShortestPath(ctx, g, src, dst) returns the path and its
// cost, or ErrNoPath.
//
// Complexity: O(V·E) time with early exit on a quiet round, O(V) space.
package bellmanford
