// Package dfs implements depth-first search on a core.Graph.
//
//   - DFS(g, startID, opts...): iterative walk with an explicit stack. A
//     vertex is marked visited when pushed and keeps the vertex that pushed
//     it; WithStopAt ends the walk when a given vertex is popped.
//   - Path(ctx, g, src, dst): DFS stopped at dst, unwound through Parent.
//     The path is valid but not necessarily shortest; it serves as the
//     baseline next to the optimal searches.
//
// Complexity: O(V + E log d) time, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil              graph pointer is nil
//   - ErrStartVertexNotFound   start vertex ID not in graph
//   - ErrTargetVertexNotFound  destination not in graph (Path)
//   - ErrNoPath                destination unreachable (Path)
//   - context.Canceled         canceled via context
package dfs
