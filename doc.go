// Package netroute compares shortest-path algorithms on undirected weighted
// graphs, either generated or loaded from a snapshot.
//
// Packages:
//
//	core/           thread-safe Graph, Vertex, Edge types, metrics
//	builder/        constructors and the four generation policies
//	bfs/ dfs/       unweighted searches (fewest hops, first found)
//	dijkstra/       non-negative weighted shortest paths
//	bellmanford/    shortest paths with negative-cycle detection
//	astar/          heuristic search over vertex coordinates
//	routing/        Kind enumeration, Path type, one Find entry point
//	compare/        runs several Kinds on one query and ranks them
//	layout/         circular, grid and random positions
//	snapshot/       JSON graph files, validated, optionally compressed
//	chart/          HTML rendering of a graph and a comparison
//	config/         TOML configuration
//	cmd/netroute/   the command-line tool
//
// Quick example:
//
//	g, _ := builder.Generate(builder.PolicyGrid, 16, 0, 1)
//	rep, _ := compare.Compare(ctx, g, "1", "16", routing.Kinds())
//	_ = rep.WriteText(os.Stdout)
//
//	    1───2───3───4
//	    │   │   │   │
//	    5───6───7───8
//	   ...
package netroute
