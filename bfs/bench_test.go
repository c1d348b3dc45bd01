package bfs_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/netroute/bfs"
	"github.com/katalvlaran/netroute/builder"
)

// BenchmarkBFS_Grid measures a full traversal of a 100×100 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "1")
	}
}

// BenchmarkShortestPath_Random measures point-to-point search on a sparse random graph.
func BenchmarkShortestPath_Random(b *testing.B) {
	g, err := builder.Generate(builder.PolicyRandom, 2000, 6000, 1)
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(ctx, g, "1", "2000")
	}
}
