package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netroute/bfs"
	"github.com/katalvlaran/netroute/builder"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid labelled 1..9 row-major.
func ExampleBFS() {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, "1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println("depth of 9:", res.Depth["9"])
	// Output:
	// [1 2 4 3 5 7 6 8 9]
	// depth of 9: 4
}

// ExampleShortestPath finds a fewest-hop route corner to corner.
func ExampleShortestPath() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	path, err := bfs.ShortestPath(context.Background(), g, "1", "9")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, "hops:", len(path)-1)
	// Output:
	// [1 2 3 6 9] hops: 4
}
