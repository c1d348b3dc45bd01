package dfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netroute/builder"
	"github.com/katalvlaran/netroute/dfs"
)

// ExampleDFS prints the pop order of a 2×3 grid traversal.
func ExampleDFS() {
	// 1 2 3
	// 4 5 6
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	res, err := dfs.DFS(g, "1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [1 4 5 6 3 2]
}

// ExamplePath shows that the depth-first route need not be the shortest.
func ExamplePath() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(2, 3))
	path, err := dfs.Path(context.Background(), g, "1", "3")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, "hops:", len(path)-1)
	// Output:
	// [1 4 5 6 3] hops: 4
}
