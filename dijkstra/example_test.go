package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/dijkstra"
)

// ExampleDijkstra computes all distances from A on a triangle.
func ExampleDijkstra() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleShortestPath recovers the cheapest route, which takes more hops
// than the direct edge.
func ExampleShortestPath() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	path, cost, err := dijkstra.ShortestPath(context.Background(), g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, cost)
	// Output: [A B C] 3
}
