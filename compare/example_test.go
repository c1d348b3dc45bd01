package compare_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netroute/compare"
	"github.com/katalvlaran/netroute/core"
	"github.com/katalvlaran/netroute/routing"
)

// ExampleCompare ranks the five algorithms on a small graph where the
// fewest-hop route is not the cheapest one.
func ExampleCompare() {
	g := core.NewGraph()
	for _, id := range []string{"1", "2", "3", "4"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("1", "2", 1)
	_, _ = g.AddEdge("2", "3", 1)
	_, _ = g.AddEdge("1", "3", 5)
	_, _ = g.AddEdge("3", "4", 1)

	rep, err := compare.Compare(context.Background(), g, "1", "4", routing.Kinds())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, k := range rep.Ranking {
		res, _ := rep.Result(k)
		fmt.Printf("%-12s cost=%d hops=%d eff=%.2f %v\n", k.Label(), res.Cost, res.Hops, res.Efficiency, res.Path)
	}
	// Output:
	// Dijkstra     cost=3 hops=3 eff=1.00 [1 2 3 4]
	// Bellman-Ford cost=3 hops=3 eff=1.00 [1 2 3 4]
	// A*           cost=3 hops=3 eff=1.00 [1 2 3 4]
	// BFS          cost=6 hops=2 eff=0.50 [1 3 4]
	// DFS          cost=6 hops=2 eff=0.50 [1 3 4]
}
