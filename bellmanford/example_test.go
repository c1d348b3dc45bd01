package bellmanford_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netroute/bellmanford"
	"github.com/katalvlaran/netroute/core"
)

// ExampleShortestPath shows a normal query and the negative-cycle failure
// that any reachable negative edge triggers on an undirected graph.
func ExampleShortestPath() {
	g := core.NewGraph(core.WithSignedWeights())
	for _, id := range []string{"1", "2", "3"} {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge("1", "2", 2)
	_, _ = g.AddEdge("2", "3", 2)

	path, cost, _ := bellmanford.ShortestPath(context.Background(), g, "1", "3")
	fmt.Println(path, cost)

	_ = g.SetWeight("2", "3", -1)
	_, _, err := bellmanford.ShortestPath(context.Background(), g, "1", "3")
	fmt.Println(errors.Is(err, bellmanford.ErrNegativeCycle))
	// Output:
	// [1 2 3] 4
	// true
}
