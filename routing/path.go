package routing

import (
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// Path is an ordered list of vertex IDs from source to destination.
type Path []string

// Hops returns the number of edges on the path; 0 for an empty path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Cost sums the weights of consecutive pairs. It fails with ErrInvalidPath
// when a pair is not an edge of g.
func (p Path) Cost(g *core.Graph) (int64, error) {
	var sum int64
	for i := 1; i < len(p); i++ {
		w, err := g.Weight(p[i-1], p[i])
		if err != nil {
			return 0, fmt.Errorf("%w: %s-%s: %v", ErrInvalidPath, p[i-1], p[i], err)
		}
		sum += w
	}

	return sum, nil
}

// Validate checks that p runs from src to dst along edges of g without
// repeating a vertex.
func (p Path) Validate(g *core.Graph, src, dst string) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0] != src || p[len(p)-1] != dst {
		return fmt.Errorf("%w: runs %s→%s, want %s→%s", ErrInvalidPath, p[0], p[len(p)-1], src, dst)
	}
	seen := make(map[string]struct{}, len(p))
	for i, id := range p {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s repeats", ErrInvalidPath, id)
		}
		seen[id] = struct{}{}
		if i > 0 && !g.HasEdge(p[i-1], id) {
			return fmt.Errorf("%w: %s-%s is not an edge", ErrInvalidPath, p[i-1], id)
		}
	}

	return nil
}
