// File: methods_metrics.go
// Role: Whole-graph metrics: Density, IsConnected, Components, Stats.
// Concurrency:
//   - Each public method takes the read lock once and computes on a
//     consistent snapshot.

package core

import "math"

// GraphStats summarizes a graph at one instant.
type GraphStats struct {
	Vertices   int
	Edges      int
	Density    float64
	Connected  bool
	Components int

	// Weight extremes and total; all zero on an edgeless graph.
	MinWeight   int64
	MaxWeight   int64
	TotalWeight int64
}

// Density returns 2|E| / (|V|(|V|-1)) for |V| > 1, otherwise 0.
func (g *Graph) Density() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return density(len(g.vertices), len(g.edges))
}

// IsConnected reports whether every vertex is reachable from the first one.
// The empty graph and a single vertex are connected.
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.componentsLocked()) <= 1
}

// Components returns the connected components, each in natural order,
// ordered by their smallest member.
func (g *Graph) Components() [][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.componentsLocked()
}

// Stats computes GraphStats under a single read lock.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	comps := g.componentsLocked()
	st := GraphStats{
		Vertices:   len(g.vertices),
		Edges:      len(g.edges),
		Density:    density(len(g.vertices), len(g.edges)),
		Connected:  len(comps) <= 1,
		Components: len(comps),
	}
	if len(g.edges) == 0 {
		return st
	}
	st.MinWeight, st.MaxWeight = math.MaxInt64, math.MinInt64
	for _, e := range g.edges {
		st.TotalWeight += e.Weight
		st.MinWeight = min(st.MinWeight, e.Weight)
		st.MaxWeight = max(st.MaxWeight, e.Weight)
	}

	return st
}

func density(v, e int) float64 {
	if v < 2 {
		return 0
	}

	return 2 * float64(e) / (float64(v) * float64(v-1))
}

// componentsLocked labels components with an iterative BFS seeded in
// natural vertex order. Caller holds mu.
func (g *Graph) componentsLocked() [][]string {
	ids := SortIDs(g.vertexIDsLocked())
	seen := make(map[string]bool, len(ids))
	var comps [][]string
	var queue []string
	for _, root := range ids {
		if seen[root] {
			continue
		}
		seen[root] = true
		comp := []string{root}
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for nb := range g.adjacency[u] {
				if !seen[nb] {
					seen[nb] = true
					comp = append(comp, nb)
					queue = append(queue, nb)
				}
			}
		}
		comps = append(comps, SortIDs(comp))
	}

	return comps
}
