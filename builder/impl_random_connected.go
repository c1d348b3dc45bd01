// SPDX-License-Identifier: MIT
// Package: netroute/builder
//
// impl_random_connected.go: RandomConnected(n, target) constructor.
//
// Model:
//   1. Random spanning tree: start from one random vertex; repeatedly join a
//      random already-connected vertex to a random unconnected one. This gives
//      exactly n-1 edges and a connected graph.
//   2. Extra edges: up to extraEdgeAttemptFactor*n random pair draws, skipping
//      loops and existing pairs, until |E| reaches target.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); target ≥ 0 (else ErrBadSize).
//   • target < n-1 is clamped up to n-1; target above n(n-1)/2 is clamped down.
//   • Requires cfg.rng (ErrNeedRandSource).
//
// Complexity: O(n + extraEdgeAttemptFactor*n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// RandomConnected returns a Constructor for a connected random graph with
// about target edges.
func RandomConnected(n, target int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomConnected, "n", n, 1); err != nil {
			return err
		}
		if target < 0 {
			return fmt.Errorf("%s: target=%d: %w", methodRandomConnected, target, ErrBadSize)
		}
		if err := validateRNG(methodRandomConnected, cfg); err != nil {
			return err
		}

		ids := cfg.ids(n)
		if err := addVertices(g, methodRandomConnected, ids); err != nil {
			return err
		}

		// 1) spanning tree
		start := cfg.rng.Intn(n)
		connected := make([]string, 0, n)
		connected = append(connected, ids[start])
		unconnected := make([]string, 0, n-1)
		unconnected = append(unconnected, ids[:start]...)
		unconnected = append(unconnected, ids[start+1:]...)
		for len(unconnected) > 0 {
			u := connected[cfg.rng.Intn(len(connected))]
			j := cfg.rng.Intn(len(unconnected))
			v := unconnected[j]
			unconnected[j] = unconnected[len(unconnected)-1]
			unconnected = unconnected[:len(unconnected)-1]
			if err := addWeightedEdge(g, cfg, methodRandomConnected, u, v); err != nil {
				return err
			}
			connected = append(connected, v)
		}

		// 2) extra edges
		limit := min(target, n*(n-1)/2)
		for attempts := extraEdgeAttemptFactor * n; attempts > 0 && g.EdgeCount() < limit; attempts-- {
			u, v := ids[cfg.rng.Intn(n)], ids[cfg.rng.Intn(n)]
			if u == v || g.HasEdge(u, v) {
				continue
			}
			if err := addWeightedEdge(g, cfg, methodRandomConnected, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
