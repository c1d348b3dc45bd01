// SPDX-License-Identifier: MIT
// Package: netroute/builder
//
// impl_small_world.go: SmallWorld(n, k, p) constructor (Watts–Strogatz).
//
// Model:
//   1. Ring lattice: vertex i joins i+1..i+k/2 (mod n).
//   2. Rewiring: for each lattice offset j=1..k/2, for each u, with
//      probability p replace u–(u+j) by u–w, w uniform among vertices that
//      are neither u nor already adjacent to u. A vertex already adjacent to
//      every other vertex is skipped.
//   3. k ≥ n yields the complete graph K_n.
//
// Contract:
//   • n ≥ 1, k ≥ 2 (else ErrTooFewVertices); p ∈ [0,1] (else
//     ErrInvalidProbability); requires cfg.rng.
//   • Rewiring can disconnect the graph; callers needing connectivity check
//     IsConnected.
//
// Complexity: O(n*k) expected.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// SmallWorld returns a Constructor for a Watts–Strogatz graph.
func SmallWorld(n, k int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodSmallWorld, "n", n, 1); err != nil {
			return err
		}
		if err := validateMin(methodSmallWorld, "k", k, minSmallWorldDegree); err != nil {
			return err
		}
		if err := validateProbability(methodSmallWorld, p); err != nil {
			return err
		}
		if err := validateRNG(methodSmallWorld, cfg); err != nil {
			return err
		}
		if k >= n {
			return Complete(n)(g, cfg)
		}

		ids := cfg.ids(n)
		if err := addVertices(g, methodSmallWorld, ids); err != nil {
			return err
		}

		half := k / 2
		for j := 1; j <= half; j++ {
			for i := 0; i < n; i++ {
				if err := addWeightedEdge(g, cfg, methodSmallWorld, ids[i], ids[(i+j)%n]); err != nil {
					return err
				}
			}
		}

		for j := 1; j <= half; j++ {
			for i := 0; i < n; i++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				u, v := ids[i], ids[(i+j)%n]
				if deg, _ := g.Degree(u); deg >= n-1 {
					continue
				}
				w := ids[cfg.rng.Intn(n)]
				for w == u || g.HasEdge(u, w) {
					w = ids[cfg.rng.Intn(n)]
				}
				if err := g.RemoveEdge(u, v); err != nil {
					if errors.Is(err, core.ErrEdgeNotFound) {
						continue
					}
					return fmt.Errorf("%s: RemoveEdge(%s-%s): %w", methodSmallWorld, u, v, err)
				}
				if err := addWeightedEdge(g, cfg, methodSmallWorld, u, w); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
