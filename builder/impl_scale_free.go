// SPDX-License-Identifier: MIT
// Package: netroute/builder
//
// impl_scale_free.go: ScaleFree(n, m) constructor (Barabási–Albert).
//
// Model:
//   • Seed graph: a star on m+1 vertices (index 0 is the hub).
//   • Every later vertex attaches to m distinct existing vertices drawn from
//     a degree-weighted pool (each vertex appears once per incident edge).
//   • m is clamped to n-1, so the result is always connected.
//
// Contract:
//   • n ≥ 1, m ≥ 1 (else ErrTooFewVertices); requires cfg.rng.
//
// Complexity: O(n*m) expected.

package builder

import (
	"github.com/katalvlaran/netroute/core"
)

// ScaleFree returns a Constructor for a preferential-attachment graph where
// each new vertex brings m edges.
func ScaleFree(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodScaleFree, "n", n, 1); err != nil {
			return err
		}
		if err := validateMin(methodScaleFree, "m", m, minScaleFreeDegree); err != nil {
			return err
		}
		if err := validateRNG(methodScaleFree, cfg); err != nil {
			return err
		}
		m = min(m, n-1)

		ids := cfg.ids(n)
		if err := addVertices(g, methodScaleFree, ids); err != nil {
			return err
		}

		// Star seed on indices 0..m; pool holds one entry per edge endpoint.
		pool := make([]int, 0, 2*n*max(m, 1))
		for leaf := 1; leaf <= m; leaf++ {
			if err := addWeightedEdge(g, cfg, methodScaleFree, ids[0], ids[leaf]); err != nil {
				return err
			}
			pool = append(pool, 0, leaf)
		}

		chosen := make(map[int]struct{}, m)
		targets := make([]int, 0, m)
		for src := m + 1; src < n; src++ {
			clear(chosen)
			targets = targets[:0]
			for len(targets) < m {
				t := pool[cfg.rng.Intn(len(pool))]
				if _, dup := chosen[t]; dup {
					continue
				}
				chosen[t] = struct{}{}
				targets = append(targets, t)
			}
			for _, t := range targets {
				if err := addWeightedEdge(g, cfg, methodScaleFree, ids[src], ids[t]); err != nil {
					return err
				}
				pool = append(pool, t, src)
			}
		}

		return nil
	}
}
