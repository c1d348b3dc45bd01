// SPDX-License-Identifier: MIT
// Package: netroute/builder
//
// impl_reweight.go: Reweight() post-pass.
//
// Contract:
//   • Redraws every edge weight through cfg.weightFn, visiting edges in
//     insertion order so the outcome is fixed by the RNG state.
//   • Topology is untouched.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// Reweight returns a Constructor that assigns a fresh weight to every edge
// already present in g.
func Reweight() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, e := range g.Edges() {
			w := cfg.weightFn(cfg.rng)
			if err := g.SetWeight(e.From, e.To, w); err != nil {
				return fmt.Errorf("%s: SetWeight(%s-%s, w=%d): %w", methodReweight, e.From, e.To, w, err)
			}
		}

		return nil
	}
}
