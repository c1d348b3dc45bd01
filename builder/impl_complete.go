// SPDX-License-Identifier: MIT
// Package: netroute/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order.
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity: O(n) vertices + O(n²) edges.
//
// SmallWorld falls back to Complete when the ring degree k reaches n.

package builder

import (
	"github.com/katalvlaran/netroute/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		ids := cfg.ids(n)
		if err := addVertices(g, methodComplete, ids); err != nil {
			return err
		}

		return addCompleteEdges(g, cfg, methodComplete, ids)
	}
}
