// SPDX-License-Identifier: MIT
// Package: netroute/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbor per cell).
//   • Cell (r,c) gets ID cfg.idFn(r*cols + c): row-major, so the default
//     scheme labels cells "1".."rows*cols".
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices in row-major order.
//   • For each (r,c) emits Right then Bottom when present.
//
// Complexity: O(rows*cols) vertices and edges; O(rows*cols) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netroute/core"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids := cfg.ids(rows * cols)
		if err := addVertices(g, methodGrid, ids); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := addWeightedEdge(g, cfg, methodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addWeightedEdge(g, cfg, methodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
