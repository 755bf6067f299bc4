// SPDX-License-Identifier: MIT
// Package: errand/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex (r,c) gets id b + r*cols + c (row-major).
//   • For each (r,c) in row-major order emit Right then Bottom if present.
//
// Complexity: O(rows*cols) vertices and edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		b := s.grow(rows * cols)
		var r, c, id int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				id = b + r*cols + c
				if c+1 < cols {
					s.edge(id, id+1, cfg.weight())
				}
				if r+1 < rows {
					s.edge(id, id+cols, cfg.weight())
				}
			}
		}

		return nil
	}
}
