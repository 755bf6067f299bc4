// SPDX-License-Identifier: MIT
// Package: errand/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i–(i+1)%n for i=0..n-1 (relative to the block).
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		b := s.grow(n)
		for i := 0; i < n; i++ {
			// i == n-1 closes the ring back to the first vertex
			s.edge(b+i, b+(i+1)%n, cfg.weight())
		}

		return nil
	}
}
