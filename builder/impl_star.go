// SPDX-License-Identifier: MIT
// Package: errand/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first vertex of the block; leaves follow in ascending order.
//   - Emits spokes hub–leaf[i] in increasing leaf order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := s.grow(n)
		for i := 1; i < n; i++ {
			s.edge(hub, hub+i, cfg.weight())
		}

		return nil
	}
}
