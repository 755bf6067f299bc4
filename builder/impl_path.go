// SPDX-License-Identifier: MIT
// Package: errand/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Allocates n consecutive vertex ids b..b+n-1.
//   - Emits edges (b+i-1)–(b+i) for i=1..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		b := s.grow(n)
		for i := 1; i < n; i++ {
			s.edge(b+i-1, b+i, cfg.weight())
		}

		return nil
	}
}
