// SPDX-License-Identifier: MIT
// Package: errand/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Resolves cfg, runs cons
//     in order on a sketch, then materialises a core.Graph in one pass.
//   - Each constructor allocates its own block of fresh vertex ids, so composing
//     constructors yields a disjoint union in call order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/errand/core"
)

// Constructor appends one deterministic topology to the sketch using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate vertices only through sketch.grow.
//   - Emit edges in a stable, documented order.
type Constructor func(s *sketch, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting core.Graph built with
// gopts. Any constructor error is wrapped with the context "BuildGraph: %w"
// and returned immediately.
//
// Complexity: Σ cost of each constructor + O(V + E) to materialise.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sketch{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.FromEdges(s.n, s.edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// sketch accumulates vertices and edges before the graph is created.
type sketch struct {
	n     int
	edges []core.Edge
}

// grow reserves k fresh vertex ids and returns the first one.
func (s *sketch) grow(k int) int {
	first := s.n
	s.n += k

	return first
}

// edge records u–v with weight w.
func (s *sketch) edge(u, v int, w int64) {
	s.edges = append(s.edges, core.Edge{From: u, To: v, Weight: w})
}
