// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/edge value types, graph options, sentinel errors and the
//       NewGraph/FromEdges constructors.
// Policy:
//   - Vertices are dense integers in [0, VertexCount()); they are fixed at
//     construction and never renumbered.
//   - Every accepted edge is recorded symmetrically (undirected).
//   - Invalid input is rejected with a sentinel error; nothing is clamped.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count was requested.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrTooManyVertices indicates a vertex count above MaxVertices.
	ErrTooManyVertices = errors.New("core: too many vertices")

	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// MaxVertices is the largest vertex count NewGraph accepts.
const MaxVertices = 1 << 24

// Edge is an undirected weighted connection as supplied by the caller.
// From and To carry no orientation; they only preserve insertion order.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Neighbor is one adjacency entry: the vertex on the other end of an edge
// and the weight of that edge. Parallel edges produce repeated entries.
type Neighbor struct {
	To     int
	Weight int64
}

// GraphOption configures a Graph before any edge is added.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// A self-loop is recorded once in its vertex's adjacency.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithEdgeCapacity preallocates storage for the expected number of edges.
// Non-positive hints are ignored.
func WithEdgeCapacity(hint int) GraphOption {
	return func(g *Graph) {
		if hint > 0 {
			g.edgeHint = hint
		}
	}
}

// Graph is an undirected weighted multigraph over a fixed vertex set [0, n).
//
// adjacency[v] lists every (neighbor, weight) pair incident to v in the order
// the edges were added; edges keeps the caller's triples in insertion order.
// mu guards both slices, so a fully loaded graph can be shared read-only
// between goroutines.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool
	edgeHint   int

	n         int
	adjacency [][]Neighbor
	edges     []Edge
}

// NewGraph creates an edgeless graph with n vertices numbered 0..n-1.
// Returns ErrBadVertexCount if n < 0 and ErrTooManyVertices if
// n > MaxVertices.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadVertexCount, n)
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: n=%d, max %d", ErrTooManyVertices, n, MaxVertices)
	}
	g := &Graph{n: n}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make([][]Neighbor, n)
	g.edges = make([]Edge, 0, g.edgeHint)

	return g, nil
}

// FromEdges builds a graph with n vertices and the given edges.
// The first invalid edge aborts construction; the returned error names its
// index and wraps the core sentinel.
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	opts = append([]GraphOption{WithEdgeCapacity(len(edges))}, opts...)
	g, err := NewGraph(n, opts...)
	if err != nil {
		return nil, err
	}

	var (
		i int
		e Edge
	)
	for i, e = range edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("core: edge #%d: %w", i, err)
		}
	}

	return g, nil
}
