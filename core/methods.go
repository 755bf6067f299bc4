// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion and read-only queries on Graph.
// Concurrency:
//   - AddEdge takes the write lock; every query takes the read lock.

package core

import "fmt"

// AddEdge records an undirected edge u–v with weight w.
//
// (v,w) is appended to u's adjacency and (u,w) to v's; a permitted self-loop
// is appended once. Parallel edges are always accepted.
//
// Errors: ErrVertexOutOfRange, ErrNegativeWeight, ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: edge %d–%d with n=%d", ErrVertexOutOfRange, u, v, g.n)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d–%d weight=%d", ErrNegativeWeight, u, v, w)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, u)
	}

	g.adjacency[u] = append(g.adjacency[u], Neighbor{To: v, Weight: w})
	if u != v {
		g.adjacency[v] = append(g.adjacency[v], Neighbor{To: u, Weight: w})
	}
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})

	return nil
}

// VertexCount returns the number of vertices V.
func (g *Graph) VertexCount() int {
	// n never changes after construction.
	return g.n
}

// EdgeCount returns the number of edges added so far (parallel edges count
// separately, a self-loop counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool {
	return g.inRange(v)
}

// Neighbors returns the adjacency entries of v in insertion order.
//
// The returned slice is a read-only view into the graph's storage: callers
// must not modify its elements. Its capacity is clipped, so appending to it
// never writes into the graph.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if !g.inRange(v) {
		return nil, fmt.Errorf("%w: vertex %d with n=%d", ErrVertexOutOfRange, v, g.n)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[v]

	return adj[:len(adj):len(adj)], nil
}

// Degree returns the number of adjacency entries of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if !g.inRange(v) {
		return 0, fmt.Errorf("%w: vertex %d with n=%d", ErrVertexOutOfRange, v, g.n)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}

// HasEdge reports whether at least one edge joins u and v.
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	// scan the shorter list; the relation is symmetric
	from, to := u, v
	if len(g.adjacency[v]) < len(g.adjacency[u]) {
		from, to = v, u
	}
	for _, nb := range g.adjacency[from] {
		if nb.To == to {
			return true
		}
	}

	return false
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

func (g *Graph) inRange(v int) bool { return v >= 0 && v < g.n }
