// Package core provides the in-memory graph model shared by every errand
// algorithm: an undirected, weighted multigraph over dense integer vertices.
//
// The Graph G = (V,E) has a fixed vertex set [0, V) chosen at construction
// time. Edges are (u, v, w) triples with w ≥ 0; each one is registered
// symmetrically, so (v,w) appears in u's adjacency and (u,w) in v's.
//
//   - Parallel edges are always permitted (multigraph).
//   - Self-loops are rejected unless the graph was built WithLoops().
//   - Adjacency order is insertion order, which keeps every traversal
//     built on top of it deterministic.
//
// Constructors:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error)             // O(n)
//	FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) // O(n+E)
//
// Methods:
//
//	AddEdge(u, v int, w int64) error        // O(1) amortized
//	Neighbors(v int) ([]Neighbor, error)    // O(1), read-only view
//	Degree(v int) (int, error)              // O(1)
//	HasEdge(u, v int) bool                  // O(min deg)
//	Edges() []Edge                          // O(E), copy
//	VertexCount() int, EdgeCount() int      // O(1)
//
// Errors:
//
//	ErrBadVertexCount   – n < 0
//	ErrVertexOutOfRange – vertex id outside [0, V)
//	ErrNegativeWeight   – w < 0
//	ErrLoopNotAllowed   – u == v without WithLoops()
//
// Concurrency: a sync.RWMutex guards the adjacency and edge list. Once a graph
// is loaded it may be shared read-only by any number of concurrent queries.
package core
