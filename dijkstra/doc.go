// Package dijkstra implements shortest-path searches on core.Graph with
// non-negative integer weights, driven by the addressable heap from
// package indexheap.
//
// Overview:
//
//   - Dijkstra computes distances from one source to every vertex, with
//     optional predecessor slice, distance cap and impassable-edge threshold.
//   - Errand computes the cheapest walk from a source to a destination that
//     visits a first-set vertex (A) and then a second-set vertex (B). It runs
//     Dijkstra over the three-phase state space built by package layered:
//     phase BeforeA, AfterA, AfterB, with zero-weight transitions only at
//     A and B vertices.
//
// Errand search:
//
//  1. Every layered node is pushed once: key 0 for (source, BeforeA), Inf
//     for the rest. Nodes only ever move up via decrease-key.
//  2. The loop extracts the minimum and relaxes arcs whose head is still in
//     the heap, with a strict < so the first-found predecessor is kept.
//  3. Extracting (destination, AfterB) ends the search. Extracting an Inf
//     key means the rest is unreachable and yields ErrNoPath.
//  4. The predecessor chain is mapped back to base vertices; the duplicate
//     a phase transition introduces is collapsed, so a stop appears once.
//
// A vertex in both A and B satisfies both stops at the same position of the
// walk.
//
// Options:
//
//	Source(v)               required
//	Destination(v)          required by Errand
//	WithFirstStops(ids...)  A
//	WithSecondStops(ids...) B
//	Via(a, b)               A and B at once
//	WithReturnPath()        Dijkstra: return predecessors
//	WithMaxDistance(x)      give up beyond distance x (x ≥ 0, else panic)
//	WithInfEdgeThreshold(t) skip edges with weight ≥ t (t > 0, else panic)
//	WithContext(ctx)        cancellation, checked per extraction
//
// Errors (sentinel):
//
//	ErrNilGraph, ErrVertexNotFound, ErrNoPath,
//	ErrBadMaxDistance and ErrBadInfThreshold (panics from option constructors).
//	Bad stop ids surface as a wrapped layered.ErrVertexOutOfRange.
//
// Complexity:
//
//	Dijkstra: O((V + E) log V) time, O(V) space.
//	Errand:   O((V + E) log V) time, O(V + E) space for the layered copy.
//
// Thread safety:
//
//	Every call owns its heap and distance tables, so concurrent calls over
//	the same loaded graph are safe.
package dijkstra
