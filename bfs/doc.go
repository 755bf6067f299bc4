// Package bfs implements breadth-first search (BFS) on core.Graph,
// computing hop depths, parent links and visit order, plus the
// eccentricity and graph-center queries built on the same traversal.
//
// What & Why:
//
//	BFS explores the graph layer by layer, guaranteeing the minimal number
//	of edges from the start to every reachable vertex. Edge weights are
//	ignored: every edge counts as one hop. The center of a graph is the
//	vertex whose farthest vertex is closest, found by one BFS per vertex.
//
// API:
//
//	BFS(g, start, opts...)   → *Result{Order, Depth, Parent}
//	Result.PathTo(v)         → fewest-hop path start → v
//	Eccentricity(g, s)       → max hop distance from s
//	Center(g, opts...)       → (vertex, eccentricity), lowest id on ties
//	Connected(g)             → whether every vertex is reachable from 0
//
// Options:
//
//	WithContext(ctx)         cancellation, checked per dequeue
//	WithOnVisit(fn)          hook on dequeue; an error aborts the walk
//	WithMaxDepth(d)          stop expanding past depth d (0 = unlimited)
//	WithFilterNeighbor(fn)   skip edges curr→nbr when fn returns false
//
// Complexity:
//
//	BFS, Eccentricity, Connected: O(V + E) time, O(V) memory.
//	Center:                       O(V·(V + E)) time, O(V) memory.
//
// Preconditions:
//
//	Center assumes a connected graph. On disconnected input every
//	eccentricity is taken over the source's own component only.
package bfs
