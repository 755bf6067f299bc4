// Package errand answers two questions about a weighted undirected graph
// loaded from an edge list:
//
//  1. Where is its center? The vertex whose farthest vertex, counted in
//     hops, is nearest.
//  2. What is the cheapest walk from a source to a destination that first
//     stops at a vertex of set A and then at a vertex of set B?
//
// 🚀 How the errand query works
//
//	The graph is copied into three phases: before A, after A, after B.
//	Zero-weight arcs join the phases only at A vertices (0↔1) and at B
//	vertices (1↔2), so any walk from (source, before A) to
//	(destination, after B) has made both stops in order. Dijkstra over
//	this state space, driven by an addressable heap with decrease-key,
//	yields the answer; the phase copies are folded back into a plain walk.
//
// Packages:
//
//	core/         — integer-vertex undirected multigraph
//	indexheap/    — binary min-heap with position index and decrease-key
//	layered/      — (vertex, phase) state space with transition arcs
//	dijkstra/     — Errand query and plain single-source Dijkstra
//	bfs/          — BFS, eccentricity, center, connectivity
//	builder/      — deterministic graph fixtures (path, cycle, star, grid…)
//	edgelist/     — edge-list text format reader and writer
//	cmd/errand/   — command-line driver (center, path, distances, batch)
//
// Quick example:
//
//	g, _ := edgelist.Parse("5\n0 1 1\n1 2 1\n2 3 1\n3 4 1\n")
//	res, _ := dijkstra.Errand(g,
//	    dijkstra.Source(0), dijkstra.Destination(4),
//	    dijkstra.Via([]int{1}, []int{3}))
//	fmt.Println(res.Weight, res.Walk) // 4 [0 1 2 3 4]
//
//	c, ecc, _ := bfs.Center(g)
//	fmt.Println(c, ecc) // 2 2
package errand
