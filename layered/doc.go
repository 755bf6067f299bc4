// Package layered turns an ordered-errand query into a plain shortest-path
// problem by searching over (vertex, phase) states.
//
// A walk that must visit some vertex of A and later some vertex of B moves
// through three phases:
//
//	BeforeA ──(a ∈ A, w=0)──▶ AfterA ──(b ∈ B, w=0)──▶ AfterB
//
// Every base edge is copied into each phase, so moving around the map never
// changes the phase; only standing on a stop vertex does. A path from
// (source, BeforeA) to (destination, AfterB) therefore exists if and only if
// the base graph has a walk source → A → B → destination, and the two have
// equal weight.
//
// Node ids are dense so that distance, predecessor and heap storage can be
// flat slices. They are produced by Index and read back by State; both are
// table lookups, and no caller does offset arithmetic on ids.
//
// Transition arcs are added in both directions. The search only profits
// from the forward one; the backward arc has weight 0 and never shortens a
// path, which keeps the graph symmetric like its base.
package layered
