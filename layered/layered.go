// SPDX-License-Identifier: MIT
//
// File: layered.go
// Role: Build the three-phase state space of an ordered errand.
// Invariants:
//   - Each base edge (u,v,w) exists as (u,p)–(v,p) with weight w for every phase p.
//   - (a,BeforeA)–(a,AfterA) has weight 0 exactly for a ∈ A.
//   - (b,AfterA)–(b,AfterB) has weight 0 exactly for b ∈ B.
//   - No other arc crosses phases, so reaching AfterB from BeforeA requires
//     an A vertex followed by a B vertex.

package layered

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/errand/core"
)

// Graph is the immutable layered view of a base graph for one pair of stop
// sets. Node ids are dense in [0, NodeCount()) and are translated to and
// from States only through the lookup tables held here.
type Graph struct {
	base *core.Graph
	n    int

	index  [NumPhases][]int // index[phase][vertex] → node id
	states []State          // node id → State
	arcs   [][]Arc          // node id → outgoing arcs

	first  []int // A, ascending and deduplicated
	second []int // B, ascending and deduplicated
	inA    []bool
	inB    []bool
}

// Build replicates g into three phases and links them at the stop vertices.
//
// first (A) and second (B) may contain duplicates and come in any order;
// they are normalised into ascending sets so transition arcs are emitted
// deterministically. g is only read.
//
// Errors: ErrNilGraph, ErrVertexOutOfRange.
// Complexity: O(V + E) time and space (three copies of the adjacency).
func Build(g *core.Graph, first, second []int) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()

	a, err := stopSet(n, "first", first)
	if err != nil {
		return nil, err
	}
	b, err := stopSet(n, "second", second)
	if err != nil {
		return nil, err
	}

	lg := &Graph{
		base:   g,
		n:      n,
		states: make([]State, 0, NumPhases*n),
		arcs:   make([][]Arc, NumPhases*n),
		first:  a,
		second: b,
		inA:    membership(n, a),
		inB:    membership(n, b),
	}

	// 1) Number the states phase by phase.
	var (
		p Phase
		v int
	)
	for p = 0; p < NumPhases; p++ {
		lg.index[p] = make([]int, n)
		for v = 0; v < n; v++ {
			lg.index[p][v] = len(lg.states)
			lg.states = append(lg.states, State{Vertex: v, Phase: p})
		}
	}

	// 2) Copy the base adjacency into every phase.
	var (
		nbs []core.Neighbor
		nb  core.Neighbor
		id  int
	)
	for v = 0; v < n; v++ {
		if nbs, err = g.Neighbors(v); err != nil {
			return nil, fmt.Errorf("layered: neighbors of %d: %w", v, err)
		}
		for p = 0; p < NumPhases; p++ {
			id = lg.index[p][v]
			lg.arcs[id] = make([]Arc, 0, len(nbs)+1)
			for _, nb = range nbs {
				lg.arcs[id] = append(lg.arcs[id], Arc{To: lg.index[p][nb.To], Weight: nb.Weight})
			}
		}
	}

	// 3) Zero-weight transitions at the stop vertices.
	for _, v = range a {
		lg.link(State{Vertex: v, Phase: BeforeA}, State{Vertex: v, Phase: AfterA})
	}
	for _, v = range b {
		lg.link(State{Vertex: v, Phase: AfterA}, State{Vertex: v, Phase: AfterB})
	}

	return lg, nil
}

// link adds a zero-weight arc in both directions between two states.
func (lg *Graph) link(s, t State) {
	i, j := lg.Index(s), lg.Index(t)
	lg.arcs[i] = append(lg.arcs[i], Arc{To: j, Weight: 0})
	lg.arcs[j] = append(lg.arcs[j], Arc{To: i, Weight: 0})
}

// Base returns the graph this view was built from.
func (lg *Graph) Base() *core.Graph { return lg.base }

// NodeCount returns the number of layered nodes (3·V).
func (lg *Graph) NodeCount() int { return len(lg.states) }

// Index returns the dense node id of s. s.Vertex must be a base vertex.
func (lg *Graph) Index(s State) int { return lg.index[s.Phase][s.Vertex] }

// State returns the state behind a dense node id.
func (lg *Graph) State(id int) State { return lg.states[id] }

// Arcs returns the outgoing arcs of node id. The slice must not be modified.
func (lg *Graph) Arcs(id int) []Arc { return lg.arcs[id] }

// FirstStops returns the normalised A set.
func (lg *Graph) FirstStops() []int { return append([]int(nil), lg.first...) }

// SecondStops returns the normalised B set.
func (lg *Graph) SecondStops() []int { return append([]int(nil), lg.second...) }

// InA reports whether v belongs to the first stop set.
func (lg *Graph) InA(v int) bool { return v >= 0 && v < lg.n && lg.inA[v] }

// InB reports whether v belongs to the second stop set.
func (lg *Graph) InB(v int) bool { return v >= 0 && v < lg.n && lg.inB[v] }

// stopSet validates ids against [0,n) and returns them ascending without duplicates.
func stopSet(n int, name string, ids []int) ([]int, error) {
	set := treeset.NewWithIntComparator()
	for _, v := range ids {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: %s stop %d with n=%d", ErrVertexOutOfRange, name, v, n)
		}
		set.Add(v)
	}

	out := make([]int, 0, set.Size())
	for _, x := range set.Values() {
		out = append(out, x.(int))
	}

	return out, nil
}

func membership(n int, ids []int) []bool {
	in := make([]bool, n)
	for _, v := range ids {
		in[v] = true
	}

	return in
}
