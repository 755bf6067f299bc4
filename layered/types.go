// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Phase/State/Arc value types and sentinel errors of the layered state space.

package layered

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Build.
var (
	// ErrNilGraph indicates a nil base graph.
	ErrNilGraph = errors.New("layered: base graph is nil")

	// ErrVertexOutOfRange indicates a stop vertex outside the base vertex range.
	ErrVertexOutOfRange = errors.New("layered: stop vertex out of range")
)

// Phase is the progress of a walk through the ordered constraint.
type Phase uint8

const (
	// BeforeA: no first-set vertex has been visited yet.
	BeforeA Phase = iota
	// AfterA: a first-set vertex was visited, no second-set vertex since.
	AfterA
	// AfterB: the constraint is satisfied.
	AfterB

	// NumPhases is the number of layers.
	NumPhases = 3
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case BeforeA:
		return "before-A"
	case AfterA:
		return "after-A"
	case AfterB:
		return "after-B"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// State is one node of the layered graph: a base vertex seen in a phase.
type State struct {
	Vertex int
	Phase  Phase
}

// String implements fmt.Stringer, e.g. "4@after-B".
func (s State) String() string {
	return fmt.Sprintf("%d@%s", s.Vertex, s.Phase)
}

// Arc is an outgoing connection of a layered node, addressed by dense node id.
type Arc struct {
	To     int
	Weight int64
}
