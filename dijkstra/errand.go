package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/errand/core"
	"github.com/katalvlaran/errand/indexheap"
	"github.com/katalvlaran/errand/layered"
)

// Result is the cheapest ordered errand found by Errand.
type Result struct {
	// Weight is the total edge weight of the walk.
	Weight int64
	// Walk lists base vertices from source to destination. A stop where the
	// phase changes appears once.
	Walk []int
	// States is the uncollapsed path through the layered state space.
	States []layered.State
}

// FirstStop returns the vertex at which the walk first moved from BeforeA
// to AfterA, or Unset on an empty Result.
func (r *Result) FirstStop() int { return r.transition(layered.AfterA) }

// SecondStop returns the vertex at which the walk first moved from AfterA
// to AfterB, or Unset on an empty Result.
func (r *Result) SecondStop() int { return r.transition(layered.AfterB) }

func (r *Result) transition(to layered.Phase) int {
	for i := 1; i < len(r.States); i++ {
		if r.States[i].Phase == to && r.States[i-1].Phase == to-1 {
			return r.States[i].Vertex
		}
	}

	return Unset
}

// Errand finds the minimum-weight walk from Source to Destination that
// visits a vertex of FirstStops and, at the same position or later, a
// vertex of SecondStops.
//
// Steps:
//  1. Build the layered graph of g for (FirstStops, SecondStops).
//  2. Push every layered node into an indexed heap: key 0 for
//     (Source, BeforeA), Inf for the rest.
//  3. Extract the minimum; stop on (Destination, AfterB); relax arcs to
//     nodes still in the heap with decrease-key.
//  4. Walk predecessors back to the source, map states to vertices.
//
// Errors (checked in this order):
//   - ErrNilGraph.
//   - ErrVertexNotFound for an unset or out-of-range Source/Destination.
//   - layered.ErrVertexOutOfRange (wrapped) for a bad stop id.
//   - ErrNoPath when the destination cannot be reached after both stops,
//     including empty stop sets and the MaxDistance cap.
//   - the context error on cancellation.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Errand(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate options
	cfg := buildOptions(opts)
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if !g.HasVertex(cfg.Destination) {
		return nil, fmt.Errorf("%w: destination %d", ErrVertexNotFound, cfg.Destination)
	}

	// 2) Layered state space
	lg, err := layered.Build(g, cfg.FirstStops, cfg.SecondStops)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 3) Search
	er := newErrandRunner(lg, cfg)
	if err = er.process(); err != nil {
		return nil, err
	}

	return er.result(), nil
}

// errandRunner holds the mutable state of one Errand search.
type errandRunner struct {
	lg      *layered.Graph
	options Options
	source  int // dense id of (Source, BeforeA)
	target  int // dense id of (Destination, AfterB)
	dist    []int64
	pred    []int
	pq      *indexheap.Heap
}

func newErrandRunner(lg *layered.Graph, cfg Options) *errandRunner {
	n := lg.NodeCount()
	er := &errandRunner{
		lg:      lg,
		options: cfg,
		source:  lg.Index(layered.State{Vertex: cfg.Source, Phase: layered.BeforeA}),
		target:  lg.Index(layered.State{Vertex: cfg.Destination, Phase: layered.AfterB}),
		dist:    make([]int64, n),
		pred:    make([]int, n),
		pq:      indexheap.New(n),
	}
	for id := 0; id < n; id++ {
		er.dist[id] = Inf
		er.pred[id] = Unset
	}
	er.dist[er.source] = 0
	for id := 0; id < n; id++ {
		er.pq.Push(id, er.dist[id])
	}

	return er
}

// process runs the extraction loop until the target is settled.
func (er *errandRunner) process() error {
	var (
		u  int
		d  int64
		to int
		a  layered.Arc
	)
	for er.pq.Len() > 0 {
		select {
		case <-er.options.Ctx.Done():
			return er.options.Ctx.Err()
		default:
		}

		// 1) Closest open node. Inf means everything left is unreachable.
		u, d = er.pq.ExtractMin()
		if d == Inf || d > er.options.MaxDistance {
			break
		}
		if u == er.target {
			return nil
		}

		// 2) Relax arcs to nodes still open.
		for _, a = range er.lg.Arcs(u) {
			to = a.To
			if a.Weight >= er.options.InfEdgeThreshold || !er.pq.Contains(to) {
				continue
			}
			if nd := relaxed(d, a.Weight); nd < er.dist[to] {
				er.dist[to] = nd
				er.pred[to] = u
				er.pq.DecreaseKey(to, nd)
			}
		}
	}

	return fmt.Errorf("%w: %d → %d", ErrNoPath, er.options.Source, er.options.Destination)
}

// result reconstructs the walk ending at the settled target.
func (er *errandRunner) result() *Result {
	// 1) Follow predecessors back to the source.
	var ids []int
	for id := er.target; id != Unset; id = er.pred[id] {
		ids = append(ids, id)
	}

	// 2) Reverse into States and collapse transitions into Walk.
	res := &Result{
		Weight: er.dist[er.target],
		States: make([]layered.State, 0, len(ids)),
		Walk:   make([]int, 0, len(ids)),
	}
	var s layered.State
	for i := len(ids) - 1; i >= 0; i-- {
		s = er.lg.State(ids[i])
		if n := len(res.States); n > 0 {
			prev := res.States[n-1]
			if prev.Vertex == s.Vertex && prev.Phase != s.Phase {
				res.States = append(res.States, s)
				continue
			}
		}
		res.States = append(res.States, s)
		res.Walk = append(res.Walk, s.Vertex)
	}

	return res
}
