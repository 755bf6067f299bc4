package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/errand/core"
	"github.com/katalvlaran/errand/indexheap"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g. Weights are non-negative by construction of core.Graph.
//
// Returns:
//
//   - dist: dist[v] = minimum distance from Source to v, Inf if unreachable
//     (or beyond MaxDistance).
//   - prev: predecessor slice if ReturnPath is set, nil otherwise.
//     prev[v] == u means one shortest path to v ends with u→v; Unset for
//     the source and unreachable vertices.
//   - err:  ErrNilGraph, ErrVertexNotFound or the context error.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build options
	cfg := buildOptions(opts)

	// 2) Validate graph and source
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Prepare state
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		pq:      indexheap.New(n),
	}
	r.init()

	// 4) Main loop
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64
	prev    []int
	pq      *indexheap.Heap
}

// init sets every distance to Inf and seeds the heap with the source.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Inf
		r.prev[v] = Unset
	}
	r.dist[r.options.Source] = 0
	r.pq.Push(r.options.Source, 0)
}

// process repeatedly extracts the closest open vertex and relaxes its
// edges. A vertex leaves the heap exactly once, so no stale entries exist.
func (r *runner) process() error {
	var (
		u   int
		d   int64
		err error
	)
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		// 1) Closest open vertex; past the cap nothing else matters.
		u, d = r.pq.ExtractMin()
		if d > r.options.MaxDistance {
			r.dist[u] = Inf
			r.prev[u] = Unset
			r.dropOpen()
			break
		}

		// 2) Relax its edges.
		if err = r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax improves tentative distances of u's neighbors via u.
func (r *runner) relax(u int, d int64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	var (
		nb      core.Neighbor
		newDist int64
	)
	for _, nb = range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist = relaxed(d, nb.Weight)
		// strict < keeps the first-found predecessor on ties
		if newDist >= r.dist[nb.To] {
			continue
		}
		r.dist[nb.To] = newDist
		r.prev[nb.To] = u
		if r.pq.Contains(nb.To) {
			r.pq.DecreaseKey(nb.To, newDist)
		} else {
			r.pq.Push(nb.To, newDist)
		}
	}

	return nil
}

// dropOpen forgets the tentative distances still in the heap once the
// distance cap has been passed.
func (r *runner) dropOpen() {
	var u int
	for r.pq.Len() > 0 {
		u, _ = r.pq.ExtractMin()
		r.dist[u] = Inf
		r.prev[u] = Unset
	}
}
