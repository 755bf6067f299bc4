package bfs

import (
	"fmt"

	"github.com/katalvlaran/errand/core"
)

// sweeper is the hook-free BFS loop behind Center. It runs one pass per
// source and reuses its depth and queue buffers between them, where BFS
// would allocate a fresh Result for each of the V sources.
type sweeper struct {
	graph *core.Graph
	depth []int
	queue []int
}

func newSweeper(g *core.Graph) *sweeper {
	n := g.VertexCount()

	return &sweeper{
		graph: g,
		depth: make([]int, n),
		queue: make([]int, 0, n),
	}
}

// run returns the eccentricity of s over the vertices it reaches.
func (sw *sweeper) run(s int) (ecc int, err error) {
	var (
		head, curr int
		nbrs       []core.Neighbor
		nb         core.Neighbor
	)
	for i := range sw.depth {
		sw.depth[i] = Unreached
	}
	sw.queue = append(sw.queue[:0], s)
	sw.depth[s] = 0

	for head < len(sw.queue) {
		curr = sw.queue[head]
		head++
		if sw.depth[curr] > ecc {
			ecc = sw.depth[curr]
		}
		if nbrs, err = sw.graph.Neighbors(curr); err != nil {
			return 0, fmt.Errorf("bfs: neighbors of %d: %w", curr, err)
		}
		for _, nb = range nbrs {
			if sw.depth[nb.To] == Unreached {
				sw.depth[nb.To] = sw.depth[curr] + 1
				sw.queue = append(sw.queue, nb.To)
			}
		}
	}

	return ecc, nil
}

// Eccentricity returns the largest hop distance from s to any vertex it
// reaches. Unreachable vertices are ignored.
func Eccentricity(g *core.Graph, s int) (int, error) {
	res, err := BFS(g, s)
	if err != nil {
		return 0, err
	}

	return res.MaxDepth(), nil
}

// Center returns the vertex of minimum eccentricity together with that
// eccentricity. Ties resolve to the lowest vertex id.
//
// The graph is expected to be connected. On a disconnected graph each
// eccentricity only covers the component of its source, so the answer is
// meaningless; use Connected to check beforehand.
//
// Only WithContext is honoured among opts; the context is checked before
// every source vertex.
//
// Complexity: O(V·(V+E)) time, O(V) memory.
func Center(g *core.Graph, opts ...Option) (center, ecc int, err error) {
	if g == nil {
		return 0, 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, 0, o.err
	}
	n := g.VertexCount()
	if n == 0 {
		return 0, 0, ErrEmptyGraph
	}

	sw := newSweeper(g)
	center, ecc = -1, 0
	var s, e int
	for s = 0; s < n; s++ {
		select {
		case <-o.Ctx.Done():
			return 0, 0, o.Ctx.Err()
		default:
		}
		if e, err = sw.run(s); err != nil {
			return 0, 0, err
		}
		// strict < keeps the first (lowest) id on ties
		if center < 0 || e < ecc {
			center, ecc = s, e
		}
	}

	return center, ecc, nil
}

// Connected reports whether every vertex is reachable from vertex 0.
// Graphs with zero or one vertex are connected; a nil graph is not.
func Connected(g *core.Graph) bool {
	if g == nil {
		return false
	}
	n := g.VertexCount()
	if n <= 1 {
		return true
	}
	res, err := BFS(g, 0)

	return err == nil && len(res.Order) == n
}
