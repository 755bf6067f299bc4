package bfs

import (
	"fmt"

	"github.com/katalvlaran/errand/core"
)

// walker holds internal state for a single BFS run.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []int
	head  int
	res   *Result
}

// BFS performs a breadth-first traversal on g starting at start.
// It validates inputs, applies options, and returns a Result or error.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrStartVertexNotFound if start is not a vertex of g.
//   - ErrOptionViolation when an option was rejected.
//   - context.Canceled / DeadlineExceeded on cancellation.
//   - any error returned by the OnVisit hook, wrapped with the vertex id.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	// 1) Graph must be non-nil
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2) Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// 3) Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := newWalker(g, o, start)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// newWalker allocates the per-run tables with every vertex marked Unreached.
func newWalker(g *core.Graph, o BFSOptions, start int) *walker {
	n := g.VertexCount()
	res := &Result{
		Start:  start,
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = Unreached
		res.Parent[i] = Unreached
	}

	return &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res:   res,
	}
}

// loop executes the main BFS loop with cancellation, hooks, and filtering.
func (w *walker) loop() error {
	var (
		curr, depth int
		nbrs        []core.Neighbor
		nb          core.Neighbor
		err         error
	)

	w.enqueue(w.res.Start, Unreached, 0)
	for w.head < len(w.queue) {
		// a) cancellation check per dequeue
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		curr = w.queue[w.head]
		w.head++
		depth = w.res.Depth[curr]

		// b) visit hook
		if err = w.opts.OnVisit(curr, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", curr, err)
		}
		w.res.Order = append(w.res.Order, curr)

		// c) depth limit: no expansion past MaxDepth
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}

		// d) expand neighbors; parallel edges and loops hit the visited check
		if nbrs, err = w.graph.Neighbors(curr); err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", curr, err)
		}
		for _, nb = range nbrs {
			if w.res.Depth[nb.To] != Unreached {
				continue
			}
			if !w.opts.FilterNeighbor(curr, nb.To) {
				continue
			}
			w.enqueue(nb.To, curr, depth+1)
		}
	}

	return nil
}

// enqueue marks v discovered at depth d via parent and appends it to the queue.
func (w *walker) enqueue(v, parent, d int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}
