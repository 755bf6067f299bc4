package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/errand/builder"
	"github.com/katalvlaran/errand/core"
	"github.com/katalvlaran/errand/dijkstra"
)

// allPairs computes every shortest distance with Floyd–Warshall.
func allPairs(g *core.Graph) [][]int64 {
	n := g.VertexCount()
	d := make([][]int64, n)
	for i := range d {
		d[i] = make([]int64, n)
		for j := range d[i] {
			d[i][j] = dijkstra.Inf
		}
		d[i][i] = 0
	}
	for _, e := range g.Edges() {
		if e.Weight < d[e.From][e.To] {
			d[e.From][e.To] = e.Weight
			d[e.To][e.From] = e.Weight
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k] == dijkstra.Inf || d[k][j] == dijkstra.Inf {
					continue
				}
				if s := d[i][k] + d[k][j]; s < d[i][j] {
					d[i][j] = s
				}
			}
		}
	}

	return d
}

// bruteErrand is the cheapest s→a→b→t over every a ∈ first, b ∈ second.
func bruteErrand(d [][]int64, s, t int, first, second []int) int64 {
	best := dijkstra.Inf
	for _, a := range first {
		for _, b := range second {
			if d[s][a] == dijkstra.Inf || d[a][b] == dijkstra.Inf || d[b][t] == dijkstra.Inf {
				continue
			}
			if w := d[s][a] + d[a][b] + d[b][t]; w < best {
				best = w
			}
		}
	}

	return best
}

// lightestEdge returns the smallest weight among parallel u–v edges.
func lightestEdge(g *core.Graph, u, v int) (int64, bool) {
	best, ok := dijkstra.Inf, false
	for _, e := range g.Edges() {
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			if e.Weight < best {
				best, ok = e.Weight, true
			}
		}
	}

	return best, ok
}

// randomGraph builds a seeded sparse graph with weights in [0,9].
func randomGraph(t testing.TB, seed int64, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(0, 9)),
		},
		builder.RandomSparse(n, 0.4))
	require.NoError(t, err)

	return g
}

// randomSubset draws a possibly empty subset of [0,n).
func randomSubset(rng *rand.Rand, n int) []int {
	var out []int
	for v := 0; v < n; v++ {
		if rng.Intn(3) == 0 {
			out = append(out, v)
		}
	}

	return out
}
