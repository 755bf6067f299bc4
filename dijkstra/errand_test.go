package dijkstra_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/errand/builder"
	"github.com/katalvlaran/errand/core"
	"github.com/katalvlaran/errand/dijkstra"
	"github.com/katalvlaran/errand/layered"
)

// ErrandSuite runs errand scenarios over a unit-weight path 0–1–2–3–4.
type ErrandSuite struct {
	suite.Suite
	path *core.Graph
}

func (s *ErrandSuite) SetupTest() {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	s.Require().NoError(err)
	s.path = g
}

func (s *ErrandSuite) TestStraightThrough() {
	res, err := dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(4),
		dijkstra.Via([]int{1}, []int{3}))
	s.Require().NoError(err)
	s.Equal(int64(4), res.Weight)
	s.Equal([]int{0, 1, 2, 3, 4}, res.Walk)
	s.Equal(1, res.FirstStop())
	s.Equal(3, res.SecondStop())
	s.Len(res.States, 7, "two transitions add two states")
}

func (s *ErrandSuite) TestDetourWhenFirstStopIsFar() {
	// A at the end of the path, B just before it: walk to 4, back to 3, on to 4.
	res, err := dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(4),
		dijkstra.WithFirstStops(4), dijkstra.WithSecondStops(3))
	s.Require().NoError(err)
	s.Equal(int64(6), res.Weight)
	s.Equal([]int{0, 1, 2, 3, 4, 3, 4}, res.Walk)
}

func (s *ErrandSuite) TestBacktrackToSecondStop() {
	res, err := dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(2),
		dijkstra.Via([]int{2}, []int{0}))
	s.Require().NoError(err)
	s.Equal(int64(6), res.Weight)
	s.Equal([]int{0, 1, 2, 1, 0, 1, 2}, res.Walk)
	s.Equal(2, res.FirstStop())
	s.Equal(0, res.SecondStop())
}

func (s *ErrandSuite) TestSharedStop() {
	res, err := dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(4),
		dijkstra.Via([]int{2}, []int{2}))
	s.Require().NoError(err)
	s.Equal(int64(4), res.Weight)
	s.Equal([]int{0, 1, 2, 3, 4}, res.Walk)
	s.Equal(2, res.FirstStop())
	s.Equal(2, res.SecondStop())
}

func (s *ErrandSuite) TestDestinationIsSecondStop() {
	res, err := dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(2),
		dijkstra.Via([]int{1}, []int{2}))
	s.Require().NoError(err)
	s.Equal(int64(2), res.Weight)
	s.Equal([]int{0, 1, 2}, res.Walk)
	s.Equal(2, res.SecondStop())
}

func (s *ErrandSuite) TestSourceIsEverything() {
	res, err := dijkstra.Errand(s.path,
		dijkstra.Source(3), dijkstra.Destination(3),
		dijkstra.Via([]int{3}, []int{3}))
	s.Require().NoError(err)
	s.Equal(int64(0), res.Weight)
	s.Equal([]int{3}, res.Walk)
	s.Equal([]layered.State{
		{Vertex: 3, Phase: layered.BeforeA},
		{Vertex: 3, Phase: layered.AfterA},
		{Vertex: 3, Phase: layered.AfterB},
	}, res.States)
}

func (s *ErrandSuite) TestNoPath() {
	_, err := dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(4),
		dijkstra.WithFirstStops(1))
	s.ErrorIs(err, dijkstra.ErrNoPath, "empty second set")

	_, err = dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(4),
		dijkstra.Via([]int{1}, []int{3}), dijkstra.WithMaxDistance(3))
	s.ErrorIs(err, dijkstra.ErrNoPath, "capped below the answer")

	_, err = dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(4),
		dijkstra.Via([]int{1}, []int{3}), dijkstra.WithInfEdgeThreshold(1))
	s.ErrorIs(err, dijkstra.ErrNoPath, "every edge walled")
}

func (s *ErrandSuite) TestValidation() {
	_, err := dijkstra.Errand(nil, dijkstra.Source(0), dijkstra.Destination(1))
	s.ErrorIs(err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Errand(s.path, dijkstra.Destination(1))
	s.ErrorIs(err, dijkstra.ErrVertexNotFound, "source unset")

	_, err = dijkstra.Errand(s.path, dijkstra.Source(0), dijkstra.Destination(5))
	s.ErrorIs(err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(4),
		dijkstra.Via([]int{1}, []int{9}))
	s.ErrorIs(err, layered.ErrVertexOutOfRange)
}

func (s *ErrandSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.Errand(s.path,
		dijkstra.Source(0), dijkstra.Destination(4),
		dijkstra.Via([]int{1}, []int{3}), dijkstra.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

func TestErrandSuite(t *testing.T) {
	suite.Run(t, new(ErrandSuite))
}

func TestErrand_Disconnected(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Path(2))
	require.NoError(t, err)

	_, err = dijkstra.Errand(g,
		dijkstra.Source(0), dijkstra.Destination(4),
		dijkstra.Via([]int{1}, []int{3}))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// TestErrand_MatchesBruteForce checks weight optimality and walk validity
// against Floyd–Warshall on small seeded graphs.
func TestErrand_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for seed := int64(1); seed <= 60; seed++ {
		n := 2 + int(seed%7)
		g := randomGraph(t, seed, n)
		d := allPairs(g)

		src, dst := rng.Intn(n), rng.Intn(n)
		first, second := randomSubset(rng, n), randomSubset(rng, n)
		want := bruteErrand(d, src, dst, first, second)

		res, err := dijkstra.Errand(g,
			dijkstra.Source(src), dijkstra.Destination(dst),
			dijkstra.Via(first, second))
		if want == dijkstra.Inf {
			assert.ErrorIs(t, err, dijkstra.ErrNoPath, "seed %d", seed)
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, want, res.Weight, "seed %d", seed)
		assertValidWalk(t, g, res, src, dst, first, second)
	}
}

// assertValidWalk checks endpoints, adjacency, weight and stop order.
func assertValidWalk(t *testing.T, g *core.Graph, res *dijkstra.Result, src, dst int, first, second []int) {
	t.Helper()
	require.NotEmpty(t, res.Walk)
	assert.Equal(t, src, res.Walk[0])
	assert.Equal(t, dst, res.Walk[len(res.Walk)-1])

	var sum int64
	for i := 1; i < len(res.Walk); i++ {
		w, ok := lightestEdge(g, res.Walk[i-1], res.Walk[i])
		require.True(t, ok, "no edge %d–%d in walk %v", res.Walk[i-1], res.Walk[i], res.Walk)
		sum += w
	}
	assert.Equal(t, res.Weight, sum)

	assert.Contains(t, first, res.FirstStop())
	assert.Contains(t, second, res.SecondStop())
	assert.Equal(t, layered.AfterB, res.States[len(res.States)-1].Phase)
}
