// Package builder provides deterministic graph fixtures for tests, examples
// and benchmarks of the errand algorithms.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildGraph(gopts, bopts, cons...) composes constructors into one
//     core.Graph. Every constructor allocates its own block of vertex ids,
//     so Path(3) followed by Star(4) yields vertices 0..2 and 3..6.
//   - Topologies (Constructor implementations):
//     – Path(n), Cycle(n), Star(n), Complete(n), Grid(rows, cols),
//     RandomSparse(n, p).
//   - Configuration primitives (BuilderOption):
//     – WithSeed, WithRand:  RNG for stochastic builders and weights.
//     – WithWeightFn:        per-edge weight generator.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform integer in [min,max].
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return errors wrapping ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource or ErrConstructFailed.
//   - Option constructors panic on meaningless input (nil RNG, nil WeightFn).
package builder
