// Package indexheap implements an indexed (addressable) binary min-heap.
//
// What
//
//   - Nodes are dense integers in [0, capacity); keys are int64 priorities.
//   - Push, ExtractMin and DecreaseKey run in O(log n).
//   - Contains and Key run in O(1) through a position index that tracks the
//     slot of every node still in the heap.
//
// Why
//
//	container/heap has no decrease-key. The usual workaround pushes a fresh
//	entry on every improvement and skips stale ones on pop; Dijkstra over a
//	layered state space then holds up to E entries. Keeping exactly one
//	entry per node and lowering it in place bounds the heap at V.
//
// Contract
//
//   - Push of a node already present panics (ErrAlreadyPresent).
//   - ExtractMin or Peek on an empty heap panics (ErrEmpty).
//   - DecreaseKey of an absent node is a no-op; raising a key panics
//     (ErrKeyIncrease). A decrease only ever sifts up.
//
// The panic values are errors wrapping the sentinels above, so a recover
// site can still branch with errors.Is.
package indexheap
