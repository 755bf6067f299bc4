// SPDX-License-Identifier: MIT
//
// File: heap.go
// Role: Addressable binary min-heap over dense node ids with decrease-key.
// Invariants:
//   - items[0] holds the minimum key; parent.key ≤ child.key for every slot.
//   - pos[node] == slot for every node in the heap, absent otherwise.
//   - A node is held at most once; after Push it can only be decreased or extracted.

package indexheap

import (
	"errors"
	"fmt"
)

// absent marks a node that is not (or no longer) in the heap.
const absent = -1

// Sentinel errors carried by the panics raised on heap misuse.
// Misuse is an algorithmic bug in the caller, so the heap fails fast.
var (
	// ErrNodeOutOfRange indicates a node id outside [0, capacity).
	ErrNodeOutOfRange = errors.New("indexheap: node out of range")

	// ErrAlreadyPresent indicates Push of a node that is still in the heap.
	ErrAlreadyPresent = errors.New("indexheap: node already present")

	// ErrEmpty indicates ExtractMin or Peek on an empty heap.
	ErrEmpty = errors.New("indexheap: heap is empty")

	// ErrKeyIncrease indicates DecreaseKey with a key larger than the current one.
	ErrKeyIncrease = errors.New("indexheap: new key is greater than current key")
)

// item is one heap slot: a node and its current priority.
type item struct {
	node int
	key  int64
}

// Heap is a binary min-heap keyed by int64 priorities over node ids in
// [0, capacity). The position index gives O(1) membership and slot lookup,
// which is what lets Dijkstra decrease a key in place instead of pushing
// duplicates.
//
// A Heap is owned by one query; it is not safe for concurrent use.
type Heap struct {
	items []item
	pos   []int
}

// New returns an empty heap accepting node ids in [0, capacity).
// Complexity: O(capacity).
func New(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}
	h := &Heap{
		items: make([]item, 0, capacity),
		pos:   make([]int, capacity),
	}
	for i := range h.pos {
		h.pos[i] = absent
	}

	return h
}

// Len returns the number of nodes currently in the heap.
func (h *Heap) Len() int { return len(h.items) }

// Contains reports whether node is currently in the heap.
// Out-of-range ids are simply not contained.
// Complexity: O(1).
func (h *Heap) Contains(node int) bool {
	return node >= 0 && node < len(h.pos) && h.pos[node] != absent
}

// Key returns the current key of node and whether node is in the heap.
// Complexity: O(1).
func (h *Heap) Key(node int) (int64, bool) {
	if !h.Contains(node) {
		return 0, false
	}

	return h.items[h.pos[node]].key, true
}

// Push inserts node with the given key.
// Panics with ErrNodeOutOfRange or ErrAlreadyPresent on misuse.
// Complexity: O(log n).
func (h *Heap) Push(node int, key int64) {
	if node < 0 || node >= len(h.pos) {
		panic(fmt.Errorf("%w: node %d, capacity %d", ErrNodeOutOfRange, node, len(h.pos)))
	}
	if h.pos[node] != absent {
		panic(fmt.Errorf("%w: node %d", ErrAlreadyPresent, node))
	}

	h.items = append(h.items, item{node: node, key: key})
	slot := len(h.items) - 1
	h.pos[node] = slot
	h.siftUp(slot)
}

// Peek returns the root without removing it.
// Panics with ErrEmpty if the heap is empty.
func (h *Heap) Peek() (node int, key int64) {
	if len(h.items) == 0 {
		panic(ErrEmpty)
	}

	return h.items[0].node, h.items[0].key
}

// ExtractMin removes and returns the node with the smallest key.
//
// The last slot is moved into the root, the array shrinks by one, the
// removed node is marked absent and the new root sifts down.
// Panics with ErrEmpty if the heap is empty.
// Complexity: O(log n).
func (h *Heap) ExtractMin() (node int, key int64) {
	n := len(h.items)
	if n == 0 {
		panic(ErrEmpty)
	}

	root := h.items[0]
	last := n - 1
	if last > 0 {
		h.items[0] = h.items[last]
		h.pos[h.items[0].node] = 0
	}
	h.items = h.items[:last]
	h.pos[root.node] = absent

	if last > 0 {
		h.siftDown(0)
	}

	return root.node, root.key
}

// DecreaseKey lowers the key of node to key and restores heap order by
// sifting up only.
//
// It is a no-op when node is absent (already extracted or never pushed).
// Panics with ErrKeyIncrease when key is greater than the current key.
// Complexity: O(log n).
func (h *Heap) DecreaseKey(node int, key int64) {
	if !h.Contains(node) {
		return
	}
	slot := h.pos[node]
	if key > h.items[slot].key {
		panic(fmt.Errorf("%w: node %d, current %d, requested %d", ErrKeyIncrease, node, h.items[slot].key, key))
	}

	h.items[slot].key = key
	h.siftUp(slot)
}

// siftUp moves the item at slot toward the root while it is smaller than its parent.
func (h *Heap) siftUp(slot int) {
	var parent int
	for slot > 0 {
		parent = (slot - 1) / 2
		if h.items[parent].key <= h.items[slot].key {
			return
		}
		h.swap(parent, slot)
		slot = parent
	}
}

// siftDown moves the item at slot toward the leaves while a child is smaller.
// Ties between children go to the left one.
func (h *Heap) siftDown(slot int) {
	n := len(h.items)
	var smaller, right int
	for {
		smaller = 2*slot + 1
		if smaller >= n {
			return
		}
		right = smaller + 1
		if right < n && h.items[right].key < h.items[smaller].key {
			smaller = right
		}
		if h.items[smaller].key >= h.items[slot].key {
			return
		}
		h.swap(smaller, slot)
		slot = smaller
	}
}

// swap exchanges two slots and keeps both recorded positions in step.
func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].node] = i
	h.pos[h.items[j].node] = j
}
