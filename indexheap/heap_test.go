package indexheap_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/errand/indexheap"
)

// recoverErr runs fn and returns the error it panicked with (nil if none).
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()

	return nil
}

func TestHeap_PushExtractOrder(t *testing.T) {
	h := indexheap.New(6)
	keys := []int64{5, 3, 9, 1, 7, 3}
	for node, k := range keys {
		h.Push(node, k)
	}
	require.Equal(t, 6, h.Len())

	node, key := h.Peek()
	assert.Equal(t, 3, node)
	assert.Equal(t, int64(1), key)

	var got []int64
	for h.Len() > 0 {
		_, k := h.ExtractMin()
		got = append(got, k)
	}
	assert.Equal(t, []int64{1, 3, 3, 5, 7, 9}, got)
}

func TestHeap_ContainsAndKey(t *testing.T) {
	h := indexheap.New(3)
	assert.False(t, h.Contains(0))
	assert.False(t, h.Contains(-1))
	assert.False(t, h.Contains(3))

	h.Push(2, 10)
	assert.True(t, h.Contains(2))
	k, ok := h.Key(2)
	assert.True(t, ok)
	assert.Equal(t, int64(10), k)

	node, _ := h.ExtractMin()
	assert.Equal(t, 2, node)
	assert.False(t, h.Contains(2), "extracted node must be absent")
	_, ok = h.Key(2)
	assert.False(t, ok)
}

// TestHeap_DecreaseKeyMovesToRoot lowers a leaf below everything else.
func TestHeap_DecreaseKeyMovesToRoot(t *testing.T) {
	h := indexheap.New(5)
	for node := 0; node < 5; node++ {
		h.Push(node, int64(10*(node+1)))
	}
	h.DecreaseKey(4, 1)

	node, key := h.ExtractMin()
	assert.Equal(t, 4, node)
	assert.Equal(t, int64(1), key)

	node, key = h.ExtractMin()
	assert.Equal(t, 0, node)
	assert.Equal(t, int64(10), key)
}

func TestHeap_DecreaseKeyAbsentIsNoop(t *testing.T) {
	h := indexheap.New(2)
	h.Push(0, 4)
	h.ExtractMin()

	assert.NotPanics(t, func() { h.DecreaseKey(0, 1) })
	assert.NotPanics(t, func() { h.DecreaseKey(1, 1) })
	assert.Equal(t, 0, h.Len())
}

func TestHeap_EqualKeyDecreaseIsAllowed(t *testing.T) {
	h := indexheap.New(1)
	h.Push(0, 4)
	assert.NotPanics(t, func() { h.DecreaseKey(0, 4) })
}

func TestHeap_Misuse(t *testing.T) {
	tests := []struct {
		name    string
		run     func(h *indexheap.Heap)
		wantErr error
	}{
		{"extract empty", func(h *indexheap.Heap) { h.ExtractMin() }, indexheap.ErrEmpty},
		{"peek empty", func(h *indexheap.Heap) { h.Peek() }, indexheap.ErrEmpty},
		{"push twice", func(h *indexheap.Heap) { h.Push(0, 1); h.Push(0, 2) }, indexheap.ErrAlreadyPresent},
		{"push out of range", func(h *indexheap.Heap) { h.Push(7, 1) }, indexheap.ErrNodeOutOfRange},
		{"increase key", func(h *indexheap.Heap) { h.Push(1, 1); h.DecreaseKey(1, 2) }, indexheap.ErrKeyIncrease},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := indexheap.New(3)
			err := recoverErr(func() { tt.run(h) })
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

// TestHeap_RandomizedOrder pushes n random keys, applies random decreases and
// checks that extraction returns keys in non-decreasing order matching the
// final key multiset.
func TestHeap_RandomizedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(64)
		h := indexheap.New(n)
		final := make([]int64, n)
		for node := 0; node < n; node++ {
			final[node] = rng.Int63n(1000)
			h.Push(node, final[node])
		}
		for i := 0; i < n; i++ {
			node := rng.Intn(n)
			nk := final[node] - rng.Int63n(50)
			h.DecreaseKey(node, nk)
			final[node] = nk
		}

		got := make([]int64, 0, n)
		seen := make(map[int]bool, n)
		for h.Len() > 0 {
			node, k := h.ExtractMin()
			require.False(t, seen[node], "node %d extracted twice", node)
			seen[node] = true
			require.Equal(t, final[node], k)
			got = append(got, k)
		}

		want := append([]int64(nil), final...)
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		require.Equal(t, want, got, "round %d", round)
	}
}

// TestHeap_InterleavedExtractAlwaysMin checks the minimum property while
// pushes, decreases and extractions interleave.
func TestHeap_InterleavedExtractAlwaysMin(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 200
	h := indexheap.New(n)
	live := make(map[int]int64)
	next := 0
	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(3); {
		case op == 0 && next < n:
			k := rng.Int63n(10_000)
			h.Push(next, k)
			live[next] = k
			next++
		case op == 1 && len(live) > 0:
			for node, k := range live {
				nk := k - rng.Int63n(100)
				h.DecreaseKey(node, nk)
				live[node] = nk
				break
			}
		case len(live) > 0:
			lowest := int64(1 << 62)
			for _, k := range live {
				if k < lowest {
					lowest = k
				}
			}
			node, k := h.ExtractMin()
			require.Equal(t, lowest, k)
			delete(live, node)
		}
		require.Equal(t, len(live), h.Len())
	}
}
