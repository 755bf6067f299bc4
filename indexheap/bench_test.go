package indexheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/errand/indexheap"
)

// BenchmarkHeap_PushDecreaseExtract mirrors a Dijkstra run: push every node,
// decrease a random subset, then drain.
func BenchmarkHeap_PushDecreaseExtract(b *testing.B) {
	const n = 1 << 12
	rng := rand.New(rand.NewSource(1))
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = rng.Int63n(1 << 20)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := indexheap.New(n)
		for node, k := range keys {
			h.Push(node, k)
		}
		for node := 0; node < n; node += 3 {
			h.DecreaseKey(node, keys[node]/2)
		}
		for h.Len() > 0 {
			h.ExtractMin()
		}
	}
}
