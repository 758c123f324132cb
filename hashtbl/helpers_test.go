package hashtbl

import (
	"testing"

	"github.com/zeebo/assert"
)

func newTable[K, V any](t testing.TB, params SizeParams, fns Funcs[K, V]) *T[K, V] {
	t.Helper()
	tb, err := New(params, fns)
	assert.NoError(t, err)
	return tb
}

// checkChains verifies every chain is strictly decreasing and that the
// bucket sizes, the occupied set and the element count all agree.
func checkChains[K, V any](t testing.TB, tb *T[K, V]) {
	t.Helper()

	total := 0
	for id := range tb.buckets {
		b := &tb.buckets[id]
		n := 0
		for nd := b.head; nd != nil; nd = nd.next {
			if nd.next != nil {
				assert.That(t, tb.compare(nd.key, nd.next.key) > 0)
			}
			n++
		}
		assert.Equal(t, n, b.size)
		assert.Equal(t, tb.occupied.Contains(uint32(id)), n > 0)
		total += n
	}
	assert.Equal(t, total, tb.Len())
}

func zeroHash[K any](K) uint64 { return 0 }
