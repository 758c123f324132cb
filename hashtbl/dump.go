package hashtbl

import (
	"fmt"
	"io"
)

const dumpIndent = "|    "

// Dump writes every non-empty bucket and its chain to w.
func (t *T[K, V]) Dump(w io.Writer) {
	if !t.live() {
		fmt.Fprintf(w, "table[%p](destroyed)\n", t)
		return
	}

	fmt.Fprintf(w, "table[%p](len:%d, buckets:%d, occupied:%d):\n",
		t, t.eles, len(t.buckets), t.occupied.GetCardinality())

	for it := t.occupied.Iterator(); it.HasNext(); {
		id := it.Next()
		b := &t.buckets[id]
		fmt.Fprintf(w, "%sbucket[%d](size:%d):\n", dumpIndent, id, b.size)
		for n := b.head; n != nil; n = n.next {
			fmt.Fprintf(w, "%snode[%p](key:%v, value:%v)\n", dumpIndent+dumpIndent, n, n.key, n.value)
		}
	}
}
