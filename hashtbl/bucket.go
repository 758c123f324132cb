package hashtbl

import "github.com/zeebo/errs/v2"

// bucket is a chain of nodes in strictly decreasing key order, so a scan
// can stop at the first key that is not greater than the one it wants.
type bucket[K, V any] struct {
	size int
	head *node[K, V]
}

// find walks past every node whose key is greater than k. It returns the
// last node walked past (nil if none), the node the walk stopped on (nil at
// the end of the chain) and whether that node holds k.
func (b *bucket[K, V]) find(t *T[K, V], k K) (prev, cur *node[K, V], found bool) {
	for cur = b.head; cur != nil; prev, cur = cur, cur.next {
		if c := t.compare(cur.key, k); c <= 0 {
			return prev, cur, c == 0
		}
	}
	return prev, nil, false
}

func (b *bucket[K, V]) insert(t *T[K, V], k K, v V) (Status, error) {
	prev, cur, found := b.find(t, k)
	if found {
		// copy first so a failed copy keeps the old value
		vc, err := t.copyValue(v)
		if err != nil {
			return Failure | MallocFailure, errs.Wrap(err)
		}
		t.freeValue(cur.value)
		cur.value = vc
		return Success | ValueUpdated, nil
	}

	n, err := t.newNode(k, v)
	if err != nil {
		return Failure | MallocFailure, err
	}
	n.next = cur
	if prev == nil {
		b.head = n
	} else {
		prev.next = n
	}
	b.size++
	return Success | NewValueInserted, nil
}

func (b *bucket[K, V]) at(t *T[K, V], k K) *node[K, V] {
	if _, cur, found := b.find(t, k); found {
		return cur
	}
	return nil
}

func (b *bucket[K, V]) remove(t *T[K, V], k K) Status {
	prev, cur, found := b.find(t, k)
	if !found {
		return Failure | NoValueFound
	}
	if prev == nil {
		b.head = cur.next
	} else {
		prev.next = cur.next
	}
	t.freeNode(cur)
	b.size--
	return Success | ValueRemoved
}

func (b *bucket[K, V]) destroy(t *T[K, V]) {
	for n := b.head; n != nil; {
		next := n.next
		t.freeNode(n)
		n = next
	}
	b.head = nil
	b.size = 0
}

// copyFrom fills the empty bucket b with copies of src's chain, keeping its
// order. On failure b is left empty.
func (b *bucket[K, V]) copyFrom(t *T[K, V], src *bucket[K, V]) error {
	var tail *node[K, V]
	for n := src.head; n != nil; n = n.next {
		c, err := t.newNode(n.key, n.value)
		if err != nil {
			b.destroy(t)
			return err
		}
		if tail == nil {
			b.head = c
		} else {
			tail.next = c
		}
		tail = c
		b.size++
	}
	return nil
}
