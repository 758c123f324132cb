package hashtbl

import "github.com/zeebo/errs/v2"

type node[K, V any] struct {
	_ [0]func() // no equality

	key   K
	value V
	next  *node[K, V]
}

// newNode builds an unlinked node holding fresh copies of k and v. If either
// copy fails nothing is left allocated.
func (t *T[K, V]) newNode(k K, v V) (*node[K, V], error) {
	kc, err := t.copyKey(k)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	vc, err := t.copyValue(v)
	if err != nil {
		t.freeKey(kc)
		return nil, errs.Wrap(err)
	}
	return &node[K, V]{key: kc, value: vc}, nil
}

func (t *T[K, V]) freeNode(n *node[K, V]) {
	t.freeKey(n.key)
	t.freeValue(n.value)
	n.next = nil
}
