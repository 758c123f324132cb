package hashtbl

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/errs/v2"

	"github.com/chaintbl/chaintbl/sizeof"
)

const defaultBucketCapacity = 16

// SizeParams fix the shape of a table when it is created.
type SizeParams struct {
	// KeySize is how many bytes of a key the default hash, compare and copy
	// read. Zero means the whole key.
	KeySize uintptr

	// ValueSize is how many bytes of a []byte value the default copy keeps.
	// Zero means the whole value.
	ValueSize uintptr

	// BucketCapacity is the number of buckets. It never changes after
	// creation. Zero means 16.
	BucketCapacity uint64
}

// T is a hash table of chained buckets. It owns a copy of every key and
// value inserted into it, made with the table's Funcs, and releases each copy
// exactly once. The bucket count is fixed, so lookups slow down linearly with
// the load factor.
//
// T is not safe for concurrent use.
type T[K, V any] struct {
	_ [0]func() // no equality

	params   SizeParams
	fns      Funcs[K, V]
	buckets  []bucket[K, V]
	occupied *roaring.Bitmap
	eles     int
}

// New returns an empty table with params.BucketCapacity buckets.
func New[K, V any](params SizeParams, fns Funcs[K, V]) (*T[K, V], error) {
	if params.BucketCapacity == 0 {
		params.BucketCapacity = defaultBucketCapacity
	}
	if params.BucketCapacity > math.MaxUint32 {
		return nil, errs.Errorf("bucket capacity too large: %d", params.BucketCapacity)
	}

	return &T[K, V]{
		params:   params,
		fns:      fns,
		buckets:  make([]bucket[K, V], params.BucketCapacity),
		occupied: roaring.New(),
	}, nil
}

// Copy returns a table with the same parameters and Funcs holding its own
// copies of every entry. If any copy fails, everything copied so far is
// released and no table is returned.
func (t *T[K, V]) Copy() (*T[K, V], error) {
	if !t.live() {
		return nil, errs.Errorf("copy of nil or destroyed table")
	}

	c, err := New(t.params, t.fns)
	if err != nil {
		return nil, err
	}

	for it := t.occupied.Iterator(); it.HasNext(); {
		id := it.Next()
		b := &c.buckets[id]
		if err := b.copyFrom(c, &t.buckets[id]); err != nil {
			c.Destroy()
			return nil, err
		}
		c.occupied.Add(id)
		c.eles += b.size
	}

	return c, nil
}

// Destroy releases every key and value and the buckets. Any later mutation
// fails. It is safe to call on a nil or already destroyed table.
func (t *T[K, V]) Destroy() {
	if t == nil {
		return
	}
	t.Clear()
	t.buckets = nil
	t.occupied = nil
}

// Clear releases every key and value but keeps the buckets.
func (t *T[K, V]) Clear() {
	if !t.live() {
		return
	}
	for it := t.occupied.Iterator(); it.HasNext(); {
		t.buckets[it.Next()].destroy(t)
	}
	t.occupied.Clear()
	t.eles = 0
}

func (t *T[K, V]) live() bool { return t != nil && len(t.buckets) > 0 }

func (t *T[K, V]) bucketFor(k K) (*bucket[K, V], uint32) {
	id := t.hash(k) % uint64(len(t.buckets))
	return &t.buckets[id], uint32(id)
}

// Insert stores copies of k and v, replacing the value of an equal key if
// there is one. The status has NewValueInserted or ValueUpdated set on
// success. If a copy fails the status is Failure|MallocFailure, the error
// holds the cause and the table is unchanged.
func (t *T[K, V]) Insert(k K, v V) (Status, error) {
	if !t.live() {
		return Failure, errs.Errorf("insert into nil or destroyed table")
	}
	if isNilKey(k) {
		return Failure, errs.Errorf("insert of nil key")
	}

	b, id := t.bucketFor(k)
	st, err := b.insert(t, k, v)
	if st.Has(NewValueInserted) {
		if b.size == 1 {
			t.occupied.Add(id)
		}
		t.eles++
	}
	return st, err
}

// Ref returns a pointer to the table's copy of the value for k, or nil. The
// table keeps ownership: the pointer is only valid until k is next updated
// or removed.
func (t *T[K, V]) Ref(k K) *V {
	if !t.live() || isNilKey(k) {
		return nil
	}
	b, _ := t.bucketFor(k)
	if n := b.at(t, k); n != nil {
		return &n.value
	}
	return nil
}

// At returns the value for k and whether it was present.
func (t *T[K, V]) At(k K) (V, bool) {
	if p := t.Ref(k); p != nil {
		return *p, true
	}
	return *new(V), false
}

func (t *T[K, V]) Contains(k K) bool { return t.Ref(k) != nil }

// Remove releases the entry for k. The status is Success|ValueRemoved, or
// Failure|NoValueFound if k is not present.
func (t *T[K, V]) Remove(k K) Status {
	if !t.live() || isNilKey(k) {
		return Failure
	}

	b, id := t.bucketFor(k)
	st := b.remove(t, k)
	if st.Has(ValueRemoved) {
		if b.size == 0 {
			t.occupied.Remove(id)
		}
		t.eles--
	}
	return st
}

// Len is the number of distinct keys in the table.
func (t *T[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.eles
}

// Params returns the parameters the table was created with, after defaults
// were applied.
func (t *T[K, V]) Params() SizeParams {
	if t == nil {
		return SizeParams{}
	}
	return t.params
}

// Load is the average chain length.
func (t *T[K, V]) Load() float64 {
	if !t.live() {
		return 0
	}
	return float64(t.eles) / float64(len(t.buckets))
}

// Size is an estimate of the memory held by the table itself, not counting
// memory owned by the keys and values.
func (t *T[K, V]) Size() uint64 {
	if t == nil {
		return 0
	}
	var occupied uint64
	if t.occupied != nil {
		occupied = t.occupied.GetSizeInBytes()
	}
	return 0 +
		/* params   */ sizeof.Of[SizeParams]() +
		/* fns      */ sizeof.Of[Funcs[K, V]]() +
		/* buckets  */ sizeof.Slice(t.buckets) +
		/* nodes    */ sizeof.Chain[node[K, V]](t.eles) +
		/* occupied */ 8 + occupied +
		/* eles     */ 8 +
		0
}
