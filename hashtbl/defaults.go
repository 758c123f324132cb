package hashtbl

import (
	"unsafe"

	"github.com/chaintbl/chaintbl/bytebuf"
)

// rawBytes is the memory the default behaviors operate on: the contents of
// a []byte or string, otherwise the value's own representation. Either is
// cut to size when size is set. Values containing pointers or padding do not
// have a meaningful raw form and need explicit Funcs.
func rawBytes[X any](x *X, size uintptr) (b []byte) {
	switch v := any(x).(type) {
	case *[]byte:
		b = *v
	case *string:
		b = unsafe.Slice(unsafe.StringData(*v), len(*v))
	default:
		if n := unsafe.Sizeof(*x); n > 0 {
			b = unsafe.Slice((*byte)(unsafe.Pointer(x)), n)
		} else {
			b = []byte{}
		}
	}
	if size > 0 && uintptr(len(b)) > size {
		b = b[:size]
	}
	return b
}

func copyRaw[X any](x X, size uintptr) X {
	if b, ok := any(x).([]byte); ok {
		if size > 0 && uintptr(len(b)) > size {
			b = b[:size]
		}
		return any(bytebuf.Clone(b)).(X)
	}
	return x
}

func isNilKey[K any](k K) bool {
	return any(k) == nil
}

func (t *T[K, V]) hash(k K) uint64 {
	if t.fns.Hash != nil {
		return t.fns.Hash(k)
	}
	return bytebuf.Fold(rawBytes(&k, t.params.KeySize))
}

func (t *T[K, V]) compare(a, b K) int {
	if t.fns.Compare != nil {
		return t.fns.Compare(a, b)
	}
	return bytebuf.CompareSafe(rawBytes(&a, t.params.KeySize), rawBytes(&b, t.params.KeySize))
}

func (t *T[K, V]) copyKey(k K) (K, error) {
	if t.fns.CopyKey != nil {
		return t.fns.CopyKey(k)
	}
	return copyRaw(k, t.params.KeySize), nil
}

func (t *T[K, V]) copyValue(v V) (V, error) {
	if t.fns.CopyValue != nil {
		return t.fns.CopyValue(v)
	}
	return copyRaw(v, t.params.ValueSize), nil
}

func (t *T[K, V]) freeKey(k K) {
	if t.fns.FreeKey != nil {
		t.fns.FreeKey(k)
	}
}

func (t *T[K, V]) freeValue(v V) {
	if t.fns.FreeValue != nil {
		t.fns.FreeValue(v)
	}
}
