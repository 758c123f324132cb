package hashtbl

import (
	"bytes"
	"strings"

	"github.com/chaintbl/chaintbl/bytebuf"
)

// Funcs are the behaviors a table applies to its keys and values. Any nil
// field falls back to a default that treats the key or value as raw bytes
// (see SizeParams). The struct is stored as given and shared by copies of
// the table, so the functions must not depend on which table calls them.
//
// Hash must be deterministic: equal keys (Compare returns 0) must hash the
// same for the lifetime of the table. A copy function returning an error is
// reported as a MallocFailure and leaves the table unchanged.
type Funcs[K, V any] struct {
	Compare   func(a, b K) int
	Hash      func(k K) uint64
	CopyKey   func(k K) (K, error)
	FreeKey   func(k K)
	CopyValue func(v V) (V, error)
	FreeValue func(v V)
}

// BytesFuncs orders and hashes variable length byte keys by their full
// contents and stores a private copy of every key. The raw defaults compare
// only the common prefix of two keys, which is wrong once key lengths differ.
func BytesFuncs[V any]() Funcs[[]byte, V] {
	return Funcs[[]byte, V]{
		Compare: bytes.Compare,
		Hash:    bytebuf.Digest,
		CopyKey: func(k []byte) ([]byte, error) { return bytebuf.Clone(k), nil },
	}
}

// StringFuncs orders and hashes string keys by their contents.
func StringFuncs[V any]() Funcs[string, V] {
	return Funcs[string, V]{
		Compare: strings.Compare,
		Hash:    bytebuf.DigestString,
	}
}
