package bytebuf

import (
	"bytes"
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

var le = binary.LittleEndian

const wordSize = 8

// Compare orders a and b lexicographically over their common prefix. Buffers
// that agree on the shorter length compare equal.
func Compare(a, b []byte) int {
	n := min(len(a), len(b))
	return bytes.Compare(a[:n], b[:n])
}

// CompareSafe is Compare with nil buffers ordered before any non-nil buffer.
func CompareSafe(a, b []byte) int {
	an, bn := a == nil, b == nil
	if an || bn {
		return b2i(bn) - b2i(an)
	}
	return Compare(a, b)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Fold is a checksum style hash: the complement of the length xor'd with
// every full little endian word, then with each trailing byte.
func Fold(b []byte) uint64 {
	h := ^uint64(len(b))
	i := 0
	for ; i+wordSize < len(b); i += wordSize {
		h ^= le.Uint64(b[i:])
	}
	for ; i < len(b); i++ {
		h ^= uint64(b[i])
	}
	return h
}

func Digest(b []byte) uint64       { return xxh3.Hash(b) }
func DigestString(s string) uint64 { return xxh3.HashString(s) }

// Clone returns a copy of b that shares no memory with it. nil stays nil.
func Clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}
