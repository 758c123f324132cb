package testhelp

import "github.com/zeebo/mwc"

// Uint32s returns n distinct pseudo random values, the same for every seed.
func Uint32s(seed uint64, n int) []uint32 {
	rng := mwc.New(seed, seed)
	seen := make(map[uint32]struct{}, n)
	out := make([]uint32, 0, n)
	for len(out) < n {
		v := uint32(rng.Uint64())
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Bytes returns n distinct pseudo random byte strings of length between 1
// and maxLen.
func Bytes(seed uint64, n, maxLen int) [][]byte {
	rng := mwc.New(seed, seed)
	seen := make(map[string]struct{}, n)
	out := make([][]byte, 0, n)
	for len(out) < n {
		v := make([]byte, 1+rng.Uint64n(uint64(maxLen)))
		for i := range v {
			v[i] = byte(rng.Uint64())
		}
		if _, ok := seen[string(v)]; ok {
			continue
		}
		seen[string(v)] = struct{}{}
		out = append(out, v)
	}
	return out
}
