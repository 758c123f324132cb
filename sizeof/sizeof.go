package sizeof

import "unsafe"

// Of is the in-memory size of a T value, not counting anything it points to.
func Of[T any]() uint64 { return uint64(unsafe.Sizeof(*new(T))) }

// Slice is the size of the slice header plus its elements.
func Slice[T any](v []T) uint64 {
	return 24 + Of[T]()*uint64(len(v))
}

// Chain is the size of n heap nodes of type T.
func Chain[T any](n int) uint64 {
	if n <= 0 {
		return 0
	}
	return Of[T]() * uint64(n)
}
