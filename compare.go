package stackvec

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold equal elements in the same order.
// Capacity is not compared.
func Equal[T comparable, A, B any](a *Vec[T, A], b *Vec[T, B]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualSlice compares v with a slice; pass arr[:] to compare with an array.
func EqualSlice[T comparable, A any](v *Vec[T, A], s []T) bool {
	return slices.Equal(v.Slice(), s)
}

func EqualFunc[T1, T2, A, B any](a *Vec[T1, A], b *Vec[T2, B], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders a and b lexicographically; a shorter prefix sorts first.
func Compare[T cmp.Ordered, A, B any](a *Vec[T, A], b *Vec[T, B]) int {
	return slices.Compare(a.Slice(), b.Slice())
}
