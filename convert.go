package stackvec

import (
	"fmt"
	"iter"

	"github.com/rawbytedev/stackvec/internal/layout"
)

// From returns a full vector holding the elements of src. The argument has
// the backing array type, so a source longer than the capacity does not
// compile.
func From[T, A any](src A) Vec[T, A] {
	return Vec[T, A]{data: src, len: layout.Len[T, A]()}
}

// FromSlice returns a vector holding the elements of s. The caller gives up
// ownership of them. It panics with ErrCapacity if s does not fit.
func FromSlice[T, A any](s []T) Vec[T, A] {
	var v Vec[T, A]
	slots := v.slots()
	if len(s) > len(slots) {
		panic(fmt.Errorf("%w: %d elements for a vector of capacity %d", ErrCapacity, len(s), len(slots)))
	}
	v.len = copy(slots, s)
	return v
}

// Collect pushes every value of seq into a new vector.
func Collect[T, A any](seq iter.Seq[T]) Vec[T, A] {
	v := New[T, A]()
	v.Extend(seq)
	return v
}

// IntoSlice moves the live elements into a newly allocated slice and leaves
// v empty. Nothing is released: ownership passes to the slice. To copy
// without giving up ownership use slices.Clone(v.Slice()).
func (v *Vec[T, A]) IntoSlice() []T {
	out := make([]T, v.len)
	copy(out, v.Slice())
	v.forget()
	return out
}
