package stackvec

import (
	"iter"

	"github.com/rawbytedev/stackvec/internal/layout"
)

// All yields index/element pairs over the live elements. It only borrows,
// so it can be ranged over any number of times.
func (v *Vec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Slice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

func (v *Vec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (v *Vec[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Slice()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// IntoIter moves the elements of v into an owning iterator and leaves v
// empty. From then on the iterator alone is responsible for the elements:
// each one is either handed to the caller by Next/NextBack or released by
// Close, never both.
//
// An IntoIter must not be copied once it is in use; a copy would release
// the same elements again on Close.
func (v *Vec[T, A]) IntoIter() IntoIter[T, A] {
	it := IntoIter[T, A]{vec: *v, back: v.len}
	// the copy keeps the elements but not the length, so its own Release
	// is a no-op
	it.vec.len = 0
	v.forget()
	return it
}

// Drain moves the elements out one at a time when ranged over. The hand-off
// happens when iteration starts; breaking out early releases whatever was
// not yielded.
func (v *Vec[T, A]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := v.IntoIter()
		defer it.Close()
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// IntoIter is the owning iterator produced by Vec.IntoIter. Slots in
// [front, back) still hold unyielded elements; every other slot is zero.
type IntoIter[T any, A any] struct {
	vec   Vec[T, A]
	front int
	back  int
}

// Next hands the next element to the caller.
func (it *IntoIter[T, A]) Next() (T, bool) {
	var zero T
	if it.front >= it.back {
		return zero, false
	}
	s := it.vec.slots()
	x := s[it.front]
	s[it.front] = zero
	it.front++
	return x, true
}

// NextBack hands the last unyielded element to the caller.
func (it *IntoIter[T, A]) NextBack() (T, bool) {
	var zero T
	if it.front >= it.back {
		return zero, false
	}
	s := it.vec.slots()
	it.back--
	x := s[it.back]
	s[it.back] = zero
	return x, true
}

// Len returns the number of elements not yet yielded.
func (it *IntoIter[T, A]) Len() int { return it.back - it.front }

// Close releases every element not yet yielded. Calling it again, or after
// the iterator is exhausted, does nothing.
func (it *IntoIter[T, A]) Close() {
	rest := it.vec.slots()[it.front:it.back]
	it.front = it.back
	layout.ReleaseAll(rest)
}

// Values yields the remaining elements and closes the iterator when the
// range loop ends for any reason.
func (it *IntoIter[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}
