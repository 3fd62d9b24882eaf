// Package stackvec provides Vec, a fixed-capacity vector whose elements live
// in an inline array instead of a separately allocated backing store.
//
// The capacity is the length of the backing array type:
//
//	var v stackvec.Vec[string, [8]string]
//	v.Push("a")
//
// Slots [0, Len) hold live elements, slots [Len, Cap) hold the zero value.
// Elements implementing Releaser are released exactly once when the vector
// destroys them and never when it hands them to the caller.
package stackvec

import (
	"fmt"
	"iter"

	"github.com/rawbytedev/stackvec/internal/layout"
)

// Releaser is implemented by elements that must be let go of explicitly.
// Release may be declared on the value or the pointer receiver.
type Releaser = layout.Releaser

// Vec is a vector of at most N elements of type T, where A is [N]T.
// The zero value is an empty vector ready to use. A Vec must not be copied
// while it holds elements that implement Releaser: both copies would own the
// same elements and each would release them. Use Clone to duplicate one.
type Vec[T any, A any] struct {
	data A
	len  int
}

var _ Releaser = (*Vec[int, [1]int])(nil)

// New returns an empty vector. It panics with ErrLayout if A is not [N]T.
func New[T, A any]() Vec[T, A] {
	layout.Len[T, A]()
	return Vec[T, A]{}
}

func (v *Vec[T, A]) slots() []T {
	return layout.Slots[T](&v.data)
}

func (v *Vec[T, A]) Len() int { return v.len }

func (v *Vec[T, A]) Cap() int { return layout.Len[T, A]() }

func (v *Vec[T, A]) IsEmpty() bool { return v.len == 0 }

func (v *Vec[T, A]) IsFull() bool { return v.len == v.Cap() }

// Push appends x. Pushing onto a full vector panics with ErrCapacity.
func (v *Vec[T, A]) Push(x T) {
	s := v.slots()
	if v.len == len(s) {
		panic(capacityError(v.len+1, len(s)))
	}
	s[v.len] = x
	v.len++
}

// TryPush appends x and reports whether there was room for it.
func (v *Vec[T, A]) TryPush(x T) bool {
	s := v.slots()
	if v.len == len(s) {
		return false
	}
	s[v.len] = x
	v.len++
	return true
}

// Append pushes xs in order. If they do not all fit it panics with
// ErrCapacity before writing any of them.
func (v *Vec[T, A]) Append(xs ...T) {
	s := v.slots()
	if v.len+len(xs) > len(s) {
		panic(capacityError(v.len+len(xs), len(s)))
	}
	v.len += copy(s[v.len:], xs)
}

// Extend pushes every value produced by seq.
func (v *Vec[T, A]) Extend(seq iter.Seq[T]) {
	for x := range seq {
		v.Push(x)
	}
}

// Pop removes and returns the last element. The caller owns it afterwards.
func (v *Vec[T, A]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	s := v.slots()
	v.len--
	x := s[v.len]
	s[v.len] = zero
	return x, true
}

// Get returns the element at i, or false if i is outside [0, Len).
func (v *Vec[T, A]) Get(i int) (T, bool) {
	if i < 0 || i >= v.len {
		var zero T
		return zero, false
	}
	return v.slots()[i], true
}

// At returns the element at i. It panics with ErrIndex if i is outside [0, Len).
func (v *Vec[T, A]) At(i int) T {
	v.check(i)
	return v.slots()[i]
}

// Ptr returns a pointer to the element at i for in-place mutation. The
// pointer is valid until the element is removed.
func (v *Vec[T, A]) Ptr(i int) *T {
	v.check(i)
	return &v.slots()[i]
}

// Set replaces the element at i, releasing the value it overwrites. Setting
// an element to a value equal to itself releases nothing.
func (v *Vec[T, A]) Set(i int, x T) {
	v.check(i)
	s := v.slots()
	old := s[i]
	s[i] = x
	layout.ReleaseReplaced(old, x)
}

func (v *Vec[T, A]) check(i int) {
	if i < 0 || i >= v.len {
		panic(indexError(i, v.len))
	}
}

// Insert places x at i, shifting [i, Len) one slot to the right.
func (v *Vec[T, A]) Insert(i int, x T) {
	s := v.slots()
	if v.len == len(s) {
		panic(capacityError(v.len+1, len(s)))
	}
	if i < 0 || i > v.len {
		panic(indexError(i, v.len))
	}
	copy(s[i+1:v.len+1], s[i:v.len])
	s[i] = x
	v.len++
}

// Remove takes out the element at i, shifting the tail left to close the gap.
func (v *Vec[T, A]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.len {
		return zero, false
	}
	s := v.slots()
	x := s[i]
	copy(s[i:v.len-1], s[i+1:v.len])
	v.len--
	s[v.len] = zero
	return x, true
}

// SwapRemove takes out the element at i and moves the last element into its
// place. Order is not preserved.
func (v *Vec[T, A]) SwapRemove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.len {
		return zero, false
	}
	s := v.slots()
	x := s[i]
	v.len--
	s[i] = s[v.len]
	s[v.len] = zero
	return x, true
}

// Truncate releases every element at index n and above. It does nothing if
// n >= Len.
func (v *Vec[T, A]) Truncate(n int) {
	if n < 0 {
		panic(indexError(n, v.len))
	}
	if n >= v.len {
		return
	}
	tail := v.slots()[n:v.len]
	// shrink first so a panicking Release cannot lead to a second release
	v.len = n
	layout.ReleaseAll(tail)
}

// Clear releases every element and leaves the vector empty.
func (v *Vec[T, A]) Clear() { v.Truncate(0) }

// Release is Clear. It lets a Vec be the element of another Vec.
func (v *Vec[T, A]) Release() { v.Truncate(0) }

// Slice returns the live elements as a slice aliasing the vector's storage.
// Its capacity equals its length, so appending to it never writes into the
// vector.
func (v *Vec[T, A]) Slice() []T {
	return v.slots()[:v.len:v.len]
}

// Range returns the live elements [lo, hi) as a slice aliasing the storage.
func (v *Vec[T, A]) Range(lo, hi int) []T {
	if lo < 0 || lo > hi || hi > v.len {
		panic(rangeError(lo, hi, v.len))
	}
	return v.slots()[lo:hi:hi]
}

// Clone returns a vector holding dup(x) for every live element x. With a nil
// dup the elements are copied as they are and keep sharing whatever they
// refer to, so only pass nil for elements that need no release.
func (v *Vec[T, A]) Clone(dup func(T) T) Vec[T, A] {
	var out Vec[T, A]
	s := out.slots()
	for i, x := range v.Slice() {
		if dup != nil {
			x = dup(x)
		}
		s[i] = x
	}
	out.len = v.len
	return out
}

func (v *Vec[T, A]) String() string {
	return fmt.Sprint(v.Slice())
}

// forget drops ownership of [0, Len) without releasing anything.
func (v *Vec[T, A]) forget() {
	clear(v.slots()[:v.len])
	v.len = 0
}
