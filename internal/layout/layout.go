// Package layout maps an inline backing array onto a slot view and decides
// how elements stored in it are released.
package layout

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

var ErrNotArray = errors.New("backing type is not an array of the element type")

// Releaser is implemented by values that hold something beyond their own
// memory and must be let go of exactly once.
type Releaser interface {
	Release()
}

// Strategy says how Release is reached for an element type.
type Strategy uint8

const (
	// None: the element type has no Release method.
	None Strategy = iota
	// Value: T itself implements Releaser.
	Value
	// Pointer: only *T implements Releaser.
	Pointer
	// Dynamic: T is an interface type; each stored value is checked.
	Dynamic
)

func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case Value:
		return "value"
	case Pointer:
		return "pointer"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

var releaserType = reflect.TypeFor[Releaser]()

// Len returns the array length of A. It panics with ErrNotArray unless A is
// [N]T for the given T.
func Len[T, A any]() int {
	at := reflect.TypeFor[A]()
	if at.Kind() != reflect.Array || at.Elem() != reflect.TypeFor[T]() {
		panic(fmt.Errorf("%w: %v is not [N]%v", ErrNotArray, at, reflect.TypeFor[T]()))
	}
	return at.Len()
}

// Slots aliases the whole backing array as a []T without copying.
func Slots[T, A any](a *A) []T {
	n := Len[T, A]()
	return unsafe.Slice((*T)(unsafe.Pointer(a)), n)
}

type planCache struct {
	mu    sync.RWMutex
	plans map[reflect.Type]Strategy
}

var cache = planCache{plans: make(map[reflect.Type]Strategy)}

// StrategyFor returns the cached release strategy for T.
func StrategyFor[T any]() Strategy {
	t := reflect.TypeFor[T]()
	cache.mu.RLock()
	if s, ok := cache.plans[t]; ok {
		cache.mu.RUnlock()
		return s
	}
	cache.mu.RUnlock()

	cache.mu.Lock()
	defer cache.mu.Unlock()

	// Double-check
	if s, ok := cache.plans[t]; ok {
		return s
	}
	s := classify(t)
	cache.plans[t] = s
	return s
}

func classify(t reflect.Type) Strategy {
	switch {
	case t.Implements(releaserType):
		return Value
	case t.Kind() == reflect.Interface:
		return Dynamic
	case reflect.PointerTo(t).Implements(releaserType):
		return Pointer
	default:
		return None
	}
}

// ReleaseAll releases every element of s in index order and then zeroes s.
// If a Release panics, the elements after it are still released and s is
// still zeroed before the panic carries on.
func ReleaseAll[T any](s []T) {
	if len(s) == 0 {
		return
	}
	defer func() { clear(s) }()
	if st := StrategyFor[T](); st != None {
		releaseFrom(s, st)
	}
}

func releaseFrom[T any](s []T, st Strategy) {
	i := 0
	defer func() {
		// i < len(s) only while unwinding from a panic at s[i]
		if i < len(s) {
			releaseFrom(s[i+1:], st)
		}
	}()
	for ; i < len(s); i++ {
		release(s[i], st)
	}
}

// ReleaseOne releases a single element that has already left its slot.
func ReleaseOne[T any](x T) {
	if st := StrategyFor[T](); st != None {
		release(x, st)
	}
}

// ReleaseReplaced releases old, which has just been overwritten by x, unless
// both are the same value and old is therefore still stored.
func ReleaseReplaced[T any](old, x T) {
	st := StrategyFor[T]()
	if st == None || Same(old, x) {
		return
	}
	release(old, st)
}

// Same reports whether a and b are equal comparable values. Values that
// cannot be compared are never the same.
func Same[T any](a, b T) bool {
	va, vb := reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}

func release[T any](x T, st Strategy) {
	switch st {
	case Value, Dynamic:
		// comma-ok: a nil interface value holds nothing to release
		if r, ok := any(x).(Releaser); ok && !isNil(r) {
			r.Release()
		}
	case Pointer:
		// x is already a copy; its slot gets zeroed by the caller.
		any(&x).(Releaser).Release()
	}
}

// isNil reports whether r wraps a nil pointer, map, chan, func or slice.
func isNil(r Releaser) bool {
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
