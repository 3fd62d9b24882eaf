package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type valueRel struct{ n *int }

func (v valueRel) Release() { *v.n++ }

type ptrRel struct{ n *int }

func (p *ptrRel) Release() { *p.n++ }

type withRelease interface {
	Releaser
	Name() string
}

func TestLen(t *testing.T) {
	require.Equal(t, 4, Len[int, [4]int]())
	require.Equal(t, 0, Len[string, [0]string]())
	require.PanicsWithError(t,
		"backing type is not an array of the element type: [4]int32 is not [N]int",
		func() { Len[int, [4]int32]() })
	require.Panics(t, func() { Len[int, []int]() })
}

func TestSlotsAliasArray(t *testing.T) {
	var arr [3]int
	s := Slots[int](&arr)
	require.Len(t, s, 3)
	s[1] = 9
	require.Equal(t, 9, arr[1])
}

func TestStrategyFor(t *testing.T) {
	require.Equal(t, None, StrategyFor[int]())
	require.Equal(t, Value, StrategyFor[valueRel]())
	require.Equal(t, Value, StrategyFor[*ptrRel]())
	require.Equal(t, Pointer, StrategyFor[ptrRel]())
	require.Equal(t, Dynamic, StrategyFor[any]())
	require.Equal(t, Value, StrategyFor[withRelease]())
	// cached answers are stable
	require.Equal(t, Pointer, StrategyFor[ptrRel]())
	require.Equal(t, "pointer", Pointer.String())
}

func TestReleaseAll(t *testing.T) {
	n := 0
	s := []valueRel{{&n}, {&n}, {&n}}
	ReleaseAll(s)
	require.Equal(t, 3, n)
	for _, x := range s {
		require.Nil(t, x.n)
	}

	p := []ptrRel{{&n}, {&n}}
	ReleaseAll(p)
	require.Equal(t, 5, n)

	nilIface := make([]withRelease, 2)
	require.NotPanics(t, func() { ReleaseAll(nilIface) })

	ReleaseOne(valueRel{&n})
	ReleaseOne(42)
	require.Equal(t, 6, n)
}

func TestReleaseSkipsNilElements(t *testing.T) {
	n := 0
	ptrs := []*ptrRel{nil, {&n}, nil}
	require.NotPanics(t, func() { ReleaseAll(ptrs) })
	require.Equal(t, 1, n)
	require.Equal(t, []*ptrRel{nil, nil, nil}, ptrs)

	vals := []*valueRel{{&n}, nil}
	require.NotPanics(t, func() { ReleaseAll(vals) })
	require.Equal(t, 2, n)

	// a typed nil inside an interface slot
	var np *ptrRel
	dyn := []any{np, &ptrRel{&n}}
	require.NotPanics(t, func() { ReleaseAll(dyn) })
	require.Equal(t, 3, n)

	require.NotPanics(t, func() { ReleaseOne[*ptrRel](nil) })
}

// boom panics when released if fail is set, after logging its id.
type boom struct {
	id   int
	fail bool
	log  *[]int
}

func (b boom) Release() {
	*b.log = append(*b.log, b.id)
	if b.fail {
		panic("release failed")
	}
}

func TestReleaseAllContinuesAfterPanic(t *testing.T) {
	var log []int
	s := []boom{{0, true, &log}, {1, false, &log}, {2, true, &log}, {3, false, &log}}
	require.PanicsWithValue(t, "release failed", func() { ReleaseAll(s) })
	require.Equal(t, []int{0, 1, 2, 3}, log)
	require.Equal(t, make([]boom, 4), s)
}

func TestSame(t *testing.T) {
	n := 0
	p := &ptrRel{&n}
	require.True(t, Same(p, p))
	require.False(t, Same(p, &ptrRel{&n}))
	require.True(t, Same(3, 3))
	require.True(t, Same[any](p, p))
	// uncomparable dynamic values are never the same
	require.False(t, Same[any]([]int{1}, []int{1}))
	require.False(t, Same([]int{1}, []int{1}))
}

func TestReleaseReplaced(t *testing.T) {
	n := 0
	p := &ptrRel{&n}
	ReleaseReplaced(p, p)
	require.Equal(t, 0, n)
	ReleaseReplaced(p, &ptrRel{&n})
	require.Equal(t, 1, n)
	ReleaseReplaced(1, 2)
}
