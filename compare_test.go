package stackvec

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualIgnoresCapacity(t *testing.T) {
	var small Vec[int, [5]int]
	var large Vec[int, [10]int]
	small.Append(1, 2, 3)
	large.Append(1, 2, 3)

	require.True(t, Equal(&small, &large))
	require.True(t, Equal(&large, &small))
	arr := [3]int{1, 2, 3}
	require.True(t, EqualSlice(&small, arr[:]))
	require.True(t, EqualSlice(&small, []int{1, 2, 3}))

	assert.False(t, EqualSlice(&small, []int{1, 2}))
	assert.False(t, EqualSlice(&small, []int{1, 2, 3, 4}))

	large.Push(4)
	assert.False(t, Equal(&small, &large))
	large.Pop()
	large.Set(2, 9)
	assert.False(t, Equal(&small, &large))
}

func TestEqualEmpty(t *testing.T) {
	var a Vec[string, [0]string]
	var b Vec[string, [3]string]
	require.True(t, Equal(&a, &b))
	require.True(t, EqualSlice(&b, nil))
}

func TestEqualFunc(t *testing.T) {
	var nums Vec[int, [4]int]
	var strs Vec[string, [2]string]
	nums.Append(1, 2)
	strs.Append("1", "2")
	eq := func(n int, s string) bool { return strconv.Itoa(n) == s }
	require.True(t, EqualFunc(&nums, &strs, eq))
	nums.Push(3)
	require.False(t, EqualFunc(&nums, &strs, eq))
}

func TestCompare(t *testing.T) {
	var a Vec[int, [4]int]
	var b Vec[int, [8]int]
	require.Equal(t, 0, Compare(&a, &b))

	a.Append(1, 2)
	b.Append(1, 2, 0)
	require.Equal(t, -1, Compare(&a, &b))
	require.Equal(t, 1, Compare(&b, &a))

	a.Push(5)
	require.Equal(t, 1, Compare(&a, &b))
}

func TestDerivedSliceOperations(t *testing.T) {
	var v Vec[int, [6]int]
	v.Append(4, 1, 3, 2)
	slices.Sort(v.Slice())
	require.Equal(t, []int{1, 2, 3, 4}, v.Slice())
	require.Equal(t, 2, slices.Index(v.Slice(), 3))
	_, found := slices.BinarySearch(v.Slice(), 4)
	require.True(t, found)
	require.Equal(t, 4, v.Len())
}
