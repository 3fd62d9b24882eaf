package stackvec

import (
	"testing"
)

var sink int

func BenchmarkVecPushPop(b *testing.B) {
	var v Vec[int, [64]int]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j := range 64 {
			v.Push(j)
		}
		for range 64 {
			x, _ := v.Pop()
			sink += x
		}
	}
}

func BenchmarkSlicePushPop(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := make([]int, 0, 64)
		for j := range 64 {
			s = append(s, j)
		}
		for len(s) > 0 {
			sink += s[len(s)-1]
			s = s[:len(s)-1]
		}
	}
}

func BenchmarkVecReleaseTracked(b *testing.B) {
	var log []int
	items := trackedN(&log, 16)
	var v Vec[tracked, [16]tracked]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Append(items...)
		v.Clear()
		log = log[:0]
	}
}

func BenchmarkDrain(b *testing.B) {
	var v Vec[string, [32]string]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range 32 {
			v.Push("x")
		}
		for s := range v.Drain() {
			sink += len(s)
		}
	}
}
