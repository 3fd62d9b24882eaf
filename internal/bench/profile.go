package bench

import (
	"fmt"
	"io"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/stackvec"
)

// Profile fills and empties a string vector iters times with every
// allocation sampled, then writes the heap profile to w. Only the strings
// built to fill the vector should show up in it, not the vector.
func Profile(w io.Writer, iters int) error {
	if iters <= 0 {
		return ErrNoIterations
	}
	prev := runtime.MemProfileRate
	runtime.MemProfileRate = 1
	defer func() { runtime.MemProfileRate = prev }()

	words := []string{"azerty", "hello", "world", "random"}
	for i := 0; i < iters; i++ {
		var v stackvec.Vec[string, [64]string]
		for j := 0; !v.IsFull(); j++ {
			v.Push(words[j%len(words)] + fmt.Sprint(i))
		}
		for s, ok := v.Pop(); ok; s, ok = v.Pop() {
			sinkLen += len(s)
		}
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(w); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}
