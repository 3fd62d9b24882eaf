// Package bench measures what it costs to set up a fixed-capacity vector
// compared with a heap slice of the same capacity.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/capitan"

	"github.com/rawbytedev/stackvec"
)

var (
	ErrNoIterations = errors.New("iterations must be positive")
	ErrUnknownCase  = errors.New("no benchmark case for size/kind")
)

type Config struct {
	Iterations int
	Sizes      []int
	Kinds      []string
}

// DefaultConfig mirrors the matrix the vector was first measured with.
func DefaultConfig() Config {
	return Config{
		Iterations: 1_000_000,
		Sizes:      []int{100, 1000, 10000},
		Kinds:      []string{"uint8", "uint32", "string"},
	}
}

type caseKey struct {
	size int
	kind string
}

type measureFunc func(iters int) (slice, vec time.Duration)

var cases = map[caseKey]measureFunc{
	{100, "uint8"}:    measure[uint8, [100]uint8],
	{1000, "uint8"}:   measure[uint8, [1000]uint8],
	{10000, "uint8"}:  measure[uint8, [10000]uint8],
	{100, "uint32"}:   measure[uint32, [100]uint32],
	{1000, "uint32"}:  measure[uint32, [1000]uint32],
	{10000, "uint32"}: measure[uint32, [10000]uint32],
	{100, "string"}:   measure[string, [100]string],
	{1000, "string"}:  measure[string, [1000]string],
	{10000, "string"}: measure[string, [10000]string],
}

var (
	sinkSlice any
	sinkLen   int
)

// measure times creating a slice with room for N elements and creating an
// empty Vec of capacity N, one push each so neither is optimised away.
func measure[T, A any](iters int) (time.Duration, time.Duration) {
	var x T
	empty := stackvec.New[T, A]()
	n := empty.Cap()

	start := time.Now()
	for i := 0; i < iters; i++ {
		s := make([]T, 0, n)
		s = append(s, x)
		sinkSlice = s
	}
	sliceTime := time.Since(start)

	start = time.Now()
	for i := 0; i < iters; i++ {
		var v stackvec.Vec[T, A]
		v.Push(x)
		sinkLen += v.Len()
	}
	return sliceTime, time.Since(start)
}

// Validate reports the first size/kind pair that has no registered case.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return ErrNoIterations
	}
	for _, size := range c.Sizes {
		for _, kind := range c.Kinds {
			if _, ok := cases[caseKey{size, kind}]; !ok {
				return fmt.Errorf("%w: %d/%s", ErrUnknownCase, size, kind)
			}
		}
	}
	return nil
}

// Run measures every size/kind pair in cfg in order. It stops between cases
// once ctx is done and returns what it has measured so far with ctx's error.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rep := &Report{
		RunID:      uuid.NewString(),
		Started:    time.Now().UTC(),
		Iterations: cfg.Iterations,
	}
	capitan.Emit(ctx, RunStarted,
		KeyRunID.Field(rep.RunID),
		KeyIterations.Field(cfg.Iterations),
	)

	var runErr error
loop:
	for _, size := range cfg.Sizes {
		for _, kind := range cfg.Kinds {
			if err := ctx.Err(); err != nil {
				runErr = err
				break loop
			}
			sliceTime, vecTime := cases[caseKey{size, kind}](cfg.Iterations)
			res := newResult(size, kind, cfg.Iterations, sliceTime, vecTime)
			rep.Results = append(rep.Results, res)
			capitan.Emit(ctx, CaseCompleted,
				KeyRunID.Field(rep.RunID),
				KeySize.Field(size),
				KeyKind.Field(kind),
				KeySliceTime.Field(sliceTime),
				KeyVecTime.Field(vecTime),
			)
		}
	}

	if runErr != nil {
		capitan.Emit(ctx, RunCompleted,
			KeyRunID.Field(rep.RunID),
			KeyCases.Field(len(rep.Results)),
			KeyElapsed.Field(time.Since(rep.Started)),
			KeyError.Field(runErr.Error()),
		)
		return rep, runErr
	}
	capitan.Emit(ctx, RunCompleted,
		KeyRunID.Field(rep.RunID),
		KeyCases.Field(len(rep.Results)),
		KeyElapsed.Field(time.Since(rep.Started)),
	)
	return rep, nil
}
