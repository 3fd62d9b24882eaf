package bench

import "github.com/zoobzio/capitan"

// Run lifecycle signals.
var (
	// RunStarted is emitted once before the first case is measured.
	RunStarted = capitan.NewSignal(
		"stackvec.bench.run.started",
		"Benchmark run started",
	)

	// CaseCompleted is emitted after each size/kind pair has been measured.
	CaseCompleted = capitan.NewSignal(
		"stackvec.bench.case.completed",
		"Benchmark case measured",
	)

	// RunCompleted is emitted after the last case, or when the run is cut short.
	RunCompleted = capitan.NewSignal(
		"stackvec.bench.run.completed",
		"Benchmark run completed",
	)
)

// Field keys for benchmark events.
var (
	KeyRunID      = capitan.NewStringKey("run_id")
	KeyIterations = capitan.NewIntKey("iterations")
	KeySize       = capitan.NewIntKey("size")
	KeyKind       = capitan.NewStringKey("kind")
	KeySliceTime  = capitan.NewDurationKey("slice_time")
	KeyVecTime    = capitan.NewDurationKey("vec_time")
	KeyCases      = capitan.NewIntKey("cases")
	KeyElapsed    = capitan.NewDurationKey("elapsed")
	KeyError      = capitan.NewStringKey("error")
)
