//go:build mage

// Package main provides build targets for stackvec using Mage.
//
// Usage:
//
//	mage build        Compile stackbench to bin/
//	mage test         Run all tests
//	mage bench        Run the package benchmarks with allocation counts
//	mage fuzz         Fuzz push/pop for fuzzTime
//	mage lint         Run golangci-lint
//	mage clean        Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "stackbench"
	binaryDir  = "bin"
	cmdDir     = "./cmd/stackbench"
	fuzzTime   = "30s"
)

// Build compiles the stackbench binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Bench runs the root package benchmarks.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", ".")
}

// Fuzz runs FuzzPushPop after the regular tests pass.
func Fuzz() error {
	mg.Deps(Test)
	return sh.RunV(binGo, "test", "-run", "^$", "-fuzz", "^FuzzPushPop$", "-fuzztime", fuzzTime, ".")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts and profiles.
func Clean() error {
	for _, p := range []string{binaryDir, "mem.prof"} {
		if err := sh.Rm(p); err != nil {
			return err
		}
	}
	return nil
}
