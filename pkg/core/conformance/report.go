// Copyright 2025-2026 The cucomplex Authors. SPDX-License-Identifier: Apache-2.0

package conformance

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gocuda/cucomplex/pkg/core/dtypes"
	"github.com/gocuda/cucomplex/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/exceptions"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Result is the outcome of the conformance sweep for one element dtype.
type Result struct {
	DType   dtypes.DType
	Checks  int
	Elapsed time.Duration

	// Err is the first mismatch found, or nil when the dtype passed.
	Err error
}

// Passed reports whether the sweep found no mismatch.
func (r Result) Passed() bool { return r.Err == nil }

// Report aggregates the Results of a conformance run over several dtypes.
type Report struct {
	// RunID uniquely tags this run, for logs and CI artifacts.
	RunID uuid.UUID

	Results []Result
}

// Passed reports whether every dtype in the run passed.
func (r *Report) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed() {
			return false
		}
	}
	return true
}

// Checks returns the total number of checks performed across all dtypes.
func (r *Report) Checks() int {
	total := 0
	for _, result := range r.Results {
		total += result.Checks
	}
	return total
}

// checkFns lists the per-overload check functions for an element type, in
// the order they run.
func checkFns[T dtypes.Float]() []struct {
	name string
	fn   func(onCheck func()) (int, error)
} {
	return []struct {
		name string
		fn   func(onCheck func()) (int, error)
	}{
		{"pow(real, complex)", CheckPowRealComplex[T]},
		{"pow(complex, real)", CheckPowComplexReal[T]},
		{"pow(complex, complex)", CheckPowComplexComplex[T]},
	}
}

func run[T dtypes.Float](dtype dtypes.DType, onCheck func()) Result {
	start := time.Now()
	result := Result{DType: dtype}
	for _, check := range checkFns[T]() {
		n, err := check.fn(onCheck)
		result.Checks += n
		if err != nil {
			result.Err = errors.WithMessage(err, check.name)
			break
		}
	}
	result.Elapsed = time.Since(start)
	return result
}

// Run executes the full conformance sweep -- all three pow overloads and
// their sanity cases -- for one float element dtype. The onCheck callback,
// when non-nil, is invoked once per check (see NumChecks); pass nil when no
// progress reporting is wanted.
//
// It panics for dtypes that are not float element types or are disabled on
// this build.
func Run(dtype dtypes.DType, onCheck func()) Result {
	if !dtype.Enabled() || !dtype.IsFloat() {
		exceptions.Panicf("conformance.Run: dtype %s is not an enabled float element type", dtype)
	}
	switch dtype {
	case dtypes.Float16:
		return run[float16.Float16](dtype, onCheck)
	case dtypes.BFloat16:
		return run[bfloat16.BFloat16](dtype, onCheck)
	case dtypes.Float32:
		return run[float32](dtype, onCheck)
	case dtypes.Float64:
		return run[float64](dtype, onCheck)
	}
	exceptions.Panicf("conformance.Run: unhandled dtype %s", dtype)
	panic(nil)
}

// RunAll executes the conformance sweep for the given dtypes -- or for every
// enabled float dtype when none are given -- and aggregates the Results into
// a Report tagged with a fresh run ID.
func RunAll(onCheck func(), dts ...dtypes.DType) *Report {
	if len(dts) == 0 {
		dts = dtypes.EnabledFloats()
	}
	report := &Report{RunID: uuid.New()}
	for _, dtype := range dts {
		report.Results = append(report.Results, Run(dtype, onCheck))
	}
	return report
}

// MustRunAll is RunAll but panics on the first failing dtype, preserving the
// fatal assertion semantics of a conformance harness.
func MustRunAll(dts ...dtypes.DType) *Report {
	report := RunAll(nil, dts...)
	for _, result := range report.Results {
		if !result.Passed() {
			exceptions.Panicf("conformance failure for %s after %s checks: %+v",
				result.DType, humanChecks(result.Checks), result.Err)
		}
	}
	return report
}

func humanChecks(n int) string {
	return humanize.Comma(int64(n))
}
