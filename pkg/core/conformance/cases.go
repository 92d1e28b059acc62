// Copyright 2025-2026 The cucomplex Authors. SPDX-License-Identifier: Apache-2.0

package conformance

import (
	"math"

	"github.com/gocuda/cucomplex/pkg/core/cmplxs"
	"github.com/gocuda/cucomplex/pkg/core/dtypes"
)

var (
	inf     = math.Inf(1)
	nan     = math.NaN()
	negZero = math.Copysign(0, -1)
)

// casePairs is the fixture in float64 (real, imag) pairs: a fixed, ordered
// set of representative complex values covering zeros of both signs, unity,
// halves, a few ordinary finite values, very large and very small magnitudes,
// and every interesting combination of infinities and NaNs with finite
// components. The order is part of the fixture: case indices appear in
// failure reports.
var casePairs = [][2]float64{
	{0, 0},
	{negZero, 0},
	{0, negZero},
	{negZero, negZero},
	{1, 0},
	{-1, 0},
	{0.5, 0},
	{-0.5, 0},
	{2, 0},
	{-2, 0},
	{0, 1},
	{0, -1},
	{0, 0.5},
	{0, -0.5},
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
	{2, 3},
	{1e-6, 1e-6},
	{1e6, 1e-6},
	{inf, 0},
	{-inf, 0},
	{0, inf},
	{0, -inf},
	{inf, inf},
	{-inf, -inf},
	{inf, nan},
	{nan, inf},
	{nan, 0},
	{0, nan},
	{nan, nan},
	{nan, 1},
	{1, nan},
}

// Cases returns the fixture converted to the element type T, freshly
// allocated in a fixed order. Values outside the dynamic range of T convert
// to infinities, which is part of the type's conversion semantics and kept
// as such (1e6 overflows Float16, for instance).
func Cases[T dtypes.Float]() []cmplxs.Complex[T] {
	cases := make([]cmplxs.Complex[T], len(casePairs))
	for i, pair := range casePairs {
		cases[i] = cmplxs.FromFloat64s[T](pair[0], pair[1])
	}
	return cases
}

// NumChecks returns the number of pairwise consistency checks a full Run for
// one dtype performs: an NxN sweep per pow overload plus one sanity check
// each. Useful to size progress reporting.
func NumChecks() int {
	n := len(casePairs)
	return numOverloads * (n*n + 1)
}

const numOverloads = 3
