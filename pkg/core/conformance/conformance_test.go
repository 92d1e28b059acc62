// Copyright 2025-2026 The cucomplex Authors. SPDX-License-Identifier: Apache-2.0

package conformance

import (
	"math"
	"testing"
	"time"

	"github.com/gocuda/cucomplex/pkg/core/cmplxs"
	"github.com/gocuda/cucomplex/pkg/core/dtypes"
	"github.com/gocuda/cucomplex/pkg/core/dtypes/bfloat16"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestCasesFixture(t *testing.T) {
	f64Cases := Cases[float64]()
	require.Equal(t, len(casePairs), len(f64Cases))

	// The fixture must cover the special-value categories the sweep is about.
	var hasNaN, hasInf, hasNegZero, hasMinusOne, hasImaginaryUnit bool
	for _, c := range f64Cases {
		hasNaN = hasNaN || c.IsNaN()
		hasInf = hasInf || c.IsInf()
		hasNegZero = hasNegZero || (c.Re == 0 && math.Signbit(c.Re))
		hasMinusOne = hasMinusOne || (c.Re == -1 && c.Im == 0)
		hasImaginaryUnit = hasImaginaryUnit || (c.Re == 0 && c.Im == 1)
	}
	assert.True(t, hasNaN, "fixture has NaN cases")
	assert.True(t, hasInf, "fixture has infinite cases")
	assert.True(t, hasNegZero, "fixture has a negative-zero case")
	assert.True(t, hasMinusOne, "fixture has -1")
	assert.True(t, hasImaginaryUnit, "fixture has i")

	// Conversion to a narrow type preserves the categories.
	bf16Cases := Cases[bfloat16.BFloat16]()
	require.Equal(t, len(f64Cases), len(bf16Cases))
	for i, c := range f64Cases {
		assert.Equal(t, c.IsNaN(), bf16Cases[i].IsNaN(), "case %d NaN-ness", i)
	}

	// 1e6 overflows Float16 to +Inf; that is the defined conversion.
	f16Cases := Cases[float16.Float16]()
	overflowed := false
	for _, c := range f16Cases {
		overflowed = overflowed || dtypes.IsInf(c.Re, 1)
	}
	assert.True(t, overflowed)
}

func TestIsAbout(t *testing.T) {
	assert.True(t, IsAbout(4.0, 4.0))
	assert.True(t, IsAbout(4.0, 4.0+1e-13))
	assert.False(t, IsAbout(4.0, 4.001))
	assert.True(t, IsAbout(float32(4), float32(4.00001)))
	assert.False(t, IsAbout(float32(4), float32(4.01)))

	// Infinities of the same sign compare equal, opposite signs don't.
	assert.True(t, IsAbout(math.Inf(1), math.Inf(1)))
	assert.False(t, IsAbout(math.Inf(1), math.Inf(-1)))

	// NaN compares about-equal only to NaN.
	assert.True(t, IsAbout(math.NaN(), math.NaN()))
	assert.False(t, IsAbout(math.NaN(), 0.0))

	// Reduced precision gets its wider tolerance.
	assert.True(t, IsAbout(bfloat16.FromFloat64(4), bfloat16.FromFloat64(3.99)))
}

func TestAgree(t *testing.T) {
	require.NoError(t, agree("real", 1.0, 1.0))
	require.NoError(t, agree("real", math.NaN(), math.NaN()))
	require.Error(t, agree("real", math.NaN(), 1.0))
	require.Error(t, agree("real", 1.0, 1.0000000001))
	// Exact agreement follows float ==, so the sign of zero is not compared.
	require.NoError(t, agree("imaginary", math.Copysign(0, -1), 0.0))
}

func testChecks[T dtypes.Float](t *testing.T) {
	n, err := CheckPowRealComplex[T](nil)
	require.NoError(t, err)
	assert.Equal(t, len(casePairs)*len(casePairs)+1, n)

	_, err = CheckPowComplexReal[T](nil)
	require.NoError(t, err)

	_, err = CheckPowComplexComplex[T](nil)
	require.NoError(t, err)
}

func TestChecks(t *testing.T) {
	t.Run("Float32", testChecks[float32])
	t.Run("Float64", testChecks[float64])
	t.Run("Float16", testChecks[float16.Float16])
	t.Run("BFloat16", testChecks[bfloat16.BFloat16])
}

func testZeroToI[T dtypes.Float](t *testing.T) {
	direct, reference := ZeroToI[T]()
	require.NoError(t, agreeComplex(direct, reference),
		"0**i must not diverge between the two paths")
}

func TestZeroToI(t *testing.T) {
	t.Run("Float64", testZeroToI[float64])
	t.Run("Float16", testZeroToI[float16.Float16])
	t.Run("BFloat16", testZeroToI[bfloat16.BFloat16])
}

func TestMinusOneToHalf(t *testing.T) {
	direct, reference := MinusOneToHalf[float64]()
	require.NoError(t, agreeComplex(direct, reference))

	// At full precision the principal branch gives (about) the imaginary unit.
	assert.InDelta(t, 0, direct.Re, 1e-12)
	assert.InDelta(t, 1, direct.Im, 1e-12)
}

func TestRun(t *testing.T) {
	calls := 0
	result := Run(dtypes.Float64, func() { calls++ })
	require.True(t, result.Passed())
	assert.Equal(t, NumChecks(), result.Checks)
	assert.Equal(t, NumChecks(), calls)
	assert.Equal(t, dtypes.Float64, result.DType)
	assert.Greater(t, result.Elapsed, time.Duration(0))
}

func TestRunRejectsNonFloat(t *testing.T) {
	assert.Panics(t, func() { Run(dtypes.Complex128, nil) })
	assert.Panics(t, func() { Run(dtypes.InvalidDType, nil) })
}

func TestRunAll(t *testing.T) {
	report := RunAll(nil)
	require.True(t, report.Passed())
	assert.Equal(t, len(dtypes.EnabledFloats()), len(report.Results))
	assert.Equal(t, NumChecks()*len(report.Results), report.Checks())
	assert.NotEqual(t, uuid.Nil, report.RunID)

	// Explicit dtype selection.
	one := RunAll(nil, dtypes.BFloat16)
	require.Len(t, one.Results, 1)
	assert.True(t, one.Passed())
}

func TestMustRunAll(t *testing.T) {
	assert.NotPanics(t, func() { MustRunAll(dtypes.Float32, dtypes.Float64) })
}

func TestAgreeErrorMentionsComponent(t *testing.T) {
	err := agreeComplex(
		cmplxs.FromFloat64s[float64](1, math.NaN()),
		cmplxs.FromFloat64s[float64](1, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "imaginary")
}
