// Copyright 2025-2026 The cucomplex Authors. SPDX-License-Identifier: Apache-2.0

// Package conformance verifies that the pow family in pkg/core/cmplxs is
// internally consistent with its canonical decomposition exp(y*log(x)),
// across the full cross product of a fixture of representative complex
// values -- branch cuts, zeros and negative bases, infinities and NaNs
// included -- re-run independently for every enabled element type.
//
// Agreement is per component and strict: where the direct path produces NaN
// the reference path must produce NaN, anywhere else the two must compare
// exactly equal. NaN payloads and the sign of zero results are
// platform-defined and deliberately not compared. A separate basic sanity
// case per overload guards against gross regressions with an approximate
// comparison, independent of the edge-case sweep.
package conformance

import (
	"math"

	"github.com/gocuda/cucomplex/pkg/core/cmplxs"
	"github.com/gocuda/cucomplex/pkg/core/dtypes"
	"github.com/gocuda/cucomplex/pkg/support/intseq"
	"github.com/pkg/errors"
)

// sanityImagTolerance bounds the absolute imaginary component of the basic
// sanity results, which are mathematically real.
const sanityImagTolerance = 1e-6

// IsAbout reports whether x and y are approximately equal, within the
// relative tolerance of their dtype scaled by the magnitude of the operands
// (with a floor of 1, so values near zero are compared absolutely).
// Equal values -- including equal infinities -- and pairs of NaNs compare true.
func IsAbout[T dtypes.Float](x, y T) bool {
	xf, yf := dtypes.ToFloat64(x), dtypes.ToFloat64(y)
	if xf == yf {
		return true
	}
	if math.IsNaN(xf) || math.IsNaN(yf) {
		return math.IsNaN(xf) && math.IsNaN(yf)
	}
	tol := dtypes.FromGenericsType[T]().Tolerance()
	scale := math.Max(1, math.Max(math.Abs(xf), math.Abs(yf)))
	return math.Abs(xf-yf) <= tol*scale
}

// agree implements the per-component agreement rule of the edge-case sweep:
// NaN in the direct path requires NaN in the reference path; otherwise the
// two values must compare exactly equal.
func agree[T dtypes.Float](component string, direct, reference T) error {
	if dtypes.IsNaN(direct) {
		if !dtypes.IsNaN(reference) {
			return errors.Errorf("%s component: direct path is NaN, reference path is %v",
				component, dtypes.ToFloat64(reference))
		}
		return nil
	}
	if dtypes.ToFloat64(direct) != dtypes.ToFloat64(reference) {
		return errors.Errorf("%s component: direct path %v != reference path %v",
			component, dtypes.ToFloat64(direct), dtypes.ToFloat64(reference))
	}
	return nil
}

// agreeComplex applies agree independently to the real and imaginary
// components: one component may be NaN while the other carries a definite
// value.
func agreeComplex[T dtypes.Float](direct, reference cmplxs.Complex[T]) error {
	if err := agree("real", direct.Re, reference.Re); err != nil {
		return err
	}
	return agree("imaginary", direct.Im, reference.Im)
}

// CheckPowRealComplex sweeps pow(a, y) for a real base a against the
// reference exp(y*log(complex(a))) over the NxN fixture cross product, then
// runs the basic sanity case pow(2, 2+0i) ~= 4+0i. It returns the number of
// checks performed and the first mismatch found, if any.
//
// onCheck, when non-nil, is called once per check; it exists for progress
// reporting.
func CheckPowRealComplex[T dtypes.Float](onCheck func()) (int, error) {
	cases := Cases[T]()
	checks := 0
	for _, i := range intseq.Upto(len(cases)) {
		a := cases[i].Real()
		for _, j := range intseq.Upto(len(cases)) {
			y := cases[j]
			direct := cmplxs.PowReal(a, y)
			reference := cmplxs.Exp(y.Mul(cmplxs.Log(cmplxs.FromReal(a))))
			checks++
			if onCheck != nil {
				onCheck()
			}
			if err := agreeComplex(direct, reference); err != nil {
				return checks, errors.WithMessagef(err, "cases (%d, %d): pow(%v, %v)",
					i, j, dtypes.ToFloat64(a), y)
			}
		}
	}

	two := dtypes.FromFloat64[T](2)
	got := cmplxs.PowReal(two, cmplxs.FromReal(two))
	checks++
	if onCheck != nil {
		onCheck()
	}
	return checks, sanityError("pow(2, 2+0i)", got, 4)
}

// CheckPowComplexReal is CheckPowRealComplex for the real-exponent overload:
// pow(x, b) against exp(complex(b)*log(x)). Its sanity case is
// pow(2+3i, 2) ~= -5+12i.
func CheckPowComplexReal[T dtypes.Float](onCheck func()) (int, error) {
	cases := Cases[T]()
	checks := 0
	for _, i := range intseq.Upto(len(cases)) {
		x := cases[i]
		for _, j := range intseq.Upto(len(cases)) {
			b := cases[j].Real()
			direct := cmplxs.PowToReal(x, b)
			reference := cmplxs.Exp(cmplxs.FromReal(b).Mul(cmplxs.Log(x)))
			checks++
			if onCheck != nil {
				onCheck()
			}
			if err := agreeComplex(direct, reference); err != nil {
				return checks, errors.WithMessagef(err, "cases (%d, %d): pow(%v, %v)",
					i, j, x, dtypes.ToFloat64(b))
			}
		}
	}

	got := cmplxs.PowToReal(cmplxs.FromFloat64s[T](2, 3), dtypes.FromFloat64[T](2))
	checks++
	if onCheck != nil {
		onCheck()
	}
	return checks, squareSanityError("pow(2+3i, 2)", got)
}

// CheckPowComplexComplex is the same sweep for the fully complex overload:
// pow(x, y) against exp(y*log(x)). Its sanity case is pow(2+3i, 2+0i) ~= -5+12i.
func CheckPowComplexComplex[T dtypes.Float](onCheck func()) (int, error) {
	cases := Cases[T]()
	checks := 0
	for _, i := range intseq.Upto(len(cases)) {
		x := cases[i]
		for _, j := range intseq.Upto(len(cases)) {
			y := cases[j]
			direct := cmplxs.Pow(x, y)
			reference := cmplxs.Exp(y.Mul(cmplxs.Log(x)))
			checks++
			if onCheck != nil {
				onCheck()
			}
			if err := agreeComplex(direct, reference); err != nil {
				return checks, errors.WithMessagef(err, "cases (%d, %d): pow(%v, %v)", i, j, x, y)
			}
		}
	}

	got := cmplxs.Pow(cmplxs.FromFloat64s[T](2, 3), cmplxs.FromFloat64s[T](2, 0))
	checks++
	if onCheck != nil {
		onCheck()
	}
	return checks, squareSanityError("pow(2+3i, 2+0i)", got)
}

// sanityError checks a mathematically real sanity result against its expected
// value: approximate equality on the real component, absolute bound on the
// imaginary one.
func sanityError[T dtypes.Float](what string, got cmplxs.Complex[T], want float64) error {
	if !IsAbout(got.Re, dtypes.FromFloat64[T](want)) {
		return errors.Errorf("sanity %s: real component %v, expected about %v",
			what, dtypes.ToFloat64(got.Re), want)
	}
	if !(math.Abs(dtypes.ToFloat64(got.Im)) < sanityImagTolerance) {
		return errors.Errorf("sanity %s: imaginary component %v, expected |imag| < %v",
			what, dtypes.ToFloat64(got.Im), sanityImagTolerance)
	}
	return nil
}

// squareSanityError checks the (2+3i)**2 ~= -5+12i sanity result, which has a
// non-trivial imaginary component.
func squareSanityError[T dtypes.Float](what string, got cmplxs.Complex[T]) error {
	if !IsAbout(got.Re, dtypes.FromFloat64[T](-5)) {
		return errors.Errorf("sanity %s: real component %v, expected about -5",
			what, dtypes.ToFloat64(got.Re))
	}
	if !IsAbout(got.Im, dtypes.FromFloat64[T](12)) {
		return errors.Errorf("sanity %s: imaginary component %v, expected about 12",
			what, dtypes.ToFloat64(got.Im))
	}
	return nil
}

// ZeroToI evaluates 0**i -- a base with no magnitude and a purely imaginary
// exponent -- through both computation paths. Whether the result is NaN or a
// definite value is up to the underlying library; the two paths must not
// diverge, which Run verifies. The pair is exposed for inspection.
func ZeroToI[T dtypes.Float]() (direct, reference cmplxs.Complex[T]) {
	zero := dtypes.FromFloat64[T](0)
	i := cmplxs.FromFloat64s[T](0, 1)
	return cmplxs.PowReal(zero, i),
		cmplxs.Exp(i.Mul(cmplxs.Log(cmplxs.FromReal(zero))))
}

// MinusOneToHalf evaluates (-1)**0.5 -- the principal square root branch --
// through both computation paths.
func MinusOneToHalf[T dtypes.Float]() (direct, reference cmplxs.Complex[T]) {
	minusOne := dtypes.FromFloat64[T](-1)
	half := cmplxs.FromFloat64s[T](0.5, 0)
	return cmplxs.PowReal(minusOne, half),
		cmplxs.Exp(half.Mul(cmplxs.Log(cmplxs.FromReal(minusOne))))
}
