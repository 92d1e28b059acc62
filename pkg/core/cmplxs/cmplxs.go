// Copyright 2025-2026 The cucomplex Authors. SPDX-License-Identifier: Apache-2.0

// Package cmplxs implements complex values over a generic float element type,
// including the reduced-precision 16-bit formats, with the transcendental
// functions the conformance suite exercises.
//
// Precision model: every operation is computed in complex128 via math/cmplx
// and each resulting component is rounded back through the element type T.
// This is the wide-compute/narrow-round pipeline commonly used for float16
// and bfloat16 kernels. The rounding points are part of the contract: an
// expression composed from this package's primitives produces bit-identical
// components no matter where the composition happens, which is what the
// conformance checks in pkg/core/conformance rely on.
//
// Edge semantics (signed zero, infinities, NaN, the branch cut of Log on the
// negative real axis) are those of Go's math/cmplx on the host platform.
package cmplxs

import (
	"fmt"
	"math/cmplx"

	"github.com/gocuda/cucomplex/pkg/core/dtypes"
)

// Complex is a complex value over the float element type T: an ordered
// (real, imaginary) pair with IEEE 754 semantics per component.
type Complex[T dtypes.Float] struct {
	Re, Im T
}

// New builds a Complex from its components.
func New[T dtypes.Float](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// FromReal builds a Complex with the given real component and a +0 imaginary
// component.
func FromReal[T dtypes.Float](re T) Complex[T] {
	return Complex[T]{Re: re}
}

// FromComplex128 narrows a complex128 into a Complex[T], rounding each
// component through the element type.
func FromComplex128[T dtypes.Float](c complex128) Complex[T] {
	return Complex[T]{
		Re: dtypes.FromFloat64[T](real(c)),
		Im: dtypes.FromFloat64[T](imag(c)),
	}
}

// FromFloat64s builds a Complex[T] from float64 components, rounding each
// through the element type.
func FromFloat64s[T dtypes.Float](re, im float64) Complex[T] {
	return Complex[T]{
		Re: dtypes.FromFloat64[T](re),
		Im: dtypes.FromFloat64[T](im),
	}
}

// Complex128 widens the value to complex128. Exact for every element type.
func (c Complex[T]) Complex128() complex128 {
	return complex(dtypes.ToFloat64(c.Re), dtypes.ToFloat64(c.Im))
}

// Real returns the real component.
func (c Complex[T]) Real() T { return c.Re }

// Imag returns the imaginary component.
func (c Complex[T]) Imag() T { return c.Im }

// IsNaN reports whether any component is NaN.
func (c Complex[T]) IsNaN() bool {
	return dtypes.IsNaN(c.Re) || dtypes.IsNaN(c.Im)
}

// IsInf reports whether any component is an infinity of either sign.
func (c Complex[T]) IsInf() bool {
	return dtypes.IsInf(c.Re, 0) || dtypes.IsInf(c.Im, 0)
}

// Equal reports whether both components compare == to o's. Like float
// comparison, it is false when any component is NaN, and treats -0 == +0.
func (c Complex[T]) Equal(o Complex[T]) bool {
	return dtypes.ToFloat64(c.Re) == dtypes.ToFloat64(o.Re) &&
		dtypes.ToFloat64(c.Im) == dtypes.ToFloat64(o.Im)
}

// String implements fmt.Stringer.
func (c Complex[T]) String() string {
	return fmt.Sprintf("(%g, %g)", dtypes.ToFloat64(c.Re), dtypes.ToFloat64(c.Im))
}

// Add returns c+o, each component rounded through T.
func (c Complex[T]) Add(o Complex[T]) Complex[T] {
	return FromComplex128[T](c.Complex128() + o.Complex128())
}

// Sub returns c-o, each component rounded through T.
func (c Complex[T]) Sub(o Complex[T]) Complex[T] {
	return FromComplex128[T](c.Complex128() - o.Complex128())
}

// Mul returns c*o, computed in complex128 and rounded through T.
func (c Complex[T]) Mul(o Complex[T]) Complex[T] {
	return FromComplex128[T](c.Complex128() * o.Complex128())
}

// Div returns c/o, computed in complex128 and rounded through T.
func (c Complex[T]) Div(o Complex[T]) Complex[T] {
	return FromComplex128[T](c.Complex128() / o.Complex128())
}

// Neg returns -c.
func (c Complex[T]) Neg() Complex[T] {
	return FromComplex128[T](-c.Complex128())
}

// Conj returns the complex conjugate of c.
func (c Complex[T]) Conj() Complex[T] {
	return New(c.Re, dtypes.FromFloat64[T](-dtypes.ToFloat64(c.Im)))
}

// Abs returns the magnitude of c, rounded through T.
func Abs[T dtypes.Float](c Complex[T]) T {
	return dtypes.FromFloat64[T](cmplx.Abs(c.Complex128()))
}

// Exp returns e**c.
func Exp[T dtypes.Float](c Complex[T]) Complex[T] {
	return FromComplex128[T](cmplx.Exp(c.Complex128()))
}

// Log returns the principal value of the natural logarithm of c: the
// imaginary component is in (-Pi, Pi], with the branch cut along the
// negative real axis.
func Log[T dtypes.Float](c Complex[T]) Complex[T] {
	return FromComplex128[T](cmplx.Log(c.Complex128()))
}

// Sqrt returns the principal square root of c, with the same branch cut
// as Log.
func Sqrt[T dtypes.Float](c Complex[T]) Complex[T] {
	return FromComplex128[T](cmplx.Sqrt(c.Complex128()))
}

// Pow returns x**y, defined as Exp(y.Mul(Log(x))): the canonical
// decomposition, composed from this package's own primitives so the rounding
// points match a caller composing them directly.
func Pow[T dtypes.Float](x, y Complex[T]) Complex[T] {
	return Exp(y.Mul(Log(x)))
}

// PowReal returns a**y for a real base a: Pow with base (a, +0).
func PowReal[T dtypes.Float](a T, y Complex[T]) Complex[T] {
	return Pow(FromReal(a), y)
}

// PowToReal returns x**b for a real exponent b: Pow with exponent (b, +0).
func PowToReal[T dtypes.Float](x Complex[T], b T) Complex[T] {
	return Pow(x, FromReal(b))
}
