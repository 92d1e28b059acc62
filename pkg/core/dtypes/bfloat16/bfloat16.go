// Copyright 2025-2026 The cucomplex Authors. SPDX-License-Identifier: Apache-2.0

// Package bfloat16 is a small implementation of the bfloat16 (brain floating
// point) type, complementing github.com/x448/float16 -- which doesn't provide
// one, see the pending issue in https://github.com/x448/float16/issues/22
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 is a 16-bit floating point format with 1 sign bit, 8 exponent bits
// and 7 mantissa bits: the top half of an IEEE 754 binary32. It keeps the full
// dynamic range of float32 at much reduced precision, and is the second
// reduced-precision element type supported by the conformance suite, next to
// IEEE binary16.
type BFloat16 uint16

// Float32 expands the BFloat16 to the float32 it is a prefix of.
// The conversion is exact: every BFloat16 value, including infinities and
// NaNs, has a float32 representation.
func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// Float64 expands the BFloat16 to float64. Exact, see Float32.
func (f BFloat16) Float64() float64 {
	return float64(f.Float32())
}

// FromFloat32 converts a float32 to a BFloat16 by truncating the mantissa.
func FromFloat32(x float32) BFloat16 {
	return BFloat16(math.Float32bits(x) >> 16)
}

// FromFloat64 converts a float64 to a BFloat16, rounding through float32.
func FromFloat64(x float64) BFloat16 {
	return FromFloat32(float32(x))
}

// FromBits reinterprets an uint16 as a BFloat16.
func FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Bits returns the binary representation of the BFloat16.
func (f BFloat16) Bits() uint16 {
	return uint16(f)
}

// IsNaN reports whether f is an IEEE 754 "not-a-number" value: exponent bits
// all set and a non-zero mantissa.
func (f BFloat16) IsNaN() bool {
	return f&0x7F80 == 0x7F80 && f&0x007F != 0
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f BFloat16) IsInf(sign int) bool {
	return (sign >= 0 && f == 0x7F80) || (sign <= 0 && f == 0xFF80)
}

// String implements fmt.Stringer, and prints a float representation of the BFloat16.
func (f BFloat16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'f', -1, 32)
}

// Inf returns a BFloat16 with an infinity value with the specified sign.
// A sign >= 0 returns positive infinity.
// A sign < 0 returns negative infinity.
func Inf(sign int) BFloat16 {
	return FromFloat32(float32(math.Inf(sign)))
}

// NaN returns a quiet BFloat16 "not-a-number" value.
func NaN() BFloat16 {
	return FromFloat32(float32(math.NaN()))
}

// SmallestNonzero is the smallest nonzero denormal value for bfloat16
// (9.1835e-41): the formula 1 / 2**(127 - 1 + 7) gives the smallest denormal
// for a format with 8 exponent and 7 mantissa bits.
// We use BFloat16(0x0001) to compile as const.
const SmallestNonzero = BFloat16(0x0001)

// Epsilon is the difference between 1 and the smallest BFloat16 larger
// than 1, i.e. 2**-7 (0.0078125). Useful to scale comparison tolerances.
const Epsilon = BFloat16(0x3C00)
