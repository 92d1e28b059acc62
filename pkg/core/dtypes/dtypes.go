// Copyright 2025-2026 The cucomplex Authors. SPDX-License-Identifier: Apache-2.0

// Package dtypes enumerates the floating-point element types the conformance
// suite runs over: the two Go native float widths plus the reduced-precision
// 16-bit formats (IEEE binary16 via github.com/x448/float16 and bfloat16 via
// the local sub-package).
//
// It includes converters to/from float64 -- the wide type every transcendental
// is computed in before rounding back through the element type -- per-width
// comparison tolerances, and the constraint interfaces used with generics
// (Float, GoFloat, Supported).
package dtypes

import (
	"math"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/gocuda/cucomplex/pkg/core/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// panicf panics with the formatted description.
//
// It is only used for "bugs in the code" -- when parameters don't follow the
// specifications. In principle, it should never happen -- the same way
// nil-pointer panics should never happen.
func panicf(format string, args ...any) {
	panic(errors.Errorf(format, args...))
}

// DType is an enum of the data types the suite knows about.
//
// Only the four float element types are exercised directly; the two complex
// dtypes exist to describe the pairing of float components (same convention
// as std::complex<float> / std::complex<double>).
type DType int32

const (
	// InvalidDType serves as the default, invalid value.
	InvalidDType DType = iota

	// Float16 is the IEEE 754 binary16 format: 1 sign, 5 exponent, 10 mantissa bits.
	Float16

	// BFloat16 is the truncated binary32 format: 1 sign, 8 exponent, 7 mantissa bits.
	BFloat16

	// Float32 is the IEEE 754 binary32 format.
	Float32

	// Float64 is the IEEE 754 binary64 format.
	Float64

	// Complex64 is a pair of Float32 (real, imag), as in std::complex<float>.
	Complex64

	// Complex128 is a pair of Float64 (real, imag), as in std::complex<double>.
	Complex128
)

// String implements fmt.Stringer.
func (dtype DType) String() string {
	switch dtype {
	case Float16:
		return "Float16"
	case BFloat16:
		return "BFloat16"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Complex64:
		return "Complex64"
	case Complex128:
		return "Complex128"
	default:
		return "InvalidDType"
	}
}

// MapOfNames lists the accepted names for each DType: the canonical name, the
// short "F16"/"BF16"/"F32"/"F64" aliases, and -- added by init() -- the
// lower-case versions of all of those.
var MapOfNames = map[string]DType{
	"Float16":    Float16,
	"F16":        Float16,
	"BFloat16":   BFloat16,
	"BF16":       BFloat16,
	"Float32":    Float32,
	"F32":        Float32,
	"Float64":    Float64,
	"F64":        Float64,
	"Complex64":  Complex64,
	"C64":        Complex64,
	"Complex128": Complex128,
	"C128":       Complex128,
}

func init() {
	// Add a mapping to the lower-case version of the dtype names.
	keys := maps.Keys(MapOfNames)
	for _, key := range keys {
		lowerKey := strings.ToLower(key)
		if lowerKey == key {
			continue
		}
		if _, found := MapOfNames[lowerKey]; found {
			continue
		}
		MapOfNames[lowerKey] = MapOfNames[key]
	}
}

// FromName converts a dtype name (any casing accepted by MapOfNames) to its
// DType. It returns an error for unknown names.
func FromName(name string) (DType, error) {
	dtype, found := MapOfNames[name]
	if !found {
		dtype, found = MapOfNames[strings.ToLower(name)]
	}
	if !found {
		return InvalidDType, errors.Errorf("unknown dtype name %q", name)
	}
	return dtype, nil
}

// Float lists the element types over which complex values are built.
// Used as a constraint for generics.
type Float interface {
	float32 | float64 | float16.Float16 | bfloat16.BFloat16
}

// GoFloat lists the Go native float types: the subset of Float with full
// hardware arithmetic and language support.
type GoFloat interface {
	float32 | float64
}

// Supported lists all Go types with a corresponding DType.
type Supported interface {
	float32 | float64 | float16.Float16 | bfloat16.BFloat16 | complex64 | complex128
}

// FromGenericsType returns the DType enum for the given type parameter.
func FromGenericsType[T Supported]() DType {
	var t T
	switch (any(t)).(type) {
	case float16.Float16:
		return Float16
	case bfloat16.BFloat16:
		return BFloat16
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	}
	return InvalidDType
}

// Size returns the number of bytes for the given DType.
func (dtype DType) Size() int {
	switch dtype {
	case Float16, BFloat16:
		return 2
	case Float32:
		return 4
	case Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panicf("unknown dtype %q (%d) in DType.Size", dtype, int32(dtype))
		panic(nil)
	}
}

// Bits returns the number of bits for the given DType.
func (dtype DType) Bits() int {
	return dtype.Size() * 8
}

// IsFloat returns whether dtype is one of the supported float element types.
// It returns false for complex numbers.
func (dtype DType) IsFloat() bool {
	return dtype == Float16 || dtype == BFloat16 || dtype == Float32 || dtype == Float64
}

// IsFloat16 returns whether dtype is a reduced-precision 16-bit float:
// [Float16] or [BFloat16].
func (dtype DType) IsFloat16() bool {
	return dtype == Float16 || dtype == BFloat16
}

// IsComplex returns whether dtype is a complex number type.
func (dtype DType) IsComplex() bool {
	return dtype == Complex64 || dtype == Complex128
}

// RealDType returns the dtype of the real component of complex dtypes.
// For float dtypes, it returns itself, and InvalidDType otherwise.
func (dtype DType) RealDType() DType {
	if dtype.IsFloat() {
		return dtype
	}
	switch dtype {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	default:
		return InvalidDType
	}
}

// Epsilon returns the difference between 1 and the smallest representable
// value larger than 1 for the float dtype. It panics for non-float dtypes.
func (dtype DType) Epsilon() float64 {
	switch dtype {
	case Float16:
		return 0x1p-10
	case BFloat16:
		return 0x1p-7
	case Float32:
		return 0x1p-23
	case Float64:
		return 0x1p-52
	default:
		panicf("dtype %q has no epsilon", dtype)
		panic(nil)
	}
}

// Tolerance returns the relative tolerance used by approximate comparisons of
// values of the given float dtype. The values follow the usual rule of thumb
// of a few thousand ULPs, enough to absorb the double-rounding of the
// wide-compute/narrow-round pipeline. It panics for non-float dtypes.
func (dtype DType) Tolerance() float64 {
	switch dtype {
	case Float16:
		return 1e-2
	case BFloat16:
		return 5e-2
	case Float32:
		return 1e-5
	case Float64:
		return 1e-12
	default:
		panicf("dtype %q has no comparison tolerance", dtype)
		panic(nil)
	}
}

// ToFloat64 widens an element value to float64. The conversion is exact for
// every element type: float64 can represent all values of the narrower
// formats, including signed zeros, infinities and NaNs.
func ToFloat64[T Float](v T) float64 {
	switch v := any(v).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case float16.Float16:
		return float64(v.Float32())
	case bfloat16.BFloat16:
		return v.Float64()
	}
	panicf("unsupported element type %T in ToFloat64", v)
	panic(nil)
}

// FromFloat64 narrows a float64 to the element type T. For the 16-bit types
// the value is rounded through float32 first; this double-rounding is the
// defined conversion pipeline of the suite, applied identically everywhere,
// so it never causes two computations of the same expression to diverge.
func FromFloat64[T Float](v float64) T {
	var t T
	switch any(t).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case float16.Float16:
		return any(float16.Fromfloat32(float32(v))).(T)
	case bfloat16.BFloat16:
		return any(bfloat16.FromFloat64(v)).(T)
	}
	panicf("unsupported element type %T in FromFloat64", t)
	panic(nil)
}

// IsNaN reports whether the element value is an IEEE 754 "not-a-number".
func IsNaN[T Float](v T) bool {
	return math.IsNaN(ToFloat64(v))
}

// IsInf reports whether the element value is an infinity of the given sign
// (0 meaning either).
func IsInf[T Float](v T, sign int) bool {
	return math.IsInf(ToFloat64(v), sign)
}

// Enabled reports whether the float dtype participates in conformance runs on
// this build. Float32 and Float64 are always enabled; the 16-bit types can be
// compiled out with the "cucomplex_nofp16" and "cucomplex_nobf16" build tags,
// mirroring targets where the corresponding hardware types are unavailable.
func (dtype DType) Enabled() bool {
	switch dtype {
	case Float32, Float64:
		return true
	case Float16:
		return hasFloat16
	case BFloat16:
		return hasBFloat16
	default:
		return false
	}
}

// EnabledFloats returns the float element dtypes enabled on this build, in
// increasing width order. The result is freshly allocated and can be modified
// by the caller.
func EnabledFloats() []DType {
	all := []DType{Float16, BFloat16, Float32, Float64}
	return slices.DeleteFunc(all, func(dtype DType) bool { return !dtype.Enabled() })
}
