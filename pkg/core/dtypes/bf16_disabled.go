//go:build cucomplex_nobf16

package dtypes

const hasBFloat16 = false
