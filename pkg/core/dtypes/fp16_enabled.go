//go:build !cucomplex_nofp16

package dtypes

const hasFloat16 = true
