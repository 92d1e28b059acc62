// Package intseq generates integer index sequences [0, 1, ..., n-1] over any
// integer type.
//
// Two constructions are provided: Upto, the direct one, and UptoByDoubling,
// which builds the sequence by recursively concatenating two shifted halves
// plus an odd tail. The doubling construction exists as a portable fallback
// for the direct one and the two must agree elementwise for every n; the
// conformance suite uses the sequences to enumerate its fixture cross
// products.
package intseq

import "golang.org/x/exp/constraints"

// Upto returns the sequence 0, 1, ..., n-1 of type T.
// It returns nil for n <= 0.
func Upto[T constraints.Integer](n T) []T {
	if n <= 0 {
		return nil
	}
	seq := make([]T, n)
	for i := range seq {
		seq[i] = T(i)
	}
	return seq
}

// UptoByDoubling returns the same sequence as Upto, built by recursive
// doubling: the sequence for n is the sequence for n/2, followed by the same
// sequence shifted by n/2, followed by n-1 when n is odd. The recursion depth
// is O(log n).
func UptoByDoubling[T constraints.Integer](n T) []T {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []T{0}
	}
	half := UptoByDoubling(n / 2)
	seq := make([]T, 0, n)
	seq = append(seq, half...)
	for _, v := range half {
		seq = append(seq, v+n/2)
	}
	if n%2 == 1 {
		seq = append(seq, n-1)
	}
	return seq
}
