// SPDX-License-Identifier: MIT

// Package pauli: the Pauli group algebra on words.
//
// Products and commutation are resolved symbolically from the single-qubit
// relations XY=iZ, YZ=iX, ZX=iY (and their reversals with phase -i). Two
// Pauli words either commute or anticommute: they commute iff the number of
// positions where both carry different non-identity axes is even. This
// dichotomy is what makes low-order Trotter bounds exactly computable.
package pauli

import "fmt"

// iPowers enumerates the powers of the imaginary unit; index by exponent mod 4.
var iPowers = [4]complex128{1, 1i, -1, -1i}

// mulTable[a][b] gives the product axis and the exponent of i contributed by
// multiplying single-qubit Paulis a·b. Identity rows/columns contribute
// phase exponent 0.
var mulTable = [4][4]struct {
	axis  Axis
	phase uint8 // exponent of i, mod 4
}{
	I: {I: {I, 0}, X: {X, 0}, Y: {Y, 0}, Z: {Z, 0}},
	X: {I: {X, 0}, X: {I, 0}, Y: {Z, 1}, Z: {Y, 3}},
	Y: {I: {Y, 0}, X: {Z, 3}, Y: {I, 0}, Z: {X, 1}},
	Z: {I: {Z, 0}, X: {Y, 1}, Y: {X, 3}, Z: {I, 0}},
}

// Commutes reports whether the Pauli words a and b commute.
//
// Rule: a and b commute iff the count of positions i where a[i] and b[i]
// are distinct non-identity axes is even; otherwise they anticommute.
//
// Errors: ErrWidthMismatch when the words differ in length, ErrEmptyWord
// when either is empty.
//
// Complexity: O(n) time, O(1) space.
func Commutes(a, b Word) (bool, error) {
	if len(a) == 0 || len(b) == 0 {
		return false, ErrEmptyWord
	}
	if len(a) != len(b) {
		return false, fmt.Errorf("Commutes(%q, %q): %w", a.String(), b.String(), ErrWidthMismatch)
	}

	// Count anticommuting positions; only parity matters.
	odd := false
	for i := range a {
		if a[i] != I && b[i] != I && a[i] != b[i] {
			odd = !odd
		}
	}

	return !odd, nil
}

// Mul computes the product word a·b together with its scalar phase, which
// is always a power of the imaginary unit.
//
// Errors: ErrWidthMismatch when the words differ in length, ErrEmptyWord
// when either is empty.
//
// Complexity: O(n) time, O(n) space for the product word.
func Mul(a, b Word) (Word, complex128, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, 0, ErrEmptyWord
	}
	if len(a) != len(b) {
		return nil, 0, fmt.Errorf("Mul(%q, %q): %w", a.String(), b.String(), ErrWidthMismatch)
	}

	var (
		out = make(Word, len(a))
		exp uint8 // accumulated exponent of i, mod 4
	)
	for i := range a {
		e := mulTable[a[i]][b[i]]
		out[i] = e.axis
		exp = (exp + e.phase) & 3
	}

	return out, iPowers[exp], nil
}
