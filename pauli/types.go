// SPDX-License-Identifier: MIT

// Package pauli: core types and sentinel errors.
//
// This file declares Axis, Word, Term, Operator, the package sentinels, and
// the documented numeric defaults. Methods live in methods.go; the Pauli
// group algebra lives in algebra.go.
package pauli

import "errors"

// Numeric policy (single source of truth).
const (
	// DefaultCoeffTol is the magnitude below which a merged coefficient is
	// treated as zero and its term dropped by Canonical.
	DefaultCoeffTol = 1e-12

	// HermitianTol bounds the imaginary part a coefficient may carry at the
	// IO boundary before the operator is rejected as non-Hermitian.
	HermitianTol = 1e-9
)

// Sentinel errors for Pauli construction and validation.
var (
	// ErrBadAxis indicates a letter outside {I, X, Y, Z} in a Pauli word.
	ErrBadAxis = errors.New("pauli: invalid Pauli axis letter")

	// ErrEmptyWord indicates an empty Pauli word where one is required.
	ErrEmptyWord = errors.New("pauli: empty Pauli word")

	// ErrWidthMismatch indicates a word whose length differs from the
	// operator (or register) width in use.
	ErrWidthMismatch = errors.New("pauli: word length does not match width")

	// ErrBadWidth indicates a non-positive operator width.
	ErrBadWidth = errors.New("pauli: width must be positive")

	// ErrBadCoeff indicates a NaN or infinite coefficient.
	ErrBadCoeff = errors.New("pauli: coefficient must be finite")

	// ErrNotHermitian indicates a coefficient whose imaginary part exceeds
	// HermitianTol; exp(-iHt) requires a Hermitian H.
	ErrNotHermitian = errors.New("pauli: operator is not Hermitian")

	// ErrNilOperator indicates a nil *Operator passed where one is required.
	ErrNilOperator = errors.New("pauli: nil operator")
)

// Axis is a single-qubit Pauli label.
type Axis uint8

// The four single-qubit Pauli axes. The zero value is the identity, so a
// freshly allocated Word is the all-identity string.
const (
	I Axis = iota
	X
	Y
	Z
)

// axisLetters maps Axis values to their canonical letters; index by Axis.
const axisLetters = "IXYZ"

// String returns the canonical one-letter form of a, or "?" when a is out
// of range (corrupted value, not constructible through ParseWord).
func (a Axis) String() string {
	if a > Z {
		return "?"
	}

	return axisLetters[a : a+1]
}

// Word is an ordered sequence of Pauli axes, one per qubit position.
// Position 0 is qubit 0. Words compare and sort lexicographically.
type Word []Axis

// Term is a Pauli word with a real weight. The coefficient is real because
// Operator models a Hermitian Hamiltonian; complex inputs are screened at
// the IO boundary (see hamio) against HermitianTol.
type Term struct {
	// Word is the multi-qubit Pauli string of this term.
	Word Word

	// Coeff is the real weight of the term in the operator sum.
	Coeff float64
}

// Operator is an ordered collection of Terms, interpreted as their weighted
// sum. Order is irrelevant to the semantics (the sum commutes); Canonical
// produces the sorted, duplicate-merged form used by deterministic
// consumers such as trotter.Synthesize.
type Operator struct {
	width int
	terms []Term
}
