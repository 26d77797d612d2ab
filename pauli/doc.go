// Package pauli defines the central Word, Term, and Operator types, and the
// symbolic algebra of multi-qubit Pauli strings.
//
// A Word is an ordered sequence of single-qubit Pauli axes (I, X, Y, Z), one
// per qubit position. A Term attaches a real coefficient to a Word, and an
// Operator is an ordered collection of Terms interpreted as their weighted
// sum — a Hermitian Hamiltonian expressed in the Pauli basis.
//
// Everything in this package is plain symbol manipulation: products, phases
// and commutation are resolved from the Pauli group relations, never from
// dense matrices. Dense numerics live in package simulate.
//
// Operators follow a build-then-read lifecycle: construct with NewOperator,
// populate with Add/AddTerm, then treat as immutable. They are not safe for
// concurrent mutation; once built, concurrent reads are fine.
//
// Errors:
//
//	ErrBadAxis        - a letter outside {I, X, Y, Z} in a Pauli word.
//	ErrEmptyWord      - an empty Pauli word where one is required.
//	ErrWidthMismatch  - word length differs from the operator width.
//	ErrBadWidth       - non-positive operator width.
//	ErrBadCoeff       - NaN or infinite coefficient.
//	ErrNotHermitian   - coefficient with a non-negligible imaginary part.
//	ErrNilOperator    - nil *Operator passed to an API that requires one.
package pauli
