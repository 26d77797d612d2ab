// SPDX-License-Identifier: MIT

// Package hamio reads and writes Hamiltonians and synthesis reports as
// YAML documents.
//
// Hamiltonian schema:
//
//	width: 3
//	terms:
//	  - pauli: ZZI
//	    coeff: 1.0
//	  - pauli: XII
//	    coeff: -0.5
//
// Decoding validates every entry against the pauli package contracts:
// words must match the declared width, coefficients must be finite, and
// any `imag` component beyond pauli.HermitianTol is rejected because the
// synthesis pipeline only accepts Hermitian input.
//
// Reports capture the outcome of one synthesis run (order, repetitions,
// depth, error bound, gate counts, run id) in a stable, diff-friendly
// layout.
package hamio
