// Package simulate provides exact dense verification back-ends for small
// registers: operators assembled from Pauli terms, statevector gate
// kernels, full circuit unitaries, exact exponentials exp(-iHt), and
// spectral norms.
//
// Dimensions grow as 2^width, so everything here is gated behind
// MaxSimQubits; this package exists to verify synthesis output and to power
// tests, not to scale. Dense storage and matrix products ride on
// gonum's CDense; the Pauli-specific assembly uses bitmask kernels (one
// non-zero per row per term) instead of explicit Kronecker products.
//
// Conventions: qubit q maps to bit q of the basis index (qubit 0 is the
// least significant bit), matching the circuit package.
package simulate
