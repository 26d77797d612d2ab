// Package hamsynth synthesizes quantum circuits that approximate Hamiltonian
// time evolution exp(-iHt) under an explicit circuit-depth budget.
//
// 🚀 What is hamsynth?
//
//	A library for Trotter-Suzuki product-formula synthesis that brings together:
//		• Pauli primitives: words, weighted terms, operators, commutation algebra
//		• Circuits: gate sequences, layered depth accounting, OpenQASM 3 export
//		• Synthesis: depth-constrained product formulas (orders 1, 2, 2k)
//		• Verification: dense operators, statevector kernels, spectral norms
//		• Models: named Hamiltonian generators (Ising, TFIM, Heisenberg, random)
//		• IO: YAML Hamiltonian files and synthesis reports
//
// ✨ Why choose hamsynth?
//
//   - Deterministic – same operator and options always yield the same circuit
//   - Honest error bars – analytic operator-norm bounds, exact to commutator
//     structure at low order
//   - Small API – one entry point per concern, strict sentinel errors
//
// Everything is organized under flat subpackages:
//
//	pauli/    — Pauli words, terms, operators and their algebra
//	circuit/  — gates, registers, circuits, depth, QASM export
//	trotter/  — product formulas, depth-constrained synthesis, error bounds
//	simulate/ — dense operators, exact exponentials, spectral norms
//	model/    — deterministic Hamiltonian generators
//	hamio/    — YAML encoding of Hamiltonians and reports
//
// A one-line tour: build an operator (by hand, from model/, or from a YAML
// file via hamio/), hand it to trotter.Synthesize together with a register
// and a depth budget, and receive a circuit plus its analytic error bound.
//
//	go get github.com/qudit-labs/hamsynth
package hamsynth
