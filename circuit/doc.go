// Package circuit defines gates, qubit registers, and ordered gate
// sequences, with layered depth accounting and OpenQASM 3 export.
//
// The gate set is the one product-formula synthesis emits: Hadamard and
// S/S† basis changes, single-qubit rotations Rx/Ry/Rz, Pauli X, and CNOT.
// Depth is computed by per-qubit frontier scheduling: each gate lands on
// layer 1 + max(frontier of its qubits), and the circuit depth is the
// largest layer used. This mirrors how gates commute past each other on
// disjoint qubits in hardware schedules.
//
// Circuits follow a build-then-read lifecycle and are not synchronized for
// concurrent mutation.
package circuit
