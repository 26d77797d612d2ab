// Package trotter synthesizes circuits approximating exp(-iHt) for a
// Hamiltonian H given as a weighted sum of Pauli words, using Trotter-Suzuki
// product formulas under an explicit circuit-depth budget.
//
// The entry point is Synthesize: it validates its inputs, canonicalizes the
// operator so term order never affects the output, enumerates candidate
// product formulas (order 1, the Strang order 2, and Suzuki orders 2k up to
// MaxOrder), determines for each how many repetitions fit the depth budget,
// and returns the candidate with the smallest analytic operator-norm error
// bound. Ties break toward smaller depth, then smaller order, so the result
// is fully deterministic.
//
// Each elementary factor exp(-iθP) for a Pauli word P compiles to the
// standard gadget: single-qubit basis changes into the Z basis, a CNOT
// parity ladder onto the last active qubit, one Rz(2θ), and the mirrored
// undo. Identity words contribute only a global phase and emit no gates.
//
// Error bounds:
//   - Order 1 uses the exact pairwise commutator sum
//     (t²/2r)·Σ_{i<j}‖[c_iP_i, c_jP_j]‖, where each anticommuting pair
//     contributes exactly 2|c_i||c_j| and commuting pairs contribute 0.
//   - Orders 2k use the product-formula tail bound
//     (2·m·5^{k-1}·Λ·|t|)^{2k+1} / (3·r^{2k}) with m the term count and
//     Λ the largest |coefficient|.
//   - A Hamiltonian whose terms pairwise commute synthesizes exactly:
//     order 1, one repetition, bound 0.
//
// Use this package when you need a depth-bounded approximation of
// Hamiltonian evolution with an honest, reproducible error bar.
package trotter
