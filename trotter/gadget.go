// SPDX-License-Identifier: MIT

// Package trotter - the Pauli-gadget compiler for exp(-iθP).
//
// Construction (standard parity gadget):
//  1. Basis changes into Z on every active qubit: H for X; Sdg then H for Y.
//  2. A CNOT ladder folding the joint parity onto the last active qubit.
//  3. Rz(2θ) on that qubit (Rz(λ) = exp(-iλZ/2), hence the factor 2).
//  4. The mirrored ladder, then the mirrored basis changes (H; then H, S).
//
// Identity words act as a global phase e^{-iθ} and emit no gates; callers
// that care about the phase track it separately (none of the synthesis
// paths do — global phase is unobservable).
package trotter

import (
	"fmt"

	"github.com/qudit-labs/hamsynth/circuit"
	"github.com/qudit-labs/hamsynth/pauli"
)

// appendExp appends the gadget for exp(-iθ·w) to c.
//
// Contract:
//   - len(w) must equal the register width of c (checked by circuit.Append
//     through qubit indices; callers validate upstream).
//
// Gate cost for s active qubits: 2·(basis changes) + 2·(s−1) CNOTs + 1 Rz.
//
// Complexity: O(n) time over the word width n.
func appendExp(c *circuit.Circuit, w pauli.Word, theta float64) error {
	// Collect active (non-identity) positions in ascending qubit order.
	active := make([]int, 0, len(w))
	for q, a := range w {
		if a != pauli.I {
			active = append(active, q)
		}
	}
	if len(active) == 0 {
		// Global phase only.
		return nil
	}

	// Stage 1: basis changes into the Z basis.
	for _, q := range active {
		switch w[q] {
		case pauli.X:
			if err := c.Append(circuit.H(q)); err != nil {
				return fmt.Errorf("appendExp: %w", err)
			}
		case pauli.Y:
			if err := c.Append(circuit.Sdg(q), circuit.H(q)); err != nil {
				return fmt.Errorf("appendExp: %w", err)
			}
		case pauli.Z:
			// Already diagonal.
		}
	}

	// Stage 2: parity ladder onto the last active qubit.
	last := active[len(active)-1]
	for i := 0; i+1 < len(active); i++ {
		if err := c.Append(circuit.CNOT(active[i], active[i+1])); err != nil {
			return fmt.Errorf("appendExp: %w", err)
		}
	}

	// Stage 3: the rotation carrying the whole exponential.
	if err := c.Append(circuit.Rz(last, 2*theta)); err != nil {
		return fmt.Errorf("appendExp: %w", err)
	}

	// Stage 4: mirrored ladder and mirrored basis changes.
	for i := len(active) - 2; i >= 0; i-- {
		if err := c.Append(circuit.CNOT(active[i], active[i+1])); err != nil {
			return fmt.Errorf("appendExp: %w", err)
		}
	}
	for i := len(active) - 1; i >= 0; i-- {
		q := active[i]
		switch w[q] {
		case pauli.X:
			if err := c.Append(circuit.H(q)); err != nil {
				return fmt.Errorf("appendExp: %w", err)
			}
		case pauli.Y:
			if err := c.Append(circuit.H(q), circuit.S(q)); err != nil {
				return fmt.Errorf("appendExp: %w", err)
			}
		case pauli.Z:
		}
	}

	return nil
}
