// SPDX-License-Identifier: MIT

// Package trotter - product-formula step construction.
//
// A step is the circuit for one formula application over a slice dt of the
// evolution time:
//   - Order 1 (Lie-Trotter):   Π_j exp(-i c_j H_j dt), left to right.
//   - Order 2 (Strang):        forward half-steps then backward half-steps.
//   - Order 2k (Suzuki):       S_{2k}(dt) = S_{2k-2}(u dt)² · S_{2k-2}((1-4u)dt)
//     · S_{2k-2}(u dt)²  with  u = 1/(4 − 4^{1/(2k−1)}).
//
// Steps are built from a symbolic (term index, scale) sequence first, so
// the expensive gadget emission happens exactly once per factor.
package trotter

import (
	"fmt"
	"math"

	"github.com/qudit-labs/hamsynth/circuit"
	"github.com/qudit-labs/hamsynth/pauli"
)

// seg is one elementary factor of a product formula: term idx, exponent
// scale relative to dt.
type seg struct {
	idx   int
	scale float64
}

// segments expands the formula of the given order over m terms into its
// factor sequence. Order must satisfy checkOrder; m ≥ 0.
//
// Factor counts: m for order 1, 2m for order 2, and 5× per Suzuki level
// above that.
//
// Complexity: O(m·5^{k-1}) time and space for order 2k.
func segments(m, order int) []seg {
	switch {
	case m == 0:
		return nil
	case order == 1:
		out := make([]seg, m)
		for i := 0; i < m; i++ {
			out[i] = seg{idx: i, scale: 1}
		}

		return out
	case order == 2:
		out := make([]seg, 0, 2*m)
		for i := 0; i < m; i++ {
			out = append(out, seg{idx: i, scale: 0.5})
		}
		for i := m - 1; i >= 0; i-- {
			out = append(out, seg{idx: i, scale: 0.5})
		}

		return out
	default:
		// Suzuki recursion: five scaled copies of the order-(2k-2) step.
		inner := segments(m, order-2)
		u := 1 / (4 - math.Pow(4, 1/float64(order-1)))
		scales := [5]float64{u, u, 1 - 4*u, u, u}

		out := make([]seg, 0, 5*len(inner))
		for _, sc := range scales {
			for _, s := range inner {
				out = append(out, seg{idx: s.idx, scale: s.scale * sc})
			}
		}

		return out
	}
}

// StepCircuit builds the circuit for one product-formula step of the given
// order over time slice dt. Terms are consumed in the order the operator
// holds them; Synthesize canonicalizes first so its output never depends on
// insertion order, but direct callers keep control of the ordering.
//
// Errors: ErrBadOrder, ErrNilOperator, ErrWidthMismatch, pauli validation
// errors.
//
// Complexity: O(m·n·5^{k-1}) gate emissions for m terms of width n.
func StepCircuit(op *pauli.Operator, reg circuit.Register, order int, dt float64) (*circuit.Circuit, error) {
	if err := checkOrder(order); err != nil {
		return nil, fmt.Errorf("StepCircuit: %w", err)
	}
	if err := validateProblem(op, reg); err != nil {
		return nil, fmt.Errorf("StepCircuit: %w", err)
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("StepCircuit: %w", ErrBadTime)
	}

	c, err := circuit.New(reg)
	if err != nil {
		return nil, fmt.Errorf("StepCircuit: %w", err)
	}

	terms := op.Terms()
	for _, s := range segments(len(terms), order) {
		t := terms[s.idx]
		if err = appendExp(c, t.Word, t.Coeff*dt*s.scale); err != nil {
			return nil, fmt.Errorf("StepCircuit: term %d: %w", s.idx, err)
		}
	}

	return c, nil
}
