// SPDX-License-Identifier: MIT
// Package: hamsynth/model
//
// impl_ising.go — Ising-type chain constructors.
//
// Contract:
//   • width ≥ 2 (else ErrTooFewQubits).
//   • Couplings must be finite (else ErrBadCoupling).
//   • Emits ZZ bond terms in ascending site order; field terms afterwards,
//     also in ascending site order.
//   • Honors cfg.periodic: the (n−1, 0) bond closes the ring.
//
// Complexity: O(n) terms of width n each ⇒ O(n²) time/space.

package model

import (
	"fmt"
	"math"

	"github.com/qudit-labs/hamsynth/pauli"
)

// File-local constants (stable method tags for error context).
const (
	methodIsing = "IsingChain"
	methodTFIM  = "TransverseFieldIsing"

	minChainQubits = 2
)

// IsingChain returns a Constructor adding J·Z_iZ_{i+1} bonds along the
// chain.
func IsingChain(j float64) Constructor {
	return func(op *pauli.Operator, cfg modelConfig) error {
		if err := checkChain(methodIsing, op.Width(), j); err != nil {
			return err
		}

		for _, p := range chainPairs(op.Width(), cfg.periodic) {
			w := axisWord(op.Width(), pauli.Z, p[0], p[1])
			if err := op.Add(w, j); err != nil {
				return fmt.Errorf("%s: Add(%s): %w", methodIsing, w.String(), err)
			}
		}

		return nil
	}
}

// TransverseFieldIsing returns a Constructor adding J·Z_iZ_{i+1} bonds and
// a transverse field h·X_i on every site.
func TransverseFieldIsing(j, h float64) Constructor {
	return func(op *pauli.Operator, cfg modelConfig) error {
		if err := checkChain(methodTFIM, op.Width(), j); err != nil {
			return err
		}
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return fmt.Errorf("%s: h: %w", methodTFIM, ErrBadCoupling)
		}

		for _, p := range chainPairs(op.Width(), cfg.periodic) {
			w := axisWord(op.Width(), pauli.Z, p[0], p[1])
			if err := op.Add(w, j); err != nil {
				return fmt.Errorf("%s: Add(%s): %w", methodTFIM, w.String(), err)
			}
		}
		for site := 0; site < op.Width(); site++ {
			w := axisWord(op.Width(), pauli.X, site)
			if err := op.Add(w, h); err != nil {
				return fmt.Errorf("%s: Add(%s): %w", methodTFIM, w.String(), err)
			}
		}

		return nil
	}
}

// checkChain validates shared chain-model preconditions.
func checkChain(method string, width int, j float64) error {
	if width < minChainQubits {
		return fmt.Errorf("%s: width=%d < min=%d: %w", method, width, minChainQubits, ErrTooFewQubits)
	}
	if math.IsNaN(j) || math.IsInf(j, 0) {
		return fmt.Errorf("%s: J: %w", method, ErrBadCoupling)
	}

	return nil
}
