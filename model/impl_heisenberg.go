// SPDX-License-Identifier: MIT
// Package: hamsynth/model
//
// impl_heisenberg.go — anisotropic Heisenberg (XYZ/XXZ) chain.
//
// Contract:
//   • width ≥ 2 (else ErrTooFewQubits).
//   • All three couplings finite (else ErrBadCoupling).
//   • Per bond, emits XX then YY then ZZ terms; bonds in ascending order.
//   • Honors cfg.periodic for the closing bond.

package model

import (
	"fmt"
	"math"

	"github.com/qudit-labs/hamsynth/pauli"
)

const methodHeisenberg = "HeisenbergXXZ"

// HeisenbergXXZ returns a Constructor adding Jx·XX + Jy·YY + Jz·ZZ on
// every chain bond. Zero couplings are skipped so the common XXZ case
// (Jx=Jy, field-free) emits no vacuous terms.
func HeisenbergXXZ(jx, jy, jz float64) Constructor {
	return func(op *pauli.Operator, cfg modelConfig) error {
		if op.Width() < minChainQubits {
			return fmt.Errorf("%s: width=%d < min=%d: %w",
				methodHeisenberg, op.Width(), minChainQubits, ErrTooFewQubits)
		}
		for _, j := range [3]float64{jx, jy, jz} {
			if math.IsNaN(j) || math.IsInf(j, 0) {
				return fmt.Errorf("%s: %w", methodHeisenberg, ErrBadCoupling)
			}
		}

		var (
			axes   = [3]pauli.Axis{pauli.X, pauli.Y, pauli.Z}
			coeffs = [3]float64{jx, jy, jz}
		)
		for _, p := range chainPairs(op.Width(), cfg.periodic) {
			for k, axis := range axes {
				if coeffs[k] == 0 {
					continue
				}
				w := axisWord(op.Width(), axis, p[0], p[1])
				if err := op.Add(w, coeffs[k]); err != nil {
					return fmt.Errorf("%s: Add(%s): %w", methodHeisenberg, w.String(), err)
				}
			}
		}

		return nil
	}
}
