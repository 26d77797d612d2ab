// SPDX-License-Identifier: MIT
// Package: hamsynth/model
//
// impl_random.go — seeded random two-local Hamiltonians.
//
// Contract:
//   • width ≥ 2 (else ErrTooFewQubits).
//   • terms ≥ 1 (else ErrNoTerms).
//   • Draws from cfg.rng only, in a fixed per-term order (site a, site b,
//     axis a, axis b, coefficient), so a fixed seed reproduces the exact
//     operator.

package model

import (
	"fmt"

	"github.com/qudit-labs/hamsynth/pauli"
)

const methodRandom = "RandomTwoLocal"

// nonIdentityAxes indexes the draw for random word letters; I is excluded
// so every emitted term has support exactly 2.
var nonIdentityAxes = [3]pauli.Axis{pauli.X, pauli.Y, pauli.Z}

// RandomTwoLocal returns a Constructor adding `terms` random two-local
// terms: a distinct site pair, a non-identity axis per site, and a
// coefficient from cfg.coeffFn. Duplicate words may occur; Canonical
// merges them later.
func RandomTwoLocal(terms int) Constructor {
	return func(op *pauli.Operator, cfg modelConfig) error {
		if op.Width() < minChainQubits {
			return fmt.Errorf("%s: width=%d < min=%d: %w",
				methodRandom, op.Width(), minChainQubits, ErrTooFewQubits)
		}
		if terms < 1 {
			return fmt.Errorf("%s: terms=%d: %w", methodRandom, terms, ErrNoTerms)
		}

		for k := 0; k < terms; k++ {
			a := cfg.rng.Intn(op.Width())
			b := cfg.rng.Intn(op.Width() - 1)
			if b >= a {
				b++ // skip a; keeps the pair distinct without rejection loops
			}

			w := pauli.Identity(op.Width())
			w[a] = nonIdentityAxes[cfg.rng.Intn(3)]
			w[b] = nonIdentityAxes[cfg.rng.Intn(3)]

			if err := op.Add(w, cfg.coeffFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: Add(%s): %w", methodRandom, w.String(), err)
			}
		}

		return nil
	}
}
