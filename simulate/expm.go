// SPDX-License-Identifier: MIT

// Package simulate: exact evolution operators via scaling and squaring.
package simulate

import (
	"fmt"
	"math"

	"github.com/qudit-labs/hamsynth/pauli"
)

// Series truncation policy for the scaled Taylor expansion.
const (
	// expmSeriesTol stops the Taylor series once the next term's largest
	// entry falls below this threshold.
	expmSeriesTol = 1e-16

	// expmMaxTerms hard-caps the series; with the argument scaled below
	// unit norm the series converges long before this.
	expmMaxTerms = 64
)

// ExpIH returns the exact evolution operator exp(-i·t·H) for the Pauli sum
// H, computed by scaling and squaring: the exponent is scaled until its
// norm bound is below 1, expanded as a Taylor series, then repeatedly
// squared. H's coefficient 1-norm (op.Weight) bounds ‖H‖, so the scaling
// count is known without an eigendecomposition.
//
// Complexity: O((s + k)·8^n) matrix products for s squarings and k series
// terms.
func ExpIH(op *pauli.Operator, t float64) (*Dense, error) {
	if op == nil {
		return nil, ErrNilOperand
	}
	h, err := FromOperator(op)
	if err != nil {
		return nil, fmt.Errorf("ExpIH: %w", err)
	}

	// Scale so that ‖(-it/2^s)·H‖ ≤ 1/2.
	var (
		norm = op.Weight() * math.Abs(t)
		s    int
	)
	for norm > 0.5 {
		norm /= 2
		s++
	}

	// B = (-i·t / 2^s)·H.
	b := h.Clone()
	b.scaleInPlace(complex(0, -t/math.Pow(2, float64(s))))

	u, err := taylorExp(b)
	if err != nil {
		return nil, fmt.Errorf("ExpIH: %w", err)
	}

	// Undo the scaling: square s times.
	for i := 0; i < s; i++ {
		u, err = Mul(u, u)
		if err != nil {
			return nil, fmt.Errorf("ExpIH: %w", err)
		}
	}

	return u, nil
}

// taylorExp evaluates exp(b) by its Taylor series; b must be pre-scaled to
// sub-unit norm by the caller.
func taylorExp(b *Dense) (*Dense, error) {
	sum, err := Eye(b.width)
	if err != nil {
		return nil, err
	}

	term := sum.Clone() // b^0 / 0!
	for k := 1; k <= expmMaxTerms; k++ {
		term, err = Mul(term, b)
		if err != nil {
			return nil, err
		}
		term.scaleInPlace(complex(1/float64(k), 0))
		sum.addInPlace(term)
		if term.maxAbs() < expmSeriesTol {
			return sum, nil
		}
	}

	return sum, nil
}
