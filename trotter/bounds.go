// SPDX-License-Identifier: MIT

// Package trotter - analytic operator-norm error bounds.
//
// Pauli structure makes the low-order bound exact to commutator level:
// ‖[c_iP_i, c_jP_j]‖ is 2|c_i||c_j| when the words anticommute and 0 when
// they commute, because a product of Pauli words is a unit-norm unitary.
package trotter

import (
	"fmt"
	"math"

	"github.com/qudit-labs/hamsynth/pauli"
)

// commutatorSum returns Σ_{i<j} ‖[c_iP_i, c_jP_j]‖ over all term pairs:
// 2|c_i||c_j| per anticommuting pair. 0 means every pair commutes and all
// product formulas are exact.
//
// Complexity: O(m²·n) time for m terms of width n, O(1) space.
func commutatorSum(terms []pauli.Term) float64 {
	var sum float64
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			ok, err := pauli.Commutes(terms[i].Word, terms[j].Word)
			if err == nil && !ok {
				sum += 2 * math.Abs(terms[i].Coeff) * math.Abs(terms[j].Coeff)
			}
		}
	}

	return sum
}

// ErrorBound returns the analytic bound on ‖exp(-iHt) − S(t/r)^r‖ for the
// formula of the given order with r repetitions.
//
// Formulas:
//   - order 1:  (t² / 2r) · Σ_{i<j} ‖[H_i, H_j]‖            (tight form)
//   - order 2k: (2·m·5^{k−1}·Λ·|t|)^{2k+1} / (3·r^{2k})     (tail bound)
//
// A pairwise-commuting operator returns 0 for every order.
//
// Errors: ErrNilOperator, ErrBadOrder, ErrBadReps (r < 1), ErrBadTime.
//
// Complexity: O(m²·n) dominated by the commutator scan.
func ErrorBound(op *pauli.Operator, order int, time float64, reps int) (float64, error) {
	if op == nil {
		return 0, ErrNilOperator
	}
	if err := checkOrder(order); err != nil {
		return 0, fmt.Errorf("ErrorBound: %w", err)
	}
	if reps < 1 {
		return 0, fmt.Errorf("ErrorBound: reps=%d: %w", reps, ErrBadReps)
	}
	if math.IsNaN(time) || math.IsInf(time, 0) {
		return 0, ErrBadTime
	}

	terms := op.Terms()
	if len(terms) == 0 || time == 0 {
		return 0, nil
	}

	csum := commutatorSum(terms)
	if csum == 0 {
		// Pairwise commuting: every product formula is exact.
		return 0, nil
	}

	r := float64(reps)
	if order == 1 {
		return time * time * csum / (2 * r), nil
	}

	// Order 2k tail bound.
	var (
		k      = order / 2
		m      = float64(len(terms))
		lambda = op.MaxCoeff()
		a      = 2 * m * math.Pow(5, float64(k-1)) * lambda * math.Abs(time)
	)

	return math.Pow(a, float64(order+1)) / (3 * math.Pow(r, float64(order))), nil
}

// repsForTarget returns the smallest repetition count whose bound meets
// target, or an error when it would exceed MaxAutoReps. Both closed forms
// invert directly; no search needed.
//
// Contract: target > 0; op has at least one non-commuting pair (callers
// short-circuit the exact cases first).
//
// Complexity: O(m²·n) for the commutator scan.
func repsForTarget(op *pauli.Operator, order int, time, target float64) (int, error) {
	terms := op.Terms()
	csum := commutatorSum(terms)
	if csum == 0 || time == 0 {
		return 1, nil
	}

	var need float64
	if order == 1 {
		need = time * time * csum / (2 * target)
	} else {
		var (
			k      = order / 2
			m      = float64(len(terms))
			lambda = op.MaxCoeff()
			a      = 2 * m * math.Pow(5, float64(k-1)) * lambda * math.Abs(time)
		)
		need = math.Pow(math.Pow(a, float64(order+1))/(3*target), 1/float64(order))
	}

	// Compare as float before converting: tiny targets push need past int
	// range, and the overflowed conversion would wrap negative.
	if !(need <= MaxAutoReps) {
		return 0, fmt.Errorf("repsForTarget: order %d needs %.3g reps: %w", order, need, ErrTargetUnreachable)
	}

	r := int(math.Ceil(need))
	if r < 1 {
		r = 1
	}

	return r, nil
}
