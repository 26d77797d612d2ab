// SPDX-License-Identifier: MIT

// Package trotter - validation utilities shared by the synthesis entry
// points.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go, wrapped with call-site context.
package trotter

import (
	"fmt"
	"math"

	"github.com/qudit-labs/hamsynth/circuit"
	"github.com/qudit-labs/hamsynth/pauli"
)

// normalizeOptions validates opts and fills zero-value fields with the
// documented defaults. It returns the effective options.
//
// Complexity: O(1).
func normalizeOptions(opts Options) (Options, error) {
	if math.IsNaN(opts.Time) || math.IsInf(opts.Time, 0) {
		return Options{}, ErrBadTime
	}
	if opts.MaxDepth < 0 {
		return Options{}, ErrNegativeDepth
	}
	if opts.Reps < 0 {
		return Options{}, ErrBadReps
	}
	if opts.Target < 0 || math.IsNaN(opts.Target) || math.IsInf(opts.Target, 0) {
		return Options{}, ErrBadTarget
	}
	if opts.Eps < 0 || math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0) {
		return Options{}, ErrBadEps
	}

	if opts.MaxOrder == 0 {
		opts.MaxOrder = DefaultMaxOrder
	}
	if err := checkOrder(opts.MaxOrder); err != nil {
		return Options{}, fmt.Errorf("MaxOrder: %w", err)
	}
	if opts.Order != 0 {
		if err := checkOrder(opts.Order); err != nil {
			return Options{}, fmt.Errorf("Order: %w", err)
		}
	}
	if opts.Eps == 0 {
		opts.Eps = DefaultEps
	}
	// Unconstrained and target-free: apply the documented default target,
	// otherwise automatic repetition selection has no stopping rule.
	if opts.MaxDepth == 0 && opts.Reps == 0 && opts.Target == 0 {
		opts.Target = DefaultTarget
	}

	return opts, nil
}

// checkOrder accepts 1 and positive even numbers.
func checkOrder(order int) error {
	if order == 1 {
		return nil
	}
	if order < 1 || order%2 != 0 {
		return fmt.Errorf("%d: %w", order, ErrBadOrder)
	}

	return nil
}

// validateProblem checks the operator itself and its fit to the register.
//
// Complexity: O(m·n) over m terms of width n (delegated to op.Validate).
func validateProblem(op *pauli.Operator, reg circuit.Register) error {
	if op == nil {
		return ErrNilOperator
	}
	if err := op.Validate(); err != nil {
		return fmt.Errorf("operator: %w", err)
	}
	if op.Width() != reg.Width() {
		return fmt.Errorf("operator width %d vs register width %d: %w",
			op.Width(), reg.Width(), ErrWidthMismatch)
	}

	return nil
}
