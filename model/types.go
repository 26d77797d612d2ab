// SPDX-License-Identifier: MIT

// Package model: sentinel errors.
package model

import "errors"

// Sentinel errors for model construction.
var (
	// ErrTooFewQubits indicates a width below what the model needs.
	ErrTooFewQubits = errors.New("model: too few qubits for this model")

	// ErrBadCoupling indicates a NaN or infinite coupling constant.
	ErrBadCoupling = errors.New("model: coupling must be finite")

	// ErrNoTerms indicates a random model asked for a non-positive term
	// count.
	ErrNoTerms = errors.New("model: term count must be positive")
)
