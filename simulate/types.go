// SPDX-License-Identifier: MIT

// Package simulate: sentinel errors and size policy.
package simulate

import "errors"

// MaxSimQubits bounds the register width dense verification accepts;
// 2^12 × 2^12 complex entries is already 256 MiB.
const MaxSimQubits = 12

// Sentinel errors for dense verification.
var (
	// ErrTooWide indicates a register wider than MaxSimQubits.
	ErrTooWide = errors.New("simulate: register too wide for dense simulation")

	// ErrBadWidth indicates a non-positive width.
	ErrBadWidth = errors.New("simulate: width must be positive")

	// ErrDimensionMismatch indicates operands of different dimensions.
	ErrDimensionMismatch = errors.New("simulate: dimension mismatch")

	// ErrNilOperand indicates a nil operator, circuit, or matrix argument.
	ErrNilOperand = errors.New("simulate: nil operand")

	// ErrNoConverge indicates the power iteration failed to stabilize.
	ErrNoConverge = errors.New("simulate: spectral norm iteration did not converge")
)
