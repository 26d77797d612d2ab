// SPDX-License-Identifier: MIT

// Package trotter: options, result, sentinel errors, documented defaults.
package trotter

import (
	"errors"

	"github.com/qudit-labs/hamsynth/circuit"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxOrder caps the Suzuki recursion at order 4 unless the
	// caller raises it. Higher orders pay a 5× per-level gate blow-up and
	// rarely win under tight depth budgets.
	DefaultMaxOrder = 4

	// DefaultTarget is the error-bound target applied when both MaxDepth
	// and Target are unset; repetitions are then chosen as the smallest
	// count whose bound meets it.
	DefaultTarget = 1e-3

	// DefaultEps is the numeric tolerance for treating angles and bounds
	// as zero.
	DefaultEps = 1e-12

	// MaxAutoReps caps automatic repetition selection; a target that would
	// require more repetitions is reported as unreachable rather than
	// producing an absurd circuit.
	MaxAutoReps = 1 << 20
)

// Sentinel errors for synthesis.
var (
	// ErrNilOperator indicates a nil Hamiltonian.
	ErrNilOperator = errors.New("trotter: nil operator")

	// ErrBadTime indicates a NaN or infinite evolution time.
	ErrBadTime = errors.New("trotter: evolution time must be finite")

	// ErrNegativeDepth indicates a negative depth budget (0 means
	// unconstrained; negatives are undefined).
	ErrNegativeDepth = errors.New("trotter: depth budget must be non-negative")

	// ErrBadOrder indicates a requested formula order that is neither 1
	// nor a positive even number.
	ErrBadOrder = errors.New("trotter: order must be 1 or a positive even number")

	// ErrBadReps indicates a negative repetition count (0 means automatic).
	ErrBadReps = errors.New("trotter: repetitions must be non-negative")

	// ErrBadTarget indicates a negative or non-finite error-bound target.
	ErrBadTarget = errors.New("trotter: target bound must be finite and non-negative")

	// ErrBadEps indicates a negative or non-finite numeric tolerance.
	ErrBadEps = errors.New("trotter: eps must be finite and non-negative")

	// ErrWidthMismatch indicates that the operator width differs from the
	// register width at the call site.
	ErrWidthMismatch = errors.New("trotter: operator width does not match register")

	// ErrDepthBudget indicates that no candidate formula fits even one
	// repetition into the depth budget.
	ErrDepthBudget = errors.New("trotter: no product formula fits the depth budget")

	// ErrTargetUnreachable indicates that meeting the target bound would
	// exceed MaxAutoReps repetitions.
	ErrTargetUnreachable = errors.New("trotter: target bound needs too many repetitions")
)

// Options configures Synthesize.
//
// Fields:
//   - Time     — the evolution coefficient t in exp(-iHt); any finite value,
//     including 0 (which yields an empty circuit) and negatives.
//   - MaxDepth — layered-depth budget for the output circuit. 0 means
//     unconstrained; negatives are rejected.
//   - MaxOrder — highest formula order considered (1 plus even orders up to
//     this cap). 0 applies DefaultMaxOrder.
//   - Order    — force a single formula order instead of searching. 0 means
//     automatic selection.
//   - Reps     — force the repetition count. 0 means automatic: fill the
//     depth budget, or meet Target when unconstrained.
//   - Target   — error-bound target. With a depth budget it acts as an
//     early-stop: the smallest repetition count meeting it is used instead
//     of the whole budget. 0 disables (use DefaultTarget only when
//     MaxDepth is also 0).
//   - Eps      — numeric tolerance; 0 applies DefaultEps.
type Options struct {
	Time     float64
	MaxDepth int
	MaxOrder int
	Order    int
	Reps     int
	Target   float64
	Eps      float64
}

// DefaultOptions returns the documented defaults for evolution time t.
func DefaultOptions(t float64) Options {
	return Options{
		Time:     t,
		MaxOrder: DefaultMaxOrder,
		Eps:      DefaultEps,
	}
}

// Result is the outcome of Synthesize.
type Result struct {
	// Circuit approximates exp(-iHt) on the call-site register.
	Circuit *circuit.Circuit

	// Order is the product-formula order used; 0 when nothing was emitted
	// (zero Hamiltonian or zero time).
	Order int

	// Reps is the number of repeated formula steps.
	Reps int

	// Depth is the layered depth of Circuit.
	Depth int

	// ErrorBound is the analytic operator-norm bound on
	// ‖exp(-iHt) − Circuit‖ for the chosen formula.
	ErrorBound float64
}
