// SPDX-License-Identifier: MIT
// Package: hamsynth/model
//
// api.go - the Build orchestrator and the Constructor contract.
//
// Design contract (strict):
//   - One orchestrator: Build(width, opts, cons...). Creates the operator,
//     resolves the configuration, runs constructors in order.
//   - All public factories are declared in impl_*.go files.
//   - Determinism: same width/options/seed and constructor order ⇒
//     identical operators.
//   - Safety: never panic; constructors return sentinel errors.

package model

import (
	"fmt"

	"github.com/qudit-labs/hamsynth/pauli"
)

// Constructor appends a deterministic batch of terms to op using the
// resolved configuration. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit terms in a stable order for a fixed config.
type Constructor func(op *pauli.Operator, cfg modelConfig) error

// Build creates an operator over width qubits, resolves opts, and applies
// all constructors in order. Any constructor error is wrapped with
// "Build: %w" and returned immediately; no partial cleanup is attempted.
//
// Complexity: option resolution O(len(opts)); then the sum of constructor
// costs.
func Build(width int, opts []Option, cons ...Constructor) (*pauli.Operator, error) {
	op, err := pauli.NewOperator(width)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	cfg := gatherOptions(opts...)
	for _, con := range cons {
		if err = con(op, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return op, nil
}

// axisWord builds a width-wide word with the given axis at each listed
// position; shared helper for the impl_* constructors.
func axisWord(width int, axis pauli.Axis, positions ...int) pauli.Word {
	w := pauli.Identity(width)
	for _, p := range positions {
		w[p] = axis
	}

	return w
}

// chainPairs enumerates nearest-neighbor pairs (i, i+1) for an open chain,
// plus the closing (n−1, 0) pair when periodic.
func chainPairs(width int, periodic bool) [][2]int {
	pairs := make([][2]int, 0, width)
	for i := 0; i+1 < width; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}
	if periodic && width > 2 {
		pairs = append(pairs, [2]int{width - 1, 0})
	}

	return pairs
}
