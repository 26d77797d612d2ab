// SPDX-License-Identifier: MIT

// Package trotter - unified synthesis dispatcher.
//
// This file provides the canonical entry point:
//
//   - Synthesize: validate options and problem, canonicalize the operator,
//     enumerate candidate (order, repetitions) pairs under the depth budget,
//     and emit the circuit for the candidate with the smallest analytic
//     error bound.
//
// Design principles:
//   - Deterministic: canonical term order, stable candidate enumeration,
//     explicit tie-breaking (bound, then total depth, then order).
//   - Strict sentinels: only errors from types.go; fmt.Errorf adds context.
//   - Candidates are independent, so they are evaluated concurrently; the
//     selection pass afterwards is sequential and order-stable.
package trotter

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/qudit-labs/hamsynth/circuit"
	"github.com/qudit-labs/hamsynth/pauli"
)

// candidate is one evaluated (order, reps) choice.
type candidate struct {
	order    int
	reps     int
	stepSize int // layered depth of a single step
	bound    float64
	feasible bool
	reason   error // why infeasible (budget vs target), nil when feasible
}

// Synthesize builds a circuit approximating exp(-iH·Time) on reg, where H
// is the weighted Pauli sum op, subject to opts.MaxDepth.
//
// Contracts:
//   - op must be non-nil and valid; its width must equal reg.Width().
//   - The zero Hamiltonian and Time==0 both yield an empty circuit with
//     bound 0 and Order/Reps 0.
//   - When MaxDepth > 0, Result.Depth ≤ MaxDepth.
//
// Selection rule: among candidate formulas that fit the budget, minimize
// the analytic error bound; break ties toward smaller total depth, then
// smaller order. With Reps or Order forced, only those candidates are
// considered.
//
// Errors: normalization and validation sentinels; ErrDepthBudget when no
// candidate fits; ErrTargetUnreachable when (unconstrained) no candidate
// meets the target within MaxAutoReps.
//
// Complexity: candidate evaluation is O(m²·n + m·n·5^{k-1}) per order; the
// final emission is O(reps · step gates).
func Synthesize(op *pauli.Operator, reg circuit.Register, opts Options) (Result, error) {
	// Stage 1 - options.
	eff, err := normalizeOptions(opts)
	if err != nil {
		return Result{}, fmt.Errorf("Synthesize: %w", err)
	}

	// Stage 2 - problem shape.
	if err = validateProblem(op, reg); err != nil {
		return Result{}, fmt.Errorf("Synthesize: %w", err)
	}

	// Stage 3 - canonical term order; synthesis output never depends on
	// how the caller assembled the sum.
	canon := op.Canonical()

	// Trivial evolutions emit an empty circuit.
	if canon.Len() == 0 || eff.Time == 0 {
		empty, cerr := circuit.New(reg)
		if cerr != nil {
			return Result{}, fmt.Errorf("Synthesize: %w", cerr)
		}

		return Result{Circuit: empty}, nil
	}

	// Stage 4 - candidate orders. Pairwise-commuting operators are exact
	// at order 1; nothing higher can help.
	orders := candidateOrders(eff)
	if canon.AllCommute() {
		orders = []int{1}
	}

	// Stage 5 - evaluate candidates concurrently (hard errors abort).
	cands := make([]candidate, len(orders))
	var g errgroup.Group
	for i, ord := range orders {
		g.Go(func() error {
			c, cerr := evaluate(canon, reg, ord, eff)
			if cerr != nil {
				return cerr
			}
			cands[i] = c

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Result{}, fmt.Errorf("Synthesize: %w", err)
	}

	// Stage 6 - stable selection.
	best, selErr := selectCandidate(cands, eff)
	if selErr != nil {
		return Result{}, fmt.Errorf("Synthesize: %w", selErr)
	}

	// Stage 7 - emit the chosen circuit: reps repetitions of one step over
	// Time/reps.
	step, err := StepCircuit(canon, reg, best.order, eff.Time/float64(best.reps))
	if err != nil {
		return Result{}, fmt.Errorf("Synthesize: %w", err)
	}
	out, err := circuit.New(reg)
	if err != nil {
		return Result{}, fmt.Errorf("Synthesize: %w", err)
	}
	for r := 0; r < best.reps; r++ {
		if err = out.Compose(step); err != nil {
			return Result{}, fmt.Errorf("Synthesize: %w", err)
		}
	}

	return Result{
		Circuit:    out,
		Order:      best.order,
		Reps:       best.reps,
		Depth:      out.Depth(),
		ErrorBound: best.bound,
	}, nil
}

// candidateOrders enumerates formula orders: the forced one, or
// {1, 2, 4, …, MaxOrder}.
func candidateOrders(eff Options) []int {
	if eff.Order != 0 {
		return []int{eff.Order}
	}

	orders := []int{1}
	for ord := 2; ord <= eff.MaxOrder; ord += 2 {
		orders = append(orders, ord)
	}

	return orders
}

// evaluate builds one step of the formula, sizes the repetition count
// against the depth budget (or the target bound when unconstrained), and
// computes the candidate's analytic bound. Infeasibility is recorded, not
// returned: only structural failures surface as errors.
func evaluate(canon *pauli.Operator, reg circuit.Register, order int, eff Options) (candidate, error) {
	// Depth of a single step does not depend on dt; probe with dt=1.
	step, err := StepCircuit(canon, reg, order, 1)
	if err != nil {
		return candidate{}, err
	}

	var (
		d = step.Depth()
		c = candidate{order: order, stepSize: d}
	)

	// All-identity operators emit no gates; one vacuous repetition.
	if d == 0 {
		c.reps, c.feasible = 1, true
		c.bound, err = ErrorBound(canon, order, eff.Time, 1)

		return c, err
	}

	switch {
	case eff.Reps > 0:
		// Forced repetition count; only the budget can reject it.
		if eff.MaxDepth > 0 && eff.Reps*d > eff.MaxDepth {
			c.reason = ErrDepthBudget

			return c, nil
		}
		c.reps = eff.Reps

	case eff.MaxDepth > 0:
		// Fill the budget; optionally stop early at the target bound.
		budget := eff.MaxDepth / d
		if budget < 1 {
			c.reason = ErrDepthBudget

			return c, nil
		}
		c.reps = budget
		if eff.Target > 0 {
			if rt, terr := repsForTarget(canon, order, eff.Time, eff.Target); terr == nil && rt < budget {
				c.reps = rt
			}
		}

	default:
		// Unconstrained: smallest count meeting the target.
		c.reps, err = repsForTarget(canon, order, eff.Time, eff.Target)
		if err != nil {
			if errors.Is(err, ErrTargetUnreachable) {
				c.reason = ErrTargetUnreachable

				return c, nil
			}

			return candidate{}, err
		}
	}

	c.bound, err = ErrorBound(canon, order, eff.Time, c.reps)
	if err != nil {
		return candidate{}, err
	}
	c.feasible = true

	return c, nil
}

// selectCandidate picks the feasible candidate with the smallest bound;
// ties break toward smaller total depth, then smaller order. When nothing
// is feasible the dominant infeasibility reason is returned.
func selectCandidate(cands []candidate, eff Options) (candidate, error) {
	var (
		best  candidate
		found bool
	)
	for _, c := range cands {
		if !c.feasible {
			continue
		}
		if !found || better(c, best, eff.Eps) {
			best, found = c, true
		}
	}
	if found {
		return best, nil
	}

	// No feasible candidate: prefer the budget sentinel when a budget was
	// the blocker anywhere, otherwise the target one.
	for _, c := range cands {
		if errors.Is(c.reason, ErrDepthBudget) {
			return candidate{}, ErrDepthBudget
		}
	}

	return candidate{}, ErrTargetUnreachable
}

// better reports whether a strictly beats b under the selection rule.
func better(a, b candidate, eps float64) bool {
	switch {
	case a.bound < b.bound-eps:
		return true
	case b.bound < a.bound-eps:
		return false
	}

	// Bounds tie within eps: compare total depth, then order.
	da, db := a.reps*a.stepSize, b.reps*b.stepSize
	if da != db {
		return da < db
	}

	return a.order < b.order
}
