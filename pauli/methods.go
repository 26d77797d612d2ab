// SPDX-License-Identifier: MIT

// Package pauli: Operator construction and accessor methods.
package pauli

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// NewOperator creates an empty operator over width qubit positions.
// Width must be positive; the zero-term operator is valid and represents
// the zero Hamiltonian.
func NewOperator(width int) (*Operator, error) {
	if width <= 0 {
		return nil, fmt.Errorf("NewOperator(%d): %w", width, ErrBadWidth)
	}

	return &Operator{width: width}, nil
}

// Add appends the term coeff·w to the operator.
//
// Contract:
//   - len(w) must equal the operator width (ErrWidthMismatch otherwise).
//   - coeff must be finite (ErrBadCoeff otherwise).
//
// The word is cloned; callers may reuse their slice.
func (o *Operator) Add(w Word, coeff float64) error {
	if o == nil {
		return ErrNilOperator
	}
	if err := validateWord(w, o.width); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	if math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		return fmt.Errorf("Add(%q): %w", w.String(), ErrBadCoeff)
	}

	o.terms = append(o.terms, Term{Word: w.Clone(), Coeff: coeff})

	return nil
}

// AddTerm appends t to the operator; same contract as Add.
func (o *Operator) AddTerm(t Term) error {
	return o.Add(t.Word, t.Coeff)
}

// Width returns the number of qubit positions the operator acts on.
func (o *Operator) Width() int {
	if o == nil {
		return 0
	}

	return o.width
}

// Len returns the number of terms currently held.
func (o *Operator) Len() int {
	if o == nil {
		return 0
	}

	return len(o.terms)
}

// Terms returns a defensive copy of the term list in insertion order.
func (o *Operator) Terms() []Term {
	if o == nil || len(o.terms) == 0 {
		return nil
	}
	out := make([]Term, len(o.terms))
	for i, t := range o.terms {
		out[i] = Term{Word: t.Word.Clone(), Coeff: t.Coeff}
	}

	return out
}

// Weight returns Σ|c| over all terms — the 1-norm of the coefficient
// vector, an upper bound on the operator norm of the Hamiltonian.
func (o *Operator) Weight() float64 {
	if o == nil {
		return 0
	}
	var sum float64
	for _, t := range o.terms {
		sum += math.Abs(t.Coeff)
	}

	return sum
}

// MaxCoeff returns max|c| over all terms, 0 for the zero operator.
func (o *Operator) MaxCoeff() float64 {
	if o == nil {
		return 0
	}
	var m float64
	for _, t := range o.terms {
		if a := math.Abs(t.Coeff); a > m {
			m = a
		}
	}

	return m
}

// Clone returns an independent deep copy of o.
func (o *Operator) Clone() *Operator {
	if o == nil {
		return nil
	}

	return &Operator{width: o.width, terms: o.Terms()}
}

// Canonical returns a new operator with terms sorted lexicographically by
// word, duplicate words merged by summing coefficients, and merged terms
// whose magnitude falls below DefaultCoeffTol dropped.
//
// Canonical makes downstream consumers order-independent: two operators
// describing the same sum in different term order canonicalize to
// identical values.
//
// Complexity: O(m log m · n) time for m terms of width n.
func (o *Operator) Canonical() *Operator {
	if o == nil {
		return nil
	}

	sorted := o.Terms()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Word.Less(sorted[j].Word)
	})

	// Merge runs of equal words; drop near-zero results.
	merged := make([]Term, 0, len(sorted))
	for _, t := range sorted {
		if n := len(merged); n > 0 && merged[n-1].Word.Equal(t.Word) {
			merged[n-1].Coeff += t.Coeff

			continue
		}
		merged = append(merged, t)
	}
	out := merged[:0]
	for _, t := range merged {
		if math.Abs(t.Coeff) > DefaultCoeffTol {
			out = append(out, t)
		}
	}

	return &Operator{width: o.width, terms: append([]Term(nil), out...)}
}

// AllCommute reports whether every pair of terms commutes. When true, the
// first-order product formula is exact and no Trotter error is incurred.
//
// Complexity: O(m²·n) time — fine for the term counts operators carry.
func (o *Operator) AllCommute() bool {
	if o == nil {
		return true
	}
	for i := 0; i < len(o.terms); i++ {
		for j := i + 1; j < len(o.terms); j++ {
			ok, err := Commutes(o.terms[i].Word, o.terms[j].Word)
			if err != nil || !ok {
				return false
			}
		}
	}

	return true
}

// Validate re-checks every held term against the operator width and
// coefficient policy. A freshly built operator is valid by construction;
// Validate exists for operators arriving through IO decoding.
func (o *Operator) Validate() error {
	if o == nil {
		return ErrNilOperator
	}
	if o.width <= 0 {
		return ErrBadWidth
	}
	for i, t := range o.terms {
		if err := validateWord(t.Word, o.width); err != nil {
			return fmt.Errorf("term %d: %w", i, err)
		}
		if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
			return fmt.Errorf("term %d (%q): %w", i, t.Word.String(), ErrBadCoeff)
		}
	}

	return nil
}

// String renders the operator as a readable sum, e.g.
// "-0.5·ZZI + 0.25·IXX". Intended for logs and test failure messages.
func (o *Operator) String() string {
	if o == nil || len(o.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(o.terms))
	for i, t := range o.terms {
		parts[i] = fmt.Sprintf("%+g·%s", t.Coeff, t.Word.String())
	}

	return strings.Join(parts, " ")
}
