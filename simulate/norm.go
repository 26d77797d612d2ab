// SPDX-License-Identifier: MIT

// Package simulate: circuit unitaries and spectral norms.
package simulate

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/qudit-labs/hamsynth/circuit"
)

// Power-iteration policy for SpectralNorm.
const (
	normMaxIters = 500
	normTol      = 1e-12
)

// CircuitUnitary computes the full unitary of c by pushing every
// computational basis state through the statevector kernels; column j of
// the result is c applied to |j⟩.
//
// Complexity: O(4^n · g) for g gates on n qubits.
func CircuitUnitary(c *circuit.Circuit) (*Dense, error) {
	if c == nil {
		return nil, ErrNilOperand
	}
	width := c.Register().Width()
	u, err := NewDense(width)
	if err != nil {
		return nil, fmt.Errorf("CircuitUnitary: %w", err)
	}

	sv, err := NewStateVector(width)
	if err != nil {
		return nil, fmt.Errorf("CircuitUnitary: %w", err)
	}
	for j := 0; j < u.dim; j++ {
		if err = sv.SetBasis(j); err != nil {
			return nil, fmt.Errorf("CircuitUnitary: %w", err)
		}
		if err = sv.ApplyCircuit(c); err != nil {
			return nil, fmt.Errorf("CircuitUnitary: %w", err)
		}
		for i, a := range sv.amps {
			u.m.Set(i, j, a)
		}
	}

	return u, nil
}

// SpectralNorm returns ‖d‖ — the largest singular value — via power
// iteration on d†d. Deterministic: the start vector is fixed.
//
// Errors: ErrNoConverge if the Rayleigh quotient fails to stabilize within
// normMaxIters (does not happen for the well-conditioned differences this
// package exists to measure).
//
// Complexity: O(8^n) for the Gram product plus O(iters·4^n).
func SpectralNorm(d *Dense) (float64, error) {
	if d == nil {
		return 0, ErrNilOperand
	}

	// Gram matrix G = d†·d (Hermitian, PSD; largest eigenvalue = ‖d‖²),
	// accumulated explicitly: G[i][j] = Σ_k conj(d[k][i])·d[k][j].
	g := mat.NewCDense(d.dim, d.dim, nil)
	for k := 0; k < d.dim; k++ {
		for i := 0; i < d.dim; i++ {
			dki := cmplx.Conj(d.m.At(k, i))
			if dki == 0 {
				continue
			}
			for j := 0; j < d.dim; j++ {
				g.Set(i, j, g.At(i, j)+dki*d.m.At(k, j))
			}
		}
	}

	// Fixed, non-uniform start vector so no eigenvector is systematically
	// orthogonal to it.
	v := make([]complex128, d.dim)
	for i := range v {
		v[i] = complex(1+float64(i%7)/7, float64(i%3)/3)
	}
	normalize(v)

	var (
		w      = make([]complex128, d.dim)
		lambda float64
		prev   = math.Inf(1)
	)
	for iter := 0; iter < normMaxIters; iter++ {
		// w = G·v.
		for i := 0; i < d.dim; i++ {
			var acc complex128
			for j := 0; j < d.dim; j++ {
				acc += g.At(i, j) * v[j]
			}
			w[i] = acc
		}

		// Rayleigh quotient λ = v†·G·v (real for Hermitian G).
		var acc complex128
		for i := range v {
			acc += cmplx.Conj(v[i]) * w[i]
		}
		lambda = real(acc)

		normalize(w)
		v, w = w, v

		if math.Abs(lambda-prev) <= normTol*math.Max(1, lambda) {
			return math.Sqrt(math.Max(lambda, 0)), nil
		}
		prev = lambda
	}

	return 0, ErrNoConverge
}

// UnitaryDistance returns ‖a − b‖ in spectral norm.
func UnitaryDistance(a, b *Dense) (float64, error) {
	d, err := Sub(a, b)
	if err != nil {
		return 0, fmt.Errorf("UnitaryDistance: %w", err)
	}

	return SpectralNorm(d)
}

// normalize scales v to unit 2-norm in place; the zero vector is left as
// is.
func normalize(v []complex128) {
	var sum float64
	for _, x := range v {
		sum += real(x)*real(x) + imag(x)*imag(x)
	}
	if sum == 0 {
		return
	}
	f := complex(1/math.Sqrt(sum), 0)
	for i := range v {
		v[i] *= f
	}
}
