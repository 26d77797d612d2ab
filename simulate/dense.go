// SPDX-License-Identifier: MIT

// Package simulate: dense complex operators over 2^width dimensions.
//
// A Pauli word is a signed permutation matrix with exactly one non-zero
// per row: column = row XOR xmask, phase = product of per-qubit factors.
// Operator assembly exploits this — O(m·2^n) instead of Kronecker
// products' O(4^n) per term.
package simulate

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/qudit-labs/hamsynth/pauli"
)

// Dense is a square complex matrix over the 2^width-dimensional register
// space.
type Dense struct {
	width int
	dim   int
	m     *mat.CDense
}

// NewDense allocates the zero matrix for width qubits.
func NewDense(width int) (*Dense, error) {
	if width <= 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", width, ErrBadWidth)
	}
	if width > MaxSimQubits {
		return nil, fmt.Errorf("NewDense(%d): %w", width, ErrTooWide)
	}
	dim := 1 << width

	return &Dense{width: width, dim: dim, m: mat.NewCDense(dim, dim, nil)}, nil
}

// Eye returns the identity matrix for width qubits.
func Eye(width int) (*Dense, error) {
	d, err := NewDense(width)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.dim; i++ {
		d.m.Set(i, i, 1)
	}

	return d, nil
}

// FromOperator assembles the dense Hermitian matrix of the weighted Pauli
// sum op.
//
// Complexity: O(m·2^n) time, O(4^n) space for the result.
func FromOperator(op *pauli.Operator) (*Dense, error) {
	if op == nil {
		return nil, ErrNilOperand
	}
	d, err := NewDense(op.Width())
	if err != nil {
		return nil, fmt.Errorf("FromOperator: %w", err)
	}

	for _, t := range op.Terms() {
		addPauliTerm(d, t)
	}

	return d, nil
}

// addPauliTerm accumulates coeff·(⊗ axes) into d using the bitmask kernel.
func addPauliTerm(d *Dense, t pauli.Term) {
	// xmask collects qubits whose axis flips the basis bit (X and Y).
	var xmask int
	for q, a := range t.Word {
		if a == pauli.X || a == pauli.Y {
			xmask |= 1 << q
		}
	}

	var (
		row, col int
		phase    complex128
	)
	for row = 0; row < d.dim; row++ {
		col = row ^ xmask
		phase = complex(t.Coeff, 0)
		for q, a := range t.Word {
			bit := (row >> q) & 1
			switch a {
			case pauli.Z:
				if bit == 1 {
					phase = -phase
				}
			case pauli.Y:
				// Y[0][1] = -i, Y[1][0] = i.
				if bit == 0 {
					phase *= -1i
				} else {
					phase *= 1i
				}
			case pauli.I, pauli.X:
				// Unit factor.
			}
		}
		d.m.Set(row, col, d.m.At(row, col)+phase)
	}
}

// Width returns the register width d acts on.
func (d *Dense) Width() int {
	if d == nil {
		return 0
	}

	return d.width
}

// Dim returns the matrix dimension 2^width.
func (d *Dense) Dim() int {
	if d == nil {
		return 0
	}

	return d.dim
}

// At returns entry (i, j); out-of-range indices panic as in gonum.
func (d *Dense) At(i, j int) complex128 { return d.m.At(i, j) }

// Set assigns entry (i, j).
func (d *Dense) Set(i, j int, v complex128) { d.m.Set(i, j, v) }

// Clone returns an independent copy of d.
func (d *Dense) Clone() *Dense {
	if d == nil {
		return nil
	}
	out := &Dense{width: d.width, dim: d.dim, m: mat.NewCDense(d.dim, d.dim, nil)}
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			out.m.Set(i, j, d.m.At(i, j))
		}
	}

	return out
}

// Mul returns a·b. The product is computed explicitly: gonum's CDense is
// complex storage only and carries no multiplication method.
//
// Complexity: O(8^n) time for n qubits.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilOperand
	}
	if a.dim != b.dim {
		return nil, fmt.Errorf("Mul: %d vs %d: %w", a.dim, b.dim, ErrDimensionMismatch)
	}
	out := &Dense{width: a.width, dim: a.dim, m: mat.NewCDense(a.dim, a.dim, nil)}
	// i-k-j loop order keeps both operand accesses row-contiguous.
	for i := 0; i < a.dim; i++ {
		for k := 0; k < a.dim; k++ {
			aik := a.m.At(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < a.dim; j++ {
				out.m.Set(i, j, out.m.At(i, j)+aik*b.m.At(k, j))
			}
		}
	}

	return out, nil
}

// Sub returns a − b.
func Sub(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilOperand
	}
	if a.dim != b.dim {
		return nil, fmt.Errorf("Sub: %d vs %d: %w", a.dim, b.dim, ErrDimensionMismatch)
	}
	out := &Dense{width: a.width, dim: a.dim, m: mat.NewCDense(a.dim, a.dim, nil)}
	for i := 0; i < a.dim; i++ {
		for j := 0; j < a.dim; j++ {
			out.m.Set(i, j, a.m.At(i, j)-b.m.At(i, j))
		}
	}

	return out, nil
}

// scaleInPlace multiplies every entry of d by f.
func (d *Dense) scaleInPlace(f complex128) {
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			d.m.Set(i, j, f*d.m.At(i, j))
		}
	}
}

// addInPlace accumulates o into d.
func (d *Dense) addInPlace(o *Dense) {
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			d.m.Set(i, j, d.m.At(i, j)+o.m.At(i, j))
		}
	}
}

// maxAbs returns the largest entry magnitude; used for series truncation.
func (d *Dense) maxAbs() float64 {
	var m float64
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if a := cmplx.Abs(d.m.At(i, j)); a > m {
				m = a
			}
		}
	}

	return m
}
