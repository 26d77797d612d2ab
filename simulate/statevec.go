// SPDX-License-Identifier: MIT

// Package simulate: statevector gate kernels.
//
// Each kernel is one pass over the amplitude array using the target bit as
// a stride mask; two-qubit gates test the control bit per index.
package simulate

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qudit-labs/hamsynth/circuit"
)

// StateVector holds 2^width complex amplitudes; index bit q is qubit q.
type StateVector struct {
	width int
	amps  []complex128
}

// NewStateVector prepares |0…0⟩ over width qubits.
func NewStateVector(width int) (*StateVector, error) {
	if width <= 0 {
		return nil, fmt.Errorf("NewStateVector(%d): %w", width, ErrBadWidth)
	}
	if width > MaxSimQubits {
		return nil, fmt.Errorf("NewStateVector(%d): %w", width, ErrTooWide)
	}
	amps := make([]complex128, 1<<width)
	amps[0] = 1

	return &StateVector{width: width, amps: amps}, nil
}

// Width returns the register width.
func (s *StateVector) Width() int {
	if s == nil {
		return 0
	}

	return s.width
}

// Amplitudes returns a defensive copy of the amplitude array.
func (s *StateVector) Amplitudes() []complex128 {
	if s == nil {
		return nil
	}
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)

	return out
}

// SetBasis resets the state to the computational basis state |index⟩.
func (s *StateVector) SetBasis(index int) error {
	if s == nil {
		return ErrNilOperand
	}
	if index < 0 || index >= len(s.amps) {
		return fmt.Errorf("SetBasis(%d): %w", index, ErrDimensionMismatch)
	}
	for i := range s.amps {
		s.amps[i] = 0
	}
	s.amps[index] = 1

	return nil
}

// Apply runs a single gate kernel over the amplitudes.
func (s *StateVector) Apply(g circuit.Gate) error {
	if s == nil {
		return ErrNilOperand
	}

	switch g.Kind {
	case circuit.KindH:
		s.applyH(g.Target)
	case circuit.KindX:
		s.applyX(g.Target)
	case circuit.KindS:
		s.applyPhase(g.Target, 1i)
	case circuit.KindSdg:
		s.applyPhase(g.Target, -1i)
	case circuit.KindRz:
		s.applyRz(g.Target, g.Theta)
	case circuit.KindRx:
		s.applyRx(g.Target, g.Theta)
	case circuit.KindRy:
		s.applyRy(g.Target, g.Theta)
	case circuit.KindCNOT:
		s.applyCNOT(g.Control, g.Target)
	default:
		return fmt.Errorf("Apply: unknown kind %d: %w", g.Kind, circuit.ErrBadGate)
	}

	return nil
}

// ApplyCircuit runs every gate of c in order. The circuit register must
// match the state width.
func (s *StateVector) ApplyCircuit(c *circuit.Circuit) error {
	if s == nil || c == nil {
		return ErrNilOperand
	}
	if c.Register().Width() != s.width {
		return fmt.Errorf("ApplyCircuit: width %d vs %d: %w",
			c.Register().Width(), s.width, ErrDimensionMismatch)
	}
	for _, g := range c.Gates() {
		if err := s.Apply(g); err != nil {
			return err
		}
	}

	return nil
}

func (s *StateVector) applyH(q int) {
	var (
		f   = complex(1/math.Sqrt2, 0)
		bit = 1 << q
	)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = f * (a + b)
			s.amps[j] = f * (a - b)
		}
	}
}

func (s *StateVector) applyX(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// applyPhase multiplies the |1⟩ component of q by f (S: i, Sdg: -i).
func (s *StateVector) applyPhase(q int, f complex128) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] *= f
		}
	}
}

func (s *StateVector) applyRz(q int, theta float64) {
	var (
		bit = 1 << q
		em  = cmplx.Exp(complex(0, -theta/2))
		ep  = cmplx.Exp(complex(0, theta/2))
	)
	for i := range s.amps {
		if i&bit == 0 {
			s.amps[i] *= em
		} else {
			s.amps[i] *= ep
		}
	}
}

func (s *StateVector) applyRx(q int, theta float64) {
	var (
		bit = 1 << q
		c   = complex(math.Cos(theta/2), 0)
		is  = complex(0, -math.Sin(theta/2))
	)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = c*a + is*b
			s.amps[j] = is*a + c*b
		}
	}
}

func (s *StateVector) applyRy(q int, theta float64) {
	var (
		bit = 1 << q
		c   = complex(math.Cos(theta/2), 0)
		sn  = complex(math.Sin(theta/2), 0)
	)
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amps[i], s.amps[j]
			s.amps[i] = c*a - sn*b
			s.amps[j] = sn*a + c*b
		}
	}
}

func (s *StateVector) applyCNOT(control, target int) {
	var (
		cb = 1 << control
		tb = 1 << target
	)
	for i := range s.amps {
		if i&cb != 0 && i&tb == 0 {
			j := i | tb
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}
