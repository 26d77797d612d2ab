// SPDX-License-Identifier: MIT

// Package circuit: gate and register types, sentinel errors.
package circuit

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for circuit construction.
var (
	// ErrBadWidth indicates a non-positive register width.
	ErrBadWidth = errors.New("circuit: register width must be positive")

	// ErrQubitOutOfRange indicates a gate referencing a qubit outside the
	// register, or a negative index.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrBadGate indicates a structurally invalid gate: unknown kind,
	// control==target on CNOT, a control on a one-qubit gate, or a
	// non-finite rotation angle.
	ErrBadGate = errors.New("circuit: malformed gate")

	// ErrRegisterMismatch indicates composition of circuits over registers
	// of different widths.
	ErrRegisterMismatch = errors.New("circuit: register widths differ")

	// ErrNilCircuit indicates a nil *Circuit passed where one is required.
	ErrNilCircuit = errors.New("circuit: nil circuit")
)

// Kind identifies a gate type.
type Kind uint8

// The gate vocabulary emitted by product-formula synthesis.
const (
	// KindH is the Hadamard gate (X-basis change).
	KindH Kind = iota

	// KindX is the Pauli X gate.
	KindX

	// KindS is the phase gate diag(1, i).
	KindS

	// KindSdg is the adjoint phase gate diag(1, -i) (Y-basis change, with H).
	KindSdg

	// KindRx is a rotation exp(-iθX/2) on one qubit.
	KindRx

	// KindRy is a rotation exp(-iθY/2) on one qubit.
	KindRy

	// KindRz is a rotation exp(-iθZ/2) on one qubit.
	KindRz

	// KindCNOT is the controlled-X gate on (Control, Target).
	KindCNOT
)

// kindNames maps Kind values to QASM-compatible lowercase mnemonics.
var kindNames = [...]string{"h", "x", "s", "sdg", "rx", "ry", "rz", "cx"}

// String returns the lowercase mnemonic of k ("h", "cx", ...).
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "?"
	}

	return kindNames[k]
}

// Rotation reports whether k carries an angle parameter.
func (k Kind) Rotation() bool {
	return k == KindRx || k == KindRy || k == KindRz
}

// NoControl marks the Control field of one-qubit gates.
const NoControl = -1

// Gate is a single operation on one or two qubits. One-qubit gates set
// Control to NoControl; only rotation kinds carry a meaningful Theta.
type Gate struct {
	// Kind selects the operation.
	Kind Kind

	// Target is the qubit the operation acts on (the ⊕ qubit for CNOT).
	Target int

	// Control is the control qubit for CNOT, NoControl otherwise.
	Control int

	// Theta is the rotation angle in radians; 0 for non-rotations.
	Theta float64
}

// H returns a Hadamard gate on q.
func H(q int) Gate { return Gate{Kind: KindH, Target: q, Control: NoControl} }

// XGate returns a Pauli X gate on q.
func XGate(q int) Gate { return Gate{Kind: KindX, Target: q, Control: NoControl} }

// S returns a phase gate on q.
func S(q int) Gate { return Gate{Kind: KindS, Target: q, Control: NoControl} }

// Sdg returns an adjoint phase gate on q.
func Sdg(q int) Gate { return Gate{Kind: KindSdg, Target: q, Control: NoControl} }

// Rx returns a rotation exp(-iθX/2) on q.
func Rx(q int, theta float64) Gate {
	return Gate{Kind: KindRx, Target: q, Control: NoControl, Theta: theta}
}

// Ry returns a rotation exp(-iθY/2) on q.
func Ry(q int, theta float64) Gate {
	return Gate{Kind: KindRy, Target: q, Control: NoControl, Theta: theta}
}

// Rz returns a rotation exp(-iθZ/2) on q.
func Rz(q int, theta float64) Gate {
	return Gate{Kind: KindRz, Target: q, Control: NoControl, Theta: theta}
}

// CNOT returns a controlled-X gate with the given control and target.
func CNOT(control, target int) Gate {
	return Gate{Kind: KindCNOT, Target: target, Control: control}
}

// TwoQubit reports whether g acts on two distinct qubits.
func (g Gate) TwoQubit() bool { return g.Kind == KindCNOT }

// validate checks g against a register of the given width.
func (g Gate) validate(width int) error {
	if int(g.Kind) >= len(kindNames) {
		return fmt.Errorf("unknown kind %d: %w", g.Kind, ErrBadGate)
	}
	if g.Target < 0 || g.Target >= width {
		return fmt.Errorf("target %d on width %d: %w", g.Target, width, ErrQubitOutOfRange)
	}
	if g.Kind == KindCNOT {
		if g.Control < 0 || g.Control >= width {
			return fmt.Errorf("control %d on width %d: %w", g.Control, width, ErrQubitOutOfRange)
		}
		if g.Control == g.Target {
			return fmt.Errorf("control equals target %d: %w", g.Target, ErrBadGate)
		}
	} else if g.Control != NoControl {
		return fmt.Errorf("%s gate with control set: %w", g.Kind, ErrBadGate)
	}
	if g.Kind.Rotation() {
		if math.IsNaN(g.Theta) || math.IsInf(g.Theta, 0) {
			return fmt.Errorf("%s angle not finite: %w", g.Kind, ErrBadGate)
		}
	} else if g.Theta != 0 {
		return fmt.Errorf("%s gate with angle set: %w", g.Kind, ErrBadGate)
	}

	return nil
}

// Register is a qubit register of fixed width.
type Register struct {
	width int
}

// NewRegister allocates a register of width qubits.
func NewRegister(width int) (Register, error) {
	if width <= 0 {
		return Register{}, fmt.Errorf("NewRegister(%d): %w", width, ErrBadWidth)
	}

	return Register{width: width}, nil
}

// Width returns the number of qubits in the register.
func (r Register) Width() int { return r.width }
