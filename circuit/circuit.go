// SPDX-License-Identifier: MIT

// Package circuit: the Circuit container and its accounting methods.
//
// Depth uses per-qubit frontier scheduling: process gates in program order
// and place each on layer 1 + max(frontier over its qubits). This is the
// ASAP schedule of the circuit DAG induced by qubit dependencies.
package circuit

import "fmt"

// Circuit is an ordered gate sequence over a fixed register.
type Circuit struct {
	reg   Register
	gates []Gate
}

// New creates an empty circuit over reg. A zero-width (zero-value) register
// is rejected.
func New(reg Register) (*Circuit, error) {
	if reg.width <= 0 {
		return nil, fmt.Errorf("New: %w", ErrBadWidth)
	}

	return &Circuit{reg: reg}, nil
}

// Register returns the register the circuit acts on.
func (c *Circuit) Register() Register {
	if c == nil {
		return Register{}
	}

	return c.reg
}

// Append validates g against the register and adds it to the sequence.
func (c *Circuit) Append(gs ...Gate) error {
	if c == nil {
		return ErrNilCircuit
	}
	for _, g := range gs {
		if err := g.validate(c.reg.width); err != nil {
			return fmt.Errorf("Append: %w", err)
		}
		c.gates = append(c.gates, g)
	}

	return nil
}

// Compose appends every gate of other to c. Registers must have equal
// width; other is not mutated.
func (c *Circuit) Compose(other *Circuit) error {
	if c == nil || other == nil {
		return ErrNilCircuit
	}
	if c.reg.width != other.reg.width {
		return fmt.Errorf("Compose: %d vs %d: %w", c.reg.width, other.reg.width, ErrRegisterMismatch)
	}
	c.gates = append(c.gates, other.gates...)

	return nil
}

// Len returns the number of gates.
func (c *Circuit) Len() int {
	if c == nil {
		return 0
	}

	return len(c.gates)
}

// Gates returns a defensive copy of the gate sequence.
func (c *Circuit) Gates() []Gate {
	if c == nil || len(c.gates) == 0 {
		return nil
	}
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Clone returns an independent copy of c.
func (c *Circuit) Clone() *Circuit {
	if c == nil {
		return nil
	}

	return &Circuit{reg: c.reg, gates: c.Gates()}
}

// Depth returns the layered depth of the circuit: the number of layers in
// the ASAP schedule where gates on disjoint qubits share a layer.
//
// Complexity: O(g) time over g gates, O(width) space.
func (c *Circuit) Depth() int {
	if c == nil || len(c.gates) == 0 {
		return 0
	}

	frontier := make([]int, c.reg.width)
	depth := 0
	var layer int
	for _, g := range c.gates {
		layer = frontier[g.Target]
		if g.Kind == KindCNOT && frontier[g.Control] > layer {
			layer = frontier[g.Control]
		}
		layer++
		frontier[g.Target] = layer
		if g.Kind == KindCNOT {
			frontier[g.Control] = layer
		}
		if layer > depth {
			depth = layer
		}
	}

	return depth
}

// CountKind returns how many gates of kind k the circuit holds.
func (c *Circuit) CountKind(k Kind) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, g := range c.gates {
		if g.Kind == k {
			n++
		}
	}

	return n
}

// TwoQubitCount returns the number of two-qubit gates (the usual hardware
// cost proxy).
func (c *Circuit) TwoQubitCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, g := range c.gates {
		if g.TwoQubit() {
			n++
		}
	}

	return n
}
