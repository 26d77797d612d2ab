// SPDX-License-Identifier: MIT

// Package circuit: OpenQASM 3 text export.
package circuit

import (
	"fmt"
	"strings"
)

// qasmAnglePrec fixes the decimal precision of exported rotation angles;
// enough to round-trip float64 rotations in practice without noisy tails.
const qasmAnglePrec = 12

// QASM renders the circuit as an OpenQASM 3 program, one statement per
// gate plus the version header and register declaration.
//
// Complexity: O(g) time and output size for g gates.
func (c *Circuit) QASM() string {
	var b strings.Builder
	b.WriteString("OPENQASM 3.0;\n")
	if c == nil || c.reg.width == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "qubit[%d] q;\n", c.reg.width)

	for _, g := range c.gates {
		switch {
		case g.Kind == KindCNOT:
			fmt.Fprintf(&b, "cx q[%d], q[%d];\n", g.Control, g.Target)
		case g.Kind.Rotation():
			fmt.Fprintf(&b, "%s(%.*g) q[%d];\n", g.Kind, qasmAnglePrec, g.Theta, g.Target)
		default:
			fmt.Fprintf(&b, "%s q[%d];\n", g.Kind, g.Target)
		}
	}

	return b.String()
}
