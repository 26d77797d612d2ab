package circuit_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qudit-labs/hamsynth/circuit"
)

// mustCircuit builds an empty circuit over width qubits, failing the test
// on construction errors.
func mustCircuit(t *testing.T, width int) *circuit.Circuit {
	t.Helper()
	reg, err := circuit.NewRegister(width)
	require.NoError(t, err)
	c, err := circuit.New(reg)
	require.NoError(t, err)

	return c
}

// TestNewRegister_BadWidth ensures non-positive widths are rejected.
func TestNewRegister_BadWidth(t *testing.T) {
	_, err := circuit.NewRegister(0)
	assert.ErrorIs(t, err, circuit.ErrBadWidth)
}

// TestAppend_Validation covers range checks and malformed gates.
func TestAppend_Validation(t *testing.T) {
	c := mustCircuit(t, 2)

	assert.ErrorIs(t, c.Append(circuit.H(2)), circuit.ErrQubitOutOfRange,
		"target beyond the register must error")
	assert.ErrorIs(t, c.Append(circuit.CNOT(1, 1)), circuit.ErrBadGate,
		"control==target must error")
	assert.ErrorIs(t, c.Append(circuit.CNOT(-1, 0)), circuit.ErrQubitOutOfRange,
		"negative control must error")
	assert.ErrorIs(t, c.Append(circuit.Rz(0, math.NaN())), circuit.ErrBadGate,
		"NaN angle must error")
	assert.NoError(t, c.Append(circuit.H(0), circuit.CNOT(0, 1), circuit.Rz(1, 0.5)))
	assert.Equal(t, 3, c.Len())
}

// TestDepth_FrontierScheduling checks that gates on disjoint qubits share a
// layer while dependent gates stack.
func TestDepth_FrontierScheduling(t *testing.T) {
	c := mustCircuit(t, 3)

	// Layer 1: H q0, H q1 (disjoint). Layer 2: CNOT(0,1). Layer 3: Rz q1.
	require.NoError(t, c.Append(
		circuit.H(0),
		circuit.H(1),
		circuit.CNOT(0, 1),
		circuit.Rz(1, 1.0),
	))
	assert.Equal(t, 3, c.Depth(), "parallel H's share a layer")

	// A gate on the untouched qubit 2 must not deepen the circuit.
	require.NoError(t, c.Append(circuit.H(2)))
	assert.Equal(t, 3, c.Depth(), "independent qubit packs into layer 1")
}

// TestDepth_EmptyCircuit pins depth 0 for the empty sequence.
func TestDepth_EmptyCircuit(t *testing.T) {
	c := mustCircuit(t, 2)
	assert.Equal(t, 0, c.Depth())
}

// TestCompose_WidthGuard ensures mismatched registers cannot be composed
// and matched ones concatenate.
func TestCompose_WidthGuard(t *testing.T) {
	a := mustCircuit(t, 2)
	b := mustCircuit(t, 3)
	assert.ErrorIs(t, a.Compose(b), circuit.ErrRegisterMismatch)

	b2 := mustCircuit(t, 2)
	require.NoError(t, b2.Append(circuit.H(0)))
	require.NoError(t, a.Compose(b2))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b2.Len(), "source circuit untouched")
}

// TestCounts verifies CountKind and TwoQubitCount.
func TestCounts(t *testing.T) {
	c := mustCircuit(t, 2)
	require.NoError(t, c.Append(circuit.H(0), circuit.CNOT(0, 1), circuit.CNOT(1, 0), circuit.Rz(0, 0.1)))
	assert.Equal(t, 1, c.CountKind(circuit.KindH))
	assert.Equal(t, 2, c.TwoQubitCount())
}

// TestQASM_OneStatementPerGate verifies the export shape: header, register
// declaration, then one line per gate.
func TestQASM_OneStatementPerGate(t *testing.T) {
	c := mustCircuit(t, 2)
	require.NoError(t, c.Append(circuit.H(0), circuit.Sdg(1), circuit.CNOT(0, 1), circuit.Rz(1, math.Pi/4)))

	q := c.QASM()
	lines := strings.Split(strings.TrimSpace(q), "\n")
	require.Len(t, lines, 2+c.Len(), "header + declaration + one line per gate")
	assert.Equal(t, "OPENQASM 3.0;", lines[0])
	assert.Equal(t, "qubit[2] q;", lines[1])
	assert.Equal(t, "h q[0];", lines[2])
	assert.Equal(t, "sdg q[1];", lines[3])
	assert.Equal(t, "cx q[0], q[1];", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "rz(0.785398163397"), "angle rendered with fixed precision: %s", lines[5])
}
