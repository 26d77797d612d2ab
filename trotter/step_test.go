package trotter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qudit-labs/hamsynth/circuit"
	"github.com/qudit-labs/hamsynth/pauli"
	"github.com/qudit-labs/hamsynth/trotter"
)

// buildOp assembles an operator from (word, coeff) pairs over width qubits.
func buildOp(t *testing.T, width int, terms ...pauli.Term) *pauli.Operator {
	t.Helper()
	op, err := pauli.NewOperator(width)
	require.NoError(t, err)
	for _, tm := range terms {
		require.NoError(t, op.AddTerm(tm))
	}

	return op
}

func term(s string, c float64) pauli.Term {
	return pauli.Term{Word: pauli.MustWord(s), Coeff: c}
}

// TestStepCircuit_SingleZ pins the minimal gadget: exp(-iθZ) is one
// Rz(2θ).
func TestStepCircuit_SingleZ(t *testing.T) {
	reg, err := circuit.NewRegister(1)
	require.NoError(t, err)
	op := buildOp(t, 1, term("Z", 0.7))

	c, err := trotter.StepCircuit(op, reg, 1, 1.0)
	require.NoError(t, err)
	gates := c.Gates()
	require.Len(t, gates, 1)
	assert.Equal(t, circuit.KindRz, gates[0].Kind)
	assert.InDelta(t, 1.4, gates[0].Theta, 1e-15, "Rz angle is 2·coeff·dt")
}

// TestStepCircuit_XBasisChange pins the X gadget: H · Rz · H.
func TestStepCircuit_XBasisChange(t *testing.T) {
	reg, err := circuit.NewRegister(1)
	require.NoError(t, err)
	op := buildOp(t, 1, term("X", 0.5))

	c, err := trotter.StepCircuit(op, reg, 1, 2.0)
	require.NoError(t, err)
	gates := c.Gates()
	require.Len(t, gates, 3)
	assert.Equal(t, circuit.KindH, gates[0].Kind)
	assert.Equal(t, circuit.KindRz, gates[1].Kind)
	assert.InDelta(t, 2.0, gates[1].Theta, 1e-15)
	assert.Equal(t, circuit.KindH, gates[2].Kind)
}

// TestStepCircuit_YBasisChange pins the Y gadget: Sdg·H · Rz · H·S.
func TestStepCircuit_YBasisChange(t *testing.T) {
	reg, err := circuit.NewRegister(1)
	require.NoError(t, err)
	op := buildOp(t, 1, term("Y", 1.0))

	c, err := trotter.StepCircuit(op, reg, 1, 1.0)
	require.NoError(t, err)
	kinds := make([]circuit.Kind, 0, c.Len())
	for _, g := range c.Gates() {
		kinds = append(kinds, g.Kind)
	}
	assert.Equal(t, []circuit.Kind{
		circuit.KindSdg, circuit.KindH, circuit.KindRz, circuit.KindH, circuit.KindS,
	}, kinds)
}

// TestStepCircuit_ParityLadder pins the two-qubit ZZ gadget: CNOT ladder,
// Rz on the last active qubit, mirrored ladder.
func TestStepCircuit_ParityLadder(t *testing.T) {
	reg, err := circuit.NewRegister(2)
	require.NoError(t, err)
	op := buildOp(t, 2, term("ZZ", 0.25))

	c, err := trotter.StepCircuit(op, reg, 1, 1.0)
	require.NoError(t, err)
	gates := c.Gates()
	require.Len(t, gates, 3)
	assert.Equal(t, circuit.KindCNOT, gates[0].Kind)
	assert.Equal(t, 0, gates[0].Control)
	assert.Equal(t, 1, gates[0].Target)
	assert.Equal(t, circuit.KindRz, gates[1].Kind)
	assert.Equal(t, 1, gates[1].Target, "rotation lands on the last active qubit")
	assert.Equal(t, circuit.KindCNOT, gates[2].Kind)
}

// TestStepCircuit_IdentityTermEmitsNothing checks that a pure-identity term
// contributes no gates (global phase only).
func TestStepCircuit_IdentityTermEmitsNothing(t *testing.T) {
	reg, err := circuit.NewRegister(2)
	require.NoError(t, err)
	op := buildOp(t, 2, term("II", 3.0))

	c, err := trotter.StepCircuit(op, reg, 1, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

// TestStepCircuit_Order2FactorCount verifies the Strang step touches every
// term twice with half the slice.
func TestStepCircuit_Order2FactorCount(t *testing.T) {
	reg, err := circuit.NewRegister(2)
	require.NoError(t, err)
	op := buildOp(t, 2, term("ZI", 1.0), term("IZ", 1.0))

	c, err := trotter.StepCircuit(op, reg, 2, 1.0)
	require.NoError(t, err)
	require.Equal(t, 4, c.Len(), "2 terms × forward+backward")
	for _, g := range c.Gates() {
		assert.Equal(t, circuit.KindRz, g.Kind)
		assert.InDelta(t, 1.0, g.Theta, 1e-15, "half slice × factor 2 in Rz angle")
	}
}

// TestStepCircuit_Order4FactorCount verifies the Suzuki level multiplies
// factors by five and its scales sum back to the full slice per term.
func TestStepCircuit_Order4FactorCount(t *testing.T) {
	reg, err := circuit.NewRegister(1)
	require.NoError(t, err)
	op := buildOp(t, 1, term("Z", 1.0))

	c, err := trotter.StepCircuit(op, reg, 4, 1.0)
	require.NoError(t, err)
	require.Equal(t, 10, c.Len(), "5 × the order-2 factor count")

	var sum float64
	for _, g := range c.Gates() {
		sum += g.Theta
	}
	assert.InDelta(t, 2.0, sum, 1e-12, "scales telescope to the full slice (×2 Rz convention)")
}

// TestStepCircuit_BadInputs covers the sentinel paths.
func TestStepCircuit_BadInputs(t *testing.T) {
	reg, err := circuit.NewRegister(2)
	require.NoError(t, err)
	op := buildOp(t, 2, term("ZZ", 1.0))

	_, err = trotter.StepCircuit(op, reg, 3, 1.0)
	assert.ErrorIs(t, err, trotter.ErrBadOrder, "odd order > 1 rejected")

	_, err = trotter.StepCircuit(nil, reg, 1, 1.0)
	assert.ErrorIs(t, err, trotter.ErrNilOperator)

	narrow, rerr := circuit.NewRegister(3)
	require.NoError(t, rerr)
	_, err = trotter.StepCircuit(op, narrow, 1, 1.0)
	assert.ErrorIs(t, err, trotter.ErrWidthMismatch, "operator/register width must agree")
}
