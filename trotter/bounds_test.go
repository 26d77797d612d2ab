package trotter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qudit-labs/hamsynth/trotter"
)

// TestErrorBound_CommutingIsExact verifies commuting terms yield bound 0
// for every order.
func TestErrorBound_CommutingIsExact(t *testing.T) {
	op := buildOp(t, 2, term("ZI", 1.0), term("IZ", 2.0), term("ZZ", 0.5))

	for _, order := range []int{1, 2, 4} {
		b, err := trotter.ErrorBound(op, order, 1.0, 1)
		require.NoError(t, err, "order %d", order)
		assert.Zero(t, b, "commuting Hamiltonian is exact at order %d", order)
	}
}

// TestErrorBound_FirstOrderFormula pins the tight order-1 value:
// (t²/2r) · Σ 2|c_i||c_j| over anticommuting pairs.
func TestErrorBound_FirstOrderFormula(t *testing.T) {
	// ZZ and XI anticommute (one clashing position); coefficients 1 and 0.5.
	op := buildOp(t, 2, term("ZZ", 1.0), term("XI", 0.5))

	b, err := trotter.ErrorBound(op, 1, 2.0, 4)
	require.NoError(t, err)
	// csum = 2·1·0.5 = 1; bound = t²·csum/(2r) = 4·1/8 = 0.5.
	assert.InDelta(t, 0.5, b, 1e-15)
}

// TestErrorBound_RepsScaling checks the 1/r (order 1) and 1/r² (order 2)
// decay of the bound.
func TestErrorBound_RepsScaling(t *testing.T) {
	op := buildOp(t, 2, term("ZZ", 1.0), term("XI", 1.0))

	b1, err := trotter.ErrorBound(op, 1, 1.0, 1)
	require.NoError(t, err)
	b10, err := trotter.ErrorBound(op, 1, 1.0, 10)
	require.NoError(t, err)
	assert.InDelta(t, b1/10, b10, 1e-15, "order 1 decays as 1/r")

	c1, err := trotter.ErrorBound(op, 2, 1.0, 1)
	require.NoError(t, err)
	c10, err := trotter.ErrorBound(op, 2, 1.0, 10)
	require.NoError(t, err)
	assert.InDelta(t, c1/100, c10, 1e-12, "order 2 decays as 1/r²")
}

// TestErrorBound_ZeroCases pins the zero operator and zero time.
func TestErrorBound_ZeroCases(t *testing.T) {
	empty := buildOp(t, 2)
	b, err := trotter.ErrorBound(empty, 1, 1.0, 1)
	require.NoError(t, err)
	assert.Zero(t, b)

	op := buildOp(t, 2, term("ZZ", 1.0), term("XI", 1.0))
	b, err = trotter.ErrorBound(op, 1, 0, 1)
	require.NoError(t, err)
	assert.Zero(t, b)
}

// TestErrorBound_Sentinels covers invalid inputs.
func TestErrorBound_Sentinels(t *testing.T) {
	op := buildOp(t, 1, term("Z", 1.0))

	_, err := trotter.ErrorBound(nil, 1, 1.0, 1)
	assert.ErrorIs(t, err, trotter.ErrNilOperator)

	_, err = trotter.ErrorBound(op, 5, 1.0, 1)
	assert.ErrorIs(t, err, trotter.ErrBadOrder)

	_, err = trotter.ErrorBound(op, 1, 1.0, 0)
	assert.ErrorIs(t, err, trotter.ErrBadReps)
}
