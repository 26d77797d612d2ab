package pauli_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qudit-labs/hamsynth/pauli"
)

// TestNewOperator_BadWidth ensures non-positive widths are rejected.
func TestNewOperator_BadWidth(t *testing.T) {
	_, err := pauli.NewOperator(0)
	assert.ErrorIs(t, err, pauli.ErrBadWidth, "width 0 must error")

	_, err = pauli.NewOperator(-3)
	assert.ErrorIs(t, err, pauli.ErrBadWidth, "negative width must error")
}

// TestOperator_AddValidation covers width and coefficient screening on Add.
func TestOperator_AddValidation(t *testing.T) {
	op, err := pauli.NewOperator(2)
	require.NoError(t, err)

	assert.ErrorIs(t, op.Add(pauli.MustWord("XIZ"), 1), pauli.ErrWidthMismatch,
		"3-qubit word on a 2-qubit operator must error")
	assert.ErrorIs(t, op.Add(pauli.MustWord("XX"), math.NaN()), pauli.ErrBadCoeff,
		"NaN coefficient must error")
	assert.ErrorIs(t, op.Add(pauli.MustWord("XX"), math.Inf(1)), pauli.ErrBadCoeff,
		"infinite coefficient must error")
	assert.NoError(t, op.Add(pauli.MustWord("XX"), 0.5), "well-formed term is accepted")
	assert.Equal(t, 1, op.Len())
}

// TestOperator_WeightAndMaxCoeff checks the coefficient norms.
func TestOperator_WeightAndMaxCoeff(t *testing.T) {
	op, err := pauli.NewOperator(2)
	require.NoError(t, err)
	require.NoError(t, op.Add(pauli.MustWord("ZZ"), -1.5))
	require.NoError(t, op.Add(pauli.MustWord("XI"), 0.25))

	assert.InDelta(t, 1.75, op.Weight(), 1e-15, "Weight is Σ|c|")
	assert.InDelta(t, 1.5, op.MaxCoeff(), 1e-15, "MaxCoeff is max|c|")
}

// TestOperator_CanonicalMergesAndSorts verifies sorting, duplicate merging,
// and near-zero pruning.
func TestOperator_CanonicalMergesAndSorts(t *testing.T) {
	op, err := pauli.NewOperator(2)
	require.NoError(t, err)
	require.NoError(t, op.Add(pauli.MustWord("ZZ"), 0.5))
	require.NoError(t, op.Add(pauli.MustWord("XI"), 1.0))
	require.NoError(t, op.Add(pauli.MustWord("ZZ"), 0.25))
	require.NoError(t, op.Add(pauli.MustWord("YY"), 0.3))
	require.NoError(t, op.Add(pauli.MustWord("YY"), -0.3))

	c := op.Canonical()
	terms := c.Terms()
	require.Len(t, terms, 2, "ZZ merged, YY cancelled to zero and dropped")
	assert.Equal(t, "XI", terms[0].Word.String(), "lexicographic order: XI < ZZ")
	assert.Equal(t, "ZZ", terms[1].Word.String())
	assert.InDelta(t, 0.75, terms[1].Coeff, 1e-15, "duplicate coefficients summed")

	// Source operator is untouched.
	assert.Equal(t, 5, op.Len(), "Canonical must not mutate the receiver")
}

// TestOperator_CanonicalOrderIndependent checks the canonical forms of two
// permutations of the same sum are identical.
func TestOperator_CanonicalOrderIndependent(t *testing.T) {
	a, err := pauli.NewOperator(2)
	require.NoError(t, err)
	require.NoError(t, a.Add(pauli.MustWord("XI"), 1))
	require.NoError(t, a.Add(pauli.MustWord("IZ"), 2))

	b, err := pauli.NewOperator(2)
	require.NoError(t, err)
	require.NoError(t, b.Add(pauli.MustWord("IZ"), 2))
	require.NoError(t, b.Add(pauli.MustWord("XI"), 1))

	assert.Equal(t, a.Canonical().Terms(), b.Canonical().Terms(),
		"sum order must not matter after canonicalization")
}

// TestOperator_AllCommute distinguishes a commuting (all-Z) operator from a
// mixed-axis one.
func TestOperator_AllCommute(t *testing.T) {
	zz, err := pauli.NewOperator(2)
	require.NoError(t, err)
	require.NoError(t, zz.Add(pauli.MustWord("ZI"), 1))
	require.NoError(t, zz.Add(pauli.MustWord("IZ"), 1))
	require.NoError(t, zz.Add(pauli.MustWord("ZZ"), 0.5))
	assert.True(t, zz.AllCommute(), "Z-diagonal terms pairwise commute")

	tfim, err := pauli.NewOperator(2)
	require.NoError(t, err)
	require.NoError(t, tfim.Add(pauli.MustWord("ZZ"), 1))
	require.NoError(t, tfim.Add(pauli.MustWord("XI"), 0.5))
	assert.False(t, tfim.AllCommute(), "ZZ and XI anticommute on qubit 0")
}

// TestOperator_NilSafety ensures nil receivers degrade to zero values and
// APIs requiring an operator return ErrNilOperator.
func TestOperator_NilSafety(t *testing.T) {
	var op *pauli.Operator
	assert.Equal(t, 0, op.Width())
	assert.Equal(t, 0, op.Len())
	assert.Equal(t, 0.0, op.Weight())
	assert.ErrorIs(t, op.Validate(), pauli.ErrNilOperator)
	assert.ErrorIs(t, op.Add(pauli.MustWord("X"), 1), pauli.ErrNilOperator)
}

// TestOperator_String renders a small sum for log readability.
func TestOperator_String(t *testing.T) {
	op, err := pauli.NewOperator(2)
	require.NoError(t, err)
	require.NoError(t, op.Add(pauli.MustWord("ZZ"), -0.5))
	assert.Equal(t, "-0.5·ZZ", op.String())
}
