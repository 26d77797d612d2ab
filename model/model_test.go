// SPDX-License-Identifier: MIT

package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qudit-labs/hamsynth/pauli"
)

// TestBuild_IsingChainOpen verifies bond count, word shape, and coefficient
// for the default open chain.
func TestBuild_IsingChainOpen(t *testing.T) {
	op, err := Build(4, nil, IsingChain(0.75))
	require.NoError(t, err)

	terms := op.Terms()
	require.Len(t, terms, 3)
	assert.Equal(t, "ZZII", terms[0].Word.String())
	assert.Equal(t, "IZZI", terms[1].Word.String())
	assert.Equal(t, "IIZZ", terms[2].Word.String())
	for _, tm := range terms {
		assert.Equal(t, 0.75, tm.Coeff)
	}
}

// TestBuild_IsingChainPeriodic checks that WithPeriodic adds exactly one
// closing bond, and that a 2-site ring does not double its single bond.
func TestBuild_IsingChainPeriodic(t *testing.T) {
	op, err := Build(4, []Option{WithPeriodic()}, IsingChain(1.0))
	require.NoError(t, err)
	require.Equal(t, 4, op.Len())
	assert.Equal(t, "ZIIZ", op.Terms()[3].Word.String())

	op2, err := Build(2, []Option{WithPeriodic()}, IsingChain(1.0))
	require.NoError(t, err)
	assert.Equal(t, 1, op2.Len())
}

// TestBuild_TransverseFieldIsing counts bonds then per-site fields.
func TestBuild_TransverseFieldIsing(t *testing.T) {
	op, err := Build(3, nil, TransverseFieldIsing(1.0, 0.5))
	require.NoError(t, err)

	terms := op.Terms()
	require.Len(t, terms, 5) // 2 bonds + 3 fields
	assert.Equal(t, "ZZI", terms[0].Word.String())
	assert.Equal(t, "XII", terms[2].Word.String())
	assert.Equal(t, 0.5, terms[2].Coeff)
	assert.Equal(t, "IIX", terms[4].Word.String())
}

// TestBuild_HeisenbergXXZ verifies per-bond axis order and that zero
// couplings emit nothing.
func TestBuild_HeisenbergXXZ(t *testing.T) {
	op, err := Build(3, nil, HeisenbergXXZ(1.0, 1.0, 0.5))
	require.NoError(t, err)

	terms := op.Terms()
	require.Len(t, terms, 6) // 2 bonds × (XX, YY, ZZ)
	assert.Equal(t, "XXI", terms[0].Word.String())
	assert.Equal(t, "YYI", terms[1].Word.String())
	assert.Equal(t, "ZZI", terms[2].Word.String())
	assert.Equal(t, 0.5, terms[2].Coeff)

	xy, err := Build(3, nil, HeisenbergXXZ(1.0, 0, 1.0))
	require.NoError(t, err)
	assert.Equal(t, 4, xy.Len())
}

// TestBuild_RandomTwoLocal_Deterministic pins seeded reproducibility and
// the two-local support invariant.
func TestBuild_RandomTwoLocal_Deterministic(t *testing.T) {
	a, err := Build(5, []Option{WithSeed(42)}, RandomTwoLocal(20))
	require.NoError(t, err)
	b, err := Build(5, []Option{WithSeed(42)}, RandomTwoLocal(20))
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	require.Equal(t, 20, a.Len())
	for _, tm := range a.Terms() {
		assert.Equal(t, 2, tm.Word.Support())
	}

	c, err := Build(5, []Option{WithSeed(7)}, RandomTwoLocal(20))
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

// TestBuild_RandomTwoLocal_ConstCoeff routes every coefficient through the
// injected generator.
func TestBuild_RandomTwoLocal_ConstCoeff(t *testing.T) {
	op, err := Build(4, []Option{WithCoeffFn(ConstCoeff(0.25))}, RandomTwoLocal(8))
	require.NoError(t, err)
	for _, tm := range op.Terms() {
		assert.Equal(t, 0.25, tm.Coeff)
	}
}

// TestBuild_Composition chains two constructors over one operator.
func TestBuild_Composition(t *testing.T) {
	op, err := Build(3, nil, IsingChain(1.0), TransverseFieldIsing(0, 0.3))
	require.NoError(t, err)
	// 2 Ising bonds + 2 zero-J bonds + 3 fields = 7 raw terms; Canonical
	// keeps the merged structure.
	assert.Equal(t, 7, op.Len())
	assert.Equal(t, 5, op.Canonical().Len())
}

// TestBuild_SentinelErrors exercises each validation sentinel.
func TestBuild_SentinelErrors(t *testing.T) {
	_, err := Build(1, nil, IsingChain(1.0))
	assert.ErrorIs(t, err, ErrTooFewQubits)

	_, err = Build(3, nil, IsingChain(math.NaN()))
	assert.ErrorIs(t, err, ErrBadCoupling)

	_, err = Build(3, nil, TransverseFieldIsing(1.0, math.Inf(1)))
	assert.ErrorIs(t, err, ErrBadCoupling)

	_, err = Build(3, nil, HeisenbergXXZ(1.0, math.Inf(-1), 0))
	assert.ErrorIs(t, err, ErrBadCoupling)

	_, err = Build(3, nil, RandomTwoLocal(0))
	assert.ErrorIs(t, err, ErrNoTerms)

	_, err = Build(0, nil, IsingChain(1.0))
	assert.ErrorIs(t, err, pauli.ErrBadWidth)
}
