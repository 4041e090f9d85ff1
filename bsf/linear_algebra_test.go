package bsf_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qecc/bsf"
)

func TestMul(t *testing.T) {
	a := MustFromRows(t, [][]uint8{
		{1, 1, 0},
		{0, 1, 1},
	})
	b := MustFromRows(t, [][]uint8{
		{1, 0},
		{1, 1},
		{0, 1},
	})
	got, err := bsf.Mul(a, b)
	require.NoError(t, err)
	// Row 0: r0(b)+r1(b) = [0 1]; Row 1: r1(b)+r2(b) = [1 0].
	CompareExact(t, [][]uint8{{0, 1}, {1, 0}}, got)

	_, err = bsf.Mul(a, a)
	assert.ErrorIs(t, err, bsf.ErrDimensionMismatch)
	_, err = bsf.Mul(nil, a)
	assert.ErrorIs(t, err, bsf.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	m := MustFromRows(t, [][]uint8{{1, 1, 0}})
	got, err := bsf.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, [][]uint8{{1}, {1}, {0}}, got)

	_, err = bsf.Transpose(nil)
	assert.ErrorIs(t, err, bsf.ErrNilMatrix)
}

// TestInverse checks A·A⁻¹ = I for matrices that need row swaps and eliminations.
func TestInverse(t *testing.T) {
	cases := [][][]uint8{
		{{1}},
		{{0, 1}, {1, 0}},
		{{1, 1}, {0, 1}},
		{
			{0, 1, 1},
			{1, 0, 1},
			{1, 1, 1},
		},
		{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 1, 1, 0},
			{0, 0, 0, 1},
		},
	}
	for k, rows := range cases {
		t.Run(fmt.Sprintf("case%d", k), func(t *testing.T) {
			a := MustFromRows(t, rows)
			inv, err := bsf.Inverse(a)
			require.NoError(t, err)
			prod, err := bsf.Mul(a, inv)
			require.NoError(t, err)
			assert.True(t, prod.Equal(MustIdentity(t, len(rows))), "A·A⁻¹ =\n%s", prod)
			prod, err = bsf.Mul(inv, a)
			require.NoError(t, err)
			assert.True(t, prod.Equal(MustIdentity(t, len(rows))), "A⁻¹·A =\n%s", prod)
			// Input untouched.
			CompareExact(t, rows, a)
		})
	}
}

func TestInverse_Errors(t *testing.T) {
	_, err := bsf.Inverse(MustFromRows(t, [][]uint8{{1, 1}, {1, 1}}))
	assert.ErrorIs(t, err, bsf.ErrSingular)
	_, err = bsf.Inverse(MustFromRows(t, [][]uint8{{1, 0, 0}, {0, 1, 0}}))
	assert.ErrorIs(t, err, bsf.ErrNonSquare)
	_, err = bsf.Inverse(nil)
	assert.ErrorIs(t, err, bsf.ErrNilMatrix)
}
