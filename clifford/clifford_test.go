// SPDX-License-Identifier: MIT

package clifford_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qecc/clifford"
	"github.com/katalvlaran/qecc/pauli"
)

func TestNew_Errors(t *testing.T) {
	_, err := clifford.New(nil, nil)
	assert.ErrorIs(t, err, clifford.ErrEmptyElement)

	_, err = clifford.New(Ps(t, "X"), nil)
	assert.ErrorIs(t, err, clifford.ErrQubitMismatch)

	_, err = clifford.New(Ps(t, "XX"), Ps(t, "Z"))
	assert.ErrorIs(t, err, clifford.ErrQubitMismatch, "image on 2 qubits in a 1-qubit element")

	_, err = clifford.New([]pauli.Pauli{{}}, Ps(t, "Z"))
	assert.ErrorIs(t, err, clifford.ErrNotPauli)
}

func TestNew_OwnsImages(t *testing.T) {
	xs, zs := Ps(t, "XX", "IX"), Ps(t, "ZI", "ZZ")
	e, err := clifford.New(xs, zs)
	require.NoError(t, err)

	xs[0] = P(t, "-YY")
	got := e.XImages()
	assert.Equal(t, "+XX", got[0].String())

	got[1] = P(t, "ZZ")
	img, ok := e.XImage(1)
	require.True(t, ok)
	assert.Equal(t, "+IX", img.String())
}

func TestQubitCount(t *testing.T) {
	n, err := Must(clifford.CNOT(3, 0, 1)).QubitCount()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var nilElem *clifford.Element
	_, err = nilElem.QubitCount()
	assert.ErrorIs(t, err, clifford.ErrEmptyElement)
	_, err = (&clifford.Element{}).QubitCount()
	assert.ErrorIs(t, err, clifford.ErrEmptyElement)

	assert.Equal(t, 0, (&clifford.Element{}).NumQubits())
	assert.Equal(t, 0, clifford.Empty{}.NumQubits())
	assert.Equal(t, 2, Eye(t, 2).NumQubits())
}

func TestImageAccessors(t *testing.T) {
	c := Must(clifford.CNOT(2, 0, 1))
	if diff := cmp.Diff([]string{"+XX", "+IX"}, strs(c.XImages())); diff != "" {
		t.Fatalf("X images mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"+ZI", "+ZZ"}, strs(c.ZImages())); diff != "" {
		t.Fatalf("Z images mismatch (-want +got):\n%s", diff)
	}

	z, ok := c.ZImage(1)
	require.True(t, ok)
	assert.Equal(t, "+ZZ", z.String())

	_, ok = c.XImage(2)
	assert.False(t, ok)
	_, ok = c.ZImage(-1)
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	a := MustElem(t, []string{"X"}, []string{"Z"})
	b := MustElem(t, []string{"X"}, []string{"Z"})
	c := MustElem(t, []string{"-X"}, []string{"Z"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "phase is part of equality")
	assert.False(t, a.Equal(nil))

	var nilElem *clifford.Element
	assert.True(t, nilElem.Equal(nil))
}

func TestString(t *testing.T) {
	c := Must(clifford.Phase(1, 0))
	assert.Equal(t, "+X |-> +Y\n+Z |-> +Z", c.String())
	assert.Equal(t, "<empty clifford>", clifford.Empty{}.String())
	assert.Equal(t, "<empty clifford>", (&clifford.Element{}).String())
}
