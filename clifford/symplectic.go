// SPDX-License-Identifier: MIT

// Package clifford - bridge to the binary symplectic form.
//
// Phase caveat: the symplectic matrix records only the X/Z support of each
// image. FromSymplecticMatrix(AsSymplecticMatrix(C)) equals C exactly when
// every image of C has phase 0; otherwise the round trip drops the signs.
// Inverse repairs the phases separately.

package clifford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qecc/bsf"
	"github.com/katalvlaran/qecc/pauli"
)

// AsSymplecticMatrix returns the 2n×2n GF(2) matrix whose columns are the
// binary symplectic vectors of the X images then the Z images.
// Errors: ErrEmptyElement.
// Complexity: O(n²).
func (c *Element) AsSymplecticMatrix() (*bsf.Matrix, error) {
	if _, err := c.QubitCount(); err != nil {
		return nil, cliffordErrorf(opAsBSM, err)
	}
	cols := make([]bsf.Vector, 0, 2*len(c.xout))
	for _, p := range c.images() {
		cols = append(cols, bsf.FromPauli(p))
	}
	m, err := bsf.FromColumns(cols)
	if err != nil {
		return nil, cliffordErrorf(opAsBSM, err)
	}

	return m, nil
}

// FromSymplecticMatrix converts a binary symplectic matrix to an Element:
// column j < n becomes the X image of qubit j, column n+j the Z image.
// All images carry phase 0.
// Errors: bsf.ErrNilMatrix for a nil matrix.
func FromSymplecticMatrix(m *bsf.Matrix) (*Element, error) {
	if m == nil {
		return nil, cliffordErrorf(opFromBSM, bsf.ErrNilMatrix)
	}
	n := m.NumQubits()
	if n == 0 {
		return nil, cliffordErrorf(opFromBSM, ErrEmptyElement)
	}
	xs := make([]pauli.Pauli, n)
	zs := make([]pauli.Pauli, n)
	for j := 0; j < 2*n; j++ {
		v, err := m.Column(j)
		if err != nil {
			return nil, cliffordErrorf(opFromBSM, err)
		}
		p, err := v.AsPauli()
		if err != nil {
			return nil, cliffordErrorf(opFromBSM, err)
		}
		if j < n {
			xs[j] = p
		} else {
			zs[j-n] = p
		}
	}

	return &Element{xout: xs, zout: zs}, nil
}

// SynthesizeCanonical returns the Clifford taking paulisIn to paulisOut under
// conjugation (the canonical form of the original gen_cliff).
// Implementation:
//   - Stage 1: with n = len/2, G maps (X_i, Z_i) to (out[i], out[n+i]) and
//     H maps them to (in[i], in[n+i]).
//   - Stage 2: H⁻¹ from the GF(2) inverse of H's symplectic matrix.
//   - Stage 3: return G·H⁻¹.
//
// H⁻¹ is phase-free, so the result maps in[k] to out[k] up to a phase factor.
// Errors: ErrOddLength, ErrNotPauli, ErrQubitMismatch, ErrSingular.
func SynthesizeCanonical(paulisIn, paulisOut []pauli.Pauli) (*Element, error) {
	if len(paulisIn) == 0 || len(paulisIn)%2 != 0 || len(paulisOut) != len(paulisIn) {
		return nil, fmt.Errorf("%s: %d inputs, %d outputs: %w", opSynthesize, len(paulisIn), len(paulisOut), ErrOddLength)
	}
	n := len(paulisIn) / 2

	g, err := New(paulisOut[:n], paulisOut[n:])
	if err != nil {
		return nil, cliffordErrorf(opSynthesize, err)
	}
	h, err := New(paulisIn[:n], paulisIn[n:])
	if err != nil {
		return nil, cliffordErrorf(opSynthesize, err)
	}
	hm, err := h.AsSymplecticMatrix()
	if err != nil {
		return nil, cliffordErrorf(opSynthesize, err)
	}
	hInvM, err := invertMatrix(hm)
	if err != nil {
		return nil, cliffordErrorf(opSynthesize, err)
	}
	hInv, err := FromSymplecticMatrix(hInvM)
	if err != nil {
		return nil, cliffordErrorf(opSynthesize, err)
	}
	out, err := g.Mul(hInv)
	if err != nil {
		return nil, cliffordErrorf(opSynthesize, err)
	}

	return out, nil
}

// invertMatrix maps bsf.ErrSingular onto ErrSingular while keeping the cause.
func invertMatrix(m *bsf.Matrix) (*bsf.Matrix, error) {
	inv, err := m.Inv()
	if err != nil {
		if errors.Is(err, bsf.ErrSingular) {
			return nil, fmt.Errorf("%w: %w", ErrSingular, err)
		}

		return nil, err
	}

	return inv, nil
}
