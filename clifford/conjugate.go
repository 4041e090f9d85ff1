// SPDX-License-Identifier: MIT

package clifford

import (
	"fmt"

	"github.com/katalvlaran/qecc/pauli"
)

// ConjugatePauli returns C P C† for an n-qubit Pauli operator P.
// Implementation:
//   - Stage 1: validate the element, P (ErrNotPauli) and its length (ErrQubitMismatch).
//   - Stage 2: starting from the identity, multiply in xout[i] for each X at
//     qubit i, zout[i] for each Z, and xout[i]·zout[i] followed by a factor i
//     for each Y (Y = iXZ).
//   - Stage 3: carry P's own phase onto the result.
//
// Complexity: O(n²) (n products of n-qubit operators).
func (c *Element) ConjugatePauli(p pauli.Pauli) (pauli.Pauli, error) {
	n, err := c.QubitCount()
	if err != nil {
		return pauli.Pauli{}, cliffordErrorf(opConjugate, err)
	}
	if !p.Valid() {
		return pauli.Pauli{}, cliffordErrorf(opConjugate, ErrNotPauli)
	}
	if p.Len() != n {
		return pauli.Pauli{}, fmt.Errorf("%s: operator on %d qubits, element on %d: %w", opConjugate, p.Len(), n, ErrQubitMismatch)
	}

	out, err := c.conjugate(p)
	if err != nil {
		return pauli.Pauli{}, cliffordErrorf(opConjugate, err)
	}

	return out, nil
}

// ConjugatePaulis applies ConjugatePauli to every operator of ps, in order.
// The first failure aborts the whole call.
func (c *Element) ConjugatePaulis(ps []pauli.Pauli) ([]pauli.Pauli, error) {
	out := make([]pauli.Pauli, len(ps))
	var err error
	for i, p := range ps {
		if out[i], err = c.ConjugatePauli(p); err != nil {
			return nil, fmt.Errorf("operator %d: %w", i, err)
		}
	}

	return out, nil
}

// conjugate assumes p and c are valid and of equal qubit count.
func (c *Element) conjugate(p pauli.Pauli) (pauli.Pauli, error) {
	var (
		acc = pauli.Identity(len(c.xout))
		op  = p.Op()
		err error
	)
	for i := 0; i < len(op); i++ {
		switch op[i] {
		case pauli.LabelX:
			acc, err = acc.Mul(c.xout[i])
		case pauli.LabelZ:
			acc, err = acc.Mul(c.zout[i])
		case pauli.LabelY:
			if acc, err = acc.Mul(c.xout[i]); err == nil {
				acc, err = acc.Mul(c.zout[i])
			}
			acc = acc.MulPhase(1) // Y = iXZ
		}
		if err != nil {
			return pauli.Pauli{}, err
		}
	}

	return acc.MulPhase(p.Phase()), nil
}
