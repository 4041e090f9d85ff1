// SPDX-License-Identifier: MIT

// Package clifford - group operations.
//
// Purpose:
//   - Composition (Mul) by conjugating the images of the right operand.
//   - Tensor products with Empty as two-sided neutral element.
//   - Exact inverse and conjugation of one Clifford by another (Apply).
//   - Explicit dispatch over the Empty | *Element variants (Compose, Tensor,
//     ApplyTo), returning ErrNotApplicable for unsupported combinations.
//
// Complexity quicksheet (n qubits):
//   - Mul: O(n³); Tensor: O(n²); Inverse: O(n³); Apply: O(n³).

package clifford

import (
	"fmt"

	"github.com/katalvlaran/qecc/pauli"
)

// Mul returns c·other, the operation "c after other":
// (c·other)(X_i) = c(other(X_i)), likewise for Z_i. Not commutative.
// Errors: ErrEmptyElement, ErrQubitMismatch.
func (c *Element) Mul(other *Element) (*Element, error) {
	n, err := c.QubitCount()
	if err != nil {
		return nil, cliffordErrorf(opMul, err)
	}
	m, err := other.QubitCount()
	if err != nil {
		return nil, cliffordErrorf(opMul, err)
	}
	if n != m {
		return nil, fmt.Errorf("%s: %d vs %d qubits: %w", opMul, n, m, ErrQubitMismatch)
	}

	xs := make([]pauli.Pauli, n)
	zs := make([]pauli.Pauli, n)
	for i := 0; i < n; i++ {
		if xs[i], err = c.conjugate(other.xout[i]); err != nil {
			return nil, cliffordErrorf(opMul, err)
		}
		if zs[i], err = c.conjugate(other.zout[i]); err != nil {
			return nil, cliffordErrorf(opMul, err)
		}
	}

	return &Element{xout: xs, zout: zs}, nil
}

// Compose dispatches a·b over the variants:
//   - *Element · *Element → Mul,
//   - Empty · Empty       → Empty,
//   - anything else       → ErrNotApplicable.
func Compose(a, b Clifford) (Clifford, error) {
	switch x := a.(type) {
	case *Element:
		if y, ok := b.(*Element); ok {
			e, err := x.Mul(y)
			if err != nil {
				return nil, cliffordErrorf(opCompose, err)
			}

			return e, nil
		}
	case Empty:
		if _, ok := b.(Empty); ok {
			return Empty{}, nil
		}
	}

	return nil, fmt.Errorf("%s: %T · %T: %w", opCompose, a, b, ErrNotApplicable)
}

// Tensor returns c ⊗ other on n_c + n_other qubits: images of c are padded on
// the right with the identity on n_other qubits, images of other on the left
// with the identity on n_c qubits.
// Errors: ErrEmptyElement.
func (c *Element) Tensor(other *Element) (*Element, error) {
	n, err := c.QubitCount()
	if err != nil {
		return nil, cliffordErrorf(opTensor, err)
	}
	m, err := other.QubitCount()
	if err != nil {
		return nil, cliffordErrorf(opTensor, err)
	}

	var (
		idSelf  = pauli.Identity(n)
		idOther = pauli.Identity(m)
		xs      = make([]pauli.Pauli, 0, n+m)
		zs      = make([]pauli.Pauli, 0, n+m)
		i       int
	)
	for i = 0; i < n; i++ {
		xs = append(xs, c.xout[i].Tensor(idOther))
		zs = append(zs, c.zout[i].Tensor(idOther))
	}
	for i = 0; i < m; i++ {
		xs = append(xs, idSelf.Tensor(other.xout[i]))
		zs = append(zs, idSelf.Tensor(other.zout[i]))
	}

	return &Element{xout: xs, zout: zs}, nil
}

// Tensor dispatches a ⊗ b over the variants; Empty is neutral on both sides.
// A nil operand is not a Clifford and yields ErrNotApplicable.
func Tensor(a, b Clifford) (Clifford, error) {
	switch x := a.(type) {
	case Empty:
		if b == nil {
			break
		}

		return b, nil
	case *Element:
		switch y := b.(type) {
		case Empty:
			return x, nil
		case *Element:
			e, err := x.Tensor(y)
			if err != nil {
				return nil, err
			}

			return e, nil
		}
	}

	return nil, fmt.Errorf("%s: %T ⊗ %T: %w", opTensor, a, b, ErrNotApplicable)
}

// TensorAll folds Tensor from the left starting at Empty.
// TensorAll() is Empty.
func TensorAll(cs ...Clifford) (Clifford, error) {
	var (
		acc Clifford = Empty{}
		err error
	)
	for i, c := range cs {
		if acc, err = Tensor(acc, c); err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
	}

	return acc, nil
}

// Inverse returns C⁻¹ with exact phases.
// Implementation:
//   - Stage 1: invert the binary symplectic matrix over GF(2) and convert back;
//     this fixes every image up to a phase.
//   - Stage 2: for each generator g with candidate image h, C(h) = i^k·g;
//     replace h by i^{-k}·h so that C(C⁻¹(g)) = g exactly.
//
// Errors: ErrEmptyElement, ErrSingular.
func (c *Element) Inverse() (*Element, error) {
	m, err := c.AsSymplecticMatrix()
	if err != nil {
		return nil, cliffordErrorf(opInverse, err)
	}
	inv, err := invertMatrix(m)
	if err != nil {
		return nil, cliffordErrorf(opInverse, err)
	}
	out, err := FromSymplecticMatrix(inv)
	if err != nil {
		return nil, cliffordErrorf(opInverse, err)
	}

	if err = fixInversePhases(c, out.xout); err != nil {
		return nil, cliffordErrorf(opInverse, err)
	}
	if err = fixInversePhases(c, out.zout); err != nil {
		return nil, cliffordErrorf(opInverse, err)
	}

	return out, nil
}

// fixInversePhases rescales each candidate image h in place so c(h) carries
// phase 0. The owned slice is freshly built by FromSymplecticMatrix.
func fixInversePhases(c *Element, images []pauli.Pauli) error {
	for i, h := range images {
		back, err := c.conjugate(h)
		if err != nil {
			return err
		}
		images[i] = h.MulPhase(-back.Phase())
	}

	return nil
}

// Apply conjugates other by c: it returns c·other·c⁻¹, the operation other
// expressed in the frame transformed by c.
// Errors: ErrEmptyElement, ErrQubitMismatch, ErrSingular.
func (c *Element) Apply(other *Element) (*Element, error) {
	inv, err := c.Inverse()
	if err != nil {
		return nil, cliffordErrorf(opApply, err)
	}
	left, err := c.Mul(other)
	if err != nil {
		return nil, cliffordErrorf(opApply, err)
	}
	out, err := left.Mul(inv)
	if err != nil {
		return nil, cliffordErrorf(opApply, err)
	}

	return out, nil
}

// ApplyTo dispatches a.Apply(b); only *Element operands are supported.
func ApplyTo(a, b Clifford) (*Element, error) {
	x, okA := a.(*Element)
	y, okB := b.(*Element)
	if !okA || !okB {
		return nil, fmt.Errorf("%s: %T on %T: %w", opApply, a, b, ErrNotApplicable)
	}

	return x.Apply(y)
}
