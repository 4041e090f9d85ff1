// SPDX-License-Identifier: MIT

// Package bsf - binary symplectic matrices.
//
// Layout (n qubits, 2n×2n):
//   - column j < n is the vector of the image of X_j, column n+j that of Z_j;
//   - rows 0..n-1 hold x-bits, rows n..2n-1 hold z-bits.
//
// Under this layout composition of Clifford maps is the GF(2) product of
// their matrices, and validity (phase ignored) is Mᵀ Λ M = Λ with
// Λ = [[0, I], [I, 0]].

package bsf

import (
	"fmt"
)

const (
	opFromColumns = "FromColumns"
	opFromDense   = "FromDense"
	opColumn      = "Column"
	opInv         = "Inv"
	opMatrixMul   = "Matrix.Mul"
)

// Matrix is a 2n×2n binary symplectic matrix.
type Matrix struct {
	n int    // qubit count
	d *Dense // backing 2n×2n storage
}

// FromColumns stacks 2n vectors of n qubits each as matrix columns.
// Errors: ErrInvalidDimensions (no columns), ErrOddDimension (odd count),
// ErrDimensionMismatch (a column not of n qubits).
// Complexity: O(n²).
func FromColumns(cols []Vector) (*Matrix, error) {
	if len(cols) == 0 {
		return nil, bsfErrorf(opFromColumns, ErrInvalidDimensions)
	}
	if len(cols)%2 != 0 {
		return nil, bsfErrorf(opFromColumns, ErrOddDimension)
	}
	n := len(cols) / 2
	d, err := NewDense(2*n, 2*n)
	if err != nil {
		return nil, bsfErrorf(opFromColumns, err)
	}
	var i, j int
	for j = 0; j < 2*n; j++ {
		if cols[j].Len() != n || len(cols[j].Z) != n {
			return nil, fmt.Errorf("%s: column %d: %w", opFromColumns, j, ErrDimensionMismatch)
		}
		for i = 0; i < n; i++ {
			d.data[i*d.c+j] = cols[j].X[i] & 1
			d.data[(n+i)*d.c+j] = cols[j].Z[i] & 1
		}
	}

	return &Matrix{n: n, d: d}, nil
}

// FromDense wraps a copy of d as a symplectic matrix.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOddDimension.
func FromDense(d *Dense) (*Matrix, error) {
	if err := ValidateSymplecticShape(d); err != nil {
		return nil, bsfErrorf(opFromDense, err)
	}

	return &Matrix{n: d.r / 2, d: d.Clone()}, nil
}

// NumQubits returns n for a 2n×2n matrix.
func (m *Matrix) NumQubits() int { return m.n }

// Dense returns a copy of the backing GF(2) matrix.
func (m *Matrix) Dense() *Dense { return m.d.Clone() }

// Column extracts column j as a Vector.
// Errors: ErrOutOfRange.
func (m *Matrix) Column(j int) (Vector, error) {
	if j < 0 || j >= 2*m.n {
		return Vector{}, fmt.Errorf("%s(%d): %w", opColumn, j, ErrOutOfRange)
	}
	v := Vector{X: make([]uint8, m.n), Z: make([]uint8, m.n)}
	for i := 0; i < m.n; i++ {
		v.X[i] = m.d.data[i*m.d.c+j]
		v.Z[i] = m.d.data[(m.n+i)*m.d.c+j]
	}

	return v, nil
}

// Inv returns the GF(2) inverse.
// Errors: ErrSingular.
// Complexity: O(n³).
func (m *Matrix) Inv() (*Matrix, error) {
	d, err := Inverse(m.d)
	if err != nil {
		return nil, bsfErrorf(opInv, err)
	}

	return &Matrix{n: m.n, d: d}, nil
}

// Mul returns the product m·o, the matrix of the composed map.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if o == nil {
		return nil, bsfErrorf(opMatrixMul, ErrNilMatrix)
	}
	d, err := Mul(m.d, o.d)
	if err != nil {
		return nil, bsfErrorf(opMatrixMul, err)
	}

	return &Matrix{n: m.n, d: d}, nil
}

// Equal reports entry-wise equality.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.n == o.n && m.d.Equal(o.d)
}

// IsSymplectic reports whether Mᵀ Λ M = Λ, i.e. whether the columns satisfy
// the commutation relations of the elementary generators: columns i and j
// anticommute exactly when |i−j| = n.
// Complexity: O(n³).
func (m *Matrix) IsSymplectic() bool {
	cols := make([]Vector, 2*m.n)
	var (
		i, j int
		err  error
		ip   uint8
		want uint8
	)
	for j = range cols {
		if cols[j], err = m.Column(j); err != nil {
			return false
		}
	}
	for i = range cols {
		for j = range cols {
			if ip, err = Inner(cols[i], cols[j]); err != nil {
				return false
			}
			want = 0
			if i-j == m.n || j-i == m.n {
				want = 1
			}
			if ip != want {
				return false
			}
		}
	}

	return true
}

// String renders the backing Dense matrix.
func (m *Matrix) String() string { return m.d.String() }
