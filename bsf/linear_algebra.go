// SPDX-License-Identifier: MIT
// Package bsf provides GF(2) kernels on Dense: multiplication, transpose and
// inversion. All functions validate their inputs first and return sentinels
// wrapped with an operation tag.
//
// Notes:
//   - Addition over GF(2) is XOR and multiplication is AND; there is no
//     rounding, so results are exact and deterministic.

package bsf

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
)

// bsfErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func bsfErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the GF(2) product a·b.
// Implementation:
//   - Stage 1: ValidateNotNil on both, ValidateMulCompatible.
//   - Stage 2: i-k-j loop; skip zero a[i,k] (row XOR accumulate).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·k·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, bsfErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, bsfErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, bsfErrorf(opMul, err)
	}

	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, bsfErrorf(opMul, err)
	}
	var i, k, j int
	for i = 0; i < a.r; i++ {
		dst := out.data[i*out.c : (i+1)*out.c]
		for k = 0; k < a.c; k++ {
			if a.data[i*a.c+k] == 0 {
				continue
			}
			src := b.data[k*b.c : (k+1)*b.c]
			for j = range dst {
				dst[j] ^= src[j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Errors: ErrNilMatrix.
// Complexity: O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, bsfErrorf(opTranspose, err)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, bsfErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Inverse returns m⁻¹ over GF(2).
// Implementation:
//   - Stage 1: ValidateSquare(m). Work on a clone of m and an identity of the same size.
//   - Stage 2: for each column, find the first row at or below the diagonal with a 1
//     (ErrSingular if none), swap it up, then XOR it into every other row holding
//     a 1 in that column, mirroring each row operation on the identity.
//   - Stage 3: the transformed identity is the inverse.
//
// Behavior highlights:
//   - Deterministic pivot choice (lowest row index) → identical results for identical inputs.
//   - Input m is read-only.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, bsfErrorf(opInverse, err)
	}

	n := m.r
	work := m.Clone()
	inv, err := Identity(n)
	if err != nil {
		return nil, bsfErrorf(opInverse, err)
	}

	var col, row, pivot int
	for col = 0; col < n; col++ {
		// Pivot search.
		pivot = -1
		for row = col; row < n; row++ {
			if work.data[row*n+col] == 1 {
				pivot = row

				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("%s: no pivot in column %d: %w", opInverse, col, ErrSingular)
		}
		work.swapRows(col, pivot)
		inv.swapRows(col, pivot)

		// Eliminate column col from every other row.
		for row = 0; row < n; row++ {
			if row != col && work.data[row*n+col] == 1 {
				work.xorRow(row, col)
				inv.xorRow(row, col)
			}
		}
	}

	return inv, nil
}
