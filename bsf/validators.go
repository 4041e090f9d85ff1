// SPDX-License-Identifier: MIT
// Package: bsf
//
// Purpose:
//  - Provide a single source of truth for nil/shape guards used by kernels.
//  - Return sentinel errors tagged with the validator name; kernels add their
//    own operation tag on top.

package bsf

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and Rows == Cols.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for a·b.
// Assumes both are non-nil.
func ValidateMulCompatible(a, b *Dense) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymplecticShape ensures m is square with an even, positive side.
func ValidateSymplecticShape(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.r%2 != 0 {
		return validatorErrorf("ValidateSymplecticShape", ErrOddDimension)
	}

	return nil
}
