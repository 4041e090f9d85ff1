// SPDX-License-Identifier: MIT
// Package bsf: sentinel error set.
// All kernels return these sentinels wrapped with an operation tag; tests and
// callers match them via errors.Is. No kernel panics on user input.

package bsf

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("bsf: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("bsf: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("bsf: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("bsf: matrix is not square")

	// ErrNonBinary signals an entry outside {0, 1}.
	ErrNonBinary = errors.New("bsf: entry is not binary")

	// ErrSingular is returned when Gauss–Jordan elimination finds no pivot.
	ErrSingular = errors.New("bsf: singular matrix")

	// ErrOddDimension signals a symplectic shape that is not 2n×2n.
	ErrOddDimension = errors.New("bsf: symplectic dimension must be even")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("bsf: nil matrix")
)
