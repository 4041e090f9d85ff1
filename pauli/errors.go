// SPDX-License-Identifier: MIT

// Package pauli: sentinel error set.
// All functions return these sentinels (optionally wrapped with an operation
// tag via pauliErrorf); callers match with errors.Is.
package pauli

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOperator is returned when an operator string has no qubits.
	ErrEmptyOperator = errors.New("pauli: empty operator string")

	// ErrInvalidOperator indicates a label outside {I, X, Y, Z}.
	ErrInvalidOperator = errors.New("pauli: invalid operator label")

	// ErrInvalidPhase indicates a phase exponent outside [0, 4).
	ErrInvalidPhase = errors.New("pauli: phase must be in [0, 4)")

	// ErrLengthMismatch indicates two operators act on different qubit counts.
	ErrLengthMismatch = errors.New("pauli: qubit count mismatch")

	// ErrIndexOutOfRange indicates a qubit index outside [0, n).
	ErrIndexOutOfRange = errors.New("pauli: qubit index out of range")

	// ErrParse indicates a textual operator that could not be decoded.
	ErrParse = errors.New("pauli: cannot parse operator")
)

// Operation tags used in error wrappers.
const (
	opNew     = "New"
	opMul     = "Mul"
	opCom     = "Com"
	opReplace = "Replace"
	opParse   = "Parse"
)

// pauliErrorf wraps err with an operation tag, preserving it for errors.Is.
func pauliErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
