// SPDX-License-Identifier: MIT
// Package clifford: sentinel error set.
// This file defines ONLY package-level sentinels. Functions return them
// wrapped with an operation tag via cliffordErrorf; callers match with
// errors.Is. Diagnostic checks (IsValid, Paulify) report through their
// boolean results instead of errors.

package clifford

import (
	"errors"
	"fmt"
)

// ERROR KINDS:
// type mismatch (ErrNotPauli, ErrNotApplicable) -> structural mismatch
// (ErrQubitMismatch, ErrEmptyElement) -> argument range (ErrInvalidQubitCount,
// ErrQubitIndex, ErrSameQubit, ErrPermutation, ErrOddLength) -> algebra
// (ErrSingular).

var (
	// ErrNotPauli is returned when a value that must be a Pauli operator is not
	// a well-formed one (e.g. the zero pauli.Pauli).
	ErrNotPauli = errors.New("clifford: operand is not a valid Pauli operator")

	// ErrNotApplicable signals that a group operation does not apply to the
	// given variants (e.g. composing Empty with an Element).
	ErrNotApplicable = errors.New("clifford: operation not applicable to operands")

	// ErrQubitMismatch indicates operands acting on different qubit counts, or
	// image sequences of unequal length.
	ErrQubitMismatch = errors.New("clifford: qubit count mismatch")

	// ErrEmptyElement indicates an Element with no images; use Empty instead.
	ErrEmptyElement = errors.New("clifford: element has no images")

	// ErrNilElement indicates a nil *Element where one was required.
	ErrNilElement = errors.New("clifford: nil element")

	// ErrInvalidQubitCount indicates a negative (or, where an Element is
	// required, zero) qubit count.
	ErrInvalidQubitCount = errors.New("clifford: invalid qubit count")

	// ErrQubitIndex indicates a qubit index outside [0, n).
	ErrQubitIndex = errors.New("clifford: qubit index out of range")

	// ErrSameQubit indicates a two-qubit gate addressed to a single qubit.
	ErrSameQubit = errors.New("clifford: two-qubit gate needs distinct qubits")

	// ErrPermutation indicates an index list that is not a valid permutation.
	ErrPermutation = errors.New("clifford: invalid permutation")

	// ErrOddLength indicates a generator list whose length is not 2n, n ≥ 1.
	ErrOddLength = errors.New("clifford: generator list length must be 2n")

	// ErrSingular indicates a symplectic matrix with no GF(2) inverse.
	ErrSingular = errors.New("clifford: symplectic matrix is singular")
)

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opQubits     = "QubitCount"
	opConjugate  = "ConjugatePauli"
	opMul        = "Mul"
	opCompose    = "Compose"
	opTensor     = "Tensor"
	opApply      = "Apply"
	opInverse    = "Inverse"
	opIdentity   = "Identity"
	opCNOT       = "CNOT"
	opCZ         = "CZ"
	opHadamard   = "Hadamard"
	opPhase      = "Phase"
	opSwap       = "Swap"
	opPermute    = "Permute"
	opPauliGate  = "PauliGate"
	opAsBSM      = "AsSymplecticMatrix"
	opFromBSM    = "FromSymplecticMatrix"
	opSynthesize = "SynthesizeCanonical"
	opValidate   = "ValidateAll"
	opYAML       = "UnmarshalYAML"
)

// cliffordErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func cliffordErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
