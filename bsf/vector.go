// SPDX-License-Identifier: MIT

package bsf

import (
	"fmt"

	"github.com/katalvlaran/qecc/pauli"
)

// Vector is the binary symplectic vector (x | z) of an n-qubit Pauli operator.
// X[i] and Z[i] are the x- and z-bits of qubit i.
type Vector struct {
	X []uint8
	Z []uint8
}

// FromPauli returns the symplectic vector of p; the phase is dropped.
// Complexity: O(n).
func FromPauli(p pauli.Pauli) Vector {
	op := p.Op()
	v := Vector{X: make([]uint8, len(op)), Z: make([]uint8, len(op))}
	for i := 0; i < len(op); i++ {
		v.X[i], v.Z[i] = pauli.Bits(op[i])
	}

	return v
}

// Len returns the number of qubits n.
func (v Vector) Len() int { return len(v.X) }

// AsPauli returns the phase-0 Pauli operator with the labels encoded by v.
// Errors: ErrDimensionMismatch (len(X) != len(Z)), ErrInvalidDimensions (empty).
func (v Vector) AsPauli() (pauli.Pauli, error) {
	if len(v.X) != len(v.Z) {
		return pauli.Pauli{}, fmt.Errorf("AsPauli: %w", ErrDimensionMismatch)
	}
	if len(v.X) == 0 {
		return pauli.Pauli{}, fmt.Errorf("AsPauli: %w", ErrInvalidDimensions)
	}
	op := make([]byte, len(v.X))
	for i := range op {
		op[i] = pauli.Label(v.X[i], v.Z[i])
	}

	return pauli.New(string(op), 0)
}

// Inner returns the symplectic inner product x_a·z_b + z_a·x_b over GF(2),
// i.e. the commutation value of the corresponding Pauli operators.
// Errors: ErrDimensionMismatch.
func Inner(a, b Vector) (uint8, error) {
	if a.Len() != b.Len() || len(a.Z) != a.Len() || len(b.Z) != b.Len() {
		return 0, fmt.Errorf("Inner: %w", ErrDimensionMismatch)
	}
	var acc uint8
	for i := range a.X {
		acc ^= (a.X[i] & b.Z[i]) ^ (a.Z[i] & b.X[i])
	}

	return acc, nil
}
