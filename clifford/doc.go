// SPDX-License-Identifier: MIT

// Package clifford implements the Clifford group on n qubits.
//
// 🚀 What is it?
//
//	A Clifford operation C maps Pauli operators to Pauli operators under
//	conjugation. Because conjugation is a group automorphism, C is fully
//	described by the images of the 2n elementary generators X_i and Z_i.
//	An *Element stores exactly those images; Empty is the zero-qubit identity.
//
// ✨ Key features
//
//   - Conjugation of Pauli operators, with the i factor of Y = iXZ.
//   - Composition (Mul / Compose), tensor products (Tensor / TensorAll),
//     exact Inverse and conjugation of one Clifford by another (Apply).
//   - Named gates: Identity, CNOT, CZ, Hadamard, Phase, Swap, Permutation,
//     PauliGate.
//   - Paulify: recover P from the Clifford "conjugate by P".
//   - Binary symplectic bridge (package bsf) and SynthesizeCanonical, the
//     Clifford taking one generator list to another.
//   - IsValid / FindViolation and a concurrent ValidateAll.
//   - YAML encoding of Elements.
//
// ⚙️ Usage
//
//	c, _ := clifford.CNOT(2, 0, 1)
//	h, _ := clifford.Hadamard(2, 0)
//	hc, _ := h.Mul(c)
//	img, _ := hc.ConjugatePauli(pauli.MustNew("XI", 0)) // +ZX
//
// ⚡ Performance
//
//   - Mul, Inverse, IsValid: O(n³); Tensor, ConjugatePauli: O(n²).
//
// Diagnostics go to the *zap.Logger given by WithLogger; without it the
// package is silent.
package clifford
