// Package bsf offers the binary symplectic form of Pauli and Clifford data.
//
// The bsf package provides:
//
//   - Dense, a row-major matrix over GF(2) with bounds-checked accessors,
//   - GF(2) kernels Mul, Transpose and Inverse (Gauss–Jordan with row pivoting),
//   - Vector, the (x | z) bit pair of a Pauli operator with its symplectic
//     inner product,
//   - Matrix, a 2n×2n binary symplectic matrix whose j-th column is the
//     vector of the j-th generator image (X images first, then Z images).
//
// Phases are not part of the binary symplectic form: converting a Pauli to a
// Vector and back yields the phase-0 operator with the same labels.
//
// Matrices are small (2n×2n for n qubits); every kernel is O(n³) at most and
// allocates its result, leaving inputs untouched.
package bsf
