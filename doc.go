// Package qecc is a small toolkit for the Clifford group on n qubits, the
// algebra behind stabilizer codes and Clifford-circuit simulation.
//
// 🚀 What is qecc?
//
//	A pure, deterministic library that brings together:
//		• Pauli operators with exact phases i^k (package pauli)
//		• GF(2) matrices and the binary symplectic form (package bsf)
//		• Clifford elements given by generator images, group operations,
//		  named gates, Pauli recognition and canonical synthesis (package clifford)
//
// ✨ Why choose qecc?
//
//   - Exact phases – conjugation tracks the i of Y = iXZ, Inverse is exact
//   - Explicit errors – sentinel errors wrapped with the failing operation
//   - Quiet by default – diagnostics go to a zap.Logger only when supplied
//   - Safe batch work – ValidateAll shards elements over an errgroup
//
// Under the hood, everything is organized under three subpackages:
//
//	pauli/    — Pauli operators: product, commutation, tensor, text & YAML form
//	bsf/      — GF(2) dense matrices, Gauss–Jordan inverse, symplectic matrices
//	clifford/ — Element, Empty, Mul/Tensor/Inverse/Apply, gates, Paulify,
//	            SynthesizeCanonical, IsValid/ValidateAll
//
// Quick example: H on qubit 0 then CNOT 0→1 sends the stabilizers of |00⟩
// to those of a Bell pair.
//
//	+ZI |-> +XX
//	+IZ |-> +ZZ
//
// Runnable scenarios live in examples/:
//
//	go run ./examples
package qecc
