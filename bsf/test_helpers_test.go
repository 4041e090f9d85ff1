// SPDX-License-Identifier: MIT
// Package bsf_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic GF(2) fixtures for kernels and symplectic checks.

package bsf_test

import (
	"testing"

	"github.com/katalvlaran/qecc/bsf"
)

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]uint8) *bsf.Dense {
	t.Helper()
	m, err := bsf.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustIdentity returns the n×n identity or fails the test.
func MustIdentity(t testing.TB, n int) *bsf.Dense {
	t.Helper()
	m, err := bsf.Identity(n)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m *bsf.Dense, i, j int) uint8 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts that m equals the literal rows bit for bit.
func CompareExact(t *testing.T, want [][]uint8, m *bsf.Dense) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape = %dx%d; want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	for i := range want {
		for j := range want[i] {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("m[%d,%d] = %d; want %d", i, j, got, want[i][j])
			}
		}
	}
}

// vec builds a Vector from two bit strings such as "10" and "01".
func vec(x, z string) bsf.Vector {
	v := bsf.Vector{X: make([]uint8, len(x)), Z: make([]uint8, len(z))}
	for i := range x {
		v.X[i] = x[i] - '0'
	}
	for i := range z {
		v.Z[i] = z[i] - '0'
	}

	return v
}
