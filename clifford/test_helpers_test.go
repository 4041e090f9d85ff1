// SPDX-License-Identifier: MIT
// Package clifford_test contains test helpers
//
// Purpose:
//   • Build Paulis and Elements from literals without error plumbing.
//   • Render image lists as strings so cmp.Diff can compare them.

package clifford_test

import (
	"testing"

	"github.com/katalvlaran/qecc/clifford"
	"github.com/katalvlaran/qecc/pauli"
)

// P parses a Pauli literal such as "-iXZ" or fails the test.
func P(t testing.TB, s string) pauli.Pauli {
	t.Helper()
	p, err := pauli.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}

	return p
}

// Ps parses a list of Pauli literals.
func Ps(t testing.TB, ss ...string) []pauli.Pauli {
	t.Helper()
	out := make([]pauli.Pauli, len(ss))
	for i, s := range ss {
		out[i] = P(t, s)
	}

	return out
}

// MustElem builds an Element from X and Z image literals or fails the test.
func MustElem(t testing.TB, xs, zs []string) *clifford.Element {
	t.Helper()
	e, err := clifford.New(Ps(t, xs...), Ps(t, zs...))
	if err != nil {
		t.Fatalf("New(%v, %v): %v", xs, zs, err)
	}

	return e
}

// Must unwraps a constructor result and panics on error, so gate literals
// read as Must(clifford.CNOT(2, 0, 1)).
func Must(e *clifford.Element, err error) *clifford.Element {
	if err != nil {
		panic(err)
	}

	return e
}

// MustMul returns a·b or fails the test.
func MustMul(t testing.TB, a, b *clifford.Element) *clifford.Element {
	t.Helper()
	out, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}

	return out
}

// Eye returns the n-qubit identity Element or fails the test.
func Eye(t testing.TB, n int) *clifford.Element {
	t.Helper()
	e, err := clifford.Eye(n)
	if err != nil {
		t.Fatalf("Eye(%d): %v", n, err)
	}

	return e
}

// strs renders Paulis in their text form.
func strs(ps []pauli.Pauli) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

// sampleGates is a fixed set of valid Elements on n = 3 qubits.
func sampleGates(t testing.TB) map[string]*clifford.Element {
	t.Helper()
	const n = 3
	hc := MustMul(t, Must(clifford.Hadamard(n, 0)), Must(clifford.CNOT(n, 0, 2)))

	return map[string]*clifford.Element{
		"identity": Eye(t, n),
		"cnot01":   Must(clifford.CNOT(n, 0, 1)),
		"cnot21":   Must(clifford.CNOT(n, 2, 1)),
		"cz02":     Must(clifford.CZ(n, 0, 2)),
		"h1":       Must(clifford.Hadamard(n, 1)),
		"s2":       Must(clifford.Phase(n, 2)),
		"swap02":   Must(clifford.Swap(n, 0, 2)),
		"perm":     Must(clifford.Permutation(n, []int{1, 2, 0})),
		"pauliXYZ": Must(clifford.PauliGate(pauli.MustNew("XYZ", 0))),
		"h0cnot02": hc,
		"s0cz12":   MustMul(t, Must(clifford.Phase(n, 0)), Must(clifford.CZ(n, 1, 2))),
	}
}
