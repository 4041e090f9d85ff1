// SPDX-License-Identifier: MIT

// Package clifford - named gate constructors.
//
// Every constructor starts from a freshly built identity whose image slices
// are owned by the constructor alone; they are edited in place and handed to
// the returned Element, never shared while being mutated.
//
// Argument checks (no panics):
//   - n must be ≥ 1 (ErrInvalidQubitCount) and qubit indices in [0, n) (ErrQubitIndex);
//   - two-qubit gates need distinct qubits (ErrSameQubit).

package clifford

import (
	"fmt"

	"github.com/katalvlaran/qecc/pauli"
)

// Identity returns the identity Clifford on n qubits: Empty for n = 0,
// otherwise the Element mapping every generator to itself.
// Errors: ErrInvalidQubitCount for n < 0.
func Identity(n int) (Clifford, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%s(%d): %w", opIdentity, n, ErrInvalidQubitCount)
	case n == 0:
		return Empty{}, nil
	default:
		return eye(n), nil
	}
}

// Eye is Identity for n ≥ 1, returned as an *Element.
// Errors: ErrInvalidQubitCount for n < 1.
func Eye(n int) (*Element, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(%d): %w", opIdentity, n, ErrInvalidQubitCount)
	}

	return eye(n), nil
}

// eye assumes n ≥ 1.
func eye(n int) *Element {
	xs, zs := pauli.ElemGens(n)

	return &Element{xout: xs, zout: zs}
}

// CNOT returns the controlled-X gate on n qubits: X_ctrl ↦ X_ctrl X_targ and
// Z_targ ↦ Z_ctrl Z_targ, all other generators fixed.
func CNOT(n, ctrl, targ int) (*Element, error) {
	if err := validatePair(opCNOT, n, ctrl, targ); err != nil {
		return nil, err
	}
	g := eye(n)
	var err error
	// Wherever ctrl has an X, put an X on targ.
	if g.xout[ctrl], err = g.xout[ctrl].Replace(targ, pauli.LabelX); err != nil {
		return nil, cliffordErrorf(opCNOT, err)
	}
	// Wherever targ has a Z, put a Z on ctrl.
	if g.zout[targ], err = g.zout[targ].Replace(ctrl, pauli.LabelZ); err != nil {
		return nil, cliffordErrorf(opCNOT, err)
	}

	return g, nil
}

// CZ returns the controlled-Z gate on qubits q1 and q2: X_q1 ↦ X_q1 Z_q2 and
// X_q2 ↦ Z_q1 X_q2, Z generators fixed.
func CZ(n, q1, q2 int) (*Element, error) {
	if err := validatePair(opCZ, n, q1, q2); err != nil {
		return nil, err
	}
	g := eye(n)
	var err error
	if g.xout[q1], err = g.xout[q1].Replace(q2, pauli.LabelZ); err != nil {
		return nil, cliffordErrorf(opCZ, err)
	}
	if g.xout[q2], err = g.xout[q2].Replace(q1, pauli.LabelZ); err != nil {
		return nil, cliffordErrorf(opCZ, err)
	}

	return g, nil
}

// Hadamard swaps X and Z on qubit q: Identity(q) ⊗ H ⊗ Identity(n-q-1).
func Hadamard(n, q int) (*Element, error) {
	h := &Element{
		xout: []pauli.Pauli{pauli.MustNew("Z", 0)},
		zout: []pauli.Pauli{pauli.MustNew("X", 0)},
	}

	return embedSingle(opHadamard, n, q, h)
}

// Phase is the π/4 phase gate on qubit q: X ↦ Y, Z ↦ Z.
func Phase(n, q int) (*Element, error) {
	s := &Element{
		xout: []pauli.Pauli{pauli.MustNew("Y", 0)},
		zout: []pauli.Pauli{pauli.MustNew("Z", 0)},
	}

	return embedSingle(opPhase, n, q, s)
}

// embedSingle places the one-qubit gate g on qubit q of n.
func embedSingle(tag string, n, q int, g *Element) (*Element, error) {
	if err := validateQubit(tag, n, q); err != nil {
		return nil, err
	}
	left, err := Identity(q)
	if err != nil {
		return nil, cliffordErrorf(tag, err)
	}
	right, err := Identity(n - q - 1)
	if err != nil {
		return nil, cliffordErrorf(tag, err)
	}
	out, err := TensorAll(left, g, right)
	if err != nil {
		return nil, cliffordErrorf(tag, err)
	}
	el, ok := out.(*Element)
	if !ok {
		return nil, fmt.Errorf("%s: %w", tag, ErrEmptyElement)
	}

	return el, nil
}

// Swap exchanges qubits q1 and q2: X_q1 ↦ X_q2, Z_q1 ↦ Z_q2 and back.
// Swap(n, q, q) is the identity.
func Swap(n, q1, q2 int) (*Element, error) {
	if err := validateQubit(opSwap, n, q1); err != nil {
		return nil, err
	}
	if err := validateQubit(opSwap, n, q2); err != nil {
		return nil, err
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	p[q1], p[q2] = p[q2], p[q1]

	return Permutation(n, p)
}

// Permutation relabels qubits by p: X_k ↦ X_{p[k]} and Z_k ↦ Z_{p[k]}.
// Errors: ErrInvalidQubitCount, ErrPermutation (len(p) != n, out-of-range or
// repeated index).
func Permutation(n int, p []int) (*Element, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(%d): %w", opPermute, n, ErrInvalidQubitCount)
	}
	if len(p) != n {
		return nil, fmt.Errorf("%s: %d indices for %d qubits: %w", opPermute, len(p), n, ErrPermutation)
	}
	seen := make([]bool, n)
	for _, k := range p {
		if k < 0 || k >= n || seen[k] {
			return nil, fmt.Errorf("%s: index %d: %w", opPermute, k, ErrPermutation)
		}
		seen[k] = true
	}

	g := eye(n)
	xs, err := Permute(g.xout, p)
	if err != nil {
		return nil, err
	}
	zs, err := Permute(g.zout, p)
	if err != nil {
		return nil, err
	}

	return &Element{xout: xs, zout: zs}, nil
}

// Permute reindexes list: result[k] = list[p[k]]. p need not be a bijection.
// Errors: ErrPermutation for an index outside [0, len(list)).
func Permute[T any](list []T, p []int) ([]T, error) {
	out := make([]T, len(p))
	for k, idx := range p {
		if idx < 0 || idx >= len(list) {
			return nil, fmt.Errorf("%s: index %d of %d: %w", opPermute, idx, len(list), ErrPermutation)
		}
		out[k] = list[idx]
	}

	return out, nil
}

// PauliGate imports a Pauli operator P as the Clifford "conjugate by P":
// each generator g maps to (-1)^{com(P,g)} g.
// Errors: ErrNotPauli.
func PauliGate(p pauli.Pauli) (*Element, error) {
	if !p.Valid() {
		return nil, cliffordErrorf(opPauliGate, ErrNotPauli)
	}
	xs, zs := pauli.ElemGens(p.Len())
	for _, set := range [][]pauli.Pauli{xs, zs} {
		for i, g := range set {
			c, err := pauli.Com(p, g)
			if err != nil {
				return nil, cliffordErrorf(opPauliGate, err)
			}
			set[i] = g.MulPhase(2 * c)
		}
	}

	return &Element{xout: xs, zout: zs}, nil
}

// validateQubit checks n ≥ 1 and 0 ≤ q < n.
func validateQubit(tag string, n, q int) error {
	if n < 1 {
		return fmt.Errorf("%s(%d): %w", tag, n, ErrInvalidQubitCount)
	}
	if q < 0 || q >= n {
		return fmt.Errorf("%s: qubit %d of %d: %w", tag, q, n, ErrQubitIndex)
	}

	return nil
}

// validatePair checks both qubits and that they differ.
func validatePair(tag string, n, a, b int) error {
	if err := validateQubit(tag, n, a); err != nil {
		return err
	}
	if err := validateQubit(tag, n, b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%s: qubit %d: %w", tag, a, ErrSameQubit)
	}

	return nil
}
