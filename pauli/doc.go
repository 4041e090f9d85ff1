// Package pauli implements n-qubit Pauli operators with phase tracking.
//
// A Pauli operator is a tensor product of single-qubit labels drawn from
// {I, X, Y, Z} together with an overall phase i^k, k ∈ {0,1,2,3}.
//
// The package provides:
//
//   - construction and parsing (New, MustNew, Parse, Identity),
//   - the group product with exact phase arithmetic (Mul, MulPhase),
//   - the commutation value Com(P, Q) ∈ {0, 1},
//   - tensor combination (Tensor) and single-label edits (Replace),
//   - the elementary generator set ElemGens(n) (n X-type, n Z-type),
//   - a YAML codec (operators marshal as their String form, e.g. "-iXZ").
//
// Pauli is a small value type; every operation returns a new value and never
// mutates its receiver, so values may be shared freely across goroutines.
//
//	p := pauli.MustNew("XY", 0)
//	q := pauli.MustNew("ZZ", 0)
//	r, _ := p.Mul(q)        // +YX
//	c, _ := pauli.Com(p, q) // 0: XY and ZZ commute
package pauli
