// SPDX-License-Identifier: MIT

package clifford_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qecc/clifford"
	"github.com/katalvlaran/qecc/pauli"
)

// ExampleCNOT shows how a CNOT spreads X forward and Z backward.
func ExampleCNOT() {
	c, err := clifford.CNOT(2, 0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c)
	// Output:
	// +XI |-> +XX
	// +IX |-> +IX
	// +ZI |-> +ZI
	// +IZ |-> +ZZ
}

// ExampleElement_ConjugatePauli applies H on qubit 0 after a CNOT.
func ExampleElement_ConjugatePauli() {
	c, _ := clifford.CNOT(2, 0, 1)
	h, _ := clifford.Hadamard(2, 0)
	hc, _ := h.Mul(c)

	for _, s := range []string{"XI", "YI", "-IZ"} {
		p, _ := pauli.Parse(s)
		img, _ := hc.ConjugatePauli(p)
		fmt.Println(p, "->", img)
	}
	// Output:
	// +XI -> +ZX
	// +YI -> -YX
	// -IZ -> -XZ
}

// ExamplePaulify recovers the operator behind a Pauli gate.
func ExamplePaulify() {
	g, _ := clifford.PauliGate(pauli.MustNew("XZY", 0))
	p, ok := clifford.Paulify(g)
	fmt.Println(p, ok)

	h, _ := clifford.Hadamard(1, 0)
	_, ok = clifford.Paulify(h)
	fmt.Println(ok)
	// Output:
	// +XZY true
	// false
}

// ExampleSynthesizeCanonical builds the Clifford exchanging X and Z.
func ExampleSynthesizeCanonical() {
	in := []pauli.Pauli{pauli.MustNew("X", 0), pauli.MustNew("Z", 0)}
	out := []pauli.Pauli{pauli.MustNew("Z", 0), pauli.MustNew("X", 0)}
	c, err := clifford.SynthesizeCanonical(in, out)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	h, _ := clifford.Hadamard(1, 0)
	fmt.Println(c.Equal(h))
	// Output:
	// true
}

// ExampleValidateAll checks a batch of elements concurrently.
func ExampleValidateAll() {
	good, _ := clifford.CZ(2, 0, 1)
	bad, _ := clifford.New(
		[]pauli.Pauli{pauli.MustNew("XI", 0), pauli.MustNew("XI", 0)},
		[]pauli.Pauli{pauli.MustNew("ZI", 0), pauli.MustNew("IZ", 0)},
	)
	res, err := clifford.ValidateAll(context.Background(), []*clifford.Element{good, bad}, clifford.WithWorkers(2))
	fmt.Println(res, err)
	// Output:
	// [true false] <nil>
}
