package pauli_test

import (
	"fmt"

	"github.com/katalvlaran/qecc/pauli"
)

// ExamplePauli_Mul multiplies two-qubit operators and reports commutation.
func ExamplePauli_Mul() {
	p := pauli.MustNew("XY", 0)
	q := pauli.MustNew("ZZ", 0)

	r, err := p.Mul(q)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	c, _ := pauli.Com(p, q)
	fmt.Println(r, c)
	// Output:
	// +YX 0
}

// ExampleElemGens lists the symplectic basis on two qubits.
func ExampleElemGens() {
	xs, zs := pauli.ElemGens(2)
	fmt.Println(xs, zs)
	// Output:
	// [+XI +IX] [+ZI +IZ]
}
