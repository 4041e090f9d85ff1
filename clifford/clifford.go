// SPDX-License-Identifier: MIT

// Package clifford - Element type, construction & equality.
//
// A Clifford operation C on n qubits is stored by its action on the
// elementary generators: xout[i] = C X_i C†, zout[i] = C Z_i C†.
// The zero-qubit identity is the distinct variant Empty, so that folds over
// tensor products dispatch on the variant instead of comparing sentinels.

package clifford

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qecc/pauli"
)

// Clifford is the sum type Empty | *Element.
// The unexported marker keeps the variant set closed.
type Clifford interface {
	// NumQubits returns the qubit count (0 for Empty).
	NumQubits() int

	isClifford()
}

// Empty is the zero-qubit identity, the neutral element of Tensor.
type Empty struct{}

// NumQubits returns 0.
func (Empty) NumQubits() int { return 0 }

func (Empty) isClifford() {}

// String implements fmt.Stringer.
func (Empty) String() string { return "<empty clifford>" }

// Element is an n-qubit Clifford operation, n ≥ 1, given by the images of the
// X and Z generators. It owns both slices exclusively; accessors return copies.
// Elements are immutable once returned by a constructor.
type Element struct {
	xout []pauli.Pauli // xout[i] = C X_i C†
	zout []pauli.Pauli // zout[i] = C Z_i C†
}

var (
	_ Clifford     = Empty{}
	_ Clifford     = (*Element)(nil)
	_ fmt.Stringer = (*Element)(nil)
)

// New builds an Element from the images of the X and Z generators.
// Implementation:
//   - Stage 1: reject empty input (ErrEmptyElement) and unequal lengths (ErrQubitMismatch).
//   - Stage 2: every entry must be a valid Pauli (ErrNotPauli) on exactly
//     len(xImages) qubits (ErrQubitMismatch).
//   - Stage 3: copy both slices so the Element owns them.
//
// New does not check commutation relations; use IsValid for that.
// Complexity: O(n²).
func New(xImages, zImages []pauli.Pauli) (*Element, error) {
	if len(xImages) == 0 && len(zImages) == 0 {
		return nil, cliffordErrorf(opNew, ErrEmptyElement)
	}
	if len(xImages) != len(zImages) {
		return nil, fmt.Errorf("%s: %d X images vs %d Z images: %w", opNew, len(xImages), len(zImages), ErrQubitMismatch)
	}

	n := len(xImages)
	if err := checkImages(n, xImages); err != nil {
		return nil, cliffordErrorf(opNew, err)
	}
	if err := checkImages(n, zImages); err != nil {
		return nil, cliffordErrorf(opNew, err)
	}

	return &Element{xout: clonePaulis(xImages), zout: clonePaulis(zImages)}, nil
}

// checkImages validates every image against the qubit count n.
func checkImages(n int, images []pauli.Pauli) error {
	for i, p := range images {
		if !p.Valid() {
			return fmt.Errorf("image %d: %w", i, ErrNotPauli)
		}
		if p.Len() != n {
			return fmt.Errorf("image %d acts on %d qubits, want %d: %w", i, p.Len(), n, ErrQubitMismatch)
		}
	}

	return nil
}

// QubitCount returns n, read from the first X image.
// Errors: ErrEmptyElement for a nil or zero-value Element.
func (c *Element) QubitCount() (int, error) {
	if c == nil || len(c.xout) == 0 {
		return 0, cliffordErrorf(opQubits, ErrEmptyElement)
	}

	return c.xout[0].Len(), nil
}

// NumQubits is the Clifford interface form of QubitCount (0 when empty).
func (c *Element) NumQubits() int {
	n, _ := c.QubitCount()

	return n
}

func (*Element) isClifford() {}

// XImages returns a copy of the X-generator images.
func (c *Element) XImages() []pauli.Pauli { return clonePaulis(c.xout) }

// ZImages returns a copy of the Z-generator images.
func (c *Element) ZImages() []pauli.Pauli { return clonePaulis(c.zout) }

// XImage returns C X_i C†; ok is false when i is out of range.
func (c *Element) XImage(i int) (p pauli.Pauli, ok bool) {
	if i < 0 || i >= len(c.xout) {
		return pauli.Pauli{}, false
	}

	return c.xout[i], true
}

// ZImage returns C Z_i C†; ok is false when i is out of range.
func (c *Element) ZImage(i int) (p pauli.Pauli, ok bool) {
	if i < 0 || i >= len(c.zout) {
		return pauli.Pauli{}, false
	}

	return c.zout[i], true
}

// Equal reports element-wise equality of the X images and of the Z images,
// phases included. It is a representation test, not a canonical one.
func (c *Element) Equal(other *Element) bool {
	if c == nil || other == nil {
		return c == other
	}

	return equalPaulis(c.xout, other.xout) && equalPaulis(c.zout, other.zout)
}

// String lists one mapping per line, X generators first:
//
//	+XI |-> +XX
//	+IX |-> +IX
//	+ZI |-> +ZI
//	+IZ |-> +ZZ
func (c *Element) String() string {
	n, err := c.QubitCount()
	if err != nil {
		return Empty{}.String()
	}
	xs, zs := pauli.ElemGens(n)
	lines := make([]string, 0, 2*n)
	for i := range xs {
		lines = append(lines, xs[i].String()+" |-> "+c.xout[i].String())
	}
	for i := range zs {
		lines = append(lines, zs[i].String()+" |-> "+c.zout[i].String())
	}

	return strings.Join(lines, "\n")
}

// images returns X images followed by Z images in a fresh slice.
func (c *Element) images() []pauli.Pauli {
	out := make([]pauli.Pauli, 0, len(c.xout)+len(c.zout))
	out = append(out, c.xout...)

	return append(out, c.zout...)
}

func clonePaulis(ps []pauli.Pauli) []pauli.Pauli {
	out := make([]pauli.Pauli, len(ps))
	copy(out, ps)

	return out
}

func equalPaulis(a, b []pauli.Pauli) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
