// SPDX-License-Identifier: MIT

// Package pauli - textual form & YAML codec.
//
// Text form: a phase prefix followed by the operator string.
//
//	+XZ   (i^0)    +iXZ  (i^1)    -XZ  (i^2)    -iXZ  (i^3)
//
// Parse additionally accepts a bare operator string ("XZ", phase 0) and the
// short prefix "i" for i^1.
package pauli

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// phasePrefix is indexed by the phase exponent.
var phasePrefix = [phaseModulus]string{"+", "+i", "-", "-i"}

// parsePrefixes are tried in order; longer prefixes first.
var parsePrefixes = []struct {
	lit string
	ph  int
}{
	{"+i", 1},
	{"-i", 3},
	{"+", 0},
	{"-", 2},
	{"i", 1},
}

// String renders p as "<prefix><op>", e.g. "-iXZ".
// The zero value renders as "<nil>".
func (p Pauli) String() string {
	if len(p.op) == 0 {
		return "<nil>"
	}

	return phasePrefix[mod4(p.ph)] + p.op
}

// Parse decodes the text form produced by String.
// Errors: ErrParse wrapping the underlying New failure.
func Parse(s string) (Pauli, error) {
	s = strings.TrimSpace(s)
	ph := 0
	for _, pre := range parsePrefixes {
		if strings.HasPrefix(s, pre.lit) {
			s = s[len(pre.lit):]
			ph = pre.ph

			break
		}
	}
	p, err := New(s, ph)
	if err != nil {
		return Pauli{}, fmt.Errorf("%s: %w: %w", opParse, ErrParse, err)
	}

	return p, nil
}

// MarshalYAML encodes p as its String form.
func (p Pauli) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// UnmarshalYAML decodes a scalar produced by MarshalYAML (or a bare
// operator string).
func (p *Pauli) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%s: %w: %w", opParse, ErrParse, err)
	}
	q, err := Parse(s)
	if err != nil {
		return err
	}
	*p = q

	return nil
}
