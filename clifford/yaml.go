// SPDX-License-Identifier: MIT

package clifford

import (
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qecc/pauli"
)

// elementYAML is the document form of an Element:
//
//	x: ["+XX", "+IX"]
//	z: ["+ZI", "+ZZ"]
type elementYAML struct {
	X []pauli.Pauli `yaml:"x"`
	Z []pauli.Pauli `yaml:"z"`
}

// MarshalYAML encodes c as its X and Z image lists.
func (c *Element) MarshalYAML() (interface{}, error) {
	if _, err := c.QubitCount(); err != nil {
		return nil, cliffordErrorf(opYAML, err)
	}

	return elementYAML{X: c.XImages(), Z: c.ZImages()}, nil
}

// UnmarshalYAML decodes the form written by MarshalYAML through New, so the
// same structural checks apply. Validity (IsValid) is not checked.
func (c *Element) UnmarshalYAML(value *yaml.Node) error {
	var doc elementYAML
	if err := value.Decode(&doc); err != nil {
		return cliffordErrorf(opYAML, err)
	}
	e, err := New(doc.X, doc.Z)
	if err != nil {
		return cliffordErrorf(opYAML, err)
	}
	*c = *e

	return nil
}
