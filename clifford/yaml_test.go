// SPDX-License-Identifier: MIT

package clifford_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qecc/clifford"
	"github.com/katalvlaran/qecc/pauli"
)

type gateCase struct {
	Name string           `yaml:"name"`
	Gate string           `yaml:"gate"`
	Args []int            `yaml:"args"`
	Want clifford.Element `yaml:"want"`
}

// build calls the constructor named by the fixture.
func (gc gateCase) build() (*clifford.Element, error) {
	a := gc.Args
	switch {
	case gc.Gate == "cnot" && len(a) == 3:
		return clifford.CNOT(a[0], a[1], a[2])
	case gc.Gate == "cz" && len(a) == 3:
		return clifford.CZ(a[0], a[1], a[2])
	case gc.Gate == "hadamard" && len(a) == 2:
		return clifford.Hadamard(a[0], a[1])
	case gc.Gate == "phase" && len(a) == 2:
		return clifford.Phase(a[0], a[1])
	case gc.Gate == "swap" && len(a) == 3:
		return clifford.Swap(a[0], a[1], a[2])
	case gc.Gate == "identity" && len(a) == 1:
		return clifford.Eye(a[0])
	}

	return nil, fmt.Errorf("unknown fixture gate %q with %d args", gc.Gate, len(a))
}

func TestGateFixtures(t *testing.T) {
	data, err := os.ReadFile("testdata/gates.yaml")
	require.NoError(t, err)

	var cases []gateCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, gc := range cases {
		t.Run(gc.Name, func(t *testing.T) {
			got, err := gc.build()
			require.NoError(t, err)
			assert.True(t, got.Equal(&gc.Want), "got:\n%s\nwant:\n%s", got, &gc.Want)
		})
	}
}

func TestElementYAML_RoundTrip(t *testing.T) {
	for name, c := range sampleGates(t) {
		data, err := yaml.Marshal(c)
		require.NoErrorf(t, err, "%s", name)

		var back clifford.Element
		require.NoErrorf(t, yaml.Unmarshal(data, &back), "%s:\n%s", name, data)
		assert.Truef(t, back.Equal(c), "%s:\n%s", name, data)
	}
}

func TestElementYAML_Errors(t *testing.T) {
	var e clifford.Element

	err := yaml.Unmarshal([]byte("x: [\"+X\"]\nz: []\n"), &e)
	assert.ErrorIs(t, err, clifford.ErrQubitMismatch)

	err = yaml.Unmarshal([]byte("x: [Q]\nz: [Z]\n"), &e)
	assert.ErrorIs(t, err, pauli.ErrParse)

	err = yaml.Unmarshal([]byte("x: {}\n"), &e)
	assert.Error(t, err)

	_, err = yaml.Marshal(&clifford.Element{})
	assert.ErrorIs(t, err, clifford.ErrEmptyElement)
}
