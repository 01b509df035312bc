package formula

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaString(t *testing.T) {
	tests := []struct {
		f        Formula
		expected string
	}{
		{Formula{"C": 6, "O": 2}, "C6O2"},
		// Hill order: C, then H, then the rest alphabetically.
		{Formula{"O": 6, "H": 12, "C": 6}, "C6H12O6"},
		{Formula{"Cl": 1, "H": 1}, "H1Cl1"},
		{Formula{"N": 4, "O": 3}, "N4O3"},
		{Formula{}, ""},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.f.String())
	}
}

func TestFormulaStringOmitsZeroCounts(t *testing.T) {
	f := Formula{"C": 6, "N": 0, "O": 2}
	s := f.String()
	assert.Contains(t, s, "C6")
	assert.Contains(t, s, "O2")
	assert.False(t, strings.Contains(s, "N"), "zero-count element should not appear, got %q", s)
}

func TestExactMass(t *testing.T) {
	atoms, err := AtomsFor("C", "N", "O")
	require.NoError(t, err)

	mass, err := ExactMass(Formula{"C": 6, "O": 2}, atoms)
	require.NoError(t, err)
	assert.InDelta(t, 103.9898292, mass, 1e-6)

	mass, err = ExactMass(Formula{}, atoms)
	require.NoError(t, err)
	assert.Zero(t, mass)

	_, err = ExactMass(Formula{"Xe": 1}, atoms)
	assert.Error(t, err)
}

func TestAtomsFor(t *testing.T) {
	atoms, err := AtomsFor("C", "H", "Cl")
	require.NoError(t, err)
	require.Len(t, atoms, 3)
	assert.Equal(t, "C", atoms[0].Symbol)
	assert.Equal(t, 12, atoms[0].IntMass())
	assert.Equal(t, 1, atoms[1].IntMass())
	assert.Equal(t, 35, atoms[2].IntMass())

	_, err = AtomsFor("C", "Xx")
	assert.Error(t, err)
}

func TestDefaultAtoms(t *testing.T) {
	atoms := DefaultAtoms()
	syms := make([]string, len(atoms))
	for i, a := range atoms {
		syms[i] = a.Symbol
	}
	assert.Equal(t, []string{"C", "H", "N", "O", "P", "S"}, syms)
}

func ExampleFormula_String() {
	f := Formula{"C": 6, "H": 12, "O": 6}
	fmt.Println(f)
	// Output: C6H12O6
}
