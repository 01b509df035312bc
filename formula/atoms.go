package formula

import (
	"fmt"
	"math"
)

// An Atom is a chemical element considered during enumeration, with the mass
// of its most abundant isotope.
type Atom struct {
	Symbol           string
	MonoisotopicMass float64
}

// IntMass returns the atom's monoisotopic mass rounded to the nearest
// integer, the coefficient used in the integer constraint system.
func (a Atom) IntMass() int {
	return int(math.Round(a.MonoisotopicMass))
}

// periodicTable holds the monoisotopic masses of the elements the enumerator
// knows about. Values are in Daltons.
var periodicTable = map[string]float64{
	"H":  1.00782503207,
	"C":  12.0,
	"N":  14.0030740048,
	"O":  15.9949146196,
	"P":  30.97376163,
	"S":  31.97207100,
	"F":  18.99840322,
	"Cl": 34.96885268,
	"Br": 78.9183371,
	"I":  126.904473,
	"Na": 22.9897692809,
	"K":  38.96370668,
	"Si": 27.9769265325,
	"Se": 73.9224764,
}

// AtomsFor returns the atoms for the given element symbols, in the given
// order. It fails on symbols absent from the built-in table.
func AtomsFor(symbols ...string) ([]Atom, error) {
	atoms := make([]Atom, len(symbols))
	for i, sym := range symbols {
		mass, ok := periodicTable[sym]
		if !ok {
			return nil, fmt.Errorf("unknown element %q", sym)
		}
		atoms[i] = Atom{Symbol: sym, MonoisotopicMass: mass}
	}
	return atoms, nil
}

// DefaultAtoms returns the default element set for enumeration: the six
// elements that make up the bulk of biological molecules.
func DefaultAtoms() []Atom {
	atoms, err := AtomsFor("C", "H", "N", "O", "P", "S")
	if err != nil {
		panic(err) // all six are in the table
	}
	return atoms
}
