package formula

import "fmt"

// An Ion is an ionic variant of a neutral molecule: the adduct name and the
// mass offset it adds to the neutral monoisotopic mass. Offsets assume a
// single charge, so an observed m/z converts back to the neutral mass by
// subtracting the offset.
type Ion struct {
	Name   string
	Offset float64
}

// Common singly charged adducts in positive and negative ion mode.
var (
	posIons = []Ion{
		{"M+H", 1.007276},
		{"M+Na", 22.989218},
		{"M+K", 38.963158},
		{"M+NH4", 18.033823},
		{"M+H-H2O", -17.003289},
	}
	negIons = []Ion{
		{"M-H", -1.007276},
		{"M+Cl", 34.969402},
		{"M-H2O-H", -19.018390},
	}
)

// IonByName looks up an adduct by its conventional name, such as "M+H" or
// "M-H".
func IonByName(name string) (Ion, error) {
	for _, ion := range posIons {
		if ion.Name == name {
			return ion, nil
		}
	}
	for _, ion := range negIons {
		if ion.Name == name {
			return ion, nil
		}
	}
	return Ion{}, fmt.Errorf("unknown ion %q", name)
}

// PositiveIons returns the known positive-mode adducts.
func PositiveIons() []Ion {
	return append([]Ion(nil), posIons...)
}

// NegativeIons returns the known negative-mode adducts.
func NegativeIons() []Ion {
	return append([]Ion(nil), negIons...)
}

// NeutralMass converts an observed m/z for the given adduct back to the
// neutral monoisotopic mass.
func NeutralMass(mz float64, ion Ion) float64 {
	return mz - ion.Offset
}
