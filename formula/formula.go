package formula

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/chemkit/formenum/lia"
)

// A Formula maps element symbols to non-negative atom counts. Elements absent
// from the map have count zero.
type Formula map[string]int

// String renders the formula in Hill order: carbon first, then hydrogen, then
// the remaining elements alphabetically. Zero counts are omitted and a count
// of one is still printed with its digit, so {C:6, O:2} renders as "C6O2".
func (f Formula) String() string {
	symbols := make([]string, 0, len(f))
	for sym, count := range f {
		if count != 0 {
			symbols = append(symbols, sym)
		}
	}
	sort.Slice(symbols, func(i, j int) bool { return hillLess(symbols[i], symbols[j]) })
	var sb strings.Builder
	for _, sym := range symbols {
		sb.WriteString(sym)
		sb.WriteString(strconv.Itoa(f[sym]))
	}
	return sb.String()
}

func hillLess(a, b string) bool {
	rank := func(sym string) int {
		switch sym {
		case "C":
			return 0
		case "H":
			return 1
		default:
			return 2
		}
	}
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	return a < b
}

// ExactMass computes the precise monoisotopic mass of f from the unrounded
// atomic masses of the given atoms. It fails if f mentions an element not in
// atoms.
func ExactMass(f Formula, atoms []Atom) (float64, error) {
	masses := make(map[string]float64, len(atoms))
	for _, a := range atoms {
		masses[a.Symbol] = a.MonoisotopicMass
	}
	var mass float64
	for sym, count := range f {
		m, ok := masses[sym]
		if !ok {
			return 0, fmt.Errorf("formula %s mentions element %q outside the element set", f, sym)
		}
		mass += m * float64(count)
	}
	return mass, nil
}

// fromAssignment converts a solver assignment over per-element count
// variables into a Formula, dropping zero counts.
func fromAssignment(model lia.Assignment) Formula {
	f := make(Formula, len(model))
	for v, count := range model {
		if count != 0 {
			f[string(v)] = count
		}
	}
	return f
}
