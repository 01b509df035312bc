package formula

import (
	"fmt"

	"github.com/chemkit/formenum/lia"
)

// BoundedSystem builds the constraint system whose solutions are the atom
// count combinations with integer mass exactly target: one linear equality
//
//	sum over atoms of IntMass(atom) * count(atom) = target
//
// plus, per atom, the bounds 0 <= count <= ceil(target / IntMass(atom)).
// The upper bound is the loosest one that keeps enumeration finite; without
// it FindAll could search an unbounded domain.
//
// Count variables are named after their element symbols.
func BoundedSystem(target int, atoms []Atom) ([]lia.Constraint, error) {
	if target < 0 {
		return nil, fmt.Errorf("target mass %d is negative", target)
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("empty element set")
	}
	terms := make([]lia.Expr, len(atoms))
	cs := make([]lia.Constraint, 0, 2*len(atoms)+1)
	for i, a := range atoms {
		m := a.IntMass()
		if m <= 0 {
			return nil, fmt.Errorf("element %q has non-positive integer mass %d", a.Symbol, m)
		}
		v := lia.Var(a.Symbol)
		terms[i] = lia.Mul(m, v)
		upper := (target + m - 1) / m
		cs = append(cs,
			lia.Geq(v, lia.Const(0)),
			lia.Leq(v, lia.Const(upper)),
		)
	}
	cs = append(cs, lia.Eq(lia.Add(terms...), lia.Const(target)))
	return cs, nil
}
