package lia

import (
	"strings"
)

// A Constraint is a boolean-valued condition over integer expressions.
type Constraint interface {
	String() string
	// Satisfied reports whether the constraint holds under the given
	// assignment. It panics if the assignment lacks a binding for a variable.
	Satisfied(model Assignment) bool
	collectVars(set map[Var]struct{})
}

// An Op is a comparison operator between two expressions.
type Op int

const (
	OpEq Op = iota
	OpLt
	OpLeq
	OpGt
	OpGeq
)

func (op Op) String() string {
	switch op {
	case OpEq:
		return "="
	case OpLt:
		return "<"
	case OpLeq:
		return "<="
	case OpGt:
		return ">"
	case OpGeq:
		return ">="
	default:
		panic("invalid comparison operator")
	}
}

// A Comparison relates two expressions with a comparison operator.
type Comparison struct {
	Op  Op
	LHS Expr
	RHS Expr
}

// Eq generates the constraint lhs = rhs.
func Eq(lhs, rhs Expr) Constraint { return Comparison{Op: OpEq, LHS: lhs, RHS: rhs} }

// Lt generates the constraint lhs < rhs.
func Lt(lhs, rhs Expr) Constraint { return Comparison{Op: OpLt, LHS: lhs, RHS: rhs} }

// Leq generates the constraint lhs <= rhs.
func Leq(lhs, rhs Expr) Constraint { return Comparison{Op: OpLeq, LHS: lhs, RHS: rhs} }

// Gt generates the constraint lhs > rhs.
func Gt(lhs, rhs Expr) Constraint { return Comparison{Op: OpGt, LHS: lhs, RHS: rhs} }

// Geq generates the constraint lhs >= rhs.
func Geq(lhs, rhs Expr) Constraint { return Comparison{Op: OpGeq, LHS: lhs, RHS: rhs} }

func (c Comparison) String() string {
	return c.LHS.String() + " " + c.Op.String() + " " + c.RHS.String()
}

func (c Comparison) Satisfied(model Assignment) bool {
	l, r := c.LHS.Eval(model), c.RHS.Eval(model)
	switch c.Op {
	case OpEq:
		return l == r
	case OpLt:
		return l < r
	case OpLeq:
		return l <= r
	case OpGt:
		return l > r
	case OpGeq:
		return l >= r
	default:
		panic("invalid comparison operator")
	}
}

func (c Comparison) collectVars(set map[Var]struct{}) {
	c.LHS.collectVars(set)
	c.RHS.collectVars(set)
}

// A Conjunction holds when all its subconstraints hold.
type Conjunction []Constraint

// And generates a conjunction of subconstraints.
func And(subs ...Constraint) Constraint {
	return Conjunction(subs)
}

func (a Conjunction) String() string {
	strs := make([]string, len(a))
	for i, c := range a {
		strs[i] = c.String()
	}
	return "and(" + strings.Join(strs, ", ") + ")"
}

func (a Conjunction) Satisfied(model Assignment) bool {
	for _, c := range a {
		if !c.Satisfied(model) {
			return false
		}
	}
	return true
}

func (a Conjunction) collectVars(set map[Var]struct{}) {
	for _, c := range a {
		c.collectVars(set)
	}
}

// A Disjunction holds when at least one of its subconstraints holds.
type Disjunction []Constraint

// Or generates a disjunction of subconstraints.
func Or(subs ...Constraint) Constraint {
	return Disjunction(subs)
}

func (o Disjunction) String() string {
	strs := make([]string, len(o))
	for i, c := range o {
		strs[i] = c.String()
	}
	return "or(" + strings.Join(strs, ", ") + ")"
}

func (o Disjunction) Satisfied(model Assignment) bool {
	for _, c := range o {
		if c.Satisfied(model) {
			return true
		}
	}
	return false
}

func (o Disjunction) collectVars(set map[Var]struct{}) {
	for _, c := range o {
		c.collectVars(set)
	}
}

// A Negation holds when its single subconstraint does not.
type Negation [1]Constraint

// Not generates the negation of the given subconstraint.
func Not(c Constraint) Constraint {
	return Negation{c}
}

func (n Negation) String() string { return "not(" + n[0].String() + ")" }

func (n Negation) Satisfied(model Assignment) bool { return !n[0].Satisfied(model) }

func (n Negation) collectVars(set map[Var]struct{}) { n[0].collectVars(set) }

// Vars returns all variables appearing in c, sorted by name.
func Vars(c Constraint) []Var {
	set := make(map[Var]struct{})
	c.collectVars(set)
	return sortedVars(set)
}

// SystemVars returns all variables appearing in the given constraints, sorted
// by name.
func SystemVars(cs []Constraint) []Var {
	set := make(map[Var]struct{})
	for _, c := range cs {
		c.collectVars(set)
	}
	return sortedVars(set)
}
