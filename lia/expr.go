package lia

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// An Assignment binds variables to concrete integer values.
type Assignment map[Var]int

// An Expr is a linear integer arithmetic expression: a constant, a variable,
// a coefficient*variable term, or a sum of subexpressions.
type Expr interface {
	String() string
	// Eval computes the value of the expression under the given assignment.
	// It panics if the assignment lacks a binding for a variable.
	Eval(model Assignment) int
	collectVars(set map[Var]struct{})
}

// A Const is a literal integer value.
type Const int

func (c Const) String() string                   { return strconv.Itoa(int(c)) }
func (c Const) Eval(model Assignment) int        { return int(c) }
func (c Const) collectVars(set map[Var]struct{}) {}

// A Var is a named integer unknown. Two Vars with the same name denote the
// same unknown.
type Var string

func (v Var) String() string { return string(v) }

func (v Var) Eval(model Assignment) int {
	n, ok := model[v]
	if !ok {
		panic(fmt.Errorf("model lacks binding for variable %s", v))
	}
	return n
}

func (v Var) collectVars(set map[Var]struct{}) { set[v] = struct{}{} }

// A Term is a constant coefficient multiplying a variable.
type Term struct {
	Coeff int
	Var   Var
}

// Mul generates the term coeff*v.
func Mul(coeff int, v Var) Term {
	return Term{Coeff: coeff, Var: v}
}

func (t Term) String() string { return fmt.Sprintf("%d*%s", t.Coeff, t.Var) }

func (t Term) Eval(model Assignment) int { return t.Coeff * t.Var.Eval(model) }

func (t Term) collectVars(set map[Var]struct{}) { t.Var.collectVars(set) }

// A Sum is the addition of its subexpressions.
type Sum []Expr

// Add generates the sum of the given subexpressions.
func Add(subs ...Expr) Expr {
	return Sum(subs)
}

func (s Sum) String() string {
	strs := make([]string, len(s))
	for i, e := range s {
		strs[i] = e.String()
	}
	return "(" + strings.Join(strs, " + ") + ")"
}

func (s Sum) Eval(model Assignment) (res int) {
	for _, e := range s {
		res += e.Eval(model)
	}
	return res
}

func (s Sum) collectVars(set map[Var]struct{}) {
	for _, e := range s {
		e.collectVars(set)
	}
}

// ExprVars returns all variables appearing in e, sorted by name.
func ExprVars(e Expr) []Var {
	set := make(map[Var]struct{})
	e.collectVars(set)
	return sortedVars(set)
}

func sortedVars(set map[Var]struct{}) []Var {
	vars := make([]Var, 0, len(set))
	for v := range set {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	return vars
}
