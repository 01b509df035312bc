// Package lia defines linear integer arithmetic expressions and the boolean
// constraints built from them.
//
// An Expr is either an integer constant, a named variable, a term (a constant
// coefficient multiplying a variable) or a sum of expressions. A Constraint is
// either a comparison between two expressions or a combination of constraints
// under conjunction, disjunction or negation.
//
// For example, the constraint
//
// 12*c + 14*n + 16*o = 104 & c >= 0
//
// is defined with the following code:
//
// And(Eq(Add(Mul(12, "c"), Mul(14, "n"), Mul(16, "o")), Const(104)), Geq(Var("c"), Const(0)))
//
// Values are immutable once built and carry no behavior beyond construction,
// evaluation against an Assignment and variable collection. Translating them
// to a solver's native representation is the job of package smt.
//
// Note that duplicate variables inside a sum are not merged: Add(Mul(2, "x"),
// Mul(3, "x")) evaluates correctly but keeps both terms as written.
package lia
