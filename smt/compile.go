package smt

import (
	"github.com/mitchellh/go-z3"

	"github.com/chemkit/formenum/lia"
)

// compiler translates lia values into Z3 ASTs. It keeps one backend constant
// per logical variable and records which symbol name belongs to which
// variable, so that solver models can be decoded back into assignments.
type compiler struct {
	ctx     *z3.Context
	intSort *z3.Sort
	consts  map[lia.Var]*z3.AST
	names   map[string]lia.Var
}

func newCompiler(ctx *z3.Context) *compiler {
	return &compiler{
		ctx:     ctx,
		intSort: ctx.IntSort(),
		consts:  make(map[lia.Var]*z3.AST),
		names:   make(map[string]lia.Var),
	}
}

// varAST returns the backend constant for v, allocating it on first use.
func (cp *compiler) varAST(v lia.Var) *z3.AST {
	if ast, ok := cp.consts[v]; ok {
		return ast
	}
	ast := cp.ctx.Const(cp.ctx.Symbol(string(v)), cp.intSort)
	cp.consts[v] = ast
	cp.names[string(v)] = v
	return ast
}

func (cp *compiler) expr(e lia.Expr) *z3.AST {
	switch e := e.(type) {
	case lia.Const:
		return cp.ctx.Int(int(e), cp.intSort)
	case lia.Var:
		return cp.varAST(e)
	case lia.Term:
		return cp.ctx.Int(e.Coeff, cp.intSort).Mul(cp.varAST(e.Var))
	case lia.Sum:
		if len(e) == 0 {
			return cp.ctx.Int(0, cp.intSort)
		}
		subs := make([]*z3.AST, len(e))
		for i, sub := range e {
			subs[i] = cp.expr(sub)
		}
		return subs[0].Add(subs[1:]...)
	default:
		panic("invalid expression type")
	}
}

func (cp *compiler) constraint(c lia.Constraint) *z3.AST {
	switch c := c.(type) {
	case lia.Comparison:
		lhs, rhs := cp.expr(c.LHS), cp.expr(c.RHS)
		switch c.Op {
		case lia.OpEq:
			return lhs.Eq(rhs)
		case lia.OpLt:
			return lhs.Lt(rhs)
		case lia.OpLeq:
			return lhs.Le(rhs)
		case lia.OpGt:
			return lhs.Gt(rhs)
		case lia.OpGeq:
			return lhs.Ge(rhs)
		default:
			panic("invalid comparison operator")
		}
	case lia.Conjunction:
		if len(c) == 0 {
			return cp.ctx.True()
		}
		subs := make([]*z3.AST, len(c))
		for i, sub := range c {
			subs[i] = cp.constraint(sub)
		}
		if len(subs) == 1 {
			return subs[0]
		}
		return subs[0].And(subs[1:]...)
	case lia.Disjunction:
		if len(c) == 0 {
			return cp.ctx.False()
		}
		subs := make([]*z3.AST, len(c))
		for i, sub := range c {
			subs[i] = cp.constraint(sub)
		}
		if len(subs) == 1 {
			return subs[0]
		}
		return subs[0].Or(subs[1:]...)
	case lia.Negation:
		return cp.constraint(c[0]).Not()
	default:
		panic("invalid constraint type")
	}
}
