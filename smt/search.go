package smt

import (
	"fmt"

	"github.com/mitchellh/go-z3"

	"github.com/chemkit/formenum/lia"
)

// A Session holds one solver loaded with a constraint system. Constraints
// accumulate for the lifetime of the session; in particular, blocking clauses
// asserted by FindAll stay in force for later queries on the same session.
type Session struct {
	solver *z3.Solver
	comp   *compiler
	vars   []lia.Var
}

// NewSession compiles the given constraint system against ctx and loads it
// into a fresh solver. The system is conjoined: every constraint must hold.
func NewSession(ctx *Context, cs []lia.Constraint) *Session {
	s := &Session{
		solver: ctx.ctx.NewSolver(),
		comp:   newCompiler(ctx.ctx),
		vars:   lia.SystemVars(cs),
	}
	for _, c := range cs {
		s.solver.Assert(s.comp.constraint(c))
	}
	return s
}

// Close frees the underlying solver.
func (s *Session) Close() error {
	return s.solver.Close()
}

// FindOne asks the solver for a single satisfying assignment. It returns a
// nil assignment when the system is unsatisfiable; a non-nil error indicates
// a backend fault, never mere unsatisfiability.
func (s *Session) FindOne() (lia.Assignment, error) {
	switch res := s.solver.Check(); res {
	case z3.True:
	case z3.False:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: check returned unknown", ErrBackend)
	}
	m := s.solver.Model()
	defer m.Close()
	assignments := m.Assignments()
	model := make(lia.Assignment, len(s.vars))
	for _, v := range s.vars {
		if ast, ok := assignments[string(v)]; ok {
			model[v] = ast.Int()
		} else {
			// The model need not mention a variable whose value is
			// irrelevant; any value satisfies, so pick zero.
			model[v] = 0
		}
	}
	return model, nil
}

// FindAll enumerates every satisfying assignment of the session's constraint
// system. After each solution it asserts a blocking clause that excludes
// exactly that assignment, then asks the solver again, until the system
// becomes unsatisfiable. An unsatisfiable system yields an empty, nil-error
// result.
//
// Every variable must be bounded below and above by the constraint system;
// enumeration over an unbounded variable does not terminate.
func (s *Session) FindAll() ([]lia.Assignment, error) {
	var models []lia.Assignment
	for {
		model, err := s.FindOne()
		if err != nil {
			return nil, err
		}
		if model == nil {
			return models, nil
		}
		models = append(models, model)
		s.block(model)
	}
}

// block excludes the given assignment, and only it, from future models.
func (s *Session) block(model lia.Assignment) {
	eqs := make([]lia.Constraint, 0, len(s.vars))
	for _, v := range s.vars {
		eqs = append(eqs, lia.Eq(v, lia.Const(model[v])))
	}
	s.solver.Assert(s.comp.constraint(lia.Not(lia.And(eqs...))))
}

// Solve checks the given constraint system in a dedicated context and returns
// one satisfying assignment, or nil if there is none.
func Solve(cs []lia.Constraint) (lia.Assignment, error) {
	ctx := NewContext()
	defer ctx.Close()
	s := NewSession(ctx, cs)
	defer s.Close()
	return s.FindOne()
}

// SolveAll enumerates every satisfying assignment of the given constraint
// system in a dedicated context.
func SolveAll(cs []lia.Constraint) ([]lia.Assignment, error) {
	ctx := NewContext()
	defer ctx.Close()
	s := NewSession(ctx, cs)
	defer s.Close()
	return s.FindAll()
}
