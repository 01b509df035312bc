/*
Package smt translates lia constraints into the Z3 decision procedure and
drives satisfiability searches over them.

A Context owns a Z3 context; every expression compiled during a session is
allocated against it. A Session compiles a constraint system once, then
answers one-shot queries (FindOne) or enumerates every satisfying assignment
(FindAll).

FindAll works by iterative refinement: each time the solver produces a model,
the session asserts a blocking clause excluding exactly that assignment and
asks again, until the solver reports unsatisfiable. "Unsatisfiable" is the
normal termination signal, not an error; a genuine backend fault surfaces as
an error wrapping ErrBackend.

The constraint system must bound every variable from below and above,
otherwise FindAll may never terminate. For instance:

	cs := []lia.Constraint{
		lia.Eq(lia.Add(lia.Mul(12, "c"), lia.Mul(16, "o")), lia.Const(104)),
		lia.Geq(lia.Var("c"), lia.Const(0)), lia.Leq(lia.Var("c"), lia.Const(9)),
		lia.Geq(lia.Var("o"), lia.Const(0)), lia.Leq(lia.Var("o"), lia.Const(7)),
	}
	models, err := smt.SolveAll(cs)

A Context is not safe for concurrent use; run at most one active session per
Context at a time.
*/
package smt
