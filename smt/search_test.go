package smt

import (
	"fmt"
	"sort"
	"testing"

	"github.com/chemkit/formenum/lia"
)

// carbonOxygen104 has exactly two solutions: c=2,o=5 and c=6,o=2.
func carbonOxygen104() []lia.Constraint {
	c, o := lia.Var("c"), lia.Var("o")
	return []lia.Constraint{
		lia.Eq(lia.Add(lia.Mul(12, c), lia.Mul(16, o)), lia.Const(104)),
		lia.Geq(c, lia.Const(0)), lia.Leq(c, lia.Const(9)),
		lia.Geq(o, lia.Const(0)), lia.Leq(o, lia.Const(7)),
	}
}

func unsatSystem() []lia.Constraint {
	c, o := lia.Var("c"), lia.Var("o")
	return []lia.Constraint{
		lia.Eq(lia.Add(lia.Mul(12, c), lia.Mul(16, o)), lia.Const(2)),
		lia.Geq(c, lia.Const(0)), lia.Leq(c, lia.Const(1)),
		lia.Geq(o, lia.Const(0)), lia.Leq(o, lia.Const(1)),
	}
}

// keys renders assignments canonically so result sets can be compared
// without depending on discovery order.
func keys(models []lia.Assignment) []string {
	res := make([]string, len(models))
	for i, m := range models {
		vars := make([]lia.Var, 0, len(m))
		for v := range m {
			vars = append(vars, v)
		}
		sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
		s := ""
		for _, v := range vars {
			s += fmt.Sprintf("%s=%d;", v, m[v])
		}
		res[i] = s
	}
	sort.Strings(res)
	return res
}

func TestFindOne(t *testing.T) {
	cs := carbonOxygen104()
	model, err := Solve(cs)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if model == nil {
		t.Fatalf("problem was declared UNSAT")
	}
	for _, c := range cs {
		if !c.Satisfied(model) {
			t.Errorf("model %v violates constraint %s", model, c)
		}
	}
}

func TestFindOneUnsat(t *testing.T) {
	model, err := Solve(unsatSystem())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if model != nil {
		t.Errorf("problem is declared sat, model: %v", model)
	}
}

func TestFindAll(t *testing.T) {
	cs := carbonOxygen104()
	models, err := SolveAll(cs)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("wanted 2 models, got %d: %v", len(models), models)
	}
	for _, m := range models {
		for _, c := range cs {
			if !c.Satisfied(m) {
				t.Errorf("model %v violates constraint %s", m, c)
			}
		}
	}
	got := keys(models)
	expected := []string{"c=2;o=5;", "c=6;o=2;"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("wanted models %v, got %v", expected, got)
			break
		}
	}
}

func TestFindAllUnsat(t *testing.T) {
	models, err := SolveAll(unsatSystem())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if len(models) != 0 {
		t.Errorf("wanted no models, got %v", models)
	}
}

// After FindAll exhausts a session, its blocking clauses stay asserted, so a
// further FindOne on the same session must report UNSAT.
func TestSessionStateAccumulates(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()
	s := NewSession(ctx, carbonOxygen104())
	defer s.Close()
	models, err := s.FindAll()
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("wanted 2 models, got %d", len(models))
	}
	model, err := s.FindOne()
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if model != nil {
		t.Errorf("exhausted session still produced model %v", model)
	}
}

// Two runs on fresh sessions must produce the same result set, whatever the
// discovery order.
func TestFindAllDeterministicSet(t *testing.T) {
	first, err := SolveAll(carbonOxygen104())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	second, err := SolveAll(carbonOxygen104())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	k1, k2 := keys(first), keys(second)
	if len(k1) != len(k2) {
		t.Fatalf("runs disagree: %v vs %v", k1, k2)
	}
	for i := range k1 {
		if k1[i] != k2[i] {
			t.Errorf("runs disagree: %v vs %v", k1, k2)
			break
		}
	}
}

func TestFindAllNoDuplicates(t *testing.T) {
	models, err := SolveAll(carbonOxygen104())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	seen := make(map[string]struct{})
	for _, k := range keys(models) {
		if _, ok := seen[k]; ok {
			t.Errorf("assignment %s reported twice", k)
		}
		seen[k] = struct{}{}
	}
}
