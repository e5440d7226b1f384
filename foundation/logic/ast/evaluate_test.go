package ast

import (
	"testing"
)

func TestEvaluate_Identifier(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		id := Var(r)
		if !id.Evaluate(Assignment{r: true}) {
			t.Errorf("%c with %c=true evaluated false", r, r)
		}
		if id.Evaluate(Assignment{r: false}) {
			t.Errorf("%c with %c=false evaluated true", r, r)
		}
		if id.Evaluate(Assignment{}) || id.Evaluate(nil) {
			t.Errorf("%c unassigned evaluated true", r)
		}
	}
}

func TestEvaluate_Operators(t *testing.T) {
	tests := []struct {
		op   Kind
		want [4]bool // (F,F) (F,T) (T,F) (T,T)
	}{
		{KindAnd, [4]bool{false, false, false, true}},
		{KindNand, [4]bool{true, true, true, false}},
		{KindOr, [4]bool{false, true, true, true}},
		{KindNor, [4]bool{true, false, false, false}},
		{KindXor, [4]bool{false, true, true, false}},
		{KindXnor, [4]bool{true, false, false, true}},
	}

	pairs := [4][2]bool{{false, false}, {false, true}, {true, false}, {true, true}}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			expr := NewBinary(tt.op, Var('A'), Var('B'))
			for i, p := range pairs {
				got := expr.Evaluate(Assignment{'A': p[0], 'B': p[1]})
				if got != tt.want[i] {
					t.Errorf("%s(%v, %v) = %v, want %v", tt.op, p[0], p[1], got, tt.want[i])
				}
			}
		})
	}
}

func TestEvaluate_NegatedPairs(t *testing.T) {
	negations := map[Kind]Kind{KindNand: KindAnd, KindNor: KindOr, KindXnor: KindXor}

	for neg, pos := range negations {
		for _, a := range []bool{false, true} {
			for _, b := range []bool{false, true} {
				if Apply(neg, a, b) != !Apply(pos, a, b) {
					t.Errorf("%s(%v, %v) != !%s(%v, %v)", neg, a, b, pos, a, b)
				}
			}
		}
	}
}

func TestEvaluate_Compound(t *testing.T) {
	// (A NOR B) & C
	expr := And(Nor(Var('A'), Var('B')), Var('C'))

	if !Evaluate(expr, Assignment{'C': true}) {
		t.Error("(A NOR B) & C with A=0 B=0 C=1 should be true")
	}
	if Evaluate(expr, Assignment{'A': true, 'C': true}) {
		t.Error("(A NOR B) & C with A=1 B=0 C=1 should be false")
	}
	if !Evaluate(Negate(expr), Assignment{}) {
		t.Error("NOT ((A NOR B) & C) with everything false should be true")
	}
}

func TestApply_NonBinary(t *testing.T) {
	if Apply(KindNot, true, true) || Apply(KindIdentifier, true, true) {
		t.Error("Apply() on non-binary kinds should be false")
	}
}
