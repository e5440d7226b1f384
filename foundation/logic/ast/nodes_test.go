package ast

import (
	"reflect"
	"testing"
)

func TestVariables(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want []rune
	}{
		{"single", Var('X'), []rune{'X'}},
		{"sorted", Or(Var('C'), And(Var('A'), Var('B'))), []rune{'A', 'B', 'C'}},
		{"deduplicated", Xor(Var('B'), Negate(Or(Var('B'), Var('A')))), []rune{'A', 'B'}},
		{"nil", nil, []rune{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Variables(tt.expr); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Variables() = %q, want %q", got, tt.want)
			}
		})
	}

	for r := 'A'; r <= 'Z'; r++ {
		if got := Variables(Var(r)); len(got) != 1 || got[0] != r {
			t.Errorf("Variables(%c) = %q", r, got)
		}
	}
}

func TestDebugString(t *testing.T) {
	expr := Or(Negate(Var('A')), Nand(Var('B'), Var('C')))
	want := "Or(Not(Identifier('A')), Nand(Identifier('B'), Identifier('C')))"
	if got := expr.String(); got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}

func TestInfix(t *testing.T) {
	A, B, C := Var('A'), Var('B'), Var('C')

	tests := []struct {
		expr Expression
		want string
	}{
		{A, "A"},
		{Negate(A), "NOT A"},
		{Negate(Negate(A)), "NOT (NOT A)"},
		{Negate(And(A, B)), "NOT (A AND B)"},
		{And(And(A, B), C), "A AND B AND C"},
		{And(A, And(B, C)), "A AND (B AND C)"},
		{Or(A, And(B, C)), "A OR B AND C"},
		{And(Or(A, B), C), "(A OR B) AND C"},
		{Xnor(Nor(A, B), Nand(B, C)), "(A NOR B) XNOR B NAND C"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := Infix(tt.expr)
			if got != tt.want {
				t.Errorf("Infix() = %v, want %v", got, tt.want)
			}
			if back := parseOne(t, got); !Equal(back, tt.expr) {
				t.Errorf("reparsed %q = %s, want %s", got, back, tt.expr)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Expression
		want bool
	}{
		{"same identifier", Var('A'), Var('A'), true},
		{"different identifier", Var('A'), Var('B'), false},
		{"different operator", And(Var('A'), Var('B')), Or(Var('A'), Var('B')), false},
		{"swapped operands", And(Var('A'), Var('B')), And(Var('B'), Var('A')), false},
		{"not vs identifier", Negate(Var('A')), Var('A'), false},
		{"both nil", nil, nil, true},
		{"one nil", Var('A'), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind    Kind
		name    string
		keyword string
		binary  bool
	}{
		{KindIdentifier, "Identifier", "", false},
		{KindNot, "Not", "NOT", false},
		{KindAnd, "And", "AND", true},
		{KindXnor, "Xnor", "XNOR", true},
		{Kind(42), "Kind(42)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind.String() != tt.name || tt.kind.Keyword() != tt.keyword || tt.kind.IsBinary() != tt.binary {
				t.Errorf("Kind %d = (%s, %q, %v)", int(tt.kind), tt.kind, tt.kind.Keyword(), tt.kind.IsBinary())
			}
		})
	}

	defer func() {
		if recover() == nil {
			t.Error("NewBinary(KindNot) did not panic")
		}
	}()
	NewBinary(KindNot, Var('A'), Var('B'))
}

func TestWalkAndSize(t *testing.T) {
	expr := Or(Negate(Var('A')), And(Var('B'), Var('C')))
	if got := Size(expr); got != 6 {
		t.Errorf("Size() = %d, want 6", got)
	}

	var kinds []Kind
	Walk(expr, func(e Expression) bool {
		kinds = append(kinds, e.Kind())
		return e.Kind() != KindNot
	})
	want := []Kind{KindOr, KindNot, KindAnd, KindIdentifier, KindIdentifier}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Walk() order = %v, want %v", kinds, want)
	}
}
