package truthtable

import (
	"reflect"
	"testing"

	mdwast "github.com/msto63/boolex/foundation/logic/ast"
	mdwparser "github.com/msto63/boolex/foundation/logic/parser"
)

func build(t *testing.T, input string) mdwast.Expression {
	t.Helper()
	file, err := mdwparser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	return mdwast.FromFile(file)[0]
}

func TestFrom_RowOrder(t *testing.T) {
	table := From(build(t, "A OR B"))

	if !reflect.DeepEqual(table.Variables, []rune{'A', 'B'}) {
		t.Fatalf("Variables = %q, want [A B]", table.Variables)
	}

	want := []Row{
		{Values: []bool{false, false}, Result: false},
		{Values: []bool{true, false}, Result: true},
		{Values: []bool{false, true}, Result: true},
		{Values: []bool{true, true}, Result: true},
	}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("Rows = %v, want %v", table.Rows, want)
	}
}

func TestFrom_RowCount(t *testing.T) {
	tests := []struct {
		input string
		vars  int
	}{
		{"A", 1},
		{"A & A & !A", 1},
		{"A ^ B", 2},
		{"(A NOR B) & C", 3},
		{"A | B | C | D | E | F | G | H", 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			table := From(build(t, tt.input))
			if len(table.Variables) != tt.vars {
				t.Errorf("len(Variables) = %d, want %d", len(table.Variables), tt.vars)
			}
			if len(table.Rows) != 1<<tt.vars {
				t.Errorf("len(Rows) = %d, want %d", len(table.Rows), 1<<tt.vars)
			}
			for i, r := range table.Rows {
				if len(r.Values) != tt.vars {
					t.Fatalf("row %d has %d values", i, len(r.Values))
				}
			}
		})
	}
}

func TestFrom_BitPerVariable(t *testing.T) {
	table := From(build(t, "A & B & C & D"))
	for index, r := range table.Rows {
		for i := range table.Variables {
			want := (index>>i)&1 == 1
			if r.Values[i] != want {
				t.Fatalf("row %d variable %d = %v, want %v", index, i, r.Values[i], want)
			}
		}
	}
	if table.TrueRows() != 1 || !table.Rows[15].Result {
		t.Errorf("A & B & C & D should be true only on the last row")
	}
}

func TestFrom_NorAndExample(t *testing.T) {
	table := From(build(t, "(A NOR B) & C"))
	if !reflect.DeepEqual(table.Variables, []rune{'A', 'B', 'C'}) {
		t.Fatalf("Variables = %q", table.Variables)
	}
	// A=0 B=0 C=1 is row 0b100
	if !table.Rows[4].Result {
		t.Error("row A=0 B=0 C=1 should be true")
	}
	if table.TrueRows() != 1 {
		t.Errorf("TrueRows() = %d, want 1", table.TrueRows())
	}
}

func TestFrom_NoVariables(t *testing.T) {
	table := From(nil)
	if len(table.Variables) != 0 || len(table.Rows) != 0 {
		t.Errorf("From(nil) = %+v, want empty table", table)
	}
}

func TestFrom_ResultsMatchEvaluate(t *testing.T) {
	expr := build(t, "!(A XNOR C) nand (B !| D)")
	table := From(expr)
	for i, r := range table.Rows {
		if got := mdwast.Evaluate(expr, table.Assignment(i)); got != r.Result {
			t.Errorf("row %d: Evaluate() = %v, Result = %v", i, got, r.Result)
		}
	}
}

func TestTable_Column(t *testing.T) {
	table := From(build(t, "Q | X"))
	if table.Column('X') != 1 || table.Column('Q') != 0 || table.Column('Z') != -1 {
		t.Errorf("Column() = %d %d %d", table.Column('Q'), table.Column('X'), table.Column('Z'))
	}
}

func TestRowCount(t *testing.T) {
	tests := map[int]int{-1: 0, 0: 0, 1: 2, 3: 8, 26: 1 << 26}
	for n, want := range tests {
		if got := RowCount(n); got != want {
			t.Errorf("RowCount(%d) = %d, want %d", n, got, want)
		}
	}
}
