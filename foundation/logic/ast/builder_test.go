package ast

import (
	"testing"

	mdwparser "github.com/msto63/boolex/foundation/logic/parser"
)

func parseOne(t *testing.T, input string) Expression {
	t.Helper()
	file, err := mdwparser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	exprs := FromFile(file)
	if len(exprs) != 1 {
		t.Fatalf("Parse(%q) produced %d expressions, want 1", input, len(exprs))
	}
	return exprs[0]
}

func TestFromParse(t *testing.T) {
	A, B, C, D := Var('A'), Var('B'), Var('C'), Var('D')

	tests := []struct {
		name  string
		input string
		want  Expression
	}{
		{"identifier", "A", A},
		{"double negation collapses", "!!A", A},
		{"triple negation", "!!!A", Negate(A)},
		{"quadruple negation", "NOT not ! NOT A", A},
		{"and is left associative", "A AND B AND C", And(And(A, B), C)},
		{"or is left associative", "A | B !| C", Nor(Or(A, B), C)},
		{"xor is left associative", "A xor B xnor C", Xnor(Xor(A, B), C)},
		{"and binds tighter than xor", "A ^ B & C", Xor(A, And(B, C))},
		{"xor binds tighter than or", "A OR B XOR C", Or(A, Xor(B, C))},
		{"nand chain", "A !& B NAND C", Nand(Nand(A, B), C)},
		{"parentheses", "A AND (B OR C)", And(A, Or(B, C))},
		{"negated group", "!(A OR B)", Negate(Or(A, B))},
		{"even negation of group", "!!(A OR B)", Or(A, B)},
		{"nested negation kept", "!(!A)", Negate(Negate(A))},
		{"redundant parentheses", "((A))", A},
		{"mixed", "(A NOR B) & C", And(Nor(A, B), C)},
		{
			"precedence ladder",
			"A OR B AND C XOR D",
			Or(A, Xor(And(B, C), D)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOne(t, tt.input)
			if !Equal(got, tt.want) {
				t.Errorf("FromParse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromParse_SpellingEquivalence(t *testing.T) {
	groups := [][]string{
		{"A AND B", "A and B", "A & B"},
		{"A NAND B", "A nand B", "A !& B"},
		{"A OR B", "A or B", "A | B"},
		{"A NOR B", "A nor B", "A !| B"},
		{"A XOR B", "A xor B", "A ^ B"},
		{"A XNOR B", "A xnor B", "A !^ B"},
		{"NOT A", "not A", "!A"},
	}

	for _, group := range groups {
		t.Run(group[0], func(t *testing.T) {
			first := parseOne(t, group[0])
			for _, input := range group[1:] {
				if got := parseOne(t, input); !Equal(got, first) {
					t.Errorf("%q = %s, want %s", input, got, first)
				}
			}
		})
	}
}

func TestFromFile(t *testing.T) {
	file, err := mdwparser.Parse("A & B\n\n!C\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	exprs := FromFile(file)
	if len(exprs) != 2 {
		t.Fatalf("FromFile() returned %d expressions, want 2", len(exprs))
	}
	if !Equal(exprs[0], And(Var('A'), Var('B'))) || !Equal(exprs[1], Negate(Var('C'))) {
		t.Errorf("FromFile() = %v", exprs)
	}
}

func TestFromParse_Subrules(t *testing.T) {
	tests := []struct {
		rule  mdwparser.Rule
		input string
		want  Expression
	}{
		{mdwparser.RuleIdentifier, "Q", Var('Q')},
		{mdwparser.RuleTerm, "!Q", Negate(Var('Q'))},
		{mdwparser.RuleAndClause, "P & Q", And(Var('P'), Var('Q'))},
		{mdwparser.RuleXorClause, "P ^ Q", Xor(Var('P'), Var('Q'))},
	}

	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			node, err := mdwparser.ParseRule(tt.rule, tt.input)
			if err != nil {
				t.Fatalf("ParseRule() error = %v", err)
			}
			if got := FromParse(node); !Equal(got, tt.want) {
				t.Errorf("FromParse() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFromParse_PanicsOnFile(t *testing.T) {
	file, err := mdwparser.Parse("A")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("FromParse(file) did not panic")
		}
	}()
	FromParse(file)
}
