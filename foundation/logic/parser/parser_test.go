// File: parser_test.go
// Title: Logic Parser Unit Tests
// Description: Grammar acceptance and rejection per rule, parse tree shape,
//              spans, positions and error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test suite

package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseRule_OperatorForms(t *testing.T) {
	tests := []struct {
		rule    Rule
		valid   []string
		invalid []string
	}{
		{RuleNotOperator, []string{"NOT", "not", "!"}, []string{"Not", "nOt"}},
		{RuleAndOperator, []string{"AND", "and", "&"}, []string{"And", "aNd", "||"}},
		{RuleNandOperator, []string{"NAND", "nand", "!&"}, []string{"Nand", "nAnd", "!|"}},
		{RuleOrOperator, []string{"OR", "or", "|"}, []string{"Or", "o r", "&&"}},
		{RuleNorOperator, []string{"NOR", "nor", "!|"}, []string{"Nor", "n O r", "!&"}},
		{RuleXorOperator, []string{"XOR", "xor", "^"}, []string{"Xor", "xOr", "!"}},
		{RuleXnorOperator, []string{"XNOR", "xnor", "!^"}, []string{"Xnor", "xNoR", "%"}},
	}

	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			for _, input := range tt.valid {
				node, err := ParseRule(tt.rule, input)
				if err != nil {
					t.Errorf("ParseRule(%s, %q) error = %v", tt.rule, input, err)
					continue
				}
				if node.Rule != tt.rule || node.Text != input {
					t.Errorf("ParseRule(%s, %q) = %s %q", tt.rule, input, node.Rule, node.Text)
				}
			}
			for _, input := range tt.invalid {
				if _, err := ParseRule(tt.rule, input); err == nil {
					t.Errorf("ParseRule(%s, %q) succeeded, want error", tt.rule, input)
				}
			}
		})
	}
}

func TestParseRule_Identifier(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"A", false},
		{"Z", false},
		{"a", true},
		{"VAR", true},
		{"1", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := ParseRule(RuleIdentifier, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRule(identifier, %q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && node.Text != tt.input {
				t.Errorf("Text = %q, want %q", node.Text, tt.input)
			}
		})
	}
}

func TestParseRule_Clauses(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		input   string
		wantErr bool
	}{
		{"term identifier", RuleTerm, "A", false},
		{"term negations", RuleTerm, "!!NOT not A", false},
		{"term parenthesized", RuleTerm, "!(A OR B)", false},
		{"term rejects binary", RuleTerm, "A AND B", true},
		{"and clause", RuleAndClause, "A AND B nand C & D", false},
		{"and clause rejects or", RuleAndClause, "A AND B OR C", true},
		{"xor clause", RuleXorClause, "A XOR B AND C xnor D", false},
		{"xor clause rejects nor", RuleXorClause, "A ^ B !| C", true},
		{"expression", RuleExpression, "(X NOR U) OR !(A AND B)", false},
		{"expression missing operator", RuleExpression, "(X NOR U) OR !(A B)", true},
		{"expression rejects newline", RuleExpression, "A\n", true},
		{"surrounding whitespace", RuleExpression, "  A | B \t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseRule(tt.rule, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRule(%s, %q) error = %v, wantErr %v", tt.rule, tt.input, err, tt.wantErr)
			}
			if err == nil && node.Rule != tt.rule {
				t.Errorf("Rule = %s, want %s", node.Rule, tt.rule)
			}
		})
	}
}

func TestParseRule_UnparsableRules(t *testing.T) {
	for _, rule := range []Rule{RuleNewline, RuleEOI, Rule(-1), Rule(100)} {
		if _, err := ParseRule(rule, "A"); err == nil {
			t.Errorf("ParseRule(%s) succeeded, want error", rule)
		}
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantExprs []string
	}{
		{"single with newline", "(X NOR U) OR !(A AND B)\n", []string{"(X NOR U) OR !(A AND B)"}},
		{"single without newline", "A", []string{"A"}},
		{"nested parentheses", "A OR (C XNOR (!X OR B) OR C)\n", []string{"A OR (C XNOR (!X OR B) OR C)"}},
		{"several lines", "A & B\nA | B\r\n!A\n", []string{"A & B", "A | B", "!A"}},
		{"blank lines", "\n\nA\n\n  \nB\n\n", []string{"A", "B"}},
		{"mixed spellings", "A and B AND C & D", []string{"A and B AND C & D"}},
		{"no spaces", "!(A&B)|C", []string{"!(A&B)|C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if file.Rule != RuleFile || file.Text != tt.input {
				t.Errorf("file = %s %q, want file %q", file.Rule, file.Text, tt.input)
			}

			var got []string
			for _, c := range file.Children {
				if c.Rule != RuleExpression {
					t.Errorf("file child rule = %s, want expression", c.Rule)
				}
				got = append(got, c.Text)
			}
			if !reflect.DeepEqual(got, tt.wantExprs) {
				t.Errorf("expressions = %q, want %q", got, tt.wantExprs)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing operator", "(X NOR U) OR !(A B)"},
		{"unclosed parenthesis", "A OR (C XNOR B"},
		{"unclosed with negations", "!A OR (B OR !C"},
		{"unopened parenthesis", "A OR B)"},
		{"multi character identifier", "A OR B1"},
		{"long identifier", "VAR"},
		{"doubled operator", "A || B"},
		{"mixed case operator", "A And B"},
		{"trailing operator", "A AND"},
		{"leading operator", "AND A"},
		{"dangling not", "A OR !"},
		{"empty parentheses", "()"},
		{"newline inside parentheses", "(A OR\nB)"},
		{"whitespace only", "   "},
		{"newline only", "\n"},
		{"lowercase identifier", "a AND b"},
		{"operator glued to word", "ANDB"},
		{"unknown character", "A % B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Parse(%q) error = %v, want *SyntaxError", tt.input, err)
			}
		})
	}
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Parse(\"\") error = %v, want ErrEmptyInput", err)
	}
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		t.Error("empty input must not be reported as a syntax error")
	}
}

func TestParse_TreeShape(t *testing.T) {
	file, err := Parse("!!A AND (B OR C)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	expr := file.Children[0]
	xor := expr.Children[0]
	and := xor.Children[0]
	if expr.Rule != RuleExpression || xor.Rule != RuleXorClause || and.Rule != RuleAndClause {
		t.Fatalf("layers = %s/%s/%s", expr.Rule, xor.Rule, and.Rule)
	}

	rules := func(nodes []*Node) []Rule {
		out := make([]Rule, len(nodes))
		for i, n := range nodes {
			out[i] = n.Rule
		}
		return out
	}

	if got, want := rules(and.Children), []Rule{RuleTerm, RuleAndOperator, RuleTerm}; !reflect.DeepEqual(got, want) {
		t.Errorf("and_clause children = %v, want %v", got, want)
	}

	left := and.Children[0]
	if got, want := rules(left.Children), []Rule{RuleNotOperator, RuleNotOperator, RuleIdentifier}; !reflect.DeepEqual(got, want) {
		t.Errorf("left term children = %v, want %v", got, want)
	}
	if left.Text != "!!A" {
		t.Errorf("left term text = %q, want !!A", left.Text)
	}

	right := and.Children[2]
	if got, want := rules(right.Children), []Rule{RuleLeftParenthesis, RuleExpression, RuleRightParenthesis}; !reflect.DeepEqual(got, want) {
		t.Errorf("right term children = %v, want %v", got, want)
	}
	if inner := right.Child(RuleExpression); inner.Text != "B OR C" || inner.Pos.Column != 10 {
		t.Errorf("inner expression = %q @%s, want \"B OR C\" @1:10", inner.Text, inner.Pos)
	}
	if ops := and.ChildrenOf(RuleAndOperator); len(ops) != 1 || ops[0].Text != "AND" {
		t.Errorf("ChildrenOf(and_operator) = %v", ops)
	}
	if and.Child(RuleOrOperator) != nil {
		t.Error("Child(or_operator) on and_clause should be nil")
	}
}

func TestParse_ExpressionPositions(t *testing.T) {
	file, err := Parse("A\n\n  B | C\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []Position{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 5, Line: 3, Column: 3},
	}
	for i, c := range file.Children {
		if c.Pos != want[i] {
			t.Errorf("expression %d at %+v, want %+v", i, c.Pos, want[i])
		}
	}
}

func TestSyntaxError_Details(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantPos      Position
		wantExpected []Rule
		wantFound    string
	}{
		{
			name:         "bad identifier",
			input:        "A OR B1",
			wantPos:      Position{Offset: 5, Line: 1, Column: 6},
			wantExpected: []Rule{RuleNotOperator, RuleIdentifier, RuleLeftParenthesis},
			wantFound:    `"B1"`,
		},
		{
			name:    "unclosed parenthesis",
			input:   "!A OR (B OR !C",
			wantPos: Position{Offset: 14, Line: 1, Column: 15},
			wantExpected: []Rule{
				RuleAndOperator, RuleNandOperator,
				RuleXorOperator, RuleXnorOperator,
				RuleOrOperator, RuleNorOperator,
				RuleRightParenthesis,
			},
			wantFound: "end of input",
		},
		{
			name:    "mixed case operator",
			input:   "A And B",
			wantPos: Position{Offset: 2, Line: 1, Column: 3},
			wantExpected: []Rule{
				RuleAndOperator, RuleNandOperator,
				RuleXorOperator, RuleXnorOperator,
				RuleOrOperator, RuleNorOperator,
				RuleNewline, RuleEOI,
			},
			wantFound: `"And"`,
		},
		{
			name:         "second line",
			input:        "A\nB OR\n",
			wantPos:      Position{Offset: 6, Line: 2, Column: 5},
			wantExpected: []Rule{RuleNotOperator, RuleIdentifier, RuleLeftParenthesis},
			wantFound:    "end of line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Parse(%q) error = %v, want *SyntaxError", tt.input, err)
			}
			if syntaxErr.Position != tt.wantPos {
				t.Errorf("Position = %+v, want %+v", syntaxErr.Position, tt.wantPos)
			}
			if !reflect.DeepEqual(syntaxErr.Expected, tt.wantExpected) {
				t.Errorf("Expected = %v, want %v", syntaxErr.Expected, tt.wantExpected)
			}
			if syntaxErr.Found != tt.wantFound {
				t.Errorf("Found = %s, want %s", syntaxErr.Found, tt.wantFound)
			}
		})
	}
}

func TestSyntaxError_Error(t *testing.T) {
	err := &SyntaxError{
		Position: Position{Offset: 5, Line: 1, Column: 6},
		Expected: []Rule{RuleNotOperator, RuleIdentifier, RuleLeftParenthesis},
		Found:    `"B1"`,
	}
	want := `syntax error at line 1, column 6: expected not_operator, identifier or left_parenthesis, found "B1"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %v, want %v", got, want)
	}

	err.Message = "custom"
	if got := err.Error(); got != "syntax error at line 1, column 6: custom" {
		t.Errorf("Error() with message = %v", got)
	}
}

func TestSyntaxError_Annotate(t *testing.T) {
	input := "A OR B1"
	_, err := Parse(input)
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Parse() error = %v", err)
	}

	want := strings.Join([]string{
		" --> 1:6",
		"  |",
		"1 | A OR B1",
		"  |      ^---",
		`  = expected not_operator, identifier or left_parenthesis, found "B1"`,
	}, "\n")
	if got := syntaxErr.Annotate(input); got != want {
		t.Errorf("Annotate() =\n%s\nwant\n%s", got, want)
	}
}

func TestParser_MaxInputLength(t *testing.T) {
	p := New(Options{MaxInputLength: 8})

	if _, err := p.Parse("A AND B"); err != nil {
		t.Errorf("Parse() within limit error = %v", err)
	}
	_, err := p.Parse("A AND B AND C")
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("Parse() over limit error = %v, want ErrInputTooLarge", err)
	}

	unlimited := New(Options{MaxInputLength: -1})
	long := strings.Repeat("A AND ", 1000) + "A"
	if _, err := unlimited.Parse(long); err != nil {
		t.Errorf("Parse() without limit error = %v", err)
	}
}

func TestParser_MaxDepth(t *testing.T) {
	p := New(Options{MaxDepth: 3})

	if _, err := p.Parse("(((A)))"); err != nil {
		t.Errorf("Parse() at depth limit error = %v", err)
	}

	_, err := p.Parse("((((A))))")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) || syntaxErr.Message == "" {
		t.Fatalf("Parse() beyond depth error = %v, want nesting SyntaxError", err)
	}
	if syntaxErr.Position.Column != 4 {
		t.Errorf("nesting error column = %d, want 4", syntaxErr.Position.Column)
	}
}

func TestNode_String(t *testing.T) {
	node, err := ParseRule(RuleTerm, "!A")
	if err != nil {
		t.Fatalf("ParseRule() error = %v", err)
	}
	want := "term \"!A\" @1:1\n  not_operator \"!\" @1:1\n  identifier \"A\" @1:2\n"
	if got := node.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
