// File: tree.go
// Title: Parse Tree
// Description: Grammar rules and the rule-tagged parse tree produced by the
//              parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strings"
)

// Rule identifies a grammar rule
type Rule int

const (
	RuleFile Rule = iota
	RuleExpression
	RuleXorClause
	RuleAndClause
	RuleTerm
	RuleIdentifier
	RuleNotOperator
	RuleAndOperator
	RuleNandOperator
	RuleOrOperator
	RuleNorOperator
	RuleXorOperator
	RuleXnorOperator
	RuleLeftParenthesis
	RuleRightParenthesis

	// Only ever reported as expected; never emitted as nodes.
	RuleNewline
	RuleEOI
)

var ruleNames = [...]string{
	RuleFile:             "file",
	RuleExpression:       "expression",
	RuleXorClause:        "xor_clause",
	RuleAndClause:        "and_clause",
	RuleTerm:             "term",
	RuleIdentifier:       "identifier",
	RuleNotOperator:      "not_operator",
	RuleAndOperator:      "and_operator",
	RuleNandOperator:     "nand_operator",
	RuleOrOperator:       "or_operator",
	RuleNorOperator:      "nor_operator",
	RuleXorOperator:      "xor_operator",
	RuleXnorOperator:     "xnor_operator",
	RuleLeftParenthesis:  "left_parenthesis",
	RuleRightParenthesis: "right_parenthesis",
	RuleNewline:          "newline",
	RuleEOI:              "EOI",
}

// String returns the grammar name of the rule
func (r Rule) String() string {
	if r >= 0 && int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// IsOperator reports whether r is one of the operator rules
func (r Rule) IsOperator() bool {
	return r >= RuleNotOperator && r <= RuleXnorOperator
}

// tokenRules maps each token type to the terminal rule it satisfies
var tokenRules = map[TokenType]Rule{
	TokenIdentifier: RuleIdentifier,
	TokenNot:        RuleNotOperator,
	TokenAnd:        RuleAndOperator,
	TokenNand:       RuleNandOperator,
	TokenOr:         RuleOrOperator,
	TokenNor:        RuleNorOperator,
	TokenXor:        RuleXorOperator,
	TokenXnor:       RuleXnorOperator,
	TokenLeftParen:  RuleLeftParenthesis,
	TokenRightParen: RuleRightParenthesis,
	TokenNewline:    RuleNewline,
	TokenEOF:        RuleEOI,
}

// Position locates a node or error in the input
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is one matched rule in the parse tree
type Node struct {
	Rule     Rule
	Text     string // exact source span matched by the rule
	Pos      Position
	Children []*Node
}

// Child returns the first direct child matching rule, or nil
func (n *Node) Child(rule Rule) *Node {
	for _, c := range n.Children {
		if c.Rule == rule {
			return c
		}
	}
	return nil
}

// ChildrenOf returns all direct children matching rule
func (n *Node) ChildrenOf(rule Rule) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Rule == rule {
			out = append(out, c)
		}
	}
	return out
}

// String renders the subtree one node per line, indented by depth
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s %q @%s\n", strings.Repeat("  ", depth), n.Rule, n.Text, n.Pos)
	for _, c := range n.Children {
		c.write(b, depth+1)
	}
}
