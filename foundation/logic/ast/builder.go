// File: builder.go
// Title: AST Builder
// Description: Folds parse tree nodes into typed expressions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package ast

import (
	"fmt"

	mdwparser "github.com/msto63/boolex/foundation/logic/parser"
)

var operatorKinds = map[mdwparser.Rule]Kind{
	mdwparser.RuleAndOperator:  KindAnd,
	mdwparser.RuleNandOperator: KindNand,
	mdwparser.RuleOrOperator:   KindOr,
	mdwparser.RuleNorOperator:  KindNor,
	mdwparser.RuleXorOperator:  KindXor,
	mdwparser.RuleXnorOperator: KindXnor,
}

// FromFile builds one expression per expression child of a file node, in
// source order.
func FromFile(node *mdwparser.Node) []Expression {
	exprs := make([]Expression, 0, len(node.Children))
	for _, child := range node.ChildrenOf(mdwparser.RuleExpression) {
		exprs = append(exprs, FromParse(child))
	}
	return exprs
}

// FromParse builds the expression for an expression, xor_clause,
// and_clause, term or identifier node. The node must come from a
// successful parse; any other rule is a programming error and panics.
func FromParse(node *mdwparser.Node) Expression {
	switch node.Rule {
	case mdwparser.RuleExpression, mdwparser.RuleXorClause, mdwparser.RuleAndClause:
		return buildChain(node)
	case mdwparser.RuleTerm:
		return buildTerm(node)
	case mdwparser.RuleIdentifier:
		return buildIdentifier(node)
	default:
		panic(fmt.Sprintf("ast: cannot build an expression from rule %s", node.Rule))
	}
}

// buildChain left-folds operand (operator operand)* into binary nodes
func buildChain(node *mdwparser.Node) Expression {
	acc := FromParse(node.Children[0])
	for i := 1; i+1 < len(node.Children); i += 2 {
		op, ok := operatorKinds[node.Children[i].Rule]
		if !ok {
			panic(fmt.Sprintf("ast: unexpected %s in %s", node.Children[i].Rule, node.Rule))
		}
		acc = &Binary{Op: op, Left: acc, Right: FromParse(node.Children[i+1])}
	}
	return acc
}

func buildTerm(node *mdwparser.Node) Expression {
	nots := 0
	var operand Expression
	for _, child := range node.Children {
		switch child.Rule {
		case mdwparser.RuleNotOperator:
			nots++
		case mdwparser.RuleIdentifier:
			operand = buildIdentifier(child)
		case mdwparser.RuleExpression:
			operand = buildChain(child)
		}
	}
	if operand == nil {
		panic(fmt.Sprintf("ast: term %q has no operand", node.Text))
	}
	if nots%2 == 1 {
		return &Not{Operand: operand}
	}
	return operand
}

func buildIdentifier(node *mdwparser.Node) Expression {
	return &Identifier{Name: rune(node.Text[0])}
}
