// File: doc.go
// Title: Logic AST Package Documentation
// Description: Typed expression trees for boolean logic, built from the
//              parse tree, with evaluation and variable collection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

/*
Package ast holds the typed expression tree for boolean logic.

An Expression is one of *Identifier, *Not or *Binary. Binary nodes carry
the operator Kind (And, Nand, Or, Nor, Xor, Xnor). Trees are immutable
once built and children are never shared between parents.

FromParse folds a parse tree node into an Expression:

  - a term with an odd number of NOT prefixes becomes a single Not node,
    an even number cancels out
  - operator chains fold to the left, so "A AND B AND C" becomes
    And(And(A, B), C)

Evaluate computes the value of a tree under an Assignment. Variables that
are missing from the assignment evaluate to false. Variables returns the
sorted, distinct identifiers of a tree.

	file, _ := parser.Parse("(A NOR B) & C\n")
	for _, expr := range ast.FromFile(file) {
		fmt.Println(expr, ast.Variables(expr))
		fmt.Println(expr.Evaluate(ast.Assignment{'C': true}))
	}
*/
package ast
