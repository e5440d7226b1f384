// File: doc.go
// Title: Logic Engine Package Documentation
// Description: Entry point tying parser, AST and truth table together.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

/*
Package logic processes boolean logic input end to end.

The pipeline runs one way: text is matched by the parser package, each
expression of the parse tree is folded into an ast.Expression, and the
truthtable package enumerates its assignments. Engine runs the pipeline
and reports failures as *mdwerror.Error values with these codes:

	EMPTY_INPUT         zero length input
	INPUT_TOO_LARGE     input above Options.MaxInputLength
	LOGIC_SYNTAX        input does not match the grammar
	VALUE_OUT_OF_RANGE  expression above Options.MaxVariables

The parser errors stay reachable through errors.Is and errors.As.

Usage:

	engine, err := logic.New(logic.Options{MaxVariables: 16})
	if err != nil {
		return err
	}
	results, err := engine.Process("A OR B\n!A & C\n")
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Printf("Expression %d\n%s", r.Index, r.Table)
	}

Subpackages:

  - parser: lexer, grammar and parse tree
  - ast: typed expressions, evaluation and variable collection
  - truthtable: enumeration and plain text rendering
*/
package logic
