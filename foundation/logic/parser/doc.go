// File: doc.go
// Title: Logic Parser Package Documentation
// Description: Lexical analysis and recursive descent parsing of boolean
//              logic expressions into a rule-tagged parse tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

/*
Package parser recognizes boolean logic expressions and produces a parse tree.

Grammar, from lowest to highest precedence. Every binary layer is left
associative:

	file        = expression { newline { newline } expression } { newline }
	expression  = xor_clause { ( or_operator | nor_operator ) xor_clause }
	xor_clause  = and_clause { ( xor_operator | xnor_operator ) and_clause }
	and_clause  = term { ( and_operator | nand_operator ) term }
	term        = { not_operator } ( identifier | "(" expression ")" )
	identifier  = "A" ... "Z"

Operator spellings:

	not   !   NOT   not
	and   &   AND   and
	nand  !&  NAND  nand
	or    |   OR    or
	nor   !|  NOR   nor
	xor   ^   XOR   xor
	xnor  !^  XNOR  xnor

Spaces, tabs and carriage returns between tokens are ignored. A line feed
ends the current expression; blank lines between expressions are allowed.
Letters, digits and underscores that touch each other form one word, so
"B1", "VAR" and "And" are rejected rather than split.

Parse returns ErrEmptyInput for a zero length input and a *SyntaxError
carrying the position, the set of rules that were expected there and the
text that was found instead:

	tree, err := parser.Parse("A AND (B OR !C)\n")
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Println(syntaxErr.Annotate(input))
	}

The parse tree is an intermediate structure; the ast package folds it into
typed expressions.
*/
package parser
