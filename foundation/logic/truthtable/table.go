// File: table.go
// Title: Truth Table Generation
// Description: Enumerates every assignment of an expression's variables
//              and records the result of each.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

// Package truthtable enumerates the complete truth table of an expression.
//
// Rows are ordered by row index. Bit i of the index is the value of the
// i-th variable in sorted order, so the first variable toggles on every row
// and the last toggles slowest. An expression without variables yields a
// table with no rows.
package truthtable

import (
	mdwast "github.com/msto63/boolex/foundation/logic/ast"
)

// Row is one assignment and its result. Values follow Table.Variables.
type Row struct {
	Values []bool
	Result bool
}

// Table is the truth table of one expression
type Table struct {
	Variables []rune
	Rows      []Row
}

// RowCount returns the number of rows a table over n variables has
func RowCount(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << n
}

// From enumerates all 2^n assignments of the variables of expr. Memory and
// time grow exponentially with the variable count; callers that need a
// bound must check len(ast.Variables(expr)) first.
func From(expr mdwast.Expression) *Table {
	vars := mdwast.Variables(expr)
	n := len(vars)
	count := RowCount(n)

	table := &Table{
		Variables: vars,
		Rows:      make([]Row, count),
	}

	values := make([]bool, count*n)
	assignment := make(mdwast.Assignment, n)
	for index := 0; index < count; index++ {
		row := values[index*n : (index+1)*n : (index+1)*n]
		for i, v := range vars {
			bit := (index>>i)&1 == 1
			row[i] = bit
			assignment[v] = bit
		}
		table.Rows[index] = Row{
			Values: row,
			Result: mdwast.Evaluate(expr, assignment),
		}
	}

	return table
}

// Assignment returns the assignment of row index
func (t *Table) Assignment(index int) mdwast.Assignment {
	a := make(mdwast.Assignment, len(t.Variables))
	for i, v := range t.Variables {
		a[v] = t.Rows[index].Values[i]
	}
	return a
}

// TrueRows returns the number of rows whose result is true
func (t *Table) TrueRows() int {
	n := 0
	for _, r := range t.Rows {
		if r.Result {
			n++
		}
	}
	return n
}

// Column returns the position of variable v, or -1
func (t *Table) Column(v rune) int {
	for i, name := range t.Variables {
		if name == v {
			return i
		}
	}
	return -1
}
