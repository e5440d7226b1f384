// File: visitor.go
// Title: Logic AST Visitor and Printers
// Description: Visitor interface, depth-first walking and the constructor
//              and infix printers built on them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial visitor implementation

package ast

import (
	"strings"
)

// Visitor dispatches on the node variant
type Visitor interface {
	VisitIdentifier(expr *Identifier) interface{}
	VisitNot(expr *Not) interface{}
	VisitBinary(expr *Binary) interface{}
}

// Walk visits expr and its descendants depth first, parents before
// children and left before right. Returning false from fn skips the
// children of the current node.
func Walk(expr Expression, fn func(Expression) bool) {
	if expr == nil || !fn(expr) {
		return
	}
	switch e := expr.(type) {
	case *Not:
		Walk(e.Operand, fn)
	case *Binary:
		Walk(e.Left, fn)
		Walk(e.Right, fn)
	}
}

// Size returns the number of nodes in the tree
func Size(expr Expression) int {
	n := 0
	Walk(expr, func(Expression) bool {
		n++
		return true
	})
	return n
}

// Debug renders expr in constructor form:
//
//	Or(Not(Identifier('A')), And(Identifier('B'), Identifier('C')))
func Debug(expr Expression) string {
	var b strings.Builder
	expr.Accept(&debugPrinter{b: &b})
	return b.String()
}

type debugPrinter struct {
	b *strings.Builder
}

func (p *debugPrinter) VisitIdentifier(expr *Identifier) interface{} {
	p.b.WriteString("Identifier('")
	p.b.WriteRune(expr.Name)
	p.b.WriteString("')")
	return nil
}

func (p *debugPrinter) VisitNot(expr *Not) interface{} {
	p.b.WriteString("Not(")
	expr.Operand.Accept(p)
	p.b.WriteString(")")
	return nil
}

func (p *debugPrinter) VisitBinary(expr *Binary) interface{} {
	p.b.WriteString(expr.Op.String())
	p.b.WriteString("(")
	expr.Left.Accept(p)
	p.b.WriteString(", ")
	expr.Right.Accept(p)
	p.b.WriteString(")")
	return nil
}

// Infix renders expr in the input syntax with upper case operator words
// and only the parentheses the grammar needs. Parsing the result yields an
// equal tree.
func Infix(expr Expression) string {
	var b strings.Builder
	expr.Accept(&infixPrinter{b: &b})
	return b.String()
}

type infixPrinter struct {
	b *strings.Builder
}

func (p *infixPrinter) VisitIdentifier(expr *Identifier) interface{} {
	p.b.WriteRune(expr.Name)
	return nil
}

func (p *infixPrinter) VisitNot(expr *Not) interface{} {
	p.b.WriteString("NOT ")
	p.operand(expr.Operand, expr.Operand.Kind() != KindIdentifier)
	return nil
}

func (p *infixPrinter) VisitBinary(expr *Binary) interface{} {
	prec := expr.Op.precedence()
	p.operand(expr.Left, expr.Left.Kind().precedence() < prec)
	p.b.WriteString(" ")
	p.b.WriteString(expr.Op.Keyword())
	p.b.WriteString(" ")
	p.operand(expr.Right, expr.Right.Kind().precedence() <= prec)
	return nil
}

func (p *infixPrinter) operand(expr Expression, parens bool) {
	if parens {
		p.b.WriteString("(")
	}
	expr.Accept(p)
	if parens {
		p.b.WriteString(")")
	}
}
