// File: nodes.go
// Title: Logic AST Node Definitions
// Description: Expression node types, operator kinds and constructors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of an expression node
type Kind int

const (
	KindIdentifier Kind = iota
	KindNot
	KindAnd
	KindNand
	KindOr
	KindNor
	KindXor
	KindXnor
)

var kindNames = [...]string{
	KindIdentifier: "Identifier",
	KindNot:        "Not",
	KindAnd:        "And",
	KindNand:       "Nand",
	KindOr:         "Or",
	KindNor:        "Nor",
	KindXor:        "Xor",
	KindXnor:       "Xnor",
}

// String returns the variant name
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsBinary reports whether k is a two-operand operator
func (k Kind) IsBinary() bool {
	return k >= KindAnd && k <= KindXnor
}

// Keyword returns the upper case operator spelling, empty for identifiers
func (k Kind) Keyword() string {
	switch k {
	case KindIdentifier:
		return ""
	case KindNot, KindAnd, KindNand, KindOr, KindNor, KindXor, KindXnor:
		return strings.ToUpper(kindNames[k])
	default:
		return ""
	}
}

// precedence of binary operators, higher binds tighter
func (k Kind) precedence() int {
	switch k {
	case KindOr, KindNor:
		return 1
	case KindXor, KindXnor:
		return 2
	case KindAnd, KindNand:
		return 3
	default:
		return 4
	}
}

// Expression is a node of a boolean expression tree
type Expression interface {
	// Kind returns the node variant
	Kind() Kind

	// String returns the tree in constructor form, e.g. And(Identifier('A'), Identifier('B'))
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Evaluate computes the value of the tree under assignment
	Evaluate(assignment Assignment) bool

	exprNode() // marker method
}

// Assignment maps variable identifiers to values. Missing identifiers are
// false.
type Assignment map[rune]bool

// Identifier is a single upper case variable
type Identifier struct {
	Name rune
}

// Not negates its operand
type Not struct {
	Operand Expression
}

// Binary applies a two-operand operator
type Binary struct {
	Op    Kind
	Left  Expression
	Right Expression
}

func (*Identifier) exprNode() {}
func (*Not) exprNode()        {}
func (*Binary) exprNode()     {}

// Kind returns KindIdentifier
func (*Identifier) Kind() Kind { return KindIdentifier }

// Kind returns KindNot
func (*Not) Kind() Kind { return KindNot }

// Kind returns the operator
func (b *Binary) Kind() Kind { return b.Op }

// Accept implements the visitor pattern
func (i *Identifier) Accept(v Visitor) interface{} { return v.VisitIdentifier(i) }

// Accept implements the visitor pattern
func (n *Not) Accept(v Visitor) interface{} { return v.VisitNot(n) }

// Accept implements the visitor pattern
func (b *Binary) Accept(v Visitor) interface{} { return v.VisitBinary(b) }

func (i *Identifier) String() string { return Debug(i) }
func (n *Not) String() string        { return Debug(n) }
func (b *Binary) String() string     { return Debug(b) }

// Evaluate returns the assigned value, false when unassigned
func (i *Identifier) Evaluate(a Assignment) bool { return Evaluate(i, a) }

// Evaluate returns the negated operand value
func (n *Not) Evaluate(a Assignment) bool { return Evaluate(n, a) }

// Evaluate applies the operator to both operand values
func (b *Binary) Evaluate(a Assignment) bool { return Evaluate(b, a) }

// Var creates an identifier node
func Var(name rune) *Identifier {
	return &Identifier{Name: name}
}

// Negate wraps operand in a Not node
func Negate(operand Expression) *Not {
	return &Not{Operand: operand}
}

// NewBinary creates a binary node. It panics if op is not a binary kind.
func NewBinary(op Kind, left, right Expression) *Binary {
	if !op.IsBinary() {
		panic(fmt.Sprintf("ast: %s is not a binary operator", op))
	}
	return &Binary{Op: op, Left: left, Right: right}
}

// And creates an And node
func And(left, right Expression) *Binary { return NewBinary(KindAnd, left, right) }

// Nand creates a Nand node
func Nand(left, right Expression) *Binary { return NewBinary(KindNand, left, right) }

// Or creates an Or node
func Or(left, right Expression) *Binary { return NewBinary(KindOr, left, right) }

// Nor creates a Nor node
func Nor(left, right Expression) *Binary { return NewBinary(KindNor, left, right) }

// Xor creates a Xor node
func Xor(left, right Expression) *Binary { return NewBinary(KindXor, left, right) }

// Xnor creates a Xnor node
func Xnor(left, right Expression) *Binary { return NewBinary(KindXnor, left, right) }

// Equal reports whether two trees have the same structure
func Equal(a, b Expression) bool {
	switch x := a.(type) {
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Name == y.Name
	case *Not:
		y, ok := b.(*Not)
		return ok && Equal(x.Operand, y.Operand)
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return a == nil && b == nil
	}
}
