package ast

// Evaluate computes the value of expr under assignment. Both operands of a
// binary node are always evaluated.
func Evaluate(expr Expression, assignment Assignment) bool {
	switch e := expr.(type) {
	case *Identifier:
		return assignment[e.Name]
	case *Not:
		return !Evaluate(e.Operand, assignment)
	case *Binary:
		left := Evaluate(e.Left, assignment)
		right := Evaluate(e.Right, assignment)
		return Apply(e.Op, left, right)
	default:
		return false
	}
}

// Apply evaluates a binary operator on two values. Non-binary kinds yield
// false.
func Apply(op Kind, a, b bool) bool {
	switch op {
	case KindAnd:
		return a && b
	case KindNand:
		return !(a && b)
	case KindOr:
		return a || b
	case KindNor:
		return !(a || b)
	case KindXor:
		return a != b
	case KindXnor:
		return a == b
	default:
		return false
	}
}
