package ast

import "sort"

// Variables returns the distinct identifiers of expr in ascending order.
// The result is empty, never nil, for a nil expression.
func Variables(expr Expression) []rune {
	seen := make(map[rune]struct{})
	Walk(expr, func(e Expression) bool {
		if id, ok := e.(*Identifier); ok {
			seen[id.Name] = struct{}{}
		}
		return true
	})

	vars := make([]rune, 0, len(seen))
	for r := range seen {
		vars = append(vars, r)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	return vars
}
