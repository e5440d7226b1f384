package report

import (
	"errors"

	mdwparser "github.com/msto63/boolex/foundation/logic/parser"
)

// DescribeError renders err for a terminal. Syntax errors are annotated
// with the offending line of input.
func DescribeError(err error, input string) string {
	var syntaxErr *mdwparser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Error() + "\n" + syntaxErr.Annotate(input)
	}
	return err.Error()
}
