package history

import (
	"encoding/hex"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/msto63/boolex/foundation/logic"
	mdwast "github.com/msto63/boolex/foundation/logic/ast"
	mdwparser "github.com/msto63/boolex/foundation/logic/parser"
	mdwtruthtable "github.com/msto63/boolex/foundation/logic/truthtable"
)

// Entry is one recorded expression
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"`
	Digest    string    `json:"digest"`
	Variables string    `json:"variables"`
	Rows      int       `json:"rows"`
	TrueRows  int       `json:"true_rows"`
}

// NewEntry describes a processed expression. ID and CreatedAt are filled
// in by Record.
func NewEntry(r logic.Result) Entry {
	table := r.Table
	if table == nil {
		table = mdwtruthtable.From(r.Expression)
	}
	return Entry{
		Source:    r.Source,
		Digest:    Digest(r.Expression),
		Variables: string(table.Variables),
		Rows:      len(table.Rows),
		TrueRows:  table.TrueRows(),
	}
}

// Digest returns the hex BLAKE2b-256 of the expression's normalized infix
// form, so spellings of the same tree share a digest.
func Digest(expr mdwast.Expression) string {
	sum := blake2b.Sum256([]byte(mdwast.Infix(expr)))
	return hex.EncodeToString(sum[:])
}

// digestSource parses a single expression and digests it
func digestSource(source string) (string, error) {
	node, err := mdwparser.ParseRule(mdwparser.RuleExpression, source)
	if err != nil {
		return "", err
	}
	return Digest(mdwast.FromParse(node)), nil
}
