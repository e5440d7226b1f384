package logic

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
	mdwlog "github.com/msto63/boolex/foundation/core/log"
	mdwast "github.com/msto63/boolex/foundation/logic/ast"
	mdwparser "github.com/msto63/boolex/foundation/logic/parser"
)

func newTestEngine(t *testing.T, opts Options) (*Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts.Logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatLogfmt,
		Output: &buf,
	})
	engine, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return engine, &buf
}

func TestNew_InvalidMaxVariables(t *testing.T) {
	for _, n := range []int{-1, 27} {
		_, err := New(Options{MaxVariables: n})
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("New(MaxVariables=%d) error = %v, want INVALID_CONFIG", n, err)
		}
	}
}

func TestEngine_Process(t *testing.T) {
	engine, logs := newTestEngine(t, Options{})

	results, err := engine.Process("A OR B\n\n(A NOR B) & C\n")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Process() returned %d results, want 2", len(results))
	}

	first, second := results[0], results[1]
	if first.Index != 1 || first.Source != "A OR B" || first.Position.Line != 1 {
		t.Errorf("first result = %+v", first)
	}
	if second.Index != 2 || second.Source != "(A NOR B) & C" || second.Position.Line != 3 {
		t.Errorf("second result = %+v", second)
	}
	if !reflect.DeepEqual(second.Variables, []rune{'A', 'B', 'C'}) {
		t.Errorf("second variables = %q", second.Variables)
	}
	if len(first.Table.Rows) != 4 || len(second.Table.Rows) != 8 {
		t.Errorf("row counts = %d, %d", len(first.Table.Rows), len(second.Table.Rows))
	}
	if !strings.Contains(logs.String(), `message="truth table generation completed"`) {
		t.Errorf("timer not logged: %s", logs.String())
	}
}

func TestEngine_Parse(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	results, err := engine.Parse("!!A AND B AND C")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := mdwast.And(mdwast.And(mdwast.Var('A'), mdwast.Var('B')), mdwast.Var('C'))
	if !mdwast.Equal(results[0].Expression, want) {
		t.Errorf("Expression = %s, want %s", results[0].Expression, want)
	}
	if results[0].Table != nil {
		t.Error("Parse() should not build tables")
	}
}

func TestEngine_Evaluate(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})

	evals, err := engine.Evaluate("A & B\nA | C\n!Z", mdwast.Assignment{'A': true, 'C': false})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	want := []bool{false, true, true}
	for i, ev := range evals {
		if ev.Value != want[i] {
			t.Errorf("expression %d (%s) = %v, want %v", ev.Index, ev.Source, ev.Value, want[i])
		}
	}
}

func TestEngine_Errors(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		input    string
		wantCode mdwerror.Code
		check    func(error) bool
	}{
		{
			name:     "empty input",
			input:    "",
			wantCode: mdwerror.CodeEmptyInput,
			check:    func(err error) bool { return errors.Is(err, mdwparser.ErrEmptyInput) },
		},
		{
			name:     "syntax error",
			input:    "A OR B1",
			wantCode: mdwerror.CodeSyntax,
			check: func(err error) bool {
				var syntaxErr *mdwparser.SyntaxError
				return errors.As(err, &syntaxErr) && syntaxErr.Position.Column == 6
			},
		},
		{
			name:     "too large",
			opts:     Options{MaxInputLength: 4},
			input:    "A AND B",
			wantCode: mdwerror.CodeInputTooLarge,
			check:    func(err error) bool { return errors.Is(err, mdwparser.ErrInputTooLarge) },
		},
		{
			name:     "too many variables",
			opts:     Options{MaxVariables: 2},
			input:    "A | B\nA | B | C\n",
			wantCode: mdwerror.CodeValueOutOfRange,
			check:    func(err error) bool { return strings.Contains(err.Error(), "expression 2 has 3 variables") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newTestEngine(t, tt.opts)
			_, err := engine.Process(tt.input)
			if err == nil {
				t.Fatal("Process() succeeded, want error")
			}
			if got := mdwerror.GetCode(err); got != tt.wantCode {
				t.Errorf("code = %v, want %v", got, tt.wantCode)
			}
			if !tt.check(err) {
				t.Errorf("error %v failed its check", err)
			}
		})
	}
}

func TestEngine_SyntaxErrorDetails(t *testing.T) {
	engine, _ := newTestEngine(t, Options{})
	_, err := engine.Process("A And B")

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatalf("error = %v, want *mdwerror.Error", err)
	}
	details := mdwErr.Details()
	if details["line"] != 1 || details["column"] != 3 || details["found"] != `"And"` {
		t.Errorf("details = %v", details)
	}
	if mdwErr.Operation() != "logic.Parse" {
		t.Errorf("operation = %q", mdwErr.Operation())
	}
	if mdwErr.Severity() != mdwerror.SeverityLow {
		t.Errorf("severity = %v, want low", mdwErr.Severity())
	}
}
