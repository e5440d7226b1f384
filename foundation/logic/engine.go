// File: engine.go
// Title: Logic Engine
// Description: High-level interface that parses input, builds expression
//              trees and produces truth tables or single evaluations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial engine implementation

package logic

import (
	"errors"
	"strings"

	mdwerror "github.com/msto63/boolex/foundation/core/error"
	mdwlog "github.com/msto63/boolex/foundation/core/log"
	mdwast "github.com/msto63/boolex/foundation/logic/ast"
	mdwparser "github.com/msto63/boolex/foundation/logic/parser"
	mdwtruthtable "github.com/msto63/boolex/foundation/logic/truthtable"
)

// MaxIdentifiers is the number of distinct identifiers the grammar allows
const MaxIdentifiers = 26

// Options configures the engine
type Options struct {
	Logger         *mdwlog.Logger
	Parser         *mdwparser.Parser
	MaxInputLength int // passed to the parser when Parser is nil
	MaxVariables   int // 0 means no limit
}

// Engine runs the parse, build and enumerate pipeline
type Engine struct {
	parser  *mdwparser.Parser
	logger  *mdwlog.Logger
	options Options
}

// Result is one processed expression
type Result struct {
	Index      int    // 1-based position in the input
	Source     string // source text of the expression
	Position   mdwparser.Position
	Expression mdwast.Expression
	Variables  []rune
	Table      *mdwtruthtable.Table // nil from Parse
}

// Evaluation is one expression evaluated under a single assignment
type Evaluation struct {
	Index      int
	Source     string
	Position   mdwparser.Position
	Expression mdwast.Expression
	Variables  []rune
	Value      bool
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxVariables < 0 || opts.MaxVariables > MaxIdentifiers {
		return nil, mdwerror.Newf("max variables must be between 0 and %d, got %d", MaxIdentifiers, opts.MaxVariables).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("max_variables", opts.MaxVariables)
	}

	logger := opts.Logger.WithField("component", "logic-engine")

	if opts.Parser == nil {
		opts.Parser = mdwparser.New(mdwparser.Options{
			Logger:         opts.Logger,
			MaxInputLength: opts.MaxInputLength,
		})
	}

	logger.Debug("Logic engine initialized", mdwlog.Fields{
		"maxInputLength": opts.MaxInputLength,
		"maxVariables":   opts.MaxVariables,
	})

	return &Engine{
		parser:  opts.Parser,
		logger:  logger,
		options: opts,
	}, nil
}

// Parse parses input and builds one expression per line without
// enumerating truth tables
func (e *Engine) Parse(input string) ([]Result, error) {
	file, err := e.parser.Parse(input)
	if err != nil {
		return nil, wrapParseError(err, "logic.Parse")
	}

	exprNodes := file.ChildrenOf(mdwparser.RuleExpression)
	results := make([]Result, len(exprNodes))
	for i, node := range exprNodes {
		expr := mdwast.FromParse(node)
		results[i] = Result{
			Index:      i + 1,
			Source:     node.Text,
			Position:   node.Pos,
			Expression: expr,
			Variables:  mdwast.Variables(expr),
		}
	}

	e.logger.Debug("Input parsed", mdwlog.Fields{
		"expressions": len(results),
		"bytes":       len(input),
	})
	return results, nil
}

// Process parses input and generates the truth table of every expression.
// The variable limit is checked for all expressions before any table is
// built.
func (e *Engine) Process(input string) ([]Result, error) {
	results, err := e.Parse(input)
	if err != nil {
		return nil, err
	}

	if err := e.checkVariables(results); err != nil {
		return nil, err
	}

	timer := e.logger.StartTimer("truth table generation")
	rows := 0
	for i := range results {
		results[i].Table = mdwtruthtable.From(results[i].Expression)
		rows += len(results[i].Table.Rows)
	}
	timer.WithField("expressions", len(results)).WithField("rows", rows).Stop()

	return results, nil
}

// Evaluate parses input and evaluates every expression under assignment.
// Unassigned variables are false.
func (e *Engine) Evaluate(input string, assignment mdwast.Assignment) ([]Evaluation, error) {
	results, err := e.Parse(input)
	if err != nil {
		return nil, err
	}

	evals := make([]Evaluation, len(results))
	for i, r := range results {
		evals[i] = Evaluation{
			Index:      r.Index,
			Source:     r.Source,
			Position:   r.Position,
			Expression: r.Expression,
			Variables:  r.Variables,
			Value:      mdwast.Evaluate(r.Expression, assignment),
		}
	}
	return evals, nil
}

func (e *Engine) checkVariables(results []Result) error {
	limit := e.options.MaxVariables
	if limit == 0 {
		return nil
	}
	for _, r := range results {
		if n := len(r.Variables); n > limit {
			e.logger.Warn("Variable limit exceeded", mdwlog.Fields{
				"expression": r.Index,
				"variables":  n,
				"limit":      limit,
			})
			return mdwerror.Newf("expression %d has %d variables, the limit is %d", r.Index, n, limit).
				WithCode(mdwerror.CodeValueOutOfRange).
				WithOperation("logic.Process").
				WithDetails(map[string]interface{}{
					"expression": r.Index,
					"variables":  n,
					"limit":      limit,
				})
		}
	}
	return nil
}

func wrapParseError(err error, operation string) error {
	var syntaxErr *mdwparser.SyntaxError

	switch {
	case errors.Is(err, mdwparser.ErrEmptyInput):
		return mdwerror.Wrap(err, "cannot process input").
			WithCode(mdwerror.CodeEmptyInput).
			WithOperation(operation)

	case errors.Is(err, mdwparser.ErrInputTooLarge):
		return mdwerror.Wrap(err, "cannot process input").
			WithCode(mdwerror.CodeInputTooLarge).
			WithOperation(operation)

	case errors.As(err, &syntaxErr):
		expected := make([]string, len(syntaxErr.Expected))
		for i, r := range syntaxErr.Expected {
			expected[i] = r.String()
		}
		return mdwerror.Wrap(err, "failed to parse input").
			WithCode(mdwerror.CodeSyntax).
			WithOperation(operation).
			WithDetails(map[string]interface{}{
				"line":     syntaxErr.Position.Line,
				"column":   syntaxErr.Position.Column,
				"expected": strings.Join(expected, ","),
				"found":    syntaxErr.Found,
			})

	default:
		return mdwerror.Wrap(err, "failed to parse input").
			WithCode(mdwerror.CodeInternal).
			WithOperation(operation)
	}
}
