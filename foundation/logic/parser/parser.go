// File: parser.go
// Title: Logic Expression Recursive Descent Parser
// Description: Matches token streams against the expression grammar and
//              builds the parse tree. Each precedence layer is parsed by a
//              loop so operator chains stay flat and left to right.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	mdwlog "github.com/msto63/boolex/foundation/core/log"
)

const (
	// DefaultMaxInputLength is the input size limit when Options leaves it zero
	DefaultMaxInputLength = 1 << 20

	// DefaultMaxDepth bounds parenthesis nesting when Options leaves it zero
	DefaultMaxDepth = 512
)

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxInputLength int // bytes; negative disables the check
	MaxDepth       int // parenthesis nesting; negative disables the check
}

// Parser matches input against the grammar. It holds no per-input state
// and may be shared between goroutines.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "logic-parser"),
		options: opts,
	}
}

var defaultParser = New(Options{})

// Parse matches input against the file rule using default options
func Parse(input string) (*Node, error) {
	return defaultParser.Parse(input)
}

// ParseRule matches the complete input against a single rule using
// default options
func ParseRule(rule Rule, input string) (*Node, error) {
	return defaultParser.ParseRule(rule, input)
}

// Parse matches input against the file rule. The returned node has one
// expression child per expression in the input.
func (p *Parser) Parse(input string) (*Node, error) {
	return p.ParseRule(RuleFile, input)
}

// ParseRule matches the complete input against rule. Leading and trailing
// whitespace is ignored; anything else left over is a syntax error.
func (p *Parser) ParseRule(rule Rule, input string) (*Node, error) {
	if err := p.checkInput(input); err != nil {
		return nil, err
	}

	s := newState(input, p.options.MaxDepth)

	p.logger.Trace("Starting parse", mdwlog.Fields{
		"rule":   rule.String(),
		"length": len(input),
	})

	var (
		node *Node
		err  error
	)
	switch rule {
	case RuleFile:
		node, err = s.parseFile()
	case RuleExpression:
		node, err = s.parseExpression()
	case RuleXorClause:
		node, err = s.parseXorClause()
	case RuleAndClause:
		node, err = s.parseAndClause()
	case RuleTerm:
		node, err = s.parseTerm()
	case RuleNewline, RuleEOI:
		return nil, fmt.Errorf("rule %s cannot be parsed on its own", rule)
	default:
		if rule < 0 || rule > RuleRightParenthesis {
			return nil, fmt.Errorf("unknown rule %d", int(rule))
		}
		if !s.check(rule) {
			err = s.fail()
			break
		}
		node = s.leaf(rule)
	}

	if err == nil && rule != RuleFile && !s.check(RuleEOI) {
		err = s.fail()
	}

	if err != nil {
		p.logger.Debug("Parse failed", mdwlog.Fields{
			"rule":  rule.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Trace("Parse completed", mdwlog.Fields{
		"rule":     rule.String(),
		"children": len(node.Children),
	})
	return node, nil
}

func (p *Parser) checkInput(input string) error {
	if input == "" {
		return ErrEmptyInput
	}
	if limit := p.options.MaxInputLength; limit > 0 && len(input) > limit {
		return fmt.Errorf("%w: %d bytes exceeds the limit of %d", ErrInputTooLarge, len(input), limit)
	}
	return nil
}

// state is the per-input parsing state
type state struct {
	input    string
	lexer    *Lexer
	cur      Token
	lastEnd  int    // end offset of the last consumed token
	attempts []Rule // rules tried against cur
	depth    int
	maxDepth int
}

func newState(input string, maxDepth int) *state {
	s := &state{
		input:    input,
		lexer:    NewLexer(input),
		maxDepth: maxDepth,
	}
	s.cur = s.lexer.NextToken()
	return s
}

func (s *state) advance() {
	s.lastEnd = s.cur.End()
	s.cur = s.lexer.NextToken()
	s.attempts = s.attempts[:0]
}

// is reports whether cur satisfies rule without recording an attempt
func (s *state) is(rule Rule) bool {
	r, ok := tokenRules[s.cur.Type]
	return ok && r == rule
}

// check reports whether cur satisfies rule and records the attempt if not
func (s *state) check(rule Rule) bool {
	if s.is(rule) {
		return true
	}
	for _, r := range s.attempts {
		if r == rule {
			return false
		}
	}
	s.attempts = append(s.attempts, rule)
	return false
}

// leaf consumes cur as a terminal node of rule
func (s *state) leaf(rule Rule) *Node {
	n := &Node{Rule: rule, Text: s.cur.Value, Pos: s.pos()}
	s.advance()
	return n
}

func (s *state) pos() Position {
	return Position{Offset: s.cur.Position, Line: s.cur.Line, Column: s.cur.Column}
}

func (s *state) fail() error {
	expected := make([]Rule, len(s.attempts))
	copy(expected, s.attempts)
	return &SyntaxError{
		Position: s.pos(),
		Expected: expected,
		Found:    describeToken(s.cur),
	}
}

// open starts a node at cur; close fills in its source span
func (s *state) open(rule Rule) *Node {
	return &Node{Rule: rule, Pos: s.pos()}
}

func (s *state) close(n *Node) *Node {
	n.Text = s.input[n.Pos.Offset:s.lastEnd]
	return n
}

func (s *state) parseFile() (*Node, error) {
	file := &Node{Rule: RuleFile, Text: s.input, Pos: Position{Offset: 0, Line: 1, Column: 1}}

	for s.is(RuleNewline) {
		s.advance()
	}

	for {
		expr, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		file.Children = append(file.Children, expr)

		if !s.check(RuleNewline) {
			break
		}
		for s.is(RuleNewline) {
			s.advance()
		}
		if s.is(RuleEOI) {
			break
		}
	}

	if !s.check(RuleEOI) {
		return nil, s.fail()
	}
	return file, nil
}

func (s *state) parseExpression() (*Node, error) {
	return s.parseChain(RuleExpression, s.parseXorClause, RuleOrOperator, RuleNorOperator)
}

func (s *state) parseXorClause() (*Node, error) {
	return s.parseChain(RuleXorClause, s.parseAndClause, RuleXorOperator, RuleXnorOperator)
}

func (s *state) parseAndClause() (*Node, error) {
	return s.parseChain(RuleAndClause, s.parseTerm, RuleAndOperator, RuleNandOperator)
}

// parseChain parses operand { operator operand } for one precedence layer
func (s *state) parseChain(rule Rule, operand func() (*Node, error), operators ...Rule) (*Node, error) {
	node := s.open(rule)

	first, err := operand()
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, first)

	for {
		op, ok := s.matchAny(operators)
		if !ok {
			break
		}
		node.Children = append(node.Children, s.leaf(op))

		next, err := operand()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, next)
	}

	return s.close(node), nil
}

func (s *state) matchAny(rules []Rule) (Rule, bool) {
	for _, r := range rules {
		if s.check(r) {
			return r, true
		}
	}
	return 0, false
}

func (s *state) parseTerm() (*Node, error) {
	node := s.open(RuleTerm)

	for s.check(RuleNotOperator) {
		node.Children = append(node.Children, s.leaf(RuleNotOperator))
	}

	switch {
	case s.check(RuleIdentifier):
		node.Children = append(node.Children, s.leaf(RuleIdentifier))

	case s.check(RuleLeftParenthesis):
		if s.maxDepth > 0 && s.depth >= s.maxDepth {
			return nil, &SyntaxError{
				Position: s.pos(),
				Found:    describeToken(s.cur),
				Message:  fmt.Sprintf("parentheses nested deeper than %d levels", s.maxDepth),
			}
		}
		node.Children = append(node.Children, s.leaf(RuleLeftParenthesis))

		s.depth++
		inner, err := s.parseExpression()
		s.depth--
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, inner)

		if !s.check(RuleRightParenthesis) {
			return nil, s.fail()
		}
		node.Children = append(node.Children, s.leaf(RuleRightParenthesis))

	default:
		return nil, s.fail()
	}

	return s.close(node), nil
}
