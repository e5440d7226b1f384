// File: errors.go
// Title: Parser Errors
// Description: Sentinel and positioned errors returned by the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is returned for a zero length input before any grammar
	// matching takes place.
	ErrEmptyInput = errors.New("empty input")

	// ErrInputTooLarge is returned when the input exceeds MaxInputLength
	ErrInputTooLarge = errors.New("input too large")
)

// SyntaxError reports where the input stopped matching the grammar
type SyntaxError struct {
	Position Position
	Expected []Rule // rules attempted at Position, in attempt order
	Found    string // description of the offending token
	Message  string // optional, replaces the expected/found wording
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("syntax error at line %d, column %d: %s",
			e.Position.Line, e.Position.Column, e.Message)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s, found %s",
		e.Position.Line, e.Position.Column, e.ExpectedString(), e.Found)
}

// ExpectedString joins the expected rule names as "a, b or c"
func (e *SyntaxError) ExpectedString() string {
	names := make([]string, len(e.Expected))
	for i, r := range e.Expected {
		names[i] = r.String()
	}
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}

// Annotate renders the error below the offending source line with a caret
// under the error column:
//
//	 --> 1:8
//	  |
//	1 | A OR B1
//	  |      ^---
//	  = expected ...
func (e *SyntaxError) Annotate(input string) string {
	lines := strings.Split(input, "\n")
	lineText := ""
	if e.Position.Line >= 1 && e.Position.Line <= len(lines) {
		lineText = strings.TrimRight(lines[e.Position.Line-1], "\r")
	}

	gutter := len(fmt.Sprint(e.Position.Line))
	pad := strings.Repeat(" ", gutter)
	caret := strings.Repeat(" ", max(e.Position.Column-1, 0)) + "^---"

	detail := e.Message
	if detail == "" {
		detail = fmt.Sprintf("expected %s, found %s", e.ExpectedString(), e.Found)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s--> %s\n", pad, e.Position)
	fmt.Fprintf(&b, "%s |\n", pad)
	fmt.Fprintf(&b, "%d | %s\n", e.Position.Line, lineText)
	fmt.Fprintf(&b, "%s | %s\n", pad, caret)
	fmt.Fprintf(&b, "%s = %s", pad, detail)
	return b.String()
}

func describeToken(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of input"
	case TokenNewline:
		return "end of line"
	default:
		return fmt.Sprintf("%q", tok.Value)
	}
}
