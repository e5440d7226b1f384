// File: lexer.go
// Title: Logic Expression Lexical Analyzer
// Description: Converts expression text into tokens with byte offset,
//              line and column information.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal
	TokenNewline

	TokenIdentifier // A .. Z

	// Operators
	TokenNot  // ! NOT not
	TokenAnd  // & AND and
	TokenNand // !& NAND nand
	TokenOr   // | OR or
	TokenNor  // !| NOR nor
	TokenXor  // ^ XOR xor
	TokenXnor // !^ XNOR xnor

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenIllegal:    "ILLEGAL",
	TokenNewline:    "NEWLINE",
	TokenIdentifier: "IDENTIFIER",
	TokenNot:        "NOT",
	TokenAnd:        "AND",
	TokenNand:       "NAND",
	TokenOr:         "OR",
	TokenNor:        "NOR",
	TokenXor:        "XOR",
	TokenXnor:       "XNOR",
	TokenLeftParen:  "LEFT_PAREN",
	TokenRightParen: "RIGHT_PAREN",
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// keywords maps the word spellings of the operators. Only the all upper
// and all lower case forms are accepted.
var keywords = map[string]TokenType{
	"NOT": TokenNot, "not": TokenNot,
	"AND": TokenAnd, "and": TokenAnd,
	"NAND": TokenNand, "nand": TokenNand,
	"OR": TokenOr, "or": TokenOr,
	"NOR": TokenNor, "nor": TokenNor,
	"XOR": TokenXor, "xor": TokenXor,
	"XNOR": TokenXnor, "xnor": TokenXnor,
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Position int       // Byte offset in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based, in bytes)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenNewline:
		return "NEWLINE"
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// End returns the byte offset just past the token
func (t Token) End() int {
	return t.Position + len(t.Value)
}

// Lexer performs lexical analysis of expression input
type Lexer struct {
	input    string
	position int  // offset of ch
	readPos  int  // offset after ch
	ch       byte // current char, 0 at end of input
	line     int
	column   int
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos, line, column := l.position, l.line, l.column

	if l.atEOF() {
		return Token{Type: TokenEOF, Position: pos, Line: line, Column: column}
	}

	switch l.ch {
	case '\n':
		return l.single(TokenNewline, pos, line, column)
	case '(':
		return l.single(TokenLeftParen, pos, line, column)
	case ')':
		return l.single(TokenRightParen, pos, line, column)
	case '&':
		return l.single(TokenAnd, pos, line, column)
	case '|':
		return l.single(TokenOr, pos, line, column)
	case '^':
		return l.single(TokenXor, pos, line, column)
	case '!':
		switch l.peekChar() {
		case '&':
			return l.double(TokenNand, pos, line, column)
		case '|':
			return l.double(TokenNor, pos, line, column)
		case '^':
			return l.double(TokenXnor, pos, line, column)
		}
		return l.single(TokenNot, pos, line, column)
	}

	if isWordChar(l.ch) {
		word := l.readWord()
		return Token{Type: classifyWord(word), Value: word, Position: pos, Line: line, Column: column}
	}

	// Anything else is reported as one whole character, multi-byte
	// sequences included.
	_, size := utf8.DecodeRuneInString(l.input[l.position:])
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return Token{Type: TokenIllegal, Value: l.input[pos:l.position], Position: pos, Line: line, Column: column}
}

// Tokenize returns all tokens from the input as a slice. It stops at the
// first illegal token.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			return tokens, nil
		}
		if tok.Type == TokenIllegal {
			return tokens, fmt.Errorf("illegal token %q at line %d, column %d", tok.Value, tok.Line, tok.Column)
		}
	}
}

func (l *Lexer) single(tt TokenType, pos, line, column int) Token {
	l.readChar()
	return Token{Type: tt, Value: l.input[pos:l.position], Position: pos, Line: line, Column: column}
}

func (l *Lexer) double(tt TokenType, pos, line, column int) Token {
	l.readChar()
	l.readChar()
	return Token{Type: tt, Value: l.input[pos:l.position], Position: pos, Line: line, Column: column}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPos >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
	} else {
		l.ch = l.input[l.readPos]
		l.position = l.readPos
		l.readPos++
	}
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) readWord() string {
	start := l.position
	for !l.atEOF() && isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\r') {
		l.readChar()
	}
}

func classifyWord(word string) TokenType {
	if len(word) == 1 && word[0] >= 'A' && word[0] <= 'Z' {
		return TokenIdentifier
	}
	if tt, ok := keywords[word]; ok {
		return tt
	}
	return TokenIllegal
}

func isWordChar(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' || ch == '_'
}
