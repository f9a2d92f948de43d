// Package lexer turns C source text into an ordered sequence of tokens.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LexError is returned when no token rule matches at the current position
type LexError struct {
	Offset int
	Line   int
	Column int
	Text   string // the offending character
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d, col %d: unexpected token at: %q", e.Line, e.Column, e.Text)
}

// rule matches one token kind at the head of the input.
// match returns the length of the lexeme, or 0 when the rule does not apply.
type rule struct {
	kind  TokenType
	match func(s string) int
}

// rules is the priority table: the first rule that matches wins.
//
//  1. keywords before identifiers, so "int" is never an IDENTIFIER
//  2. identifiers and integer constants
//  3. two-character operators before their one-character prefixes
//  4. one-character delimiters and operators
//  5. comments
var rules = []rule{
	{TokenKeyword, matchKeyword},
	{TokenIdentifier, matchIdentifier},
	{TokenIntegerConst, matchInteger},

	{TokenAmpAmp, literal("&&")},
	{TokenMinusMinus, literal("--")},
	{TokenPlusPlus, literal("++")},
	{TokenEqualEqual, literal("==")},
	{TokenLessEqual, literal("<=")},
	{TokenGreaterEqual, literal(">=")},
	{TokenPipePipe, literal("||")},
	{TokenBangEqual, literal("!=")},

	{TokenLParen, literal("(")},
	{TokenRParen, literal(")")},
	{TokenLBrace, literal("{")},
	{TokenRBrace, literal("}")},
	{TokenSemicolon, literal(";")},
	{TokenMinus, literal("-")},
	{TokenPlus, literal("+")},
	{TokenEqual, literal("=")},
	{TokenLess, literal("<")},
	{TokenGreater, literal(">")},
	{TokenAmp, literal("&")},
	{TokenPipe, literal("|")},
	{TokenTilde, literal("~")},
	{TokenBang, literal("!")},

	{TokenComment, matchComment},
}

func literal(text string) func(string) int {
	return func(s string) int {
		if strings.HasPrefix(s, text) {
			return len(text)
		}
		return 0
	}
}

func matchKeyword(s string) int {
	n := matchIdentifier(s)
	if n > 0 && IsKeyword(s[:n]) {
		return n
	}
	return 0
}

func matchIdentifier(s string) int {
	if len(s) == 0 || !isLetter(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && isWordChar(s[n]) {
		n++
	}
	return n
}

// matchInteger requires a word boundary after the digits, so "123abc" does not match
func matchInteger(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == 0 || (n < len(s) && isWordChar(s[n])) {
		return 0
	}
	return n
}

func matchComment(s string) int {
	switch {
	case strings.HasPrefix(s, "//"):
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			return i
		}
		return len(s)
	case strings.HasPrefix(s, "/*"):
		if i := strings.Index(s[2:], "*/"); i >= 0 {
			return i + 4
		}
	}
	return 0
}

// Lexer tokenizes C source code
type Lexer struct {
	input  string
	pos    int // current position in input
	line   int
	column int
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// advance consumes n bytes, keeping line and column current
func (l *Lexer) advance(n int) {
	for _, ch := range l.input[l.pos : l.pos+n] {
		if ch == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.pos += n
}

func (l *Lexer) skipWhitespace() {
	n := 0
	for l.pos+n < len(l.input) && isSpace(l.input[l.pos+n]) {
		n++
	}
	l.advance(n)
}

// NextToken returns the next token, including comments.
// At the end of input it returns a TokenEOF token.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	tok := Token{Offset: l.pos, Line: l.line, Column: l.column}
	if l.pos >= len(l.input) {
		tok.Type = TokenEOF
		return tok, nil
	}

	rest := l.input[l.pos:]
	for _, r := range rules {
		if n := r.match(rest); n > 0 {
			tok.Type = r.kind
			tok.Literal = rest[:n]
			l.advance(n)
			return tok, nil
		}
	}

	ch, _ := utf8.DecodeRuneInString(rest)
	return tok, &LexError{Offset: l.pos, Line: l.line, Column: l.column, Text: string(ch)}
}

// Tokenize lexes the whole input eagerly. Comments are kept in the result;
// the terminating EOF token is not.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	tokens := []Token{}
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
