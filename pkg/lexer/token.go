package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Words and literals
	TokenKeyword      // int, void, return
	TokenIdentifier   // main, foo, x
	TokenIntegerConst // 42

	// Two-character operators
	TokenAmpAmp       // &&
	TokenMinusMinus   // --
	TokenPlusPlus     // ++
	TokenEqualEqual   // ==
	TokenLessEqual    // <=
	TokenGreaterEqual // >=
	TokenPipePipe     // ||
	TokenBangEqual    // !=

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // {
	TokenRBrace    // }
	TokenSemicolon // ;

	// One-character operators
	TokenMinus   // -
	TokenPlus    // +
	TokenEqual   // =
	TokenLess    // <
	TokenGreater // >
	TokenAmp     // &
	TokenPipe    // |
	TokenTilde   // ~
	TokenBang    // !

	TokenComment // // ... or /* ... */
)

var tokenNames = map[TokenType]string{
	TokenEOF:          "EOF",
	TokenKeyword:      "KEYWORD",
	TokenIdentifier:   "IDENTIFIER",
	TokenIntegerConst: "INTEGER_CONST",
	TokenAmpAmp:       "AMP_AMP",
	TokenMinusMinus:   "MINUS_MINUS",
	TokenPlusPlus:     "PLUS_PLUS",
	TokenEqualEqual:   "EQUAL_EQUAL",
	TokenLessEqual:    "LESS_EQUAL",
	TokenGreaterEqual: "GREATER_EQUAL",
	TokenPipePipe:     "PIPE_PIPE",
	TokenBangEqual:    "BANG_EQUAL",
	TokenLParen:       "LPAREN",
	TokenRParen:       "RPAREN",
	TokenLBrace:       "LBRACE",
	TokenRBrace:       "RBRACE",
	TokenSemicolon:    "SEMICOLON",
	TokenMinus:        "MINUS",
	TokenPlus:         "PLUS",
	TokenEqual:        "EQUAL",
	TokenLess:         "LESS",
	TokenGreater:      "GREATER",
	TokenAmp:          "AMP",
	TokenPipe:         "PIPE",
	TokenTilde:        "TILDE",
	TokenBang:         "BANG",
	TokenComment:      "COMMENT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Offset  int // byte offset of the first character
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Type, t.Literal)
}

// keywords lists the reserved words recognised so far
var keywords = map[string]bool{
	"int":    true,
	"void":   true,
	"return": true,
}

// IsKeyword reports whether word is a reserved word
func IsKeyword(word string) bool {
	return keywords[word]
}
