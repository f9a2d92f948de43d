// Package parser implements a recursive descent parser for the C subset
//
//	program    := function+
//	function   := "int" IDENTIFIER "(" "void" ")" "{" statement "}"
//	statement  := "return" expr ";"
//	expr       := unary_op expr | INTEGER_CONST | "(" expr ")"
//	unary_op   := "-" | "~" | "!"
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/txloc1909/cc/pkg/ast"
	"github.com/txloc1909/cc/pkg/lexer"
)

// MaxExprDepth bounds expression nesting. A chain of k unary operators
// over a literal has depth k+1.
const MaxExprDepth = 10000

// ParseError reports the first structural mismatch. Found is TokenEOF when
// the input ended early.
type ParseError struct {
	Expected string
	Found    lexer.TokenType
	Literal  string
	Line     int
	Column   int
}

func (e *ParseError) Error() string {
	got := e.Found.String()
	if e.Literal != "" {
		got = fmt.Sprintf("%s %q", got, e.Literal)
	}
	return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Line, e.Column, e.Expected, got)
}

// Parser parses a token sequence into an AST
type Parser struct {
	tokens   []lexer.Token
	pos      int
	depth    int
	curToken lexer.Token
}

// New creates a new Parser. Comment tokens are dropped; the caller's
// slice is not modified.
func New(tokens []lexer.Token) *Parser {
	filtered := make([]lexer.Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		if tok.Type != lexer.TokenComment {
			filtered = append(filtered, tok)
		}
	}
	filtered = append(filtered, eofAfter(tokens))

	p := &Parser{tokens: filtered}
	p.curToken = filtered[0]
	return p
}

// Parse parses a whole program from tokens
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

// eofAfter builds the end-of-input token positioned just past the last token
func eofAfter(tokens []lexer.Token) lexer.Token {
	eof := lexer.Token{Type: lexer.TokenEOF, Line: 1, Column: 1}
	if len(tokens) == 0 {
		return eof
	}
	last := tokens[len(tokens)-1]
	eof.Offset = last.Offset + len(last.Literal)
	eof.Line = last.Line + strings.Count(last.Literal, "\n")
	if i := strings.LastIndexByte(last.Literal, '\n'); i >= 0 {
		eof.Column = len(last.Literal) - i
	} else {
		eof.Column = last.Column + len(last.Literal)
	}
	return eof
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.curToken = p.tokens[p.pos]
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) errorf(expected string) *ParseError {
	return &ParseError{
		Expected: expected,
		Found:    p.curToken.Type,
		Literal:  p.curToken.Literal,
		Line:     p.curToken.Line,
		Column:   p.curToken.Column,
	}
}

// expect consumes the current token if it has type t
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, error) {
	tok := p.curToken
	if !p.curTokenIs(t) {
		return tok, p.errorf(t.String())
	}
	p.nextToken()
	return tok, nil
}

// expectKeyword consumes the current token if it is the given keyword
func (p *Parser) expectKeyword(word string) error {
	if !p.curTokenIs(lexer.TokenKeyword) || p.curToken.Literal != word {
		return p.errorf(fmt.Sprintf("%s %q", lexer.TokenKeyword, word))
	}
	p.nextToken()
	return nil
}

// ParseProgram parses one or more functions up to the end of input
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curTokenIs(lexer.TokenEOF) {
		fn, err := p.ParseFunction()
		if err != nil {
			return nil, err
		}
		prog.Functions = append(prog.Functions, fn)
	}

	if len(prog.Functions) == 0 {
		return nil, p.errorf("function definition")
	}
	return prog, nil
}

// ParseFunction parses: int name(void) { statement }
func (p *Parser) ParseFunction() (ast.Function, error) {
	if err := p.expectKeyword("int"); err != nil {
		return ast.Function{}, err
	}
	name, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return ast.Function{}, err
	}
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return ast.Function{}, err
	}
	if err := p.expectKeyword("void"); err != nil {
		return ast.Function{}, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return ast.Function{}, err
	}
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return ast.Function{}, err
	}
	body, err := p.ParseStatement()
	if err != nil {
		return ast.Function{}, err
	}
	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return ast.Function{}, err
	}

	return ast.Function{Name: name.Literal, Body: body}, nil
}

// ParseStatement parses: return expr ;
func (p *Parser) ParseStatement() (ast.Stmt, error) {
	if err := p.expectKeyword("return"); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}
	return ast.Return{Expr: expr}, nil
}

var unaryOps = map[lexer.TokenType]ast.UnaryOp{
	lexer.TokenMinus: ast.OpNeg,
	lexer.TokenTilde: ast.OpBitNot,
	lexer.TokenBang:  ast.OpNot,
}

// ParseExpr parses an expression, choosing the branch from the current token
func (p *Parser) ParseExpr() (ast.Expr, error) {
	if p.depth >= MaxExprDepth {
		return nil, p.errorf(fmt.Sprintf("expression nested at most %d deep", MaxExprDepth))
	}
	p.depth++
	defer func() { p.depth-- }()

	if op, ok := unaryOps[p.curToken.Type]; ok {
		p.nextToken()
		operand, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Op: op, Expr: operand}, nil
	}

	switch p.curToken.Type {
	case lexer.TokenIntegerConst:
		return p.parseConstant()
	case lexer.TokenLParen:
		p.nextToken()
		inner, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, p.errorf("expression")
}

func (p *Parser) parseConstant() (ast.Expr, error) {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		return nil, p.errorf("integer constant within 64 bits")
	}
	p.nextToken()
	return ast.Constant{Value: value}, nil
}
