// Package ast defines the abstract syntax tree produced by the parser.
//
// Statement and expression categories are sealed interfaces: only the
// types in this package implement them, so a type switch over a category
// lists every variant a consumer has to handle.
package ast

// Node is the base interface for all AST nodes
type Node interface {
	implAstNode()
}

// Expr is the interface for all expression nodes
type Expr interface {
	Node
	implAstExpr()
}

// Stmt is the interface for all statement nodes
type Stmt interface {
	Node
	implAstStmt()
}

// UnaryOp represents prefix unary operators
type UnaryOp int

const (
	OpNeg    UnaryOp = iota // -
	OpBitNot                // ~
	OpNot                   // !
)

func (op UnaryOp) String() string {
	names := []string{"-", "~", "!"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// Constant represents an integer literal
type Constant struct {
	Value int64
}

// Unary represents a prefix unary expression
type Unary struct {
	Op   UnaryOp
	Expr Expr
}

// Return represents a return statement
type Return struct {
	Expr Expr
}

// Function represents a function definition: int name(void) { body }
type Function struct {
	Name string
	Body Stmt
}

// Program is a whole translation unit, functions in declaration order
type Program struct {
	Functions []Function
}

// Marker methods for interface implementation
func (Constant) implAstNode() {}
func (Constant) implAstExpr() {}

func (Unary) implAstNode() {}
func (Unary) implAstExpr() {}

func (Return) implAstNode() {}
func (Return) implAstStmt() {}

func (Function) implAstNode() {}
func (Program) implAstNode()  {}
