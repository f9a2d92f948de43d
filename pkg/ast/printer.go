package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer outputs the AST in a C-like format
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: 0}
}

// PrintProgram prints a complete program
func (p *Printer) PrintProgram(prog *Program) {
	for i, fn := range prog.Functions {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.printFunction(fn)
	}
}

func (p *Printer) writeIndent() {
	fmt.Fprint(p.w, strings.Repeat("  ", p.indent))
}

func (p *Printer) printFunction(f Function) {
	fmt.Fprintf(p.w, "int %s(void)\n", f.Name)
	fmt.Fprintln(p.w, "{")
	p.indent++
	p.printStmt(f.Body)
	p.indent--
	fmt.Fprintln(p.w, "}")
}

func (p *Printer) printStmt(stmt Stmt) {
	p.writeIndent()
	switch s := stmt.(type) {
	case Return:
		fmt.Fprintf(p.w, "return %s;\n", FormatExpr(s.Expr))
	default:
		fmt.Fprintf(p.w, "/* unknown statement %T */\n", stmt)
	}
}

// FormatExpr renders an expression as C source. Nested unary operators
// are parenthesised so that "- -1" never reads back as a decrement.
func FormatExpr(expr Expr) string {
	switch e := expr.(type) {
	case Constant:
		return fmt.Sprintf("%d", e.Value)
	case Unary:
		operand := FormatExpr(e.Expr)
		if _, nested := e.Expr.(Unary); nested {
			operand = "(" + operand + ")"
		}
		return e.Op.String() + operand
	default:
		return fmt.Sprintf("/* unknown expression %T */", expr)
	}
}
