// Package codegen lowers the AST to IR and renders it as assembly.
//
// Lowering only handles constructs the back end implements. Anything else
// the parser accepts is a gap in code generation, not a user error, so it
// panics instead of returning an error.
package codegen

import (
	"fmt"

	"github.com/txloc1909/cc/pkg/ast"
	"github.com/txloc1909/cc/pkg/ir"
)

// returnReg holds a function's return value
const returnReg = ir.EAX

// Lower transforms an AST program to IR, one function per source function
func Lower(prog *ast.Program) *ir.Program {
	result := &ir.Program{
		Functions: make([]ir.Function, len(prog.Functions)),
	}
	for i, f := range prog.Functions {
		result.Functions[i] = lowerFunction(f)
	}
	return result
}

func lowerFunction(f ast.Function) ir.Function {
	fn := ir.NewFunction(f.Name)
	lowerStmt(fn, f.Body)
	return *fn
}

func lowerStmt(fn *ir.Function, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case ast.Return:
		fn.Append(ir.Ret{Imm: constantValue(s.Expr), Dst: returnReg})
	default:
		panic(fmt.Sprintf("unhandled statement type: %T", stmt))
	}
}

// constantValue returns the value of a literal return expression
func constantValue(expr ast.Expr) int64 {
	switch e := expr.(type) {
	case ast.Constant:
		return e.Value
	case ast.Unary:
		panic(fmt.Sprintf("unary operator %s is not supported by code generation yet", e.Op))
	default:
		panic(fmt.Sprintf("unhandled expression type: %T", expr))
	}
}
