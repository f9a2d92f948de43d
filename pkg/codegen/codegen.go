package codegen

import (
	"github.com/txloc1909/cc/pkg/asm"
	"github.com/txloc1909/cc/pkg/ast"
)

// Generate lowers prog and returns x86-64 assembly text for the host.
// It panics on constructs code generation does not support and on
// hosts other than Linux.
func Generate(prog *ast.Program) string {
	return asm.Emit(Lower(prog))
}
