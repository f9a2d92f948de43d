// Package asm prints IR as x86-64 assembly in AT&T syntax for GNU as.
package asm

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/txloc1909/cc/pkg/ir"
)

// TargetOS is the only operating system assembly is generated for
const TargetOS = "linux"

// Printer outputs x86-64 assembly
type Printer struct {
	w    io.Writer
	goos string
}

// NewPrinter creates a new assembly printer for the host platform
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, goos: runtime.GOOS}
}

// Emit renders a whole program to a string
func Emit(prog *ir.Program) string {
	var sb strings.Builder
	NewPrinter(&sb).PrintProgram(prog)
	return sb.String()
}

// PrintProgram outputs every function followed by the module trailer.
// It panics if the host is not the supported target.
func (p *Printer) PrintProgram(prog *ir.Program) {
	if p.goos != TargetOS {
		panic(fmt.Sprintf("assembly output requires a %s host, running on %s", TargetOS, p.goos))
	}

	for _, f := range prog.Functions {
		p.printFunction(f)
	}

	// Non-executable stack
	fmt.Fprintf(p.w, ".section .note.GNU-stack, \"\", @progbits\n")
}

func (p *Printer) printFunction(f ir.Function) {
	fmt.Fprintf(p.w, "\t.globl %s\n", f.Name)
	fmt.Fprintf(p.w, "\t.type %s, @function\n", f.Name)
	fmt.Fprintf(p.w, "%s:\n", f.Name)

	for _, inst := range f.Code {
		p.printInstruction(inst)
	}
}

func regName32(r ir.Reg) string {
	return "%" + r.String()
}

func (p *Printer) printInstruction(inst ir.Instruction) {
	switch i := inst.(type) {
	case ir.Ret:
		fmt.Fprintf(p.w, "\tmovl $%d, %s\n", i.Imm, regName32(i.Dst))
		fmt.Fprintf(p.w, "\tret\n")
	default:
		panic(fmt.Sprintf("unhandled instruction type: %T", inst))
	}
}
