package ir

import (
	"fmt"
	"io"
)

// Printer dumps IR in a readable, target-independent form
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new IR printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintProgram outputs every function
func (p *Printer) PrintProgram(prog *Program) {
	for i, f := range prog.Functions {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.printFunction(f)
	}
}

func (p *Printer) printFunction(f Function) {
	fmt.Fprintf(p.w, "%s() {\n", f.Name)
	for _, inst := range f.Code {
		p.printInstruction(inst)
	}
	fmt.Fprintln(p.w, "}")
}

func (p *Printer) printInstruction(inst Instruction) {
	switch i := inst.(type) {
	case Ret:
		fmt.Fprintf(p.w, "  %s %d, %s\n", i.Opcode(), i.Imm, i.Dst)
	default:
		fmt.Fprintf(p.w, "  /* unknown instruction %T */\n", inst)
	}
}
