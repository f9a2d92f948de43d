// Package ir defines the per-function instruction list produced by
// lowering the AST, before it is printed as target assembly.
package ir

import "fmt"

// Reg is a machine register
type Reg int

const (
	EAX Reg = iota
)

func (r Reg) String() string {
	names := []string{"eax"}
	if int(r) < len(names) {
		return names[r]
	}
	return fmt.Sprintf("r%d", int(r))
}

// Instruction is the interface for IR instructions
type Instruction interface {
	Opcode() string
	implInstruction()
}

// Ret moves an immediate into the destination register and returns
type Ret struct {
	Imm int64
	Dst Reg
}

func (Ret) Opcode() string   { return "RETURN" }
func (Ret) implInstruction() {}

// Function is a named instruction list
type Function struct {
	Name string
	Code []Instruction
}

// Program is the lowered program, one Function per source function
type Program struct {
	Functions []Function
}

// NewFunction creates an empty function
func NewFunction(name string) *Function {
	return &Function{
		Name: name,
		Code: make([]Instruction, 0),
	}
}

// Append adds an instruction to the function
func (f *Function) Append(inst Instruction) {
	f.Code = append(f.Code, inst)
}
