package ir

import (
	"bytes"
	"testing"
)

func TestRegString(t *testing.T) {
	if EAX.String() != "eax" {
		t.Errorf("expected eax, got %s", EAX)
	}
	if Reg(7).String() != "r7" {
		t.Errorf("expected r7, got %s", Reg(7))
	}
}

func TestFunctionAppend(t *testing.T) {
	fn := NewFunction("main")
	if len(fn.Code) != 0 {
		t.Fatalf("expected empty function, got %d instructions", len(fn.Code))
	}
	fn.Append(Ret{Imm: 3, Dst: EAX})
	if len(fn.Code) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(fn.Code))
	}
	if fn.Code[0].Opcode() != "RETURN" {
		t.Errorf("expected RETURN, got %s", fn.Code[0].Opcode())
	}
}

func TestPrintProgram(t *testing.T) {
	prog := &Program{Functions: []Function{
		{Name: "main", Code: []Instruction{Ret{Imm: 0, Dst: EAX}}},
		{Name: "two", Code: []Instruction{Ret{Imm: -2, Dst: EAX}}},
	}}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgram(prog)

	want := "main() {\n  RETURN 0, eax\n}\n\ntwo() {\n  RETURN -2, eax\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
