package ast

import (
	"bytes"
	"testing"
)

func TestUnaryOpString(t *testing.T) {
	tests := []struct {
		op   UnaryOp
		want string
	}{
		{OpNeg, "-"},
		{OpBitNot, "~"},
		{OpNot, "!"},
		{UnaryOp(99), "?"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("UnaryOp(%d).String() = %q, want %q", int(tt.op), got, tt.want)
		}
	}
}

func TestStructuralEquality(t *testing.T) {
	a := Unary{Op: OpNot, Expr: Unary{Op: OpNeg, Expr: Constant{Value: 1}}}
	b := Unary{Op: OpNot, Expr: Unary{Op: OpNeg, Expr: Constant{Value: 1}}}
	if a != b {
		t.Errorf("expected structurally equal nodes to compare equal")
	}
	c := Unary{Op: OpNot, Expr: Unary{Op: OpBitNot, Expr: Constant{Value: 1}}}
	if a == c {
		t.Errorf("expected different operators to compare unequal")
	}
}

func TestFormatExpr(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"constant", Constant{Value: 42}, "42"},
		{"negative constant", Unary{Op: OpNeg, Expr: Constant{Value: 2}}, "-2"},
		{"nested", Unary{Op: OpNot, Expr: Unary{Op: OpBitNot, Expr: Unary{Op: OpNeg, Expr: Constant{Value: 42}}}}, "!(~(-42))"},
		{"double negation", Unary{Op: OpNeg, Expr: Unary{Op: OpNeg, Expr: Constant{Value: 1}}}, "-(-1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatExpr(tt.expr); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintProgram(t *testing.T) {
	prog := &Program{Functions: []Function{
		{Name: "main", Body: Return{Expr: Constant{Value: 0}}},
		{Name: "other", Body: Return{Expr: Unary{Op: OpBitNot, Expr: Constant{Value: 3}}}},
	}}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgram(prog)

	want := "int main(void)\n{\n  return 0;\n}\n\nint other(void)\n{\n  return ~3;\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
