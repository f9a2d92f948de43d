package driver

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		filename string
		ext      string
		want     string
	}{
		{"prog.c", ".s", "prog.s"},
		{"dir/prog.c", "", "dir/prog"},
		{"prog", ".s", "prog.s"},
		{"prog", "", "prog.out"},
		{"prog.cc", ".s", "prog.cc.s"},
	}
	for _, tt := range tests {
		if got := OutputFilename(tt.filename, tt.ext); got != tt.want {
			t.Errorf("OutputFilename(%q, %q) = %q, want %q", tt.filename, tt.ext, got, tt.want)
		}
	}
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.c")
	content := "int main(void) { return 0; }\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	got, err := ReadSource(path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != content {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestReadSourceMissingFile(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "missing.c"), &Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestWriteAssembly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.s")
	if err := WriteAssembly(path, "\tret\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "\tret\n" {
		t.Errorf("got %q", data)
	}
}

func TestFindCCNotFound(t *testing.T) {
	_, err := FindCC(&Options{CC: "definitely-not-a-compiler-xyz"})
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

func TestAssembleAndLinkToolNotFound(t *testing.T) {
	out := filepath.Join(t.TempDir(), "prog")
	err := AssembleAndLink("\tret\n", out, &Options{CC: "definitely-not-a-compiler-xyz"})
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Errorf("expected no output file")
	}
}

// requireCC skips unless a system compiler for the supported target is present
func requireCC(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" || runtime.GOARCH != "amd64" {
		t.Skip("requires an x86-64 linux host")
	}
	cc, err := FindCC(nil)
	if err != nil {
		t.Skip("no system C compiler found")
	}
	return cc
}

func TestPreprocessExternal(t *testing.T) {
	requireCC(t)

	path := filepath.Join(t.TempDir(), "main.c")
	content := "#define VALUE 3\nint main(void) { return VALUE + OFFSET; }\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	var log bytes.Buffer
	got, err := ReadSource(path, &Options{
		ExternalCPP: true,
		Defines:     map[string]string{"OFFSET": "4"},
		Verbose:     true,
		Log:         &log,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "return 3 + 4;") {
		t.Errorf("expected macros expanded, got %q", got)
	}
	if strings.Contains(got, "#") {
		t.Errorf("expected no line markers or directives, got %q", got)
	}
	if !strings.Contains(log.String(), "-DOFFSET=4") {
		t.Errorf("expected verbose log of the command, got %q", log.String())
	}
}

func TestAssembleAndLink(t *testing.T) {
	requireCC(t)

	out := filepath.Join(t.TempDir(), "prog")
	text := "\t.globl main\n\t.type main, @function\nmain:\n\tmovl $7, %eax\n\tret\n" +
		".section .note.GNU-stack, \"\", @progbits\n"
	if err := AssembleAndLink(text, out, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := exec.Command(out).Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 7 {
		t.Errorf("expected exit code 7, got %v", err)
	}
}
