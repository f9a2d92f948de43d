package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputFilename replaces a trailing ".c" with ext (which may be empty):
// prog.c -> prog.s, prog.c -> prog
func OutputFilename(filename, ext string) string {
	if strings.HasSuffix(filename, ".c") {
		return filename[:len(filename)-len(".c")] + ext
	}
	if ext == "" {
		return filename + ".out"
	}
	return filename + ext
}

// WriteAssembly writes assembly text to path
func WriteAssembly(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// AssembleAndLink turns assembly text into an executable at output.
// The intermediate .s file lives in a temporary directory and is always removed.
func AssembleAndLink(text, output string, opts *Options) error {
	cc, err := FindCC(opts)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "cc-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	asmFile := filepath.Join(tmpDir, "out.s")
	if err := WriteAssembly(asmFile, text); err != nil {
		return err
	}

	if _, err := run(opts, cc, asmFile, "-o", output); err != nil {
		return fmt.Errorf("assembling failed: %w", err)
	}
	return nil
}
