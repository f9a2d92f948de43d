// Package driver handles the I/O around compilation: reading source,
// running the system C compiler as preprocessor and assembler/linker,
// and naming and cleaning up output files.
package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrToolNotFound indicates no system C compiler could be located
var ErrToolNotFound = errors.New("no C compiler found")

// Options configures the external tools
type Options struct {
	CC           string            // compiler driver; empty means search $CC, cc, gcc, clang
	IncludePaths []string          // -I directories for the external preprocessor
	Defines      map[string]string // -D macros (name -> value, empty string for simple define)
	ExternalCPP  bool              // run source through "<cc> -E -P" before lexing
	Verbose      bool              // echo external commands to Log
	Log          io.Writer         // destination for verbose output
}

// FindCC returns the compiler driver to use
func FindCC(opts *Options) (string, error) {
	candidates := []string{"cc", "gcc", "clang"}
	if env := os.Getenv("CC"); env != "" {
		candidates = append([]string{env}, candidates...)
	}
	if opts != nil && opts.CC != "" {
		candidates = []string{opts.CC}
	}

	for _, cmd := range candidates {
		if path, err := exec.LookPath(cmd); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w (tried: %s)", ErrToolNotFound, strings.Join(candidates, ", "))
}

// run executes an external tool and returns its stdout
func run(opts *Options, name string, args ...string) (string, error) {
	if opts != nil && opts.Verbose && opts.Log != nil {
		fmt.Fprintf(opts.Log, "cc: running %s %s\n", name, strings.Join(args, " "))
	}

	cmd := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed: %w\n%s", name, err, stderr.String())
	}
	return stdout.String(), nil
}
