package driver

import (
	"fmt"
	"os"
	"sort"
)

// ReadSource returns the source text of filename, preprocessed by the
// system compiler when opts.ExternalCPP is set.
func ReadSource(filename string, opts *Options) (string, error) {
	if opts != nil && opts.ExternalCPP {
		return preprocessExternal(filename, opts)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", filename, err)
	}
	return string(content), nil
}

// preprocessExternal runs "<cc> -E -P" without line markers, which the
// lexer does not understand
func preprocessExternal(filename string, opts *Options) (string, error) {
	cc, err := FindCC(opts)
	if err != nil {
		return "", err
	}

	args := []string{"-E", "-P"}
	for _, path := range opts.IncludePaths {
		args = append(args, "-I"+path)
	}

	// Sorted so the command line is stable
	names := make([]string, 0, len(opts.Defines))
	for name := range opts.Defines {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if value := opts.Defines[name]; value != "" {
			args = append(args, "-D"+name+"="+value)
		} else {
			args = append(args, "-D"+name)
		}
	}
	args = append(args, filename)

	out, err := run(opts, cc, args...)
	if err != nil {
		return "", fmt.Errorf("preprocessing failed: %w", err)
	}
	return out, nil
}
