package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/txloc1909/cc/pkg/asm"
	"github.com/txloc1909/cc/pkg/ast"
	"github.com/txloc1909/cc/pkg/codegen"
	"github.com/txloc1909/cc/pkg/driver"
	"github.com/txloc1909/cc/pkg/ir"
	"github.com/txloc1909/cc/pkg/lexer"
	"github.com/txloc1909/cc/pkg/parser"
)

var version = "0.1.0"

// Stage flags; at most one may be set
var (
	stopAfterLex     bool
	stopAfterParse   bool
	stopAfterCodegen bool
	emitAssembly     bool // -S
)

// Driver options
var (
	outputPath   string
	ccPath       string
	includePaths []string
	defineFlags  []string
	externalCPP  bool
	verbose      bool
)

// stage selects how far the pipeline runs
type stage int

const (
	stageLink stage = iota // assemble and link an executable
	stageLex
	stageParse
	stageCodegen
	stageAssembly
)

func selectedStage() stage {
	switch {
	case stopAfterLex:
		return stageLex
	case stopAfterParse:
		return stageParse
	case stopAfterCodegen:
		return stageCodegen
	case emitAssembly:
		return stageAssembly
	}
	return stageLink
}

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cc: %v\n", err)
		return 1
	}
	return 0
}

// stageFlagNames lists stage flags that also accept single-dash style
var stageFlagNames = []string{"lex", "parse", "codegen"}

// normalizeFlags converts single-dash flags like -lex to --lex
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range stageFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

// wordSepNormalizeFunc lets --external_cpp stand for --external-cpp
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cc [file]",
		Short: "cc compiles a small subset of C to x86-64 assembly",
		Long: `cc translates C programs made of int functions returning a
constant expression into x86-64 assembly for Linux, and by default
assembles and links them with the system C compiler.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			return compile(args[0], selectedStage(), buildDriverOptions(errOut), out)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().BoolVar(&stopAfterLex, "lex", false, "Stop after lexing and print the tokens")
	rootCmd.Flags().BoolVar(&stopAfterParse, "parse", false, "Stop after parsing and print the AST")
	rootCmd.Flags().BoolVar(&stopAfterCodegen, "codegen", false, "Stop after code generation and print the IR")
	rootCmd.Flags().BoolVarP(&emitAssembly, "assembly", "S", false, "Write an assembly file instead of an executable")
	rootCmd.MarkFlagsMutuallyExclusive("lex", "parse", "codegen", "assembly")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file")
	rootCmd.Flags().StringVar(&ccPath, "cc", os.Getenv("CC"), "C compiler used to preprocess, assemble and link")
	rootCmd.Flags().StringArrayVarP(&includePaths, "include", "I", nil, "Add directory to include search path (with --external-cpp)")
	rootCmd.Flags().StringArrayVarP(&defineFlags, "define", "D", nil, "Define macro NAME or NAME=VALUE (with --external-cpp)")
	rootCmd.Flags().BoolVar(&externalCPP, "external-cpp", false, "Run the source through the system C preprocessor")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print external commands as they run")
	rootCmd.Flags().SetNormalizeFunc(wordSepNormalizeFunc)

	return rootCmd
}

// buildDriverOptions creates driver.Options from CLI flags
func buildDriverOptions(errOut io.Writer) *driver.Options {
	opts := &driver.Options{
		CC:           ccPath,
		IncludePaths: includePaths,
		Defines:      make(map[string]string),
		ExternalCPP:  externalCPP,
		Verbose:      verbose,
		Log:          errOut,
	}

	// Parse -D flags (NAME or NAME=VALUE)
	for _, d := range defineFlags {
		if idx := strings.Index(d, "="); idx >= 0 {
			opts.Defines[d[:idx]] = d[idx+1:]
		} else {
			opts.Defines[d] = ""
		}
	}

	return opts
}

// compile runs the pipeline up to st. Nothing is written on lex or parse errors.
func compile(filename string, st stage, opts *driver.Options, out io.Writer) error {
	source, err := driver.ReadSource(filename, opts)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if st == stageLex {
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
		return nil
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	if st == stageParse {
		ast.NewPrinter(out).PrintProgram(program)
		return nil
	}

	lowered := codegen.Lower(program)
	if st == stageCodegen {
		ir.NewPrinter(out).PrintProgram(lowered)
		return nil
	}

	text := asm.Emit(lowered)
	if st == stageAssembly {
		return driver.WriteAssembly(outputFor(filename, ".s"), text)
	}
	return driver.AssembleAndLink(text, outputFor(filename, ""), opts)
}

// outputFor returns -o when given, otherwise the input name with ext
func outputFor(filename, ext string) string {
	if outputPath != "" {
		return outputPath
	}
	return driver.OutputFilename(filename, ext)
}
