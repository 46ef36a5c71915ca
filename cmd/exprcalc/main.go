package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/podhmo/exprcalc"
	"github.com/podhmo/exprcalc/internal/codegen"
	"github.com/podhmo/exprcalc/internal/config"
	"github.com/podhmo/exprcalc/internal/interpreter"
)

func main() {
	// debug mode: if DEBUG environment variable is set, enable debug logging
	if _, ok := os.LookupEnv("DEBUG"); ok {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: exprcalc <subcommand> [options]")
		fmt.Fprintln(os.Stderr, "Available subcommands: eval, emit, demo")
		os.Exit(1)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "eval":
		evalCmd := flag.NewFlagSet("eval", flag.ExitOnError)
		cfg := &config.Config{}
		evalCmd.Var(&cfg.Vars, "var", "Variable binding as name=value (repeatable)")
		evalCmd.StringVar(&cfg.BindingsFile, "bindings", "", "Path to a YAML or TOML file of bindings")
		evalCmd.BoolVar(&cfg.Strict, "strict", false, "Report parse errors instead of printing 0")
		evalCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: exprcalc eval [options] <expression>\n\nOptions:\n")
			evalCmd.PrintDefaults()
		}
		evalCmd.Parse(os.Args[2:])

		if evalCmd.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: exactly one expression must be specified for eval.")
			evalCmd.Usage()
			os.Exit(1)
		}
		cfg.Expression = evalCmd.Arg(0)

		if err := runEval(ctx, os.Stdout, cfg); err != nil {
			slog.Error("Error running exprcalc (eval)", "error", err)
			os.Exit(1)
		}

	case "emit":
		emitCmd := flag.NewFlagSet("emit", flag.ExitOnError)
		cfg := &config.Config{}
		emitCmd.StringVar(&cfg.FuncName, "func", "Calc", "Name of the generated function")
		emitCmd.StringVar(&cfg.PackageName, "package", "main", "Package name of the generated file")
		emitCmd.StringVar(&cfg.OutputFile, "o", "", "Output file (default: stdout)")
		emitCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: exprcalc emit [options] <expression>\n\nOptions:\n")
			emitCmd.PrintDefaults()
		}
		emitCmd.Parse(os.Args[2:])

		if emitCmd.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "Error: exactly one expression must be specified for emit.")
			emitCmd.Usage()
			os.Exit(1)
		}
		cfg.Expression = emitCmd.Arg(0)

		if err := runEmit(ctx, os.Stdout, cfg); err != nil {
			slog.Error("Error running exprcalc (emit)", "error", err)
			os.Exit(1)
		}

	case "demo":
		if err := runDemo(os.Stdout); err != nil {
			slog.Error("Error running exprcalc (demo)", "error", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "Error: Unknown subcommand '%s'\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Available subcommands: eval, emit, demo")
		os.Exit(1)
	}
}

// runEval prints the value of cfg.Expression. Outside strict mode a
// malformed expression prints 0, the evaluator's sentinel result.
func runEval(ctx context.Context, w io.Writer, cfg *config.Config) error {
	vars, err := cfg.Bindings()
	if err != nil {
		return fmt.Errorf("failed to load bindings: %w", err)
	}

	result, err := interpreter.Evaluate(ctx, cfg.Expression, interpreter.NewContextFrom(vars))
	if err != nil {
		if cfg.Strict {
			return err
		}
		slog.DebugContext(ctx, "expression rejected, printing 0", "error", err)
		result = 0
	}
	fmt.Fprintln(w, result)
	return nil
}

// runEmit compiles cfg.Expression into a Go function.
func runEmit(ctx context.Context, w io.Writer, cfg *config.Config) error {
	expr, err := interpreter.Parse(cfg.Expression)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", cfg.Expression, err)
	}

	fn, err := codegen.GenerateFunc(expr, cfg.FuncName)
	if err != nil {
		return fmt.Errorf("failed to generate function: %w", err)
	}
	src, err := codegen.GenerateFile(cfg.PackageName, fn)
	if err != nil {
		return fmt.Errorf("failed to generate file: %w", err)
	}

	if cfg.OutputFile != "" {
		if err := codegen.WriteFile(cfg.OutputFile, src); err != nil {
			return fmt.Errorf("failed to write generated code: %w", err)
		}
		slog.InfoContext(ctx, "exprcalc: wrote generated code", "path", cfg.OutputFile, "func", cfg.FuncName)
		return nil
	}

	formatted, err := codegen.Format(cfg.FuncName+".go", src)
	if err != nil {
		return err
	}
	_, err = w.Write(formatted)
	return err
}

// runDemo evaluates a hand-built tree, then lets the processor parse a few
// expressions from text.
func runDemo(w io.Writer) error {
	heading := color.New(color.FgCyan, color.Bold)

	heading.Fprintln(w, "Interpreter")

	c := interpreter.NewContext()
	c.SetVariable('x', 2)
	c.SetVariable('y', 4)
	c.SetVariable('z', 8)

	// (y + z) - x
	expr := interpreter.Subtract{
		Left: interpreter.Add{
			Left:  interpreter.Variable{Name: 'y'}, // 4 + 8 = 12
			Right: interpreter.Variable{Name: 'z'},
		},
		Right: interpreter.Variable{Name: 'x'}, // 12 - 2 = 10
	}
	fmt.Fprintf(w, "Expression result: %d\n", interpreter.Eval(expr, c))

	heading.Fprintln(w, "\nExpression processor")

	p := exprcalc.NewExpressionProcessor()
	p.Variables['x'] = 3
	for _, input := range []string{"1+2+3", "1+2+xy", "10-2-x"} {
		fmt.Fprintf(w, "Calculate(%q) = %d\n", input, p.Calculate(input))
	}

	if _, err := interpreter.Parse("1+2+xy"); err != nil {
		fmt.Fprintf(w, "1+2+xy is rejected: %v\n", err)
	}
	return nil
}
