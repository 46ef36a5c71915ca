package codegen

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"github.com/podhmo/exprcalc/internal/interpreter"
)

// GenerateFunc creates the Go source of a function computing expr:
//
//	func Name(vars map[rune]int) int { return ... }
//
// Variables read vars['x'], so an unbound variable contributes 0 just as it
// does in the interpreter.
func GenerateFunc(expr interpreter.Expr, funcName string) (string, error) {
	if !token.IsIdentifier(funcName) {
		return "", fmt.Errorf("invalid function name %q", funcName)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// %s computes %s.\n", funcName, expr.String())
	fmt.Fprintf(&sb, "func %s(vars map[rune]int) int {\n", funcName)
	sb.WriteString("\treturn ")
	writeExpr(&sb, expr)
	sb.WriteString("\n}\n")
	return sb.String(), nil
}

// GenerateFile wraps function sources into a complete Go file.
func GenerateFile(packageName string, funcs ...string) (string, error) {
	if !token.IsIdentifier(packageName) {
		return "", fmt.Errorf("invalid package name %q", packageName)
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by exprcalc. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n", packageName)
	for _, fn := range funcs {
		sb.WriteString("\n")
		sb.WriteString(fn)
	}
	return sb.String(), nil
}

func writeExpr(sb *strings.Builder, expr interpreter.Expr) {
	switch e := expr.(type) {
	case interpreter.Literal:
		sb.WriteString(strconv.Itoa(e.Value))
	case interpreter.Variable:
		fmt.Fprintf(sb, "vars[%s]", strconv.QuoteRune(e.Name))
	case interpreter.Add:
		writeExpr(sb, e.Left)
		sb.WriteString(" + ")
		writeOperand(sb, e.Right)
	case interpreter.Subtract:
		writeExpr(sb, e.Left)
		sb.WriteString(" - ")
		writeOperand(sb, e.Right)
	}
}

// writeOperand parenthesizes binary right operands; Go's + and - are
// left-associative too, so a-(b-c) must keep its parentheses.
func writeOperand(sb *strings.Builder, expr interpreter.Expr) {
	switch expr.(type) {
	case interpreter.Add, interpreter.Subtract:
		sb.WriteString("(")
		writeExpr(sb, expr)
		sb.WriteString(")")
	default:
		writeExpr(sb, expr)
	}
}
