// Package exprcalc evaluates small arithmetic expressions built from integer
// literals and single-letter variables joined by + and -.
//
// Expressions are evaluated strictly left to right. There are no
// parentheses, no whitespace and no other operators. A variable that is not
// bound evaluates to 0. Any malformed expression, including an empty one or
// one that uses a multi-letter variable such as "xy", evaluates to 0 as a
// whole; there is no separate error result.
//
//	exprcalc.Evaluate("1+2+3", nil)                   // 6
//	exprcalc.Evaluate("1+2+xy", nil)                  // 0
//	exprcalc.Evaluate("10-2-x", map[rune]int{'x': 3}) // 5
//
// Evaluate keeps no state between calls and is safe for concurrent use as
// long as callers do not modify the bindings map while it runs.
package exprcalc

import (
	"context"

	"github.com/podhmo/exprcalc/internal/interpreter"
)

// Evaluate returns the value of expression under bindings, or 0 if the
// expression cannot be parsed.
func Evaluate(expression string, bindings map[rune]int) int {
	expr, err := interpreter.Parse(expression)
	if err != nil {
		return 0
	}
	return interpreter.Eval(expr, interpreter.NewContextFrom(bindings))
}

// EvaluateContext is like Evaluate but routes through the logging evaluator,
// so debug logs carry ctx.
func EvaluateContext(ctx context.Context, expression string, bindings map[rune]int) int {
	result, err := interpreter.Evaluate(ctx, expression, interpreter.NewContextFrom(bindings))
	if err != nil {
		return 0
	}
	return result
}

// ExpressionProcessor evaluates expressions against its Variables.
type ExpressionProcessor struct {
	Variables map[rune]int
}

// NewExpressionProcessor returns a processor with no variables bound.
func NewExpressionProcessor() *ExpressionProcessor {
	return &ExpressionProcessor{Variables: make(map[rune]int)}
}

// Calculate evaluates expression against p.Variables.
func (p *ExpressionProcessor) Calculate(expression string) int {
	return Evaluate(expression, p.Variables)
}
