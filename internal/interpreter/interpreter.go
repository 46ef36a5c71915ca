package interpreter

import (
	"context"
	"fmt"
	"log/slog"
)

// Evaluate parses input and evaluates it against c.
// Unbound variables evaluate to 0; any syntax error fails the whole expression.
func Evaluate(ctx context.Context, input string, c *Context) (int, error) {
	slog.DebugContext(ctx, "Evaluate: start", "input", input)

	expr, err := Parse(input)
	if err != nil {
		slog.DebugContext(ctx, "Evaluate: end (error)", "input", input, "error", err)
		return 0, fmt.Errorf("parsing %q: %w", input, err)
	}

	for _, name := range Vars(expr) {
		if _, ok := c.Lookup(name); !ok {
			slog.DebugContext(ctx, "\tunbound variable, using 0", "name", string(name))
		}
	}

	result := Eval(expr, c)
	slog.DebugContext(ctx, "Evaluate: end", "input", input, "tree", expr.String(), "result", result)
	return result, nil
}
