package interpreter

// Context holds the variable bindings an expression is evaluated against.
// It is read-only during evaluation.
type Context struct {
	variables map[rune]int
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{variables: make(map[rune]int)}
}

// NewContextFrom creates a context backed by a copy of vars.
func NewContextFrom(vars map[rune]int) *Context {
	c := &Context{variables: make(map[rune]int, len(vars))}
	for name, value := range vars {
		c.variables[name] = value
	}
	return c
}

// SetVariable binds name to value.
func (c *Context) SetVariable(name rune, value int) {
	c.variables[name] = value
}

// GetVariable returns the value bound to name, or 0 if it is unbound.
func (c *Context) GetVariable(name rune) int {
	if c == nil {
		return 0
	}
	return c.variables[name]
}

// Lookup is like GetVariable but also reports whether name is bound.
func (c *Context) Lookup(name rune) (int, bool) {
	if c == nil {
		return 0, false
	}
	v, ok := c.variables[name]
	return v, ok
}

// Eval evaluates expr against c. A nil context behaves as an empty one.
func Eval(expr Expr, c *Context) int {
	switch e := expr.(type) {
	case Literal:
		return e.Value
	case Variable:
		return c.GetVariable(e.Name)
	case Add:
		return Eval(e.Left, c) + Eval(e.Right, c)
	case Subtract:
		return Eval(e.Left, c) - Eval(e.Right, c)
	default:
		panic("interpreter: unknown expression node") // the Expr set is closed
	}
}
