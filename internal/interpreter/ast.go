package interpreter

import (
	"slices"
	"strconv"
)

// Expr is a node of a parsed expression.
// The set of implementations is closed: Literal, Variable, Add and Subtract.
type Expr interface {
	exprNode()
	String() string
}

// Literal is an integer constant.
type Literal struct {
	Value int
}

// Variable is a reference to a single-letter variable.
type Variable struct {
	Name rune
}

// Add is Left + Right.
type Add struct {
	Left  Expr
	Right Expr
}

// Subtract is Left - Right.
type Subtract struct {
	Left  Expr
	Right Expr
}

func (Literal) exprNode()  {}
func (Variable) exprNode() {}
func (Add) exprNode()      {}
func (Subtract) exprNode() {}

// String renders the expression back into its input syntax. The parser
// only builds left-leaning trees, which is all that syntax can express.
func (e Literal) String() string  { return strconv.Itoa(e.Value) }
func (e Variable) String() string { return string(e.Name) }
func (e Add) String() string      { return e.Left.String() + "+" + e.Right.String() }
func (e Subtract) String() string { return e.Left.String() + "-" + e.Right.String() }

// Vars returns the distinct variable names referenced by expr, sorted.
func Vars(expr Expr) []rune {
	seen := map[rune]bool{}
	var walk func(Expr)
	walk = func(e Expr) {
		switch e := e.(type) {
		case Variable:
			seen[e.Name] = true
		case Add:
			walk(e.Left)
			walk(e.Right)
		case Subtract:
			walk(e.Left)
			walk(e.Right)
		}
	}
	walk(expr)

	names := make([]rune, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
