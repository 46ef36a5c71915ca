package interpreter

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrEmptyExpression is returned when the input has no terms at all.
	ErrEmptyExpression = errors.New("empty expression")
	// ErrInvalidVariable is wrapped by syntax errors for identifiers longer than one letter.
	ErrInvalidVariable = errors.New("variable names must be a single letter")
)

// SyntaxError reports where and why an expression could not be parsed.
type SyntaxError struct {
	Pos int
	Msg string
	Err error // optional cause, e.g. ErrInvalidVariable or a strconv error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse parses input into an expression tree.
//
//	expr := term (("+" | "-") term)*
//	term := INT | LETTER
//
// Operators are applied left to right, so "1-2+3" becomes Add(Subtract(1, 2), 3).
func Parse(input string) (Expr, error) {
	if input == "" {
		return nil, ErrEmptyExpression
	}

	p := &parser{lexer: NewLexer(input)}
	p.next()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Type {
		case TokenEOF:
			return left, nil
		case TokenPlus, TokenMinus:
			op := p.tok.Type
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			if op == TokenPlus {
				left = Add{Left: left, Right: right}
			} else {
				left = Subtract{Left: left, Right: right}
			}
		default:
			return nil, p.unexpected("operator")
		}
	}
}

type parser struct {
	lexer *Lexer
	tok   Token
}

func (p *parser) next() {
	p.tok = p.lexer.NextToken()
}

func (p *parser) parseTerm() (Expr, error) {
	tok := p.tok
	switch tok.Type {
	case TokenInt:
		n, err := strconv.Atoi(tok.Literal)
		if err != nil {
			return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("invalid integer %q", tok.Literal), Err: err}
		}
		p.next()
		return Literal{Value: n}, nil
	case TokenIdent:
		if len(tok.Literal) != 1 {
			return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("invalid variable %q", tok.Literal), Err: ErrInvalidVariable}
		}
		p.next()
		return Variable{Name: rune(tok.Literal[0])}, nil
	default:
		return nil, p.unexpected("integer or variable")
	}
}

func (p *parser) unexpected(want string) error {
	switch p.tok.Type {
	case TokenEOF:
		return &SyntaxError{Pos: p.tok.Pos, Msg: fmt.Sprintf("expected %s, got end of input", want)}
	case TokenIllegal:
		return &SyntaxError{Pos: p.tok.Pos, Msg: fmt.Sprintf("unexpected character %q", p.tok.Literal)}
	default:
		return &SyntaxError{Pos: p.tok.Pos, Msg: fmt.Sprintf("expected %s, got %q", want, p.tok.Literal)}
	}
}
