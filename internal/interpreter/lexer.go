package interpreter

import "fmt"

// TokenType identifies a lexical token.
type TokenType int

const (
	TokenIllegal TokenType = iota
	TokenEOF
	TokenInt
	TokenIdent
	TokenPlus
	TokenMinus
)

func (t TokenType) String() string {
	switch t {
	case TokenIllegal:
		return "ILLEGAL"
	case TokenEOF:
		return "EOF"
	case TokenInt:
		return "INT"
	case TokenIdent:
		return "IDENT"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token holds a lexed token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the input
}

// Lexer tokenizes expression input.
// Identifiers are maximal runs of ASCII letters, so "xy" is a single
// IDENT token and is rejected later by the parser.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a lexer for the input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token from the input.
// Once the input is exhausted it keeps returning TokenEOF.
func (l *Lexer) NextToken() Token {
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]
	switch {
	case ch == '+':
		l.pos++
		return Token{Type: TokenPlus, Literal: "+", Pos: start}
	case ch == '-':
		l.pos++
		return Token{Type: TokenMinus, Literal: "-", Pos: start}
	case isDigit(ch):
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
		return Token{Type: TokenInt, Literal: l.input[start:l.pos], Pos: start}
	case isLetter(ch):
		for l.pos < len(l.input) && isLetter(l.input[l.pos]) {
			l.pos++
		}
		return Token{Type: TokenIdent, Literal: l.input[start:l.pos], Pos: start}
	default:
		l.pos++
		return Token{Type: TokenIllegal, Literal: string(ch), Pos: start}
	}
}

// Tokens lexes the whole input, including the trailing EOF token.
func Tokens(input string) []Token {
	l := NewLexer(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == TokenEOF {
			return toks
		}
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
