package lucq

import (
	"fmt"
	"strconv"
)

// TokenType defines the kinds of tokens produced by Deparse.
type TokenType int

const (
	TokenLiteral TokenType = iota // operator or parenthesis, kept verbatim
	TokenTerm                     // search term, optionally qualified by a field
)

func (t TokenType) String() string {
	switch t {
	case TokenLiteral:
		return "literal"
	case TokenTerm:
		return "term"
	default:
		return "unknown"
	}
}

// Token is a single element of a deparsed query.
//
// For a TokenLiteral, Value holds the operator text and Field is empty.
// For a TokenTerm, Field holds the field name and Value the term text. An
// empty Field marks a global term; an empty field name is never produced.
type Token struct {
	Type  TokenType
	Field string
	Value string
}

// Tokens is an ordered token sequence. Its order mirrors the left-to-right
// layout of the query it was deparsed from.
type Tokens []Token

// NewLiteral returns an operator or parenthesis token.
func NewLiteral(text string) Token {
	return Token{Type: TokenLiteral, Value: text}
}

// NewTerm returns a term token qualified by field. An empty field yields a
// global term.
func NewTerm(field, term string) Token {
	return Token{Type: TokenTerm, Field: field, Value: term}
}

// NewGlobalTerm returns a term token without a field.
func NewGlobalTerm(term string) Token {
	return Token{Type: TokenTerm, Value: term}
}

func (t Token) IsLiteral() bool { return t.Type == TokenLiteral }
func (t Token) IsTerm() bool    { return t.Type == TokenTerm }

// HasField reports whether t is a field-qualified term.
func (t Token) HasField() bool { return t.Type == TokenTerm && t.Field != "" }

func (t Token) String() string {
	switch t.Type {
	case TokenLiteral:
		return fmt.Sprintf("Literal(%s)", t.Value)
	case TokenTerm:
		field := "<global>"
		if t.Field != "" {
			field = t.Field
		}
		return fmt.Sprintf("Term(%s, %s)", field, strconv.Quote(t.Value))
	default:
		return fmt.Sprintf("Token(%d, %q)", t.Type, t.Value)
	}
}

// Clone returns a copy of ts that can be modified without affecting ts.
func (ts Tokens) Clone() Tokens {
	if ts == nil {
		return nil
	}
	out := make(Tokens, len(ts))
	copy(out, ts)
	return out
}

// Terms returns the indices of the term tokens in ts.
func (ts Tokens) Terms() []int {
	var idx []int
	for i, t := range ts {
		if t.IsTerm() {
			idx = append(idx, i)
		}
	}
	return idx
}
