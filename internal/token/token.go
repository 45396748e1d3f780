package token

import (
	"nbcell/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Value holds the cooked contents of string and template tokens.
	Value string
	// NewlineBefore is set when a line terminator separates the token from
	// the previous one; automatic semicolon insertion depends on it.
	NewlineBefore bool
	Leading       []Trivia
}

// IsLiteral reports whether the token is a numeric, string, regexp or template literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, BigIntLit, StringLit, RegExpLit, TemplateNoSub, TemplateHead:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsWord reports whether the token is an identifier, private name or
// keyword; any of them may name a property.
func (t Token) IsWord() bool {
	return t.Kind == Ident || t.Kind.IsKeyword()
}

// Is reports whether the token is the identifier spelled word.
func (t Token) Is(word string) bool {
	return t.Kind == Ident && t.Text == word
}
