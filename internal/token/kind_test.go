package token_test

import (
	"testing"

	"nbcell/internal/source"
	"nbcell/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.NumberLit, token.BigIntLit, token.StringLit,
		token.RegExpLit, token.TemplateNoSub, token.TemplateHead,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwVar, token.Plus, token.LParen, token.TemplateTail}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestKeywordLookup(t *testing.T) {
	for _, word := range []string{"function", "class", "import", "typeof", "null"} {
		k, ok := token.LookupKeyword(word)
		if !ok || !k.IsKeyword() {
			t.Fatalf("%q should be a keyword", word)
		}
	}
	// контекстные слова остаются идентификаторами
	for _, word := range []string{"let", "async", "await", "of", "from", "static", "yield"} {
		if _, ok := token.LookupKeyword(word); ok {
			t.Fatalf("%q must be lexed as an identifier", word)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := map[token.Kind]string{
		token.EOF:        "EOF",
		token.KwFunction: "Kw(function)",
		token.Arrow:      "'=>'",
		token.UShrAssign: "'>>>='",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}

func TestPunctuatorsLongestFirst(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range token.Punctuators() {
		for prev := range seen {
			if len(prev) < len(p.Text) && p.Text[:len(prev)] == prev {
				t.Fatalf("%q listed after its prefix %q", p.Text, prev)
			}
		}
		seen[p.Text] = true
	}
	if !token.PlusAssign.IsAssign() || token.Arrow.IsAssign() {
		t.Fatalf("IsAssign misclassifies")
	}
}
