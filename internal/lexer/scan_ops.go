package lexer

import (
	"fmt"

	"nbcell/internal/diag"
	"nbcell/internal/token"
)

// scanOperatorOrPunct ищет самый длинный пунктуатор с текущей позиции.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	for _, p := range token.Punctuators() {
		if !lx.cursor.HasPrefix(p.Text) {
			continue
		}
		// "?." перед цифрой: это тернарный оператор и число: a?.5:b
		if p.Kind == token.QuestionDot && isDec(lx.cursor.PeekAt(2)) {
			continue
		}
		for range p.Text {
			lx.cursor.Bump()
		}
		switch p.Kind {
		case token.LBrace:
			lx.braces = append(lx.braces, false)
		case token.RBrace:
			if len(lx.braces) > 0 {
				lx.braces = lx.braces[:len(lx.braces)-1]
			}
		}
		return token.Token{Kind: p.Kind, Span: lx.cursor.SpanFrom(start), Text: p.Text}
	}

	r := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", r))
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(r)}
}

// scanRegExp читает /body/flags. Внутри класса [...] слэш не завершает литерал.
func (lx *Lexer) scanRegExp() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	inClass := false
	for {
		if lx.cursor.EOF() || isLineTerminator(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedRegExp, sp, "unterminated regular expression")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(sp)}
		}
		r := lx.cursor.Bump()
		switch {
		case r == '\\':
			if !lx.cursor.EOF() && !isLineTerminator(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		case r == '[':
			inClass = true
		case r == ']':
			inClass = false
		case r == '/' && !inClass:
			for isIdentContinue(lx.cursor.Peek()) && !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.RegExpLit, Span: sp, Text: lx.cursor.Text(sp)}
		}
	}
}
