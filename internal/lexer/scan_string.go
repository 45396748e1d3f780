package lexer

import (
	"strings"

	"nbcell/internal/diag"
	"nbcell/internal/token"
)

// scanString читает строку в одинарных или двойных кавычках.
// Text: исходный текст с кавычками, Value: значение после escape-обработки.
func (lx *Lexer) scanString(quote rune) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	var b strings.Builder
	for {
		if lx.cursor.EOF() || isStringBreak(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(sp)}
		}
		r := lx.cursor.Bump()
		if r == quote {
			break
		}
		if r == '\\' {
			if !lx.scanEscape(&b, false) {
				lx.skipToQuote(quote)
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(sp)}
			}
			continue
		}
		b.WriteRune(r)
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.cursor.Text(sp), Value: b.String()}
}

// U+2028/U+2029 are allowed inside string literals since ES2019.
func isStringBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

func (lx *Lexer) skipToQuote(quote rune) {
	for !lx.cursor.EOF() && !isStringBreak(lx.cursor.Peek()) {
		if lx.cursor.Bump() == quote {
			return
		}
	}
}

// scanTemplate читает фрагмент шаблона после открывающего '`' или '}'.
// Завершается на '`' (whole/tail) или на "${" (head/middle).
func (lx *Lexer) scanTemplate(start Mark, closed, open token.Kind) token.Token {
	var b strings.Builder
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(sp)}
		}
		r := lx.cursor.Bump()
		switch {
		case r == '`':
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: closed, Span: sp, Text: lx.cursor.Text(sp), Value: b.String()}
		case r == '$' && lx.cursor.Peek() == '{':
			lx.cursor.Bump()
			lx.braces = append(lx.braces, true)
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: open, Span: sp, Text: lx.cursor.Text(sp), Value: b.String()}
		case r == '\\':
			// В шаблонах неверные escape-последовательности допустимы только
			// в тегированных шаблонах; здесь их тоже пропускаем.
			lx.scanEscape(&b, true)
		case r == '\r':
			lx.cursor.Eat('\n')
			b.WriteRune('\n')
		default:
			b.WriteRune(r)
		}
	}
}

// scanEscape handles the part after a backslash and appends the cooked value.
func (lx *Lexer) scanEscape(b *strings.Builder, lenient bool) bool {
	escStart := lx.cursor.Mark() - 1
	if lx.cursor.EOF() {
		return false
	}
	r := lx.cursor.Bump()
	switch r {
	case 'n':
		b.WriteRune('\n')
	case 't':
		b.WriteRune('\t')
	case 'r':
		b.WriteRune('\r')
	case 'b':
		b.WriteRune('\b')
	case 'f':
		b.WriteRune('\f')
	case 'v':
		b.WriteRune('\v')
	case '\r':
		lx.cursor.Eat('\n')
	case '\n', 0x2028, 0x2029:
		// продолжение строки
	case 'x':
		var v rune
		for range 2 {
			if !isHex(lx.cursor.Peek()) {
				return lx.badEscape(escStart, lenient)
			}
			v = v*16 + hexVal(lx.cursor.Bump())
		}
		b.WriteRune(v)
	case 'u':
		v, ok := lx.scanUnicodeEscapeBody()
		if !ok {
			return lx.badEscape(escStart, lenient)
		}
		b.WriteRune(v)
	default:
		if isOct(r) {
			// legacy octal escape: \0, \12, \377
			v := r - '0'
			limit := 2
			if r > '3' {
				limit = 1
			}
			for i := 0; i < limit && isOct(lx.cursor.Peek()); i++ {
				v = v*8 + (lx.cursor.Bump() - '0')
			}
			b.WriteRune(v)
			return true
		}
		b.WriteRune(r)
	}
	return true
}

func (lx *Lexer) badEscape(start Mark, lenient bool) bool {
	if lenient {
		return true
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadEscape, sp, "invalid escape sequence")
	return false
}
