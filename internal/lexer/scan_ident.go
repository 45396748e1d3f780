package lexer

import (
	"strings"

	"nbcell/internal/diag"
	"nbcell/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	name, escaped, ok := lx.scanIdentName()
	sp := lx.cursor.SpanFrom(start)
	if !ok {
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(sp)}
	}
	// Ключевое слово, записанное через \u-escape, остаётся идентификатором,
	// парсер сам решит, допустимо ли оно.
	if !escaped {
		if k, isKw := token.LookupKeyword(name); isKw {
			return token.Token{Kind: k, Span: sp, Text: name}
		}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: name}
}

func (lx *Lexer) scanPrivateName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	if !isIdentStart(lx.cursor.Peek()) && lx.cursor.Peek() != '\\' {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "'#' must be followed by an identifier")
		return token.Token{Kind: token.Invalid, Span: sp, Text: "#"}
	}
	name, _, ok := lx.scanIdentName()
	sp := lx.cursor.SpanFrom(start)
	if !ok {
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(sp)}
	}
	return token.Token{Kind: token.PrivateName, Span: sp, Text: "#" + name}
}

// scanIdentName reads IdentifierName and returns its cooked value.
func (lx *Lexer) scanIdentName() (name string, escaped, ok bool) {
	var b strings.Builder
	first := true
	for {
		r := lx.cursor.Peek()
		if r == '\\' {
			escStart := lx.cursor.Mark()
			lx.cursor.Bump()
			if !lx.cursor.Eat('u') {
				sp := lx.cursor.SpanFrom(escStart)
				lx.errLex(diag.LexBadEscape, sp, "expected \\u escape in identifier")
				return b.String(), true, false
			}
			cp, good := lx.scanUnicodeEscapeBody()
			valid := good && ((first && isIdentStart(cp)) || (!first && isIdentContinue(cp)))
			if !valid {
				sp := lx.cursor.SpanFrom(escStart)
				lx.errLex(diag.LexBadEscape, sp, "invalid identifier escape")
				return b.String(), true, false
			}
			b.WriteRune(cp)
			escaped = true
			first = false
			continue
		}
		if (first && !isIdentStart(r)) || (!first && !isIdentContinue(r)) || lx.cursor.EOF() {
			break
		}
		b.WriteRune(lx.cursor.Bump())
		first = false
	}
	return b.String(), escaped, true
}

// scanUnicodeEscapeBody reads XXXX or {X...} after "\u".
func (lx *Lexer) scanUnicodeEscapeBody() (rune, bool) {
	if lx.cursor.Eat('{') {
		var v rune
		digits := 0
		for isHex(lx.cursor.Peek()) {
			v = v*16 + hexVal(lx.cursor.Bump())
			digits++
			if v > 0x10FFFF {
				return 0, false
			}
		}
		if digits == 0 || !lx.cursor.Eat('}') {
			return 0, false
		}
		return v, true
	}
	var v rune
	for range 4 {
		if !isHex(lx.cursor.Peek()) {
			return 0, false
		}
		v = v*16 + hexVal(lx.cursor.Bump())
	}
	return v, true
}

func hexVal(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - 'A' + 10
	}
}
