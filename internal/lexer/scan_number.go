package lexer

import (
	"nbcell/internal/diag"
	"nbcell/internal/token"
)

// scanNumber распознаёт:
// - десятичные: 0, 123, 1_000, 1.5, .5, 1e10, 1.5e-3
// - 0x/0o/0b с разделителями '_'
// - устаревшие восьмеричные 017 и 08/09 как десятичные
// - BigInt с суффиксом n
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.NumberLit
	bad := false

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			bad = !lx.scanDigits(isHex)
			kind = lx.bigIntSuffix(kind)
			return lx.finishNumber(start, kind, bad)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			bad = !lx.scanDigits(isOct)
			kind = lx.bigIntSuffix(kind)
			return lx.finishNumber(start, kind, bad)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			bad = !lx.scanDigits(isBin)
			kind = lx.bigIntSuffix(kind)
			return lx.finishNumber(start, kind, bad)
		}
		if isDec(lx.cursor.PeekAt(1)) {
			// 017: legacy octal, 089: десятичное
			lx.cursor.Bump()
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.finishNumber(start, kind, false)
		}
	}

	intDigits := false
	if isDec(lx.cursor.Peek()) {
		intDigits = lx.scanDigits(isDec)
		if !intDigits {
			bad = true
		}
	}

	if lx.cursor.Peek() == 'n' && intDigits {
		lx.cursor.Bump()
		return lx.finishNumber(start, token.BigIntLit, bad)
	}

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if isDec(lx.cursor.Peek()) && !lx.scanDigits(isDec) {
			bad = true
		}
	}

	if r := lx.cursor.Peek(); r == 'e' || r == 'E' {
		lx.cursor.Bump()
		if r := lx.cursor.Peek(); r == '+' || r == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) || !lx.scanDigits(isDec) {
			bad = true
		}
	}

	return lx.finishNumber(start, kind, bad)
}

// scanDigits reads digits with '_' separators; a separator must sit between
// two digits.
func (lx *Lexer) scanDigits(isDigit func(rune) bool) bool {
	ok := true
	n := 0
	lastSep := false
	for {
		r := lx.cursor.Peek()
		if r == '_' {
			if n == 0 || lastSep {
				ok = false
			}
			lastSep = true
			lx.cursor.Bump()
			continue
		}
		if !isDigit(r) || lx.cursor.EOF() {
			break
		}
		lastSep = false
		n++
		lx.cursor.Bump()
	}
	return ok && n > 0 && !lastSep
}

func (lx *Lexer) bigIntSuffix(kind token.Kind) token.Kind {
	if lx.cursor.Eat('n') {
		return token.BigIntLit
	}
	return kind
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind, bad bool) token.Token {
	// Литерал не может примыкать к идентификатору: 3in, 1px
	if isIdentStart(lx.cursor.Peek()) || isDec(lx.cursor.Peek()) {
		bad = true
		for isIdentContinue(lx.cursor.Peek()) && !lx.cursor.EOF() {
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Text(sp)
	if bad {
		lx.errLex(diag.LexBadNumber, sp, "malformed numeric literal "+text)
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
