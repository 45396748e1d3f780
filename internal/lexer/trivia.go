package lexer

import (
	"nbcell/internal/diag"
	"nbcell/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - пробелы (включая \t, \v, \f, NBSP, BOM, Zs) коалесцируются в один TriviaSpace
// - переводы строк (\n, \r, U+2028, U+2029): в один TriviaNewline
// - //... до конца строки -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (не вложенные)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		r := lx.cursor.Peek()

		if isSpace(r) {
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.keep(token.TriviaSpace, start)
			continue
		}

		if isLineTerminator(r) {
			for isLineTerminator(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.nl = true
			lx.keep(token.TriviaNewline, start)
			continue
		}

		if r == '/' && lx.cursor.PeekAt(1) == '/' {
			lx.skipLine()
			lx.keep(token.TriviaLineComment, start)
			continue
		}

		if r == '/' && lx.cursor.PeekAt(1) == '*' {
			lx.scanBlockComment(start)
			continue
		}

		// HTML-like comments are part of the script grammar.
		if r == '<' && lx.cursor.HasPrefix("<!--") {
			lx.skipLine()
			lx.keep(token.TriviaLineComment, start)
			continue
		}
		if r == '-' && (lx.nl || !lx.havePrev) && lx.cursor.HasPrefix("-->") {
			lx.skipLine()
			lx.keep(token.TriviaLineComment, start)
			continue
		}

		break
	}
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && !isLineTerminator(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanBlockComment(start Mark) {
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.keep(token.TriviaBlockComment, start)
			return
		}
		if isLineTerminator(lx.cursor.Bump()) {
			lx.nl = true
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	lx.keep(token.TriviaBlockComment, start)
}

func (lx *Lexer) keep(kind token.TriviaKind, start Mark) {
	if !lx.opts.KeepTrivia {
		return
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.cursor.Text(sp)})
}
