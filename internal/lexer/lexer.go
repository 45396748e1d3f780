package lexer

import (
	"nbcell/internal/diag"
	"nbcell/internal/source"
	"nbcell/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	hold   []token.Trivia
	nl     bool // newline seen while collecting trivia

	prev     token.Token // последний значимый токен, решает regexp или деление
	havePrev bool
	// Стек фигурных скобок: true: скобка открыта подстановкой шаблона "${".
	braces []bool

	firstErr *diag.Diagnostic
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Err returns the first lexical error seen so far.
func (lx *Lexer) Err() *diag.Diagnostic {
	return lx.firstErr
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.EmptySpan(), NewlineBefore: lx.nl}
		lx.nl = false
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStart(ch) || ch == '\\':
		tok = lx.scanIdentOrKeyword()
	case ch == '#':
		tok = lx.scanPrivateName()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)
	case ch == '`':
		lx.cursor.Bump()
		tok = lx.scanTemplate(lx.cursor.Mark()-1, token.TemplateNoSub, token.TemplateHead)
	case ch == '}' && len(lx.braces) > 0 && lx.braces[len(lx.braces)-1]:
		lx.braces = lx.braces[:len(lx.braces)-1]
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		tok = lx.scanTemplate(start, token.TemplateTail, token.TemplateMiddle)
	case ch == '/' && lx.regexpAllowed():
		tok = lx.scanRegExp()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.NewlineBefore = lx.nl
	lx.nl = false
	if lx.opts.KeepTrivia {
		tok.Leading = lx.hold
	}
	lx.hold = nil

	lx.prev = tok
	lx.havePrev = true
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All lexes the rest of the input, EOF included.
func (lx *Lexer) All() []token.Token {
	tokens := make([]token.Token, 0, len(lx.file.Chars)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// regexpAllowed decides whether '/' starts a regular expression by looking
// at the previous significant token.
func (lx *Lexer) regexpAllowed() bool {
	if !lx.havePrev {
		return true
	}
	switch lx.prev.Kind {
	case token.Ident:
		switch lx.prev.Text {
		case "await", "yield", "of":
			return true
		}
		return false
	case token.KwThis, token.KwSuper, token.KwNull, token.KwTrue, token.KwFalse:
		return false
	case token.NumberLit, token.BigIntLit, token.StringLit, token.RegExpLit,
		token.TemplateNoSub, token.TemplateTail, token.PrivateName:
		return false
	case token.RParen, token.RBracket, token.PlusPlus, token.MinusMinus:
		return false
	case token.RBrace:
		// после блока чаще идёт выражение-регексп, чем деление объекта
		return true
	}
	return true
}
