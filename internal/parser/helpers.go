package parser

import (
	"fmt"

	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/source"
	"nbcell/internal/token"
)

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// peekAt возвращает токен со сдвигом n; за концом EOF.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

// advance съедает текущий токен и обновляет lastEnd
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastEnd = tok.Span.End
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) atWord(word string) bool {
	return p.cur().Is(word)
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect ожидает конкретный токен, иначе ошибка с кодом code.
func (p *Parser) expect(k token.Kind, code diag.Code, what string) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.unexpected(code, "expected "+what)
	return token.Token{}
}

func (p *Parser) expectWord(word string, code diag.Code) token.Token {
	if p.atWord(word) {
		return p.advance()
	}
	p.unexpected(code, fmt.Sprintf("expected '%s'", word))
	return token.Token{}
}

// span returns the range from start to the end of the last consumed token.
func (p *Parser) span(start uint32) source.Span {
	return source.Span{File: p.file.ID, Start: start, End: p.lastEnd}
}

func (p *Parser) rng(start uint32) ast.Range {
	return ast.Range{Loc: p.span(start)}
}

func (p *Parser) start() uint32 {
	return p.cur().Span.Start
}

// fail репортит ошибку и прерывает разбор.
func (p *Parser) fail(code diag.Code, sp source.Span, msg string) {
	d := diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	panic(bailout{d: d})
}

// unexpected reports the current token with an explanation.
func (p *Parser) unexpected(code diag.Code, msg string) {
	tok := p.cur()
	if tok.Kind == token.EOF {
		p.fail(code, tok.Span, msg+", got end of input")
	}
	p.fail(code, tok.Span, fmt.Sprintf("%s, got %q", msg, tok.Text))
}

func (p *Parser) canInsertSemicolon() bool {
	return p.at(token.EOF) || p.at(token.RBrace) || p.cur().NewlineBefore
}

// semicolon consumes ';' or applies automatic semicolon insertion.
func (p *Parser) semicolon() {
	if p.eat(token.Semicolon) || p.canInsertSemicolon() {
		return
	}
	p.unexpected(diag.SynExpectSemicolon, "expected ';'")
}

func (p *Parser) identFrom(tok token.Token) *ast.Identifier {
	return &ast.Identifier{Range: ast.Range{Loc: tok.Span}, Name: tok.Text}
}

func (p *Parser) parseBindingIdent() *ast.Identifier {
	if !p.at(token.Ident) {
		p.unexpected(diag.SynExpectIdentifier, "expected identifier")
	}
	return p.identFrom(p.advance())
}

// withFunction runs fn with a fresh function context.
func (p *Parser) withFunction(async, generator bool, fn func()) {
	saved := p.ctx
	p.ctx = fnContext{inFunction: true, inAsync: async, inGenerator: generator}
	fn()
	p.ctx = saved
}

// atLetDecl reports whether the contextual word let starts a declaration.
func (p *Parser) atLetDecl() bool {
	if !p.atWord("let") {
		return false
	}
	switch p.peekAt(1).Kind {
	case token.Ident, token.LBracket, token.LBrace:
		return true
	}
	return false
}

// atAsyncFunction reports `async function` with no line break in between.
func (p *Parser) atAsyncFunction() bool {
	nx := p.peekAt(1)
	return p.atWord("async") && nx.Kind == token.KwFunction && !nx.NewlineBefore
}

// arrowAhead reports whether the parenthesised list opening at offset is
// followed by '=>' on the same line.
func (p *Parser) arrowAhead(offset int) bool {
	depth := 0
	for i := p.pos + offset; i < len(p.toks); i++ {
		switch p.toks[i].Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
			if depth == 0 {
				if i+1 >= len(p.toks) {
					return false
				}
				nx := p.toks[i+1]
				return nx.Kind == token.Arrow && !nx.NewlineBefore
			}
		case token.EOF:
			return false
		}
	}
	return false
}
