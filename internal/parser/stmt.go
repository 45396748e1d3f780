package parser

import (
	"slices"

	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/token"
)

// parseStatementListItem разбирает statement там, где разрешены объявления:
// тело программы, блок, тело функции, case.
func (p *Parser) parseStatementListItem() ast.Node {
	switch {
	case p.at(token.KwFunction):
		return p.parseFunctionDeclaration(p.start(), false)
	case p.atAsyncFunction():
		start := p.start()
		p.advance()
		return p.parseFunctionDeclaration(start, true)
	case p.at(token.KwClass):
		return p.parseClassDeclaration()
	case p.at(token.KwConst), p.atLetDecl():
		return p.parseVarStatement()
	}
	return p.parseStatement()
}

// parseStatement разбирает statement в позиции одиночного оператора
// (тело if/while/for без фигурных скобок): лексические объявления запрещены.
func (p *Parser) parseStatement() ast.Node {
	tok := p.cur()
	switch tok.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.advance()
		return &ast.EmptyStatement{Range: ast.Range{Loc: tok.Span}}
	case token.KwVar:
		return p.parseVarStatement()
	case token.KwIf:
		return p.parseIf()
	case token.KwFor:
		return p.parseFor()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwBreak, token.KwContinue:
		return p.parseBreakContinue()
	case token.KwThrow:
		return p.parseThrow()
	case token.KwTry:
		return p.parseTry()
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwWith:
		return p.parseWith()
	case token.KwDebugger:
		p.advance()
		p.semicolon()
		return &ast.DebuggerStatement{Range: p.rng(tok.Span.Start)}
	case token.KwImport:
		if nx := p.peekAt(1).Kind; nx != token.LParen && nx != token.Dot {
			return p.parseImportDeclaration()
		}
	case token.KwExport:
		p.fail(diag.SynExportNotSupported, tok.Span, "export declarations are not supported")
	case token.KwConst, token.KwClass, token.KwFunction:
		p.fail(diag.SynLexicalInStatement, tok.Span, "'"+tok.Text+"' declaration is not allowed in a single-statement context")
	case token.Ident:
		if p.atLetDecl() || p.atAsyncFunction() {
			p.fail(diag.SynLexicalInStatement, tok.Span, "'"+tok.Text+"' declaration is not allowed in a single-statement context")
		}
		if p.peekAt(1).Kind == token.Colon {
			return p.parseLabeled()
		}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() ast.Node {
	start := p.start()
	expr := p.parseExpression(false)
	p.semicolon()
	return &ast.ExpressionStatement{Range: p.rng(start), Expression: expr}
}

// parseStatementsUntilBrace reads statement list items up to a closing '}'.
func (p *Parser) parseStatementsUntilBrace() []ast.Node {
	var body []ast.Node
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.unexpected(diag.SynUnclosedBrace, "expected '}'")
		}
		body = append(body, p.parseStatementListItem())
	}
	return body
}

func (p *Parser) parseBlock() *ast.BlockStatement {
	start := p.start()
	p.expect(token.LBrace, diag.SynUnexpectedToken, "'{'")
	body := p.parseStatementsUntilBrace()
	p.advance()
	return &ast.BlockStatement{Range: p.rng(start), Body: body}
}

// parseFunctionBody is parseBlock plus the directive prologue.
func (p *Parser) parseFunctionBody() *ast.BlockStatement {
	block := p.parseBlock()
	markDirectives(block.Body)
	return block
}

func (p *Parser) parseLabeled() ast.Node {
	start := p.start()
	label := p.identFrom(p.advance())
	p.advance() // ':'
	if slices.Contains(p.ctx.labels, label.Name) {
		p.fail(diag.SynUnexpectedToken, label.Loc, "label '"+label.Name+"' has already been declared")
	}
	p.ctx.labels = append(p.ctx.labels, label.Name)
	body := p.parseStatement()
	p.ctx.labels = p.ctx.labels[:len(p.ctx.labels)-1]
	return &ast.LabeledStatement{Range: p.rng(start), Label: label, Body: body}
}

func (p *Parser) parseReturn() ast.Node {
	tok := p.advance()
	if !p.ctx.inFunction {
		p.fail(diag.SynIllegalReturn, tok.Span, "return outside of function")
	}
	ret := &ast.ReturnStatement{}
	if !p.at(token.Semicolon) && !p.canInsertSemicolon() {
		ret.Argument = p.parseExpression(false)
	}
	p.semicolon()
	ret.Range = p.rng(tok.Span.Start)
	return ret
}

func (p *Parser) parseBreakContinue() ast.Node {
	tok := p.advance()
	isBreak := tok.Kind == token.KwBreak
	var label *ast.Identifier
	if p.at(token.Ident) && !p.cur().NewlineBefore {
		label = p.identFrom(p.advance())
		if !slices.Contains(p.ctx.labels, label.Name) {
			p.fail(diag.SynIllegalBreak, label.Loc, "undefined label '"+label.Name+"'")
		}
	} else {
		if isBreak && p.ctx.loops == 0 && p.ctx.switches == 0 {
			p.fail(diag.SynIllegalBreak, tok.Span, "illegal break statement")
		}
		if !isBreak && p.ctx.loops == 0 {
			p.fail(diag.SynIllegalBreak, tok.Span, "illegal continue statement")
		}
	}
	p.semicolon()
	if isBreak {
		return &ast.BreakStatement{Range: p.rng(tok.Span.Start), Label: label}
	}
	return &ast.ContinueStatement{Range: p.rng(tok.Span.Start), Label: label}
}

func (p *Parser) parseThrow() ast.Node {
	tok := p.advance()
	if p.cur().NewlineBefore {
		p.fail(diag.SynNewlineNotAllowed, p.cur().Span, "illegal newline after throw")
	}
	arg := p.parseExpression(false)
	p.semicolon()
	return &ast.ThrowStatement{Range: p.rng(tok.Span.Start), Argument: arg}
}
