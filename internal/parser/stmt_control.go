package parser

import (
	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/token"
)

// parseParenExpr разбирает "( expr )" в заголовках if/while/switch/with.
func (p *Parser) parseParenExpr() ast.Node {
	p.expect(token.LParen, diag.SynUnexpectedToken, "'('")
	expr := p.parseExpression(false)
	p.expect(token.RParen, diag.SynUnclosedParen, "')'")
	return expr
}

// parseLoopBody parses a loop body with break and continue allowed.
func (p *Parser) parseLoopBody() ast.Node {
	p.ctx.loops++
	body := p.parseStatement()
	p.ctx.loops--
	return body
}

func (p *Parser) parseIf() ast.Node {
	start := p.advance().Span.Start
	stmt := &ast.IfStatement{}
	stmt.Test = p.parseParenExpr()
	stmt.Consequent = p.parseStatement()
	if p.eat(token.KwElse) {
		stmt.Alternate = p.parseStatement()
	}
	stmt.Range = p.rng(start)
	return stmt
}

func (p *Parser) parseWhile() ast.Node {
	start := p.advance().Span.Start
	test := p.parseParenExpr()
	body := p.parseLoopBody()
	return &ast.WhileStatement{Range: p.rng(start), Test: test, Body: body}
}

func (p *Parser) parseDoWhile() ast.Node {
	start := p.advance().Span.Start
	body := p.parseLoopBody()
	p.expect(token.KwWhile, diag.SynUnexpectedToken, "'while'")
	test := p.parseParenExpr()
	// после do-while точка с запятой всегда может быть вставлена
	p.eat(token.Semicolon)
	return &ast.DoWhileStatement{Range: p.rng(start), Body: body, Test: test}
}

func (p *Parser) parseWith() ast.Node {
	start := p.advance().Span.Start
	obj := p.parseParenExpr()
	body := p.parseStatement()
	return &ast.WithStatement{Range: p.rng(start), Object: obj, Body: body}
}

// parseFor handles the three for forms:
//
//	for (init; test; update) body
//	for (left in right) body
//	for [await] (left of right) body
func (p *Parser) parseFor() ast.Node {
	start := p.advance().Span.Start
	await := false
	if p.atWord("await") {
		if !p.ctx.inAsync {
			p.unexpected(diag.SynUnexpectedToken, "for await is only valid in async functions")
		}
		p.advance()
		await = true
	}
	p.expect(token.LParen, diag.SynUnexpectedToken, "'('")

	var init ast.Node
	switch {
	case p.at(token.Semicolon):
	case p.at(token.KwVar), p.at(token.KwConst), p.atLetDecl():
		decl := p.parseVarDeclaration(true)
		if p.atWord("of") || p.at(token.KwIn) {
			if len(decl.Declarations) != 1 {
				p.fail(diag.SynBadForHead, decl.Loc, "only one binding is allowed in a for-in/of head")
			}
			if decl.Declarations[0].Init != nil {
				p.fail(diag.SynBadForHead, decl.Declarations[0].Loc, "for-in/of loop variable may not have an initializer")
			}
			return p.parseForInOf(start, decl, await)
		}
		p.checkInitializers(decl)
		init = decl
	default:
		expr := p.parseExpression(true)
		if p.atWord("of") || p.at(token.KwIn) {
			p.checkAssignTarget(expr, true)
			return p.parseForInOf(start, expr, await)
		}
		init = expr
	}
	if await {
		p.unexpected(diag.SynBadForHead, "for await requires an of clause")
	}

	stmt := &ast.ForStatement{Init: init}
	p.expect(token.Semicolon, diag.SynBadForHead, "';'")
	if !p.at(token.Semicolon) {
		stmt.Test = p.parseExpression(false)
	}
	p.expect(token.Semicolon, diag.SynBadForHead, "';'")
	if !p.at(token.RParen) {
		stmt.Update = p.parseExpression(false)
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "')'")
	stmt.Body = p.parseLoopBody()
	stmt.Range = p.rng(start)
	return stmt
}

func (p *Parser) parseForInOf(start uint32, left ast.Node, await bool) ast.Node {
	isOf := p.atWord("of")
	p.advance()
	if !isOf && await {
		p.unexpected(diag.SynBadForHead, "for await requires an of clause")
	}
	var right ast.Node
	if isOf {
		right = p.parseAssign(false)
	} else {
		right = p.parseExpression(false)
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "')'")
	body := p.parseLoopBody()
	if isOf {
		return &ast.ForOfStatement{Range: p.rng(start), Left: left, Right: right, Body: body, Await: await}
	}
	return &ast.ForInStatement{Range: p.rng(start), Left: left, Right: right, Body: body}
}

func (p *Parser) parseSwitch() ast.Node {
	start := p.advance().Span.Start
	stmt := &ast.SwitchStatement{Discriminant: p.parseParenExpr()}
	p.expect(token.LBrace, diag.SynUnexpectedToken, "'{'")
	p.ctx.switches++
	sawDefault := false
	for !p.at(token.RBrace) {
		caseStart := p.start()
		sc := &ast.SwitchCase{}
		switch {
		case p.eat(token.KwCase):
			sc.Test = p.parseExpression(false)
		case p.at(token.KwDefault):
			tok := p.advance()
			if sawDefault {
				p.fail(diag.SynDuplicateDefault, tok.Span, "multiple default clauses")
			}
			sawDefault = true
		default:
			p.unexpected(diag.SynUnexpectedToken, "expected 'case', 'default' or '}'")
		}
		p.expect(token.Colon, diag.SynUnexpectedToken, "':'")
		for !p.at(token.KwCase) && !p.at(token.KwDefault) && !p.at(token.RBrace) {
			if p.at(token.EOF) {
				p.unexpected(diag.SynUnclosedBrace, "expected '}'")
			}
			sc.Consequent = append(sc.Consequent, p.parseStatementListItem())
		}
		sc.Range = p.rng(caseStart)
		stmt.Cases = append(stmt.Cases, sc)
	}
	p.ctx.switches--
	p.advance()
	stmt.Range = p.rng(start)
	return stmt
}

func (p *Parser) parseTry() ast.Node {
	start := p.advance().Span.Start
	stmt := &ast.TryStatement{Block: p.parseBlock()}
	if p.at(token.KwCatch) {
		catchStart := p.advance().Span.Start
		cc := &ast.CatchClause{}
		if p.eat(token.LParen) {
			cc.Param = p.parseBindingTarget()
			p.expect(token.RParen, diag.SynUnclosedParen, "')'")
		}
		cc.Body = p.parseBlock()
		cc.Range = p.rng(catchStart)
		stmt.Handler = cc
	}
	if p.eat(token.KwFinally) {
		stmt.Finalizer = p.parseBlock()
	}
	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.unexpected(diag.SynUnexpectedToken, "missing catch or finally after try")
	}
	stmt.Range = p.rng(start)
	return stmt
}
