package parser

import (
	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/token"
)

// parseExpression reads a comma-separated sequence.
func (p *Parser) parseExpression(noIn bool) ast.Node {
	start := p.start()
	expr := p.parseAssign(noIn)
	if !p.at(token.Comma) {
		return expr
	}
	seq := &ast.SequenceExpression{Expressions: []ast.Node{expr}}
	for p.eat(token.Comma) {
		seq.Expressions = append(seq.Expressions, p.parseAssign(noIn))
	}
	seq.Range = p.rng(start)
	return seq
}

// parseAssign разбирает AssignmentExpression, включая стрелочные функции и yield.
func (p *Parser) parseAssign(noIn bool) ast.Node {
	start := p.start()
	tok := p.cur()

	if p.ctx.inGenerator && tok.Is("yield") {
		return p.parseYield(noIn)
	}

	if arrow := p.tryArrow(noIn); arrow != nil {
		return arrow
	}

	left := p.parseConditional(noIn)
	op := p.cur()
	if !op.Kind.IsAssign() {
		return left
	}
	p.checkAssignTarget(left, op.Kind == token.Assign)
	p.advance()
	right := p.parseAssign(noIn)
	return &ast.AssignmentExpression{Range: p.rng(start), Operator: op.Text, Left: left, Right: right}
}

// tryArrow recognises the arrow function forms by looking ahead:
//
//	x => ...
//	(a, b) => ...
//	async x => ...
//	async (a, b) => ...
func (p *Parser) tryArrow(noIn bool) ast.Node {
	start := p.start()
	tok := p.cur()
	next := p.peekAt(1)
	switch {
	case tok.Kind == token.LParen && p.arrowAhead(0):
		return p.parseArrowBody(start, p.parseParams(), false, noIn)
	case tok.Kind == token.Ident && next.Kind == token.Arrow && !next.NewlineBefore:
		param := p.parseBindingIdent()
		return p.parseArrowBody(start, []ast.Node{param}, false, noIn)
	case tok.Is("async") && !next.NewlineBefore:
		if next.Kind == token.Ident && p.peekAt(2).Kind == token.Arrow {
			p.advance()
			param := p.parseBindingIdent()
			return p.parseArrowBody(start, []ast.Node{param}, true, noIn)
		}
		if next.Kind == token.LParen && p.arrowAhead(1) {
			p.advance()
			return p.parseArrowBody(start, p.parseParams(), true, noIn)
		}
	}
	return nil
}

func (p *Parser) parseYield(noIn bool) ast.Node {
	start := p.advance().Span.Start
	y := &ast.YieldExpression{}
	if !p.cur().NewlineBefore && !endsYield(p.cur().Kind) {
		y.Delegate = p.eat(token.Star)
		y.Argument = p.parseAssign(noIn)
	}
	y.Range = p.rng(start)
	return y
}

// endsYield reports tokens after which a bare yield has no argument.
func endsYield(k token.Kind) bool {
	switch k {
	case token.RParen, token.RBracket, token.RBrace, token.Comma, token.Semicolon,
		token.Colon, token.EOF, token.TemplateMiddle, token.TemplateTail:
		return true
	}
	return false
}

func (p *Parser) parseConditional(noIn bool) ast.Node {
	start := p.start()
	test := p.parseBinary(0, noIn)
	if !p.eat(token.Question) {
		return test
	}
	cons := p.parseAssign(false)
	p.expect(token.Colon, diag.SynUnexpectedToken, "':'")
	alt := p.parseAssign(noIn)
	return &ast.ConditionalExpression{Range: p.rng(start), Test: test, Consequent: cons, Alternate: alt}
}

// parseBinary: подъём по приоритетам; ** правоассоциативен.
func (p *Parser) parseBinary(minPrec int, noIn bool) ast.Node {
	start := p.start()
	left := p.parseUnary()
	for {
		op := p.cur()
		prec := binaryPrec(op.Kind, noIn)
		if prec == 0 || prec <= minPrec {
			return left
		}
		p.advance()
		rightMin := prec
		if op.Kind == token.StarStar {
			rightMin = prec - 1
		}
		right := p.parseBinary(rightMin, noIn)
		if isLogical(op.Kind) {
			left = &ast.LogicalExpression{Range: p.rng(start), Operator: op.Text, Left: left, Right: right}
		} else {
			left = &ast.BinaryExpression{Range: p.rng(start), Operator: op.Text, Left: left, Right: right}
		}
	}
}

func (p *Parser) parseUnary() ast.Node {
	start := p.start()
	tok := p.cur()

	if tok.Is("await") && p.ctx.inAsync {
		p.advance()
		arg := p.parseUnary()
		return &ast.AwaitExpression{Range: p.rng(start), Argument: arg}
	}

	switch tok.Kind {
	case token.KwDelete, token.KwVoid, token.KwTypeof,
		token.Plus, token.Minus, token.Tilde, token.Bang:
		p.advance()
		arg := p.parseUnary()
		return &ast.UnaryExpression{Range: p.rng(start), Operator: tok.Text, Argument: arg}
	case token.PlusPlus, token.MinusMinus:
		p.advance()
		arg := p.parseUnary()
		p.checkAssignTarget(arg, false)
		return &ast.UpdateExpression{Range: p.rng(start), Operator: tok.Text, Prefix: true, Argument: arg}
	}

	expr := p.parseLeftHandSide()
	if op := p.cur(); (op.Kind == token.PlusPlus || op.Kind == token.MinusMinus) && !op.NewlineBefore {
		p.checkAssignTarget(expr, false)
		p.advance()
		return &ast.UpdateExpression{Range: p.rng(start), Operator: op.Text, Argument: expr}
	}
	return expr
}

// checkAssignTarget validates the left side of an assignment or update.
// Object and array literals are accepted as destructuring targets only for
// plain '='.
func (p *Parser) checkAssignTarget(n ast.Node, allowPattern bool) {
	switch v := n.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return
	case *ast.ParenthesizedExpression:
		p.checkAssignTarget(v.Expression, false)
		return
	case *ast.ObjectExpression, *ast.ArrayExpression:
		if allowPattern {
			return
		}
	}
	p.fail(diag.SynBadAssignTarget, n.Span(), "invalid assignment target")
}
