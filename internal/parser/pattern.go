package parser

import (
	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/token"
)

// parseBindingTarget reads an identifier, object pattern or array pattern.
func (p *Parser) parseBindingTarget() ast.Node {
	switch p.cur().Kind {
	case token.Ident:
		return p.parseBindingIdent()
	case token.LBrace:
		return p.parseObjectPattern()
	case token.LBracket:
		return p.parseArrayPattern()
	}
	p.unexpected(diag.SynExpectBinding, "expected binding identifier or pattern")
	return nil
}

// parseBindingElement is a binding target with an optional default.
func (p *Parser) parseBindingElement() ast.Node {
	start := p.start()
	target := p.parseBindingTarget()
	if p.eat(token.Assign) {
		right := p.parseAssign(false)
		return &ast.AssignmentPattern{Range: p.rng(start), Left: target, Right: right}
	}
	return target
}

func (p *Parser) parseRestElement() ast.Node {
	start := p.advance().Span.Start // '...'
	arg := p.parseBindingTarget()
	return &ast.RestElement{Range: p.rng(start), Argument: arg}
}

func (p *Parser) parseObjectPattern() ast.Node {
	start := p.advance().Span.Start // '{'
	pat := &ast.ObjectPattern{}
	for !p.at(token.RBrace) {
		if p.at(token.Ellipsis) {
			pat.Properties = append(pat.Properties, p.parseRestElement())
			if !p.at(token.RBrace) {
				p.unexpected(diag.SynUnexpectedToken, "rest element must be last")
			}
			break
		}
		pat.Properties = append(pat.Properties, p.parseBindingProperty())
		if !p.at(token.RBrace) {
			p.expect(token.Comma, diag.SynUnclosedBrace, "',' or '}'")
		}
	}
	p.advance()
	pat.Range = p.rng(start)
	return pat
}

func (p *Parser) parseBindingProperty() ast.Node {
	start := p.start()
	keyTok := p.cur()
	key, computed := p.parsePropertyKey(false)
	if p.eat(token.Colon) {
		value := p.parseBindingElement()
		return &ast.Property{Range: p.rng(start), Key: key, Value: value, PropKind: "init", Computed: computed}
	}
	if computed || keyTok.Kind != token.Ident {
		p.unexpected(diag.SynExpectBinding, "expected ':'")
	}
	var value ast.Node = p.identFrom(keyTok)
	if p.eat(token.Assign) {
		right := p.parseAssign(false)
		value = &ast.AssignmentPattern{Range: p.rng(start), Left: p.identFrom(keyTok), Right: right}
	}
	return &ast.Property{Range: p.rng(start), Key: key, Value: value, PropKind: "init", Shorthand: true}
}

func (p *Parser) parseArrayPattern() ast.Node {
	start := p.advance().Span.Start // '['
	pat := &ast.ArrayPattern{}
	for !p.at(token.RBracket) {
		if p.eat(token.Comma) {
			pat.Elements = append(pat.Elements, nil)
			continue
		}
		if p.at(token.Ellipsis) {
			pat.Elements = append(pat.Elements, p.parseRestElement())
			if !p.at(token.RBracket) {
				p.unexpected(diag.SynUnexpectedToken, "rest element must be last")
			}
			break
		}
		pat.Elements = append(pat.Elements, p.parseBindingElement())
		if !p.at(token.RBracket) {
			p.expect(token.Comma, diag.SynUnclosedBracket, "',' or ']'")
		}
	}
	p.advance()
	pat.Range = p.rng(start)
	return pat
}

// parseParams reads a parenthesised formal parameter list.
func (p *Parser) parseParams() []ast.Node {
	p.expect(token.LParen, diag.SynUnexpectedToken, "'('")
	var params []ast.Node
	for !p.at(token.RParen) {
		if p.at(token.Ellipsis) {
			params = append(params, p.parseRestElement())
			break
		}
		params = append(params, p.parseBindingElement())
		if !p.at(token.RParen) {
			p.expect(token.Comma, diag.SynUnclosedParen, "',' or ')'")
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "')'")
	return params
}

// parseArrowBody reads `=> body` for parameters parsed by the caller.
func (p *Parser) parseArrowBody(start uint32, params []ast.Node, async, noIn bool) ast.Node {
	arrow := p.expect(token.Arrow, diag.SynUnexpectedToken, "'=>'")
	if arrow.NewlineBefore {
		p.fail(diag.SynNewlineNotAllowed, arrow.Span, "line break before '=>'")
	}
	fn := &ast.ArrowFunctionExpression{Params: params, Async: async}
	p.withFunction(async, false, func() {
		if p.at(token.LBrace) {
			fn.Body = p.parseFunctionBody()
			return
		}
		fn.Body = p.parseAssign(noIn)
		fn.Expression = true
	})
	fn.Range = p.rng(start)
	return fn
}
