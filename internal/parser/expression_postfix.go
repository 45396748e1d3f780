package parser

import (
	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/token"
)

func (p *Parser) parseLeftHandSide() ast.Node {
	start := p.start()
	return p.parseSubscripts(p.parsePrimary(), start, false)
}

// parseSubscripts разбирает цепочку .x, [x], ?.x, (args) и шаблоны с тегом.
// noCalls останавливается перед '(' (для callee в new).
func (p *Parser) parseSubscripts(base ast.Node, start uint32, noCalls bool) ast.Node {
	chained := false
	for {
		switch {
		case p.at(token.Dot):
			p.advance()
			prop := p.parseMemberName()
			base = &ast.MemberExpression{Range: p.rng(start), Object: base, Property: prop}
		case p.at(token.QuestionDot) && !noCalls:
			p.advance()
			chained = true
			switch {
			case p.at(token.LParen):
				args := p.parseArguments()
				base = &ast.CallExpression{Range: p.rng(start), Callee: base, Arguments: args, Optional: true}
			case p.eat(token.LBracket):
				prop := p.parseExpression(false)
				p.expect(token.RBracket, diag.SynUnclosedBracket, "']'")
				base = &ast.MemberExpression{Range: p.rng(start), Object: base, Property: prop, Computed: true, Optional: true}
			default:
				prop := p.parseMemberName()
				base = &ast.MemberExpression{Range: p.rng(start), Object: base, Property: prop, Optional: true}
			}
		case p.at(token.LBracket):
			p.advance()
			prop := p.parseExpression(false)
			p.expect(token.RBracket, diag.SynUnclosedBracket, "']'")
			base = &ast.MemberExpression{Range: p.rng(start), Object: base, Property: prop, Computed: true}
		case p.at(token.LParen) && !noCalls:
			args := p.parseArguments()
			base = &ast.CallExpression{Range: p.rng(start), Callee: base, Arguments: args}
		case p.at(token.TemplateNoSub), p.at(token.TemplateHead):
			if chained {
				p.unexpected(diag.SynUnexpectedToken, "tagged template cannot be used in an optional chain")
			}
			quasi := p.parseTemplate()
			base = &ast.TaggedTemplateExpression{Range: p.rng(start), Tag: base, Quasi: quasi}
		default:
			if chained {
				base = &ast.ChainExpression{Range: p.rng(start), Expression: base}
			}
			return base
		}
	}
}

func (p *Parser) parseMemberName() ast.Node {
	tok := p.cur()
	switch {
	case tok.Kind == token.PrivateName:
		p.advance()
		return &ast.PrivateIdentifier{Range: ast.Range{Loc: tok.Span}, Name: tok.Text[1:]}
	case tok.IsWord():
		p.advance()
		return p.identFrom(tok)
	}
	p.unexpected(diag.SynExpectIdentifier, "expected property name")
	return nil
}

func (p *Parser) parseArguments() []ast.Node {
	p.expect(token.LParen, diag.SynUnexpectedToken, "'('")
	var args []ast.Node
	for !p.at(token.RParen) {
		if p.at(token.Ellipsis) {
			start := p.advance().Span.Start
			arg := p.parseAssign(false)
			args = append(args, &ast.SpreadElement{Range: p.rng(start), Argument: arg})
		} else {
			args = append(args, p.parseAssign(false))
		}
		if !p.at(token.RParen) {
			p.expect(token.Comma, diag.SynUnclosedParen, "',' or ')'")
		}
	}
	p.advance()
	return args
}

// parseNew разбирает `new Callee(args)` и `new.target`.
func (p *Parser) parseNew() ast.Node {
	newTok := p.advance()
	start := newTok.Span.Start
	if p.eat(token.Dot) {
		prop := p.expectWord("target", diag.SynUnexpectedToken)
		return &ast.MetaProperty{Range: p.rng(start), Meta: p.identFrom(newTok), Property: p.identFrom(prop)}
	}
	calleeStart := p.start()
	var callee ast.Node
	if p.at(token.KwNew) {
		callee = p.parseNew()
	} else {
		callee = p.parsePrimary()
	}
	callee = p.parseSubscripts(callee, calleeStart, true)
	expr := &ast.NewExpression{Callee: callee}
	if p.at(token.LParen) {
		expr.Arguments = p.parseArguments()
	}
	expr.Range = p.rng(start)
	return expr
}
