package parser

import (
	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/source"
	"nbcell/internal/token"
)

func (p *Parser) parsePrimary() ast.Node {
	tok := p.cur()
	start := tok.Span.Start
	switch tok.Kind {
	case token.KwThis:
		p.advance()
		return &ast.ThisExpression{Range: ast.Range{Loc: tok.Span}}
	case token.Ident:
		if p.atAsyncFunction() {
			p.advance()
			return p.parseFunctionExpression(start, true)
		}
		return p.identFrom(p.advance())
	case token.NumberLit, token.BigIntLit, token.StringLit, token.RegExpLit,
		token.KwNull, token.KwTrue, token.KwFalse:
		return p.parseLiteral()
	case token.TemplateNoSub, token.TemplateHead:
		return p.parseTemplate()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.LParen:
		return p.parseParenthesized()
	case token.KwFunction:
		return p.parseFunctionExpression(start, false)
	case token.KwClass:
		return p.parseClassExpression()
	case token.KwNew:
		return p.parseNew()
	case token.KwSuper:
		p.advance()
		if !p.at(token.Dot) && !p.at(token.LBracket) && !p.at(token.LParen) {
			p.fail(diag.SynUnexpectedToken, tok.Span, "'super' keyword unexpected here")
		}
		return &ast.Super{Range: ast.Range{Loc: tok.Span}}
	case token.KwImport:
		return p.parseImportCall()
	}
	p.unexpected(diag.SynExpectExpression, "expected expression")
	return nil
}

func (p *Parser) parseLiteral() ast.Node {
	tok := p.advance()
	lit := &ast.Literal{Range: ast.Range{Loc: tok.Span}, Raw: tok.Text, Value: tok.Text}
	switch tok.Kind {
	case token.NumberLit:
		lit.LitKind = ast.LitNumber
	case token.BigIntLit:
		lit.LitKind = ast.LitBigInt
	case token.StringLit:
		lit.LitKind = ast.LitString
		lit.Value = tok.Value
	case token.RegExpLit:
		lit.LitKind = ast.LitRegExp
	case token.KwNull:
		lit.LitKind = ast.LitNull
	case token.KwTrue, token.KwFalse:
		lit.LitKind = ast.LitBool
	default:
		p.fail(diag.SynExpectExpression, tok.Span, "expected literal")
	}
	return lit
}

// parseImportCall разбирает dynamic import(...) и import.meta.
func (p *Parser) parseImportCall() ast.Node {
	kw := p.advance()
	start := kw.Span.Start
	if p.eat(token.Dot) {
		prop := p.expectWord("meta", diag.SynUnexpectedToken)
		return &ast.MetaProperty{Range: p.rng(start), Meta: p.identFrom(kw), Property: p.identFrom(prop)}
	}
	p.expect(token.LParen, diag.SynUnexpectedToken, "'(' after import")
	src := p.parseAssign(false)
	p.eat(token.Comma)
	p.expect(token.RParen, diag.SynUnclosedParen, "')'")
	return &ast.ImportExpression{Range: p.rng(start), Source: src}
}

func (p *Parser) parseParenthesized() ast.Node {
	start := p.advance().Span.Start
	expr := p.parseExpression(false)
	p.expect(token.RParen, diag.SynUnclosedParen, "')'")
	if p.opts.PreserveParens {
		return &ast.ParenthesizedExpression{Range: p.rng(start), Expression: expr}
	}
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Node {
	start := p.advance().Span.Start
	arr := &ast.ArrayExpression{}
	for !p.at(token.RBracket) {
		if p.eat(token.Comma) {
			arr.Elements = append(arr.Elements, nil)
			continue
		}
		if p.at(token.Ellipsis) {
			spreadStart := p.advance().Span.Start
			arg := p.parseAssign(false)
			arr.Elements = append(arr.Elements, &ast.SpreadElement{Range: p.rng(spreadStart), Argument: arg})
		} else {
			arr.Elements = append(arr.Elements, p.parseAssign(false))
		}
		if !p.at(token.RBracket) {
			p.expect(token.Comma, diag.SynUnclosedBracket, "',' or ']'")
		}
	}
	p.advance()
	arr.Range = p.rng(start)
	return arr
}

// endsPropertyName reports whether the token after get/set/async shows the
// word is itself the key: `{get: 1}`, `{async}`, `{set() {}}`.
func endsPropertyName(t token.Token) bool {
	switch t.Kind {
	case token.Comma, token.Colon, token.LParen, token.RBrace, token.Assign, token.EOF:
		return true
	}
	return false
}

func (p *Parser) parseObjectLiteral() ast.Node {
	start := p.advance().Span.Start
	obj := &ast.ObjectExpression{}
	for !p.at(token.RBrace) {
		obj.Properties = append(obj.Properties, p.parseObjectProperty())
		if !p.at(token.RBrace) {
			p.expect(token.Comma, diag.SynUnclosedBrace, "',' or '}'")
		}
	}
	p.advance()
	obj.Range = p.rng(start)
	return obj
}

func (p *Parser) parseObjectProperty() ast.Node {
	start := p.start()
	if p.at(token.Ellipsis) {
		p.advance()
		arg := p.parseAssign(false)
		return &ast.SpreadElement{Range: p.rng(start), Argument: arg}
	}

	async, generator, kind := false, false, "init"
	if p.atWord("async") && !endsPropertyName(p.peekAt(1)) && !p.peekAt(1).NewlineBefore {
		p.advance()
		async = true
	}
	if p.eat(token.Star) {
		generator = true
	}
	if !async && !generator && (p.atWord("get") || p.atWord("set")) && !endsPropertyName(p.peekAt(1)) {
		kind = p.advance().Text
	}

	keyTok := p.cur()
	key, computed := p.parsePropertyKey(false)

	if async || generator || kind != "init" || p.at(token.LParen) {
		fn := p.parseMethod(async, generator)
		return &ast.Property{
			Range: p.rng(start), Key: key, Value: fn, PropKind: kind,
			Method: kind == "init", Computed: computed,
		}
	}

	if p.eat(token.Colon) {
		value := p.parseAssign(false)
		return &ast.Property{Range: p.rng(start), Key: key, Value: value, PropKind: "init", Computed: computed}
	}

	if computed || keyTok.Kind != token.Ident {
		p.unexpected(diag.SynUnexpectedToken, "expected ':'")
	}
	var value ast.Node = p.identFrom(keyTok)
	// {a = 1} допустимо только как цель деструктурирующего присваивания
	if p.eat(token.Assign) {
		right := p.parseAssign(false)
		value = &ast.AssignmentPattern{Range: p.rng(start), Left: p.identFrom(keyTok), Right: right}
	}
	return &ast.Property{Range: p.rng(start), Key: key, Value: value, PropKind: "init", Shorthand: true}
}

// parseTemplate reads a template literal; quasis exclude the delimiters.
func (p *Parser) parseTemplate() *ast.TemplateLiteral {
	tok := p.advance()
	start := tok.Span.Start
	tl := &ast.TemplateLiteral{}
	if tok.Kind == token.TemplateNoSub {
		tl.Quasis = append(tl.Quasis, p.templateElement(tok, 1, true))
		tl.Range = p.rng(start)
		return tl
	}
	tl.Quasis = append(tl.Quasis, p.templateElement(tok, 2, false))
	for {
		tl.Expressions = append(tl.Expressions, p.parseExpression(false))
		part := p.cur()
		switch part.Kind {
		case token.TemplateMiddle:
			p.advance()
			tl.Quasis = append(tl.Quasis, p.templateElement(part, 2, false))
		case token.TemplateTail:
			p.advance()
			tl.Quasis = append(tl.Quasis, p.templateElement(part, 1, true))
			tl.Range = p.rng(start)
			return tl
		default:
			p.unexpected(diag.SynUnclosedBrace, "expected '}' closing template substitution")
		}
	}
}

// templateElement strips the one-character opener (` or }) and trail
// closing characters (` or ${) from a template token.
func (p *Parser) templateElement(tok token.Token, trail uint32, tail bool) *ast.TemplateElement {
	sp := source.Span{File: tok.Span.File, Start: tok.Span.Start + 1, End: tok.Span.End - trail}
	return &ast.TemplateElement{
		Range:  ast.Range{Loc: sp},
		Raw:    string(p.file.Chars[sp.Start:sp.End]),
		Cooked: tok.Value,
		Tail:   tail,
	}
}
