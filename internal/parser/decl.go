package parser

import (
	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/token"
)

func (p *Parser) parseVarStatement() ast.Node {
	decl := p.parseVarDeclaration(false)
	p.checkInitializers(decl)
	p.semicolon()
	decl.Range = p.rng(decl.Loc.Start)
	return decl
}

// parseVarDeclaration reads `kind a = 1, b` without the trailing ';'.
// inFor disables the `in` operator inside initialisers.
func (p *Parser) parseVarDeclaration(inFor bool) *ast.VariableDeclaration {
	kw := p.advance()
	decl := &ast.VariableDeclaration{DeclKind: kw.Text}
	for {
		start := p.start()
		d := &ast.VariableDeclarator{ID: p.parseBindingTarget()}
		if p.eat(token.Assign) {
			d.Init = p.parseAssign(inFor)
		}
		d.Range = p.rng(start)
		decl.Declarations = append(decl.Declarations, d)
		if !p.eat(token.Comma) {
			break
		}
	}
	decl.Range = p.rng(kw.Span.Start)
	return decl
}

// checkInitializers требует инициализатор у const и у деструктуризации
// вне заголовка for-in/of.
func (p *Parser) checkInitializers(decl *ast.VariableDeclaration) {
	for _, d := range decl.Declarations {
		if d.Init != nil {
			continue
		}
		if decl.DeclKind == "const" {
			p.fail(diag.SynMissingInitializer, d.Loc, "missing initializer in const declaration")
		}
		if _, ok := d.ID.(*ast.Identifier); !ok {
			p.fail(diag.SynMissingInitializer, d.Loc, "missing initializer in destructuring declaration")
		}
	}
}

// parseFunctionDeclaration expects the current token to be `function`;
// start points at `async` when present.
func (p *Parser) parseFunctionDeclaration(start uint32, async bool) ast.Node {
	fn := p.parseFunctionParts(true, async)
	return &ast.FunctionDeclaration{Range: p.rng(start), Function: fn}
}

func (p *Parser) parseFunctionExpression(start uint32, async bool) ast.Node {
	fn := p.parseFunctionParts(false, async)
	return &ast.FunctionExpression{Range: p.rng(start), Function: fn}
}

func (p *Parser) parseFunctionParts(isDecl, async bool) ast.Function {
	p.expect(token.KwFunction, diag.SynUnexpectedToken, "'function'")
	fn := ast.Function{Async: async, Generator: p.eat(token.Star)}
	if p.at(token.Ident) {
		fn.ID = p.parseBindingIdent()
	} else if isDecl {
		p.unexpected(diag.SynExpectIdentifier, "expected function name")
	}
	fn.Params, fn.Body = p.parseFunctionRest(async, fn.Generator)
	return fn
}

// parseFunctionRest reads `(params) { body }` in a new function context.
func (p *Parser) parseFunctionRest(async, generator bool) (params []ast.Node, body *ast.BlockStatement) {
	p.withFunction(async, generator, func() {
		params = p.parseParams()
		body = p.parseFunctionBody()
	})
	return params, body
}

// parseMethod reads a method's `(params) { body }` as a FunctionExpression
// starting at '('.
func (p *Parser) parseMethod(async, generator bool) *ast.FunctionExpression {
	start := p.start()
	params, body := p.parseFunctionRest(async, generator)
	return &ast.FunctionExpression{
		Range:    p.rng(start),
		Function: ast.Function{Params: params, Body: body, Async: async, Generator: generator},
	}
}

func (p *Parser) parseClassDeclaration() ast.Node {
	start := p.start()
	cls := p.parseClassParts(true)
	return &ast.ClassDeclaration{Range: p.rng(start), Class: cls}
}

func (p *Parser) parseClassExpression() ast.Node {
	start := p.start()
	cls := p.parseClassParts(false)
	return &ast.ClassExpression{Range: p.rng(start), Class: cls}
}

func (p *Parser) parseClassParts(isDecl bool) ast.Class {
	p.expect(token.KwClass, diag.SynUnexpectedToken, "'class'")
	var cls ast.Class
	if p.at(token.Ident) {
		cls.ID = p.parseBindingIdent()
	} else if isDecl {
		p.unexpected(diag.SynExpectIdentifier, "expected class name")
	}
	if p.eat(token.KwExtends) {
		cls.SuperClass = p.parseLeftHandSide()
	}

	bodyStart := p.start()
	p.expect(token.LBrace, diag.SynUnexpectedToken, "'{'")
	saved := p.ctx
	p.ctx = fnContext{}
	var members []ast.Node
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.unexpected(diag.SynUnclosedBrace, "expected '}'")
		}
		if m := p.parseClassMember(); m != nil {
			members = append(members, m)
		}
	}
	p.ctx = saved
	p.advance()
	cls.Body = &ast.ClassBody{Range: p.rng(bodyStart), Body: members}
	return cls
}

// endsMemberName reports whether the token after a modifier word shows that
// the word is itself the member name: `static() {}`, `get = 1`.
func endsMemberName(t token.Token) bool {
	switch t.Kind {
	case token.LParen, token.Assign, token.Semicolon, token.RBrace, token.EOF:
		return true
	}
	return false
}

func (p *Parser) parseClassMember() ast.Node {
	start := p.start()
	if p.eat(token.Semicolon) {
		return nil
	}

	static := false
	if p.atWord("static") && !endsMemberName(p.peekAt(1)) {
		if p.peekAt(1).Kind == token.LBrace {
			p.advance()
			return p.parseStaticBlock(start)
		}
		p.advance()
		static = true
	}

	async, generator, kind := false, false, "method"
	if p.atWord("async") && !endsMemberName(p.peekAt(1)) && !p.peekAt(1).NewlineBefore {
		p.advance()
		async = true
	}
	if p.eat(token.Star) {
		generator = true
	}
	if !async && !generator && (p.atWord("get") || p.atWord("set")) && !endsMemberName(p.peekAt(1)) {
		kind = p.advance().Text
	}

	key, computed := p.parsePropertyKey(true)

	if p.at(token.LParen) || async || generator || kind != "method" {
		if !static && !computed && kind == "method" && propertyName(key) == "constructor" {
			kind = "constructor"
		}
		fn := p.parseMethod(async, generator)
		return &ast.MethodDefinition{
			Range: p.rng(start), Key: key, Value: fn,
			MethKind: kind, Computed: computed, Static: static,
		}
	}

	field := &ast.PropertyDefinition{Key: key, Computed: computed, Static: static}
	if p.eat(token.Assign) {
		p.withFunction(false, false, func() {
			field.Value = p.parseAssign(false)
		})
	}
	p.semicolon()
	field.Range = p.rng(start)
	return field
}

func (p *Parser) parseStaticBlock(start uint32) ast.Node {
	p.expect(token.LBrace, diag.SynUnexpectedToken, "'{'")
	saved := p.ctx
	p.ctx = fnContext{}
	body := p.parseStatementsUntilBrace()
	p.ctx = saved
	p.advance()
	return &ast.StaticBlock{Range: p.rng(start), Body: body}
}

// propertyName returns the static name of an identifier or string key.
func propertyName(key ast.Node) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Name
	case *ast.Literal:
		if k.LitKind == ast.LitString {
			return k.Value
		}
	}
	return ""
}

// parsePropertyKey reads an object or class member key.
func (p *Parser) parsePropertyKey(allowPrivate bool) (key ast.Node, computed bool) {
	tok := p.cur()
	switch {
	case tok.Kind == token.LBracket:
		p.advance()
		expr := p.parseAssign(false)
		p.expect(token.RBracket, diag.SynUnclosedBracket, "']'")
		return expr, true
	case tok.Kind == token.StringLit, tok.Kind == token.NumberLit, tok.Kind == token.BigIntLit:
		return p.parseLiteral(), false
	case tok.Kind == token.PrivateName && allowPrivate:
		p.advance()
		return &ast.PrivateIdentifier{Range: ast.Range{Loc: tok.Span}, Name: tok.Text[1:]}, false
	case tok.IsWord():
		p.advance()
		return p.identFrom(tok), false
	}
	p.unexpected(diag.SynExpectIdentifier, "expected property name")
	return nil, false
}
