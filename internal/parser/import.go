package parser

import (
	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/token"
)

// parseImportDeclaration разбирает формы:
//
//	import "m";
//	import a from "m";
//	import a, * as ns from "m";
//	import a, { b, c as d, "e-f" as g } from "m";
//	import * as ns from "m";
func (p *Parser) parseImportDeclaration() ast.Node {
	start := p.advance().Span.Start
	decl := &ast.ImportDeclaration{}

	if p.at(token.StringLit) {
		decl.Source = p.parseModuleSource()
		p.semicolon()
		decl.Range = p.rng(start)
		return decl
	}

	needMore := true
	if p.at(token.Ident) {
		local := p.parseBindingIdent()
		decl.Specifiers = append(decl.Specifiers, &ast.ImportDefaultSpecifier{Range: local.Range, Local: local})
		needMore = p.eat(token.Comma)
	}

	if needMore {
		switch {
		case p.at(token.Star):
			nsStart := p.advance().Span.Start
			p.expectWord("as", diag.SynBadImportSpecifier)
			local := p.parseBindingIdent()
			decl.Specifiers = append(decl.Specifiers, &ast.ImportNamespaceSpecifier{Range: p.rng(nsStart), Local: local})
		case p.at(token.LBrace):
			p.advance()
			for !p.at(token.RBrace) {
				decl.Specifiers = append(decl.Specifiers, p.parseImportSpecifier())
				if !p.at(token.RBrace) {
					p.expect(token.Comma, diag.SynUnexpectedToken, "',' or '}'")
				}
			}
			p.advance()
		default:
			p.unexpected(diag.SynBadImportSpecifier, "expected import specifier")
		}
	}

	p.expectWord("from", diag.SynExpectModuleSource)
	decl.Source = p.parseModuleSource()
	p.semicolon()
	decl.Range = p.rng(start)
	return decl
}

func (p *Parser) parseImportSpecifier() ast.Node {
	start := p.start()
	tok := p.cur()
	var imported ast.Node
	switch {
	case tok.Kind == token.StringLit:
		imported = p.parseLiteral()
	case tok.IsWord():
		imported = p.identFrom(p.advance())
	default:
		p.unexpected(diag.SynBadImportSpecifier, "expected import specifier")
	}

	var local *ast.Identifier
	if p.atWord("as") {
		p.advance()
		local = p.parseBindingIdent()
	} else {
		if tok.Kind != token.Ident {
			p.fail(diag.SynBadImportSpecifier, tok.Span, "'"+tok.Text+"' must be renamed with 'as'")
		}
		local = p.identFrom(tok)
	}
	return &ast.ImportSpecifier{Range: p.rng(start), Imported: imported, Local: local}
}

func (p *Parser) parseModuleSource() *ast.Literal {
	if !p.at(token.StringLit) {
		p.unexpected(diag.SynExpectModuleSource, "expected module specifier string")
	}
	return p.parseLiteral().(*ast.Literal)
}
