package parser

import (
	"fmt"

	"nbcell/internal/ast"
	"nbcell/internal/diag"
	"nbcell/internal/lexer"
	"nbcell/internal/source"
	"nbcell/internal/token"
)

type Options struct {
	Reporter diag.Reporter
	// TopLevelAwait allows await expressions outside async functions.
	TopLevelAwait bool
	// AllowReturnOutsideFunction permits return statements at top level.
	AllowReturnOutsideFunction bool
	// PreserveParens keeps parenthesised expressions as
	// ParenthesizedExpression nodes.
	PreserveParens bool
}

// SyntaxError is returned for the first lexical or syntax error.
type SyntaxError struct {
	Path string
	Pos  source.LineCol // 1-based
	Diag diag.Diagnostic
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.Path, e.Pos.Line, e.Pos.Col, e.Diag.Code.ID(), e.Diag.Message)
}

// fnContext описывает, что разрешено в текущем теле функции.
type fnContext struct {
	inFunction  bool
	inAsync     bool
	inGenerator bool
	loops       int
	switches    int
	labels      []string
}

// Parser хранит состояние парсера на один файл
type Parser struct {
	file    *source.File
	toks    []token.Token
	pos     int
	lastEnd uint32 // конец последнего съеденного токена
	opts    Options
	ctx     fnContext
}

// bailout переносит первую ошибку через panic до ParseFile.
type bailout struct {
	d diag.Diagnostic
}

// Parse parses text under the given display name.
func Parse(name, text string, opts Options) (*ast.Program, error) {
	return ParseFile(source.NewStandaloneFile(name, text), opts)
}

// ParseFile parses a whole source file into a Program.
func ParseFile(f *source.File, opts Options) (prog *ast.Program, err error) {
	toks, lexErr := lexer.Tokenize(f, lexer.Options{Reporter: opts.Reporter})
	if lexErr != nil {
		return nil, newSyntaxError(f, *lexErr)
	}

	p := &Parser{
		file: f,
		toks: toks,
		opts: opts,
		ctx: fnContext{
			inAsync:    opts.TopLevelAwait,
			inFunction: opts.AllowReturnOutsideFunction,
		},
	}

	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog = nil
			err = newSyntaxError(f, b.d)
		}
	}()

	return p.parseProgram(), nil
}

func newSyntaxError(f *source.File, d diag.Diagnostic) *SyntaxError {
	start, _ := f.Resolve(d.Primary)
	return &SyntaxError{Path: f.Path, Pos: start, Diag: d}
}

// parseProgram разбирает statement за statement до EOF.
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.at(token.EOF) {
		prog.Body = append(prog.Body, p.parseStatementListItem())
	}
	markDirectives(prog.Body)
	end := p.cur().Span.End
	prog.Loc = source.Span{File: p.file.ID, Start: 0, End: end}
	return prog
}

// markDirectives fills Directive for the leading string statements of a body.
func markDirectives(body []ast.Node) {
	for _, st := range body {
		es, ok := st.(*ast.ExpressionStatement)
		if !ok {
			return
		}
		lit, ok := es.Expression.(*ast.Literal)
		if !ok || lit.LitKind != ast.LitString || lit.Loc.Start != es.Loc.Start {
			return
		}
		es.Directive = lit.Raw[1 : len(lit.Raw)-1]
	}
}
