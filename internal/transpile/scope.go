package transpile

import (
	"nbcell/internal/ast"
	"nbcell/internal/edit"
	"nbcell/internal/source"
	"nbcell/internal/walk"
)

// scopeState is the state of the scope pass. translating is set while the
// binding targets of a hoisted variable declaration are walked.
type scopeState struct {
	rewriter
	text        source.Mapped
	body        *ast.BlockStatement
	translating bool
}

var scopeVisitors = walk.AncestorVisitors[*scopeState]{
	ast.KindClassDeclaration:        visitClassDeclaration,
	ast.KindFunctionDeclaration:     visitFunctionDeclaration,
	ast.KindVariableDeclaration:     visitVariableDeclaration,
	ast.KindVariableDeclarator:      visitVariableDeclarator,
	ast.KindObjectPattern:           visitObjectPattern,
	ast.KindArrayPattern:            visitArrayPattern,
	ast.KindAssignmentPattern:       visitAssignmentPattern,
	ast.KindRestElement:             visitRestElement,
	ast.KindFunctionExpression:      stopScope,
	ast.KindArrowFunctionExpression: stopScope,
	ast.KindMethodDefinition:        stopScope,
	ast.KindPropertyDefinition:      stopScope,
	ast.KindStaticBlock:             stopScope,
}

// stopScope keeps the walk out of nested function scopes.
func stopScope(ast.Node, *scopeState, walk.Callback[*scopeState], []ast.Node) {}

func parentOf(ancestors []ast.Node) ast.Node {
	if len(ancestors) < 2 {
		return nil
	}
	return ancestors[len(ancestors)-2]
}

func (t *Transpiler) rewriteScope(body *ast.BlockStatement, text source.Mapped, buf *edit.Buffer, parent uint64) {
	st := &scopeState{
		rewriter: rewriter{edit: buf, cfg: t.cfg, tracer: t.tracer, parent: parent},
		text:     text,
		body:     body,
	}
	walk.RecursiveWithAncestors(body, st, scopeVisitors)
	returnLast(st)
}

// returnLast makes a trailing expression statement the function's result:
// `x + 1;` -> `return (x + 1);`. The closing paren goes before the
// semicolon rather than after the expression node, whose range leaves out
// any parentheses around it.
func returnLast(st *scopeState) {
	if len(st.body.Body) == 0 {
		return
	}
	last, ok := st.body.Body[len(st.body.Body)-1].(*ast.ExpressionStatement)
	if !ok {
		return
	}
	end := last.End()
	if end > last.Expression.Span().End && st.text.At(int(end)-1).Char == ';' {
		end--
	}
	st.edit.InsertBefore(last, "return (")
	st.edit.Replace(end, end, ")")
	st.note("return", last)
}

// visitClassDeclaration: a top-level `class A {}` becomes
// `void (__global.A=class A {});`. Nested classes stay block scoped.
func visitClassDeclaration(n ast.Node, st *scopeState, c walk.Callback[*scopeState], ancestors []ast.Node) {
	walk.Base(n, st, c)
	if parentOf(ancestors) != ast.Node(st.body) {
		return
	}
	cls := n.(*ast.ClassDeclaration)
	st.edit.InsertBefore(cls, "void ("+st.global()+cls.ID.Name+"=")
	st.edit.InsertAfter(cls, ");")
	st.note("class", cls)
}

// visitFunctionDeclaration: `function f() {}` becomes
// `void (__global.f=function f() {});` wherever it appears outside another
// function. The body is not entered.
func visitFunctionDeclaration(n ast.Node, st *scopeState, _ walk.Callback[*scopeState], _ []ast.Node) {
	fn := n.(*ast.FunctionDeclaration)
	st.edit.InsertBefore(fn, "void ("+st.global()+fn.ID.Name+"=")
	st.edit.InsertAfter(fn, ");")
	st.note("function", fn)
}

// visitVariableDeclaration hoists `var` declarations and every top-level
// declaration:
//
//	var a = 1, b;  ->  void ((__global.a = 1), (__global.b= undefined));
//
// In a for-in/of head the declaration becomes a bare assignment target.
func visitVariableDeclaration(n ast.Node, st *scopeState, c walk.Callback[*scopeState], ancestors []ast.Node) {
	decl := n.(*ast.VariableDeclaration)
	parent := parentOf(ancestors)
	translate := decl.DeclKind == "var" || parent == ast.Node(st.body)

	st.translating = translate
	walk.Base(n, st, c)
	st.translating = false

	if !translate || len(decl.Declarations) == 0 {
		return
	}
	first := decl.Declarations[0]
	if isLoopHead(parent, decl) {
		st.edit.Replace(decl.Start(), first.Start(), "")
		st.note("var", decl)
		return
	}

	st.edit.Replace(decl.Start(), first.Start(), "void (")
	for _, d := range decl.Declarations {
		st.edit.InsertBefore(d, "(")
		if d.Init == nil {
			st.edit.InsertAfter(d, "= undefined)")
		} else {
			st.edit.InsertAfter(d, ")")
		}
	}
	last := decl.Declarations[len(decl.Declarations)-1]
	st.edit.InsertAfter(last, ")")
	// `void (...)` можно продолжить следующей строкой ([, (, `), поэтому
	// закрываем оператор, если исходник полагался на ASI
	if !isForInit(parent, decl) && st.text.At(int(decl.End())-1).Char != ';' {
		st.edit.InsertAfter(last, ";")
	}
	st.note("var", decl)
}

// isForInit reports whether decl is the init clause of a C-style for loop.
func isForInit(parent ast.Node, decl *ast.VariableDeclaration) bool {
	p, ok := parent.(*ast.ForStatement)
	return ok && p.Init == ast.Node(decl)
}

// isLoopHead reports whether decl is the left side of a for-in/of loop.
func isLoopHead(parent ast.Node, decl *ast.VariableDeclaration) bool {
	switch p := parent.(type) {
	case *ast.ForInStatement:
		return p.Left == ast.Node(decl)
	case *ast.ForOfStatement:
		return p.Left == ast.Node(decl)
	}
	return false
}

func visitVariableDeclarator(n ast.Node, st *scopeState, c walk.Callback[*scopeState], _ []ast.Node) {
	walk.Base(n, st, c)
	if !st.translating {
		return
	}
	d := n.(*ast.VariableDeclarator)
	if id, ok := d.ID.(*ast.Identifier); ok {
		st.edit.InsertBefore(id, st.global())
	}
}

// visitObjectPattern: {a, b: c} -> {a:__global.a, b: __global.c}.
func visitObjectPattern(n ast.Node, st *scopeState, c walk.Callback[*scopeState], _ []ast.Node) {
	walk.Base(n, st, c)
	if !st.translating {
		return
	}
	pat := n.(*ast.ObjectPattern)
	for _, p := range pat.Properties {
		prop, ok := p.(*ast.Property)
		if !ok {
			continue // RestElement has its own visitor
		}
		if prop.Shorthand {
			// у {a = 1} значение это AssignmentPattern, вставка идёт после ключа
			if key, ok := prop.Key.(*ast.Identifier); ok {
				st.edit.InsertAfter(key, ":"+st.global()+key.Name)
			}
			continue
		}
		if id, ok := prop.Value.(*ast.Identifier); ok {
			st.edit.InsertBefore(id, st.global())
		}
	}
}

// visitArrayPattern: [a, , b] -> [__global.a, , __global.b].
func visitArrayPattern(n ast.Node, st *scopeState, c walk.Callback[*scopeState], _ []ast.Node) {
	walk.Base(n, st, c)
	if !st.translating {
		return
	}
	pat := n.(*ast.ArrayPattern)
	for _, el := range pat.Elements {
		if id, ok := el.(*ast.Identifier); ok {
			st.edit.InsertBefore(id, st.global())
		}
	}
}

// visitAssignmentPattern: [a = 1] -> [__global.a = 1]. The shorthand form
// {a = 1} is handled by visitObjectPattern.
func visitAssignmentPattern(n ast.Node, st *scopeState, c walk.Callback[*scopeState], ancestors []ast.Node) {
	walk.Base(n, st, c)
	if !st.translating {
		return
	}
	if prop, ok := parentOf(ancestors).(*ast.Property); ok && prop.Shorthand {
		return
	}
	pat := n.(*ast.AssignmentPattern)
	if id, ok := pat.Left.(*ast.Identifier); ok {
		st.edit.InsertBefore(id, st.global())
	}
}

// visitRestElement: [...rest] -> [...__global.rest].
func visitRestElement(n ast.Node, st *scopeState, c walk.Callback[*scopeState], _ []ast.Node) {
	walk.Base(n, st, c)
	if !st.translating {
		return
	}
	rest := n.(*ast.RestElement)
	if id, ok := rest.Argument.(*ast.Identifier); ok {
		st.edit.InsertBefore(id, st.global())
	}
}
