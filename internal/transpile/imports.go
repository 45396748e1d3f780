package transpile

import (
	"nbcell/internal/ast"
	"nbcell/internal/edit"
	"nbcell/internal/source"
	"nbcell/internal/walk"
)

type importState struct {
	rewriter
}

// importVisitors rewrite import declarations. Function bodies and class
// members cannot hold imports and are not entered.
var importVisitors = walk.Visitors[*importState]{
	ast.KindImportDeclaration:        visitImportDeclaration,
	ast.KindImportSpecifier:          visitImportSpecifier,
	ast.KindImportDefaultSpecifier:   visitImportDefaultSpecifier,
	ast.KindImportNamespaceSpecifier: visitImportNamespaceSpecifier,
	ast.KindFunctionDeclaration:      walk.Noop[*importState],
	ast.KindFunctionExpression:       walk.Noop[*importState],
	ast.KindArrowFunctionExpression:  walk.Noop[*importState],
	ast.KindMethodDefinition:         walk.Noop[*importState],
	ast.KindPropertyDefinition:       walk.Noop[*importState],
	ast.KindStaticBlock:              walk.Noop[*importState],
}

func (t *Transpiler) rewriteImports(body *ast.BlockStatement, _ source.Mapped, buf *edit.Buffer, parent uint64) {
	st := &importState{rewriter{edit: buf, cfg: t.cfg, tracer: t.tracer, parent: parent}}
	walk.Recursive(body, st, importVisitors)
}

// visitImportDeclaration turns
//
//	import a, {b as c} from "m";
//
// into a destructuring of the awaited loader result
//
//	var {_:{default:a},_:{b:c}} = {_:await __import("m")};
//
// The object around the module lets every specifier pick from the same
// value under the key "_". A side-effect import becomes a bare call.
func visitImportDeclaration(n ast.Node, st *importState, c walk.Callback[*importState]) {
	decl := n.(*ast.ImportDeclaration)
	src := decl.Source
	call := "await " + st.cfg.ImportFn + "("

	if len(decl.Specifiers) == 0 {
		st.edit.Replace(decl.Start(), src.Start(), call)
		st.edit.Replace(src.End(), decl.End(), ");")
		st.note("import", decl)
		return
	}

	cur := decl.Specifiers[0]
	st.edit.Replace(decl.Start(), cur.Span().Start, "var {")
	for _, next := range decl.Specifiers[1:] {
		st.edit.Replace(cur.Span().End, next.Span().Start, ",")
		cur = next
	}
	st.edit.Replace(cur.Span().End, src.Start(), "} = {_:"+call)
	st.edit.Replace(src.End(), decl.End(), ")};")
	st.note("import", decl)

	walk.Base(n, st, c)
}

// visitImportSpecifier: {b} -> _:{b}, {b as c} -> _:{b:c}.
func visitImportSpecifier(n ast.Node, st *importState, _ walk.Callback[*importState]) {
	spec := n.(*ast.ImportSpecifier)
	st.edit.InsertBefore(spec, "_:{")
	if spec.Renamed() {
		st.edit.Replace(spec.Imported.Span().End, spec.Local.Start(), ":")
	}
	st.edit.InsertAfter(spec, "}")
}

// visitImportDefaultSpecifier: a -> _:{default:a}.
func visitImportDefaultSpecifier(n ast.Node, st *importState, _ walk.Callback[*importState]) {
	spec := n.(*ast.ImportDefaultSpecifier)
	st.edit.InsertBefore(spec.Local, "_:{default:")
	st.edit.InsertAfter(spec.Local, "}")
}

// visitImportNamespaceSpecifier: * as ns -> _:ns.
func visitImportNamespaceSpecifier(n ast.Node, st *importState, _ walk.Callback[*importState]) {
	spec := n.(*ast.ImportNamespaceSpecifier)
	st.edit.Replace(spec.Start(), spec.Local.Start(), "_:")
}
