package walk_test

import (
	"slices"
	"testing"

	"nbcell/internal/ast"
	"nbcell/internal/parser"
	"nbcell/internal/walk"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.Parse("w.js", src, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

type names struct{ seen []string }

func collectIdents() walk.Visitors[*names] {
	return walk.Visitors[*names]{
		ast.KindIdentifier: func(n ast.Node, st *names, _ walk.Callback[*names]) {
			st.seen = append(st.seen, n.(*ast.Identifier).Name)
		},
	}
}

func TestBaseSkipsNames(t *testing.T) {
	prog := mustParse(t, `a.b; o[c]; x = {d: e, [f]: g, h}; lbl: for (;;) break lbl`)
	st := &names{}
	walk.Recursive[*names](prog, st, collectIdents())
	want := []string{"a", "o", "c", "x", "e", "f", "g", "h"}
	if !slices.Equal(st.seen, want) {
		t.Fatalf("seen %v, want %v", st.seen, want)
	}
}

func TestNoopStopsDescent(t *testing.T) {
	prog := mustParse(t, `a; function f() { b }; (() => c)(); d`)
	st := &names{}
	v := collectIdents()
	v[ast.KindFunctionDeclaration] = walk.Noop[*names]
	v[ast.KindArrowFunctionExpression] = walk.Noop[*names]
	walk.Recursive[*names](prog, st, v)
	if want := []string{"a", "d"}; !slices.Equal(st.seen, want) {
		t.Fatalf("seen %v, want %v", st.seen, want)
	}
}

func TestVisitorControlsRecursion(t *testing.T) {
	prog := mustParse(t, `if (a) { b }`)
	st := &names{}
	v := collectIdents()
	v[ast.KindIfStatement] = func(n ast.Node, st *names, c walk.Callback[*names]) {
		st.seen = append(st.seen, "if")
		c(n.(*ast.IfStatement).Consequent, st)
	}
	walk.Recursive[*names](prog, st, v)
	if want := []string{"if", "b"}; !slices.Equal(st.seen, want) {
		t.Fatalf("seen %v, want %v", st.seen, want)
	}
}

func TestRecursiveWithAncestors(t *testing.T) {
	prog := mustParse(t, `{ var x = 1 }`)
	var chain []ast.Kind
	var last ast.Node
	walk.RecursiveWithAncestors[int](prog, 0, walk.AncestorVisitors[int]{
		ast.KindVariableDeclarator: func(n ast.Node, st int, c walk.Callback[int], anc []ast.Node) {
			last = anc[len(anc)-1]
			for _, a := range anc {
				chain = append(chain, a.Kind())
			}
			walk.Base(n, st, c)
		},
	})
	want := []ast.Kind{ast.KindProgram, ast.KindBlockStatement, ast.KindVariableDeclaration, ast.KindVariableDeclarator}
	if !slices.Equal(chain, want) {
		t.Fatalf("ancestors %v, want %v", chain, want)
	}
	if last.Kind() != ast.KindVariableDeclarator {
		t.Fatal("the visited node must be the last ancestor")
	}
}

func TestAncestorsUnwind(t *testing.T) {
	prog := mustParse(t, `f(a); g(b)`)
	var depths []int
	walk.RecursiveWithAncestors[int](prog, 0, walk.AncestorVisitors[int]{
		ast.KindIdentifier: func(_ ast.Node, _ int, _ walk.Callback[int], anc []ast.Node) {
			depths = append(depths, len(anc))
		},
	})
	// Program > ExpressionStatement > CallExpression > Identifier
	if want := []int{4, 4, 4, 4}; !slices.Equal(depths, want) {
		t.Fatalf("depths %v, want %v", depths, want)
	}
}

func TestChildrenIncludesNames(t *testing.T) {
	prog := mustParse(t, `import {a as b} from "m"`)
	spec := prog.Body[0].(*ast.ImportDeclaration).Specifiers[0]
	if got := len(walk.Children(spec)); got != 2 {
		t.Fatalf("children of renamed specifier = %d, want 2", got)
	}
	var kinds []ast.Kind
	walk.Inspect(prog, func(n ast.Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != ast.KindImportSpecifier
	})
	want := []ast.Kind{ast.KindProgram, ast.KindImportDeclaration, ast.KindImportSpecifier, ast.KindLiteral}
	if !slices.Equal(kinds, want) {
		t.Fatalf("inspect order %v, want %v", kinds, want)
	}
}
