package walk

import "nbcell/internal/ast"

// Callback walks n with the visitor set of the current traversal.
type Callback[S any] func(n ast.Node, st S)

// Visitor handles one node kind.
type Visitor[S any] func(n ast.Node, st S, c Callback[S])

// Visitors maps node kinds to visitors.
type Visitors[S any] map[ast.Kind]Visitor[S]

// AncestorVisitor also receives the ancestor stack. The last element is n
// itself, the one before it is n's parent. The slice is reused after the
// visitor returns and must not be retained.
type AncestorVisitor[S any] func(n ast.Node, st S, c Callback[S], ancestors []ast.Node)

// AncestorVisitors maps node kinds to ancestor-aware visitors.
type AncestorVisitors[S any] map[ast.Kind]AncestorVisitor[S]

// Noop is a visitor that stops the traversal at its node.
func Noop[S any](ast.Node, S, Callback[S]) {}

// Recursive walks n depth-first with the given visitors.
func Recursive[S any](n ast.Node, st S, visitors Visitors[S]) {
	var c Callback[S]
	c = func(n ast.Node, st S) {
		if ast.IsNil(n) {
			return
		}
		if v, ok := visitors[n.Kind()]; ok && v != nil {
			v(n, st, c)
			return
		}
		Base(n, st, c)
	}
	c(n, st)
}

// RecursiveWithAncestors is Recursive with an explicit ancestor stack.
func RecursiveWithAncestors[S any](n ast.Node, st S, visitors AncestorVisitors[S]) {
	ancestors := make([]ast.Node, 0, 16)
	var c Callback[S]
	c = func(n ast.Node, st S) {
		if ast.IsNil(n) {
			return
		}
		ancestors = append(ancestors, n)
		if v, ok := visitors[n.Kind()]; ok && v != nil {
			v(n, st, c, ancestors)
		} else {
			Base(n, st, c)
		}
		ancestors = ancestors[:len(ancestors)-1]
	}
	c(n, st)
}

// Base walks the children of n that may contain code: names that are never
// evaluated (non-computed keys, member property names, labels, import
// specifier names) are skipped.
func Base[S any](n ast.Node, st S, c Callback[S]) {
	for _, ch := range children(n, false) {
		c(ch, st)
	}
}

// Children returns every child of n in source order, names included.
func Children(n ast.Node) []ast.Node {
	return children(n, true)
}

// Inspect calls fn for n and its descendants in depth-first order. If fn
// returns false the children of that node are skipped.
func Inspect(n ast.Node, fn func(ast.Node) bool) {
	if ast.IsNil(n) || !fn(n) {
		return
	}
	for _, ch := range Children(n) {
		Inspect(ch, fn)
	}
}
