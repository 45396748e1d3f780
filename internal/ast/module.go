package ast

// ImportDeclaration is `import ... from "source"` or `import "source"`.
// Specifiers is empty for a side-effect import.
type ImportDeclaration struct {
	Range
	Specifiers []Node
	Source     *Literal
}

func (*ImportDeclaration) Kind() Kind { return KindImportDeclaration }

// ImportSpecifier is `{ imported as local }`. Without `as`, Imported and
// Local cover the same range. Imported is an *Identifier or a string *Literal.
type ImportSpecifier struct {
	Range
	Imported Node
	Local    *Identifier
}

func (*ImportSpecifier) Kind() Kind { return KindImportSpecifier }

// Renamed reports whether the specifier has an `as` clause.
func (s *ImportSpecifier) Renamed() bool {
	return s.Imported.Span() != s.Local.Span()
}

type ImportDefaultSpecifier struct {
	Range
	Local *Identifier
}

func (*ImportDefaultSpecifier) Kind() Kind { return KindImportDefaultSpecifier }

type ImportNamespaceSpecifier struct {
	Range
	Local *Identifier
}

func (*ImportNamespaceSpecifier) Kind() Kind { return KindImportNamespaceSpecifier }
