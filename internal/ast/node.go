package ast

import "nbcell/internal/source"

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Span() source.Span
}

// Range is embedded by every node and records its [start, end) character
// range in the parsed text.
type Range struct {
	Loc source.Span
}

func (r *Range) Span() source.Span { return r.Loc }

// Start returns the offset of the node's first character.
func (r *Range) Start() uint32 { return r.Loc.Start }

// End returns the offset one past the node's last character.
func (r *Range) End() uint32 { return r.Loc.End }

// Program is the root of a parsed text.
type Program struct {
	Range
	Body []Node
}

func (*Program) Kind() Kind { return KindProgram }

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Identifier:
		return v == nil
	case *BlockStatement:
		return v == nil
	case *Literal:
		return v == nil
	case *CatchClause:
		return v == nil
	case *ClassBody:
		return v == nil
	case *FunctionExpression:
		return v == nil
	case *TemplateLiteral:
		return v == nil
	case *SwitchCase:
		return v == nil
	case *VariableDeclarator:
		return v == nil
	}
	return false
}
