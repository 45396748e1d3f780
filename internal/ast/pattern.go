package ast

// ObjectPattern is a destructuring target `{a, b: c, ...rest}`. Properties
// are *Property nodes whose Value is a pattern, and a trailing *RestElement.
type ObjectPattern struct {
	Range
	Properties []Node
}

func (*ObjectPattern) Kind() Kind { return KindObjectPattern }

// ArrayPattern is `[a, , b = 1, ...rest]`; holes are nil.
type ArrayPattern struct {
	Range
	Elements []Node
}

func (*ArrayPattern) Kind() Kind { return KindArrayPattern }

// AssignmentPattern is a pattern with a default value.
type AssignmentPattern struct {
	Range
	Left  Node
	Right Node
}

func (*AssignmentPattern) Kind() Kind { return KindAssignmentPattern }

type RestElement struct {
	Range
	Argument Node
}

func (*RestElement) Kind() Kind { return KindRestElement }
