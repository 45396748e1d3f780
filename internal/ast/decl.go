package ast

// Function holds the parts shared by function declarations and expressions.
type Function struct {
	ID        *Identifier
	Params    []Node
	Body      *BlockStatement
	Async     bool
	Generator bool
}

type FunctionDeclaration struct {
	Range
	Function
}

func (*FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }

// VariableDeclaration covers var, let and const.
type VariableDeclaration struct {
	Range
	DeclKind     string // "var" | "let" | "const"
	Declarations []*VariableDeclarator
}

func (*VariableDeclaration) Kind() Kind { return KindVariableDeclaration }

type VariableDeclarator struct {
	Range
	ID   Node // *Identifier, *ObjectPattern или *ArrayPattern
	Init Node
}

func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }

// Class holds the parts shared by class declarations and expressions.
type Class struct {
	ID         *Identifier
	SuperClass Node
	Body       *ClassBody
}

type ClassDeclaration struct {
	Range
	Class
}

func (*ClassDeclaration) Kind() Kind { return KindClassDeclaration }

type ClassBody struct {
	Range
	Body []Node // *MethodDefinition, *PropertyDefinition, *StaticBlock
}

func (*ClassBody) Kind() Kind { return KindClassBody }

// MethodDefinition is a class method, accessor or constructor.
type MethodDefinition struct {
	Range
	Key      Node
	Value    *FunctionExpression
	MethKind string // "constructor" | "method" | "get" | "set"
	Computed bool
	Static   bool
}

func (*MethodDefinition) Kind() Kind { return KindMethodDefinition }

// PropertyDefinition is a class field.
type PropertyDefinition struct {
	Range
	Key      Node
	Value    Node
	Computed bool
	Static   bool
}

func (*PropertyDefinition) Kind() Kind { return KindPropertyDefinition }

type StaticBlock struct {
	Range
	Body []Node
}

func (*StaticBlock) Kind() Kind { return KindStaticBlock }
