package ast

type Identifier struct {
	Range
	Name string
}

func (*Identifier) Kind() Kind { return KindIdentifier }

// PrivateIdentifier is a class private name; Name excludes the '#'.
type PrivateIdentifier struct {
	Range
	Name string
}

func (*PrivateIdentifier) Kind() Kind { return KindPrivateIdentifier }

// LiteralKind classifies a Literal.
type LiteralKind uint8

const (
	LitString LiteralKind = iota
	LitNumber
	LitBigInt
	LitRegExp
	LitNull
	LitBool
)

func (k LiteralKind) String() string {
	switch k {
	case LitString:
		return "string"
	case LitNumber:
		return "number"
	case LitBigInt:
		return "bigint"
	case LitRegExp:
		return "regexp"
	case LitNull:
		return "null"
	case LitBool:
		return "bool"
	}
	return "unknown"
}

// Literal keeps the raw source text; Value is the cooked string for string
// literals and equals Raw otherwise.
type Literal struct {
	Range
	LitKind LiteralKind
	Raw     string
	Value   string
}

func (*Literal) Kind() Kind { return KindLiteral }

type ThisExpression struct{ Range }

func (*ThisExpression) Kind() Kind { return KindThisExpression }

type Super struct{ Range }

func (*Super) Kind() Kind { return KindSuper }

// ArrayExpression holds elements; holes are nil.
type ArrayExpression struct {
	Range
	Elements []Node
}

func (*ArrayExpression) Kind() Kind { return KindArrayExpression }

type ObjectExpression struct {
	Range
	Properties []Node // *Property или *SpreadElement
}

func (*ObjectExpression) Kind() Kind { return KindObjectExpression }

// Property appears in object literals and object patterns.
type Property struct {
	Range
	Key       Node
	Value     Node
	PropKind  string // "init" | "get" | "set"
	Method    bool
	Shorthand bool
	Computed  bool
}

func (*Property) Kind() Kind { return KindProperty }

type FunctionExpression struct {
	Range
	Function
}

func (*FunctionExpression) Kind() Kind { return KindFunctionExpression }

// ArrowFunctionExpression has either a block Body or, when Expression is
// set, an expression body.
type ArrowFunctionExpression struct {
	Range
	Params     []Node
	Body       Node
	Expression bool
	Async      bool
}

func (*ArrowFunctionExpression) Kind() Kind { return KindArrowFunctionExpression }

type ClassExpression struct {
	Range
	Class
}

func (*ClassExpression) Kind() Kind { return KindClassExpression }

// TemplateLiteral interleaves Quasis and Expressions; there is always one
// more quasi than expressions.
type TemplateLiteral struct {
	Range
	Quasis      []*TemplateElement
	Expressions []Node
}

func (*TemplateLiteral) Kind() Kind { return KindTemplateLiteral }

type TemplateElement struct {
	Range
	Raw    string
	Cooked string
	Tail   bool
}

func (*TemplateElement) Kind() Kind { return KindTemplateElement }

type TaggedTemplateExpression struct {
	Range
	Tag   Node
	Quasi *TemplateLiteral
}

func (*TaggedTemplateExpression) Kind() Kind { return KindTaggedTemplateExpression }

// MemberExpression is `a.b`, `a[b]`, `a?.b` or `a.#b`.
type MemberExpression struct {
	Range
	Object   Node
	Property Node
	Computed bool
	Optional bool
}

func (*MemberExpression) Kind() Kind { return KindMemberExpression }

type CallExpression struct {
	Range
	Callee    Node
	Arguments []Node
	Optional  bool
}

func (*CallExpression) Kind() Kind { return KindCallExpression }

// ChainExpression wraps an optional chain such as `a?.b.c()`.
type ChainExpression struct {
	Range
	Expression Node
}

func (*ChainExpression) Kind() Kind { return KindChainExpression }

type NewExpression struct {
	Range
	Callee    Node
	Arguments []Node
}

func (*NewExpression) Kind() Kind { return KindNewExpression }

// MetaProperty is `new.target` or `import.meta`.
type MetaProperty struct {
	Range
	Meta     *Identifier
	Property *Identifier
}

func (*MetaProperty) Kind() Kind { return KindMetaProperty }

// ImportExpression is a dynamic `import(source)`.
type ImportExpression struct {
	Range
	Source Node
}

func (*ImportExpression) Kind() Kind { return KindImportExpression }

type SpreadElement struct {
	Range
	Argument Node
}

func (*SpreadElement) Kind() Kind { return KindSpreadElement }

type UpdateExpression struct {
	Range
	Operator string
	Prefix   bool
	Argument Node
}

func (*UpdateExpression) Kind() Kind { return KindUpdateExpression }

type UnaryExpression struct {
	Range
	Operator string
	Argument Node
}

func (*UnaryExpression) Kind() Kind { return KindUnaryExpression }

type BinaryExpression struct {
	Range
	Operator string
	Left     Node
	Right    Node
}

func (*BinaryExpression) Kind() Kind { return KindBinaryExpression }

// LogicalExpression is `&&`, `||` or `??`.
type LogicalExpression struct {
	Range
	Operator string
	Left     Node
	Right    Node
}

func (*LogicalExpression) Kind() Kind { return KindLogicalExpression }

type AssignmentExpression struct {
	Range
	Operator string
	Left     Node
	Right    Node
}

func (*AssignmentExpression) Kind() Kind { return KindAssignmentExpression }

type ConditionalExpression struct {
	Range
	Test       Node
	Consequent Node
	Alternate  Node
}

func (*ConditionalExpression) Kind() Kind { return KindConditionalExpression }

type SequenceExpression struct {
	Range
	Expressions []Node
}

func (*SequenceExpression) Kind() Kind { return KindSequenceExpression }

type YieldExpression struct {
	Range
	Argument Node
	Delegate bool
}

func (*YieldExpression) Kind() Kind { return KindYieldExpression }

type AwaitExpression struct {
	Range
	Argument Node
}

func (*AwaitExpression) Kind() Kind { return KindAwaitExpression }

// ParenthesizedExpression is produced only when the parser is asked to
// preserve parentheses.
type ParenthesizedExpression struct {
	Range
	Expression Node
}

func (*ParenthesizedExpression) Kind() Kind { return KindParenthesizedExpression }
