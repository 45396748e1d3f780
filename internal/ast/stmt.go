package ast

type EmptyStatement struct{ Range }

func (*EmptyStatement) Kind() Kind { return KindEmptyStatement }

type DebuggerStatement struct{ Range }

func (*DebuggerStatement) Kind() Kind { return KindDebuggerStatement }

type BlockStatement struct {
	Range
	Body []Node
}

func (*BlockStatement) Kind() Kind { return KindBlockStatement }

type ExpressionStatement struct {
	Range
	Expression Node
	// Directive holds the raw string of a "use strict"-like prologue entry.
	Directive string
}

func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }

type IfStatement struct {
	Range
	Test       Node
	Consequent Node
	Alternate  Node // nil без else
}

func (*IfStatement) Kind() Kind { return KindIfStatement }

type LabeledStatement struct {
	Range
	Label *Identifier
	Body  Node
}

func (*LabeledStatement) Kind() Kind { return KindLabeledStatement }

type BreakStatement struct {
	Range
	Label *Identifier
}

func (*BreakStatement) Kind() Kind { return KindBreakStatement }

type ContinueStatement struct {
	Range
	Label *Identifier
}

func (*ContinueStatement) Kind() Kind { return KindContinueStatement }

type WithStatement struct {
	Range
	Object Node
	Body   Node
}

func (*WithStatement) Kind() Kind { return KindWithStatement }

type SwitchStatement struct {
	Range
	Discriminant Node
	Cases        []*SwitchCase
}

func (*SwitchStatement) Kind() Kind { return KindSwitchStatement }

// SwitchCase is a case clause; Test is nil for default.
type SwitchCase struct {
	Range
	Test       Node
	Consequent []Node
}

func (*SwitchCase) Kind() Kind { return KindSwitchCase }

type ReturnStatement struct {
	Range
	Argument Node
}

func (*ReturnStatement) Kind() Kind { return KindReturnStatement }

type ThrowStatement struct {
	Range
	Argument Node
}

func (*ThrowStatement) Kind() Kind { return KindThrowStatement }

type TryStatement struct {
	Range
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (*TryStatement) Kind() Kind { return KindTryStatement }

type CatchClause struct {
	Range
	Param Node // nil для catch без параметра
	Body  *BlockStatement
}

func (*CatchClause) Kind() Kind { return KindCatchClause }

type WhileStatement struct {
	Range
	Test Node
	Body Node
}

func (*WhileStatement) Kind() Kind { return KindWhileStatement }

type DoWhileStatement struct {
	Range
	Body Node
	Test Node
}

func (*DoWhileStatement) Kind() Kind { return KindDoWhileStatement }

// ForStatement is a C-style loop. Init is a *VariableDeclaration, an
// expression or nil.
type ForStatement struct {
	Range
	Init   Node
	Test   Node
	Update Node
	Body   Node
}

func (*ForStatement) Kind() Kind { return KindForStatement }

// ForInStatement iterates keys. Left is a *VariableDeclaration with one
// declarator and no initialiser, or an assignment target expression.
type ForInStatement struct {
	Range
	Left  Node
	Right Node
	Body  Node
}

func (*ForInStatement) Kind() Kind { return KindForInStatement }

type ForOfStatement struct {
	Range
	Left  Node
	Right Node
	Body  Node
	Await bool
}

func (*ForOfStatement) Kind() Kind { return KindForOfStatement }
