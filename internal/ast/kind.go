package ast

// Kind identifies the concrete type of a Node.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindProgram

	// Statements
	KindEmptyStatement
	KindDebuggerStatement
	KindBlockStatement
	KindExpressionStatement
	KindIfStatement
	KindLabeledStatement
	KindBreakStatement
	KindContinueStatement
	KindWithStatement
	KindSwitchStatement
	KindSwitchCase
	KindReturnStatement
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement

	// Declarations
	KindFunctionDeclaration
	KindVariableDeclaration
	KindVariableDeclarator
	KindClassDeclaration
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindStaticBlock
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier

	// Expressions
	KindIdentifier
	KindPrivateIdentifier
	KindLiteral
	KindThisExpression
	KindSuper
	KindArrayExpression
	KindObjectExpression
	KindProperty
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindTemplateLiteral
	KindTemplateElement
	KindTaggedTemplateExpression
	KindMemberExpression
	KindCallExpression
	KindChainExpression
	KindNewExpression
	KindMetaProperty
	KindImportExpression
	KindSpreadElement
	KindUpdateExpression
	KindUnaryExpression
	KindBinaryExpression
	KindLogicalExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindSequenceExpression
	KindYieldExpression
	KindAwaitExpression
	KindParenthesizedExpression

	// Patterns
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:                  "Invalid",
	KindProgram:                  "Program",
	KindEmptyStatement:           "EmptyStatement",
	KindDebuggerStatement:        "DebuggerStatement",
	KindBlockStatement:           "BlockStatement",
	KindExpressionStatement:      "ExpressionStatement",
	KindIfStatement:              "IfStatement",
	KindLabeledStatement:         "LabeledStatement",
	KindBreakStatement:           "BreakStatement",
	KindContinueStatement:        "ContinueStatement",
	KindWithStatement:            "WithStatement",
	KindSwitchStatement:          "SwitchStatement",
	KindSwitchCase:               "SwitchCase",
	KindReturnStatement:          "ReturnStatement",
	KindThrowStatement:           "ThrowStatement",
	KindTryStatement:             "TryStatement",
	KindCatchClause:              "CatchClause",
	KindWhileStatement:           "WhileStatement",
	KindDoWhileStatement:         "DoWhileStatement",
	KindForStatement:             "ForStatement",
	KindForInStatement:           "ForInStatement",
	KindForOfStatement:           "ForOfStatement",
	KindFunctionDeclaration:      "FunctionDeclaration",
	KindVariableDeclaration:      "VariableDeclaration",
	KindVariableDeclarator:       "VariableDeclarator",
	KindClassDeclaration:         "ClassDeclaration",
	KindClassBody:                "ClassBody",
	KindMethodDefinition:         "MethodDefinition",
	KindPropertyDefinition:       "PropertyDefinition",
	KindStaticBlock:              "StaticBlock",
	KindImportDeclaration:        "ImportDeclaration",
	KindImportSpecifier:          "ImportSpecifier",
	KindImportDefaultSpecifier:   "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier: "ImportNamespaceSpecifier",
	KindIdentifier:               "Identifier",
	KindPrivateIdentifier:        "PrivateIdentifier",
	KindLiteral:                  "Literal",
	KindThisExpression:           "ThisExpression",
	KindSuper:                    "Super",
	KindArrayExpression:          "ArrayExpression",
	KindObjectExpression:         "ObjectExpression",
	KindProperty:                 "Property",
	KindFunctionExpression:       "FunctionExpression",
	KindArrowFunctionExpression:  "ArrowFunctionExpression",
	KindClassExpression:          "ClassExpression",
	KindTemplateLiteral:          "TemplateLiteral",
	KindTemplateElement:          "TemplateElement",
	KindTaggedTemplateExpression: "TaggedTemplateExpression",
	KindMemberExpression:         "MemberExpression",
	KindCallExpression:           "CallExpression",
	KindChainExpression:          "ChainExpression",
	KindNewExpression:            "NewExpression",
	KindMetaProperty:             "MetaProperty",
	KindImportExpression:         "ImportExpression",
	KindSpreadElement:            "SpreadElement",
	KindUpdateExpression:         "UpdateExpression",
	KindUnaryExpression:          "UnaryExpression",
	KindBinaryExpression:         "BinaryExpression",
	KindLogicalExpression:        "LogicalExpression",
	KindAssignmentExpression:     "AssignmentExpression",
	KindConditionalExpression:    "ConditionalExpression",
	KindSequenceExpression:       "SequenceExpression",
	KindYieldExpression:          "YieldExpression",
	KindAwaitExpression:          "AwaitExpression",
	KindParenthesizedExpression:  "ParenthesizedExpression",
	KindObjectPattern:            "ObjectPattern",
	KindArrayPattern:             "ArrayPattern",
	KindAssignmentPattern:        "AssignmentPattern",
	KindRestElement:              "RestElement",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Invalid"
}

// NumKinds is the number of node kinds, KindInvalid included.
const NumKinds = int(kindCount)
