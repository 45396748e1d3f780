package walk

import "nbcell/internal/ast"

type collector struct {
	out []ast.Node
	all bool
}

func (c *collector) add(nodes ...ast.Node) {
	for _, n := range nodes {
		if !ast.IsNil(n) {
			c.out = append(c.out, n)
		}
	}
}

func (c *collector) name(n ast.Node) {
	if c.all {
		c.add(n)
	}
}

// key adds a property key when it is evaluated or names are requested.
func (c *collector) key(n ast.Node, computed bool) {
	if computed || c.all {
		c.add(n)
	}
}

func (c *collector) function(fn *ast.Function) {
	if fn.ID != nil {
		c.add(fn.ID)
	}
	c.add(fn.Params...)
	if fn.Body != nil {
		c.add(fn.Body)
	}
}

func (c *collector) class(cls *ast.Class) {
	if cls.ID != nil {
		c.add(cls.ID)
	}
	c.add(cls.SuperClass)
	if cls.Body != nil {
		c.add(cls.Body)
	}
}

// children перечисляет прямых потомков узла в порядке исходника.
func children(n ast.Node, all bool) []ast.Node {
	c := &collector{all: all}
	switch v := n.(type) {
	case *ast.Program:
		c.add(v.Body...)
	case *ast.BlockStatement:
		c.add(v.Body...)
	case *ast.ExpressionStatement:
		c.add(v.Expression)
	case *ast.IfStatement:
		c.add(v.Test, v.Consequent, v.Alternate)
	case *ast.LabeledStatement:
		if v.Label != nil {
			c.name(v.Label)
		}
		c.add(v.Body)
	case *ast.BreakStatement:
		if v.Label != nil {
			c.name(v.Label)
		}
	case *ast.ContinueStatement:
		if v.Label != nil {
			c.name(v.Label)
		}
	case *ast.WithStatement:
		c.add(v.Object, v.Body)
	case *ast.SwitchStatement:
		c.add(v.Discriminant)
		for _, sc := range v.Cases {
			c.add(sc)
		}
	case *ast.SwitchCase:
		c.add(v.Test)
		c.add(v.Consequent...)
	case *ast.ReturnStatement:
		c.add(v.Argument)
	case *ast.ThrowStatement:
		c.add(v.Argument)
	case *ast.TryStatement:
		if v.Block != nil {
			c.add(v.Block)
		}
		if v.Handler != nil {
			c.add(v.Handler)
		}
		if v.Finalizer != nil {
			c.add(v.Finalizer)
		}
	case *ast.CatchClause:
		c.add(v.Param)
		if v.Body != nil {
			c.add(v.Body)
		}
	case *ast.WhileStatement:
		c.add(v.Test, v.Body)
	case *ast.DoWhileStatement:
		c.add(v.Body, v.Test)
	case *ast.ForStatement:
		c.add(v.Init, v.Test, v.Update, v.Body)
	case *ast.ForInStatement:
		c.add(v.Left, v.Right, v.Body)
	case *ast.ForOfStatement:
		c.add(v.Left, v.Right, v.Body)
	case *ast.FunctionDeclaration:
		c.function(&v.Function)
	case *ast.FunctionExpression:
		c.function(&v.Function)
	case *ast.ArrowFunctionExpression:
		c.add(v.Params...)
		c.add(v.Body)
	case *ast.VariableDeclaration:
		for _, d := range v.Declarations {
			c.add(d)
		}
	case *ast.VariableDeclarator:
		c.add(v.ID, v.Init)
	case *ast.ClassDeclaration:
		c.class(&v.Class)
	case *ast.ClassExpression:
		c.class(&v.Class)
	case *ast.ClassBody:
		c.add(v.Body...)
	case *ast.MethodDefinition:
		c.key(v.Key, v.Computed)
		if v.Value != nil {
			c.add(v.Value)
		}
	case *ast.PropertyDefinition:
		c.key(v.Key, v.Computed)
		c.add(v.Value)
	case *ast.StaticBlock:
		c.add(v.Body...)
	case *ast.ImportDeclaration:
		c.add(v.Specifiers...)
		if v.Source != nil {
			c.add(v.Source)
		}
	case *ast.ImportSpecifier:
		if v.Renamed() {
			c.name(v.Imported)
		}
		if v.Local != nil {
			c.name(v.Local)
		}
	case *ast.ImportDefaultSpecifier:
		if v.Local != nil {
			c.name(v.Local)
		}
	case *ast.ImportNamespaceSpecifier:
		if v.Local != nil {
			c.name(v.Local)
		}
	case *ast.ArrayExpression:
		c.add(v.Elements...)
	case *ast.ObjectExpression:
		c.add(v.Properties...)
	case *ast.Property:
		if v.Shorthand {
			// ключ и значение: один и тот же идентификатор
			c.add(v.Value)
			break
		}
		c.key(v.Key, v.Computed)
		c.add(v.Value)
	case *ast.TemplateLiteral:
		for i, q := range v.Quasis {
			c.name(q)
			if i < len(v.Expressions) {
				c.add(v.Expressions[i])
			}
		}
	case *ast.TaggedTemplateExpression:
		c.add(v.Tag)
		if v.Quasi != nil {
			c.add(v.Quasi)
		}
	case *ast.MemberExpression:
		c.add(v.Object)
		c.key(v.Property, v.Computed)
	case *ast.CallExpression:
		c.add(v.Callee)
		c.add(v.Arguments...)
	case *ast.ChainExpression:
		c.add(v.Expression)
	case *ast.NewExpression:
		c.add(v.Callee)
		c.add(v.Arguments...)
	case *ast.MetaProperty:
		if v.Meta != nil {
			c.name(v.Meta)
		}
		if v.Property != nil {
			c.name(v.Property)
		}
	case *ast.ImportExpression:
		c.add(v.Source)
	case *ast.SpreadElement:
		c.add(v.Argument)
	case *ast.UpdateExpression:
		c.add(v.Argument)
	case *ast.UnaryExpression:
		c.add(v.Argument)
	case *ast.BinaryExpression:
		c.add(v.Left, v.Right)
	case *ast.LogicalExpression:
		c.add(v.Left, v.Right)
	case *ast.AssignmentExpression:
		c.add(v.Left, v.Right)
	case *ast.ConditionalExpression:
		c.add(v.Test, v.Consequent, v.Alternate)
	case *ast.SequenceExpression:
		c.add(v.Expressions...)
	case *ast.YieldExpression:
		c.add(v.Argument)
	case *ast.AwaitExpression:
		c.add(v.Argument)
	case *ast.ParenthesizedExpression:
		c.add(v.Expression)
	case *ast.ObjectPattern:
		c.add(v.Properties...)
	case *ast.ArrayPattern:
		c.add(v.Elements...)
	case *ast.AssignmentPattern:
		c.add(v.Left, v.Right)
	case *ast.RestElement:
		c.add(v.Argument)
	}
	return c.out
}
