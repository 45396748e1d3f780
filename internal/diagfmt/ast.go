package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"nbcell/internal/ast"
	"nbcell/internal/source"
	"nbcell/internal/walk"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Detail   string          `json:"detail,omitempty"`
	Span     source.Span     `json:"span"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty печатает дерево программы с ветками ├─ / └─.
func FormatASTPretty(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("program is nil")
	}

	header := "Program"
	if fs != nil {
		if f := fs.Get(prog.Loc.File); f != nil {
			header = f.FormatPath("auto")
		}
	}
	fmt.Fprintf(w, "%s (span: %s)\n", header, formatSpan(prog.Loc, fs))

	for i, stmt := range prog.Body {
		formatNodePretty(w, stmt, fs, "", i == len(prog.Body)-1)
	}
	return nil
}

func formatNodePretty(w io.Writer, n ast.Node, fs *source.FileSet, prefix string, last bool) {
	branch, next := "├─ ", "│  "
	if last {
		branch, next = "└─ ", "   "
	}

	label := n.Kind().String()
	if detail := nodeDetail(n); detail != "" {
		label += " " + detail
	}
	fmt.Fprintf(w, "%s%s%s (span: %s)\n", prefix, branch, label, formatSpan(n.Span(), fs))

	children := walk.Children(n)
	for i, ch := range children {
		formatNodePretty(w, ch, fs, prefix+next, i == len(children)-1)
	}
}

// FormatASTJSON выводит дерево программы в JSON.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("program is nil")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildNodeJSON(prog))
}

func buildNodeJSON(n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{
		Type:   n.Kind().String(),
		Detail: nodeDetail(n),
		Span:   n.Span(),
	}
	for _, ch := range walk.Children(n) {
		out.Children = append(out.Children, buildNodeJSON(ch))
	}
	return out
}

// nodeDetail: короткая подпись узла: имя, литерал или оператор.
func nodeDetail(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.PrivateIdentifier:
		return "#" + v.Name
	case *ast.Literal:
		return v.Raw
	case *ast.TemplateElement:
		return fmt.Sprintf("%q", v.Raw)
	case *ast.VariableDeclaration:
		return v.DeclKind
	case *ast.MethodDefinition:
		return v.MethKind
	case *ast.FunctionDeclaration:
		return functionFlags(v.Async, v.Generator)
	case *ast.FunctionExpression:
		return functionFlags(v.Async, v.Generator)
	case *ast.ArrowFunctionExpression:
		return functionFlags(v.Async, false)
	case *ast.UpdateExpression:
		return v.Operator
	case *ast.UnaryExpression:
		return v.Operator
	case *ast.BinaryExpression:
		return v.Operator
	case *ast.LogicalExpression:
		return v.Operator
	case *ast.AssignmentExpression:
		return v.Operator
	}
	return ""
}

func functionFlags(async, generator bool) string {
	var flags []string
	if async {
		flags = append(flags, "async")
	}
	if generator {
		flags = append(flags, "generator")
	}
	return strings.Join(flags, " ")
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil && fs.Get(span.File) != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
