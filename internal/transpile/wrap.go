package transpile

import (
	"fmt"
	"strings"

	"nbcell/internal/ast"
	"nbcell/internal/edit"
	"nbcell/internal/parser"
	"nbcell/internal/source"
)

const (
	wrapperPrefix = "__transpiled_top_level_"
	sourcePrefix  = "__transpiled_source_"
	idSuffix      = "__"
	wrapperFooter = "\n})"
)

func wrapperName(id uint64) string {
	return fmt.Sprintf("%s%d%s", wrapperPrefix, id, idSuffix)
}

// sourceURL is the name the host shows in stack frames for the cell.
// Whitespace would end the sourceURL comment early.
func sourceURL(id uint64, name string) string {
	// пробелы и ":()" ломают разбор ссылки в стеке
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':', '(', ')':
			return '_'
		}
		return r
	}, name)
	return fmt.Sprintf("%s%d%s/%s", sourcePrefix, id, idSuffix, clean)
}

func (t *Transpiler) header(id uint64) string {
	return fmt.Sprintf("(async function %s(%s, %s, %s) {\n",
		wrapperName(id), t.cfg.GlobalVar, t.cfg.ImportFn, t.cfg.ConsoleVar)
}

// wrap surrounds the cell with the wrapper function. Header and footer
// carry no origin.
func (t *Transpiler) wrap(id uint64, cell source.Mapped) source.Mapped {
	buf := edit.New(cell)
	buf.Prepend(source.NewMapped(t.header(id), nil))
	buf.Append(source.NewMapped(wrapperFooter, nil))
	return buf.Flush()
}

// parseWrapped parses text and returns the body of the wrapper function.
func parseWrapped(name string, text source.Mapped) (*ast.BlockStatement, error) {
	prog, err := parser.Parse(name, text.String(), parser.Options{})
	if err != nil {
		return nil, err
	}
	if len(prog.Body) != 1 {
		return nil, ErrBadWrapper
	}
	stmt, ok := prog.Body[0].(*ast.ExpressionStatement)
	if !ok {
		return nil, ErrBadWrapper
	}
	fn, ok := stmt.Expression.(*ast.FunctionExpression)
	if !ok || fn.Body == nil {
		return nil, ErrBadWrapper
	}
	return fn.Body, nil
}
