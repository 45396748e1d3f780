package transpile

import (
	"errors"
	"fmt"

	"nbcell/internal/parser"
)

// ErrBadWrapper means a pass did not find the wrapper function where it
// put it. It signals a bug in an earlier pass, not in the cell.
var ErrBadWrapper = errors.New("wrapped program is not a single function expression")

// Error is a failure of one pass over one cell. Line and Column are
// 1-based positions in the cell, or zero when the failure could not be
// traced back to cell text.
type Error struct {
	Pass   string
	Name   string
	Line   int
	Column int
	Err    error
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	var se *parser.SyntaxError
	if errors.As(e.Err, &se) {
		msg = se.Diag.Code.ID() + ": " + se.Diag.Message
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Name, e.Line, e.Column, msg)
	}
	return fmt.Sprintf("%s: %s pass: %s", e.Name, e.Pass, msg)
}

func (e *Error) Unwrap() error { return e.Err }
