package lexer

import (
	"nbcell/internal/diag"
	"nbcell/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil: тогда ошибки только запоминаем
	// KeepTrivia stores comments and whitespace in Token.Leading.
	KeepTrivia bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	d := diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	if lx.firstErr == nil {
		lx.firstErr = &d
	}
}
