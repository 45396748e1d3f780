package diag

import "nbcell/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Located reports whether the diagnostic points into source text. I/O and
// timing diagnostics are file-level and carry an empty span.
func (d Diagnostic) Located() bool {
	return d.Code != IOLoadFileError && d.Code != ObsTimings
}
