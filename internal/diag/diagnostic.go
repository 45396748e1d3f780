package diag

import (
	"nbcell/internal/source"
)

// Severity orders diagnostics: a larger value is more severe.
type Severity uint8

const (
	// SevInfo carries measurements such as timings; it never fails a run.
	SevInfo Severity = iota
	SevWarning
	// SevError marks a cell that could not be transpiled.
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
