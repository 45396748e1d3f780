package transpile

import (
	"regexp"
	"strconv"
	"strings"
)

// StackError is a runtime error reported by the host, such as a JavaScript
// Error object, that carries its stack trace.
type StackError interface {
	error
	Stack() string
}

var (
	wrapperFrameRe = regexp.MustCompile(wrapperPrefix + `\d+` + idSuffix)
	sourceRefRe    = regexp.MustCompile(sourcePrefix + `(\d+)` + idSuffix + `(?:/[^\s:)]*)?(?::(\d+))?(?::(\d+))?`)
)

// FormatErrorStack formats the stack of err with FormatStack.
func (t *Transpiler) FormatErrorStack(err StackError) string {
	return t.FormatStack(err.Stack())
}

// FormatStack rewrites a stack trace in terms of the cells it went
// through. Frames below the first wrapper frame belong to the host and are
// dropped; the wrapper's name is shown as the top-level label. References
// to transpiled sources become cell:line:column. References that cannot be
// resolved are kept as they are.
func (t *Transpiler) FormatStack(stack string) string {
	lines := strings.Split(stack, "\n")
	for i, line := range lines {
		loc := wrapperFrameRe.FindStringIndex(line)
		if loc == nil {
			continue
		}
		lines[i] = line[:loc[0]] + t.cfg.TopLevelLabel + line[loc[1]:]
		lines = lines[:i+1]
		break
	}
	return sourceRefRe.ReplaceAllStringFunc(strings.Join(lines, "\n"), t.resolveRef)
}

// resolveRef maps one __transpiled_source_<id>__/name:line:col reference.
func (t *Transpiler) resolveRef(ref string) string {
	m := sourceRefRe.FindStringSubmatch(ref)
	if m == nil || m[2] == "" {
		return ref
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return ref
	}
	rec, ok := t.history.Get(id)
	if !ok {
		return ref
	}
	line, err := strconv.Atoi(m[2])
	if err != nil || line < 1 {
		return ref
	}
	col := 1
	if m[3] != "" {
		if col, err = strconv.Atoi(m[3]); err != nil || col < 1 {
			return ref
		}
	}
	o, ok := rec.Source.OriginNear(line-1, col-1)
	if !ok {
		return ref
	}
	return o.String()
}
