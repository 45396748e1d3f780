package transpile

import (
	"errors"
	"strconv"

	"nbcell/internal/ast"
	"nbcell/internal/edit"
	"nbcell/internal/observ"
	"nbcell/internal/parser"
	"nbcell/internal/source"
	"nbcell/internal/trace"
)

const (
	passImports = "imports"
	passScope   = "scope"
)

// Transpiler rewrites cells and remembers them for stack formatting.
// It is safe for concurrent use.
type Transpiler struct {
	cfg     Config
	history *History
	tracer  trace.Tracer
}

// Option configures a Transpiler.
type Option func(*Transpiler)

// WithTracer sends pass and rewrite events to tr.
func WithTracer(tr trace.Tracer) Option {
	return func(t *Transpiler) {
		if tr != nil {
			t.tracer = tr
		}
	}
}

// WithHistory makes the transpiler record into h instead of a fresh
// history. Used to continue numbering after a snapshot was loaded.
func WithHistory(h *History) Option {
	return func(t *Transpiler) {
		if h != nil {
			t.history = h
		}
	}
}

// New creates a Transpiler. Empty names in cfg fall back to the defaults.
func New(cfg Config, opts ...Option) *Transpiler {
	cfg = cfg.withDefaults()
	t := &Transpiler{cfg: cfg, tracer: trace.Nop}
	for _, opt := range opts {
		opt(t)
	}
	if t.history == nil {
		t.history = NewHistory(cfg.HistoryLimit)
	}
	return t
}

// Config returns the effective configuration.
func (t *Transpiler) Config() Config { return t.cfg }

// History returns the record store shared by Transpile and FormatStack.
func (t *Transpiler) History() *History { return t.history }

// Result is one transpiled cell.
type Result struct {
	ID      uint64
	Name    string
	Code    string
	Source  source.Mapped
	Timings *observ.Timer
}

// Transpile rewrites code into an async function expression. name is the
// file name stack traces will show; an empty name becomes cell-<id>.
func (t *Transpiler) Transpile(code, name string) (*Result, error) {
	id := t.history.NextID()
	if name == "" {
		name = "cell-" + strconv.FormatUint(id, 10)
	}
	timer := observ.NewTimer()
	sp := trace.Begin(t.tracer, trace.ScopeCell, "cell:"+strconv.FormatUint(id, 10), 0)
	sp.WithExtra("name", name)

	anchor := source.NewAnchor(name, code)

	idx := timer.Begin("wrap")
	text := t.wrap(id, anchor.Mapped)
	timer.End(idx, "")

	var err error
	idx = timer.Begin(passImports)
	text, err = t.pass(passImports, name, text, sp.ID(), t.rewriteImports)
	timer.End(idx, "")
	if err != nil {
		sp.End("failed")
		return nil, err
	}

	idx = timer.Begin(passScope)
	text, err = t.pass(passScope, name, text, sp.ID(), t.rewriteScope)
	timer.End(idx, "")
	if err != nil {
		sp.End("failed")
		return nil, err
	}

	idx = timer.Begin("flush")
	final := text.Concat(source.NewMapped("\n//# sourceURL="+sourceURL(id, name), nil))
	t.history.Put(&Record{ID: id, Name: name, Source: final, Anchor: anchor})
	res := &Result{ID: id, Name: name, Code: final.String(), Source: final, Timings: timer}
	timer.End(idx, "")

	sp.End(strconv.Itoa(len(res.Code)) + " chars")
	return res, nil
}

type rewriteFunc func(body *ast.BlockStatement, text source.Mapped, buf *edit.Buffer, parent uint64)

// pass parses text, lets rewrite edit it and returns the flushed result.
func (t *Transpiler) pass(name, file string, text source.Mapped, parent uint64, rewrite rewriteFunc) (source.Mapped, error) {
	sp := trace.Begin(t.tracer, trace.ScopePass, name, parent)
	body, err := parseWrapped(file, text)
	if err != nil {
		perr := passError(name, file, text, err)
		trace.Error(t.tracer, trace.ScopePass, name, sp.ID(), perr)
		sp.End("error")
		return source.Empty, perr
	}
	buf := edit.New(text)
	rewrite(body, text, buf, sp.ID())
	sp.WithExtra("edits", strconv.Itoa(buf.Edits())).End("")
	return buf.Flush(), nil
}

// passError maps a parse failure in the wrapped text back to the cell.
func passError(pass, name string, text source.Mapped, err error) *Error {
	e := &Error{Pass: pass, Name: name, Err: err}
	var se *parser.SyntaxError
	if !errors.As(err, &se) || se.Pos.Line == 0 {
		return e
	}
	line, col := int(se.Pos.Line)-1, int(se.Pos.Col)-1
	o, ok := text.OriginNear(line, col)
	if !ok {
		o, ok = text.OriginBefore(line, col)
	}
	if ok {
		e.Line, e.Column = o.Line+1, o.Column+1
	}
	return e
}
