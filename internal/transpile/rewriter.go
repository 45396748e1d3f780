package transpile

import (
	"strconv"

	"nbcell/internal/ast"
	"nbcell/internal/edit"
	"nbcell/internal/trace"
)

// rewriter is the part of the pass state shared by both passes.
type rewriter struct {
	edit   *edit.Buffer
	cfg    Config
	tracer trace.Tracer
	parent uint64
}

// note emits a node-level event for a rewrite of n.
func (r *rewriter) note(what string, n ast.Node) {
	if !r.tracer.Enabled() || !r.tracer.Level().ShouldEmit(trace.ScopeNode) {
		return
	}
	sp := n.Span()
	trace.Point(r.tracer, trace.ScopeNode, what, r.parent,
		n.Kind().String()+" ["+strconv.FormatUint(uint64(sp.Start), 10)+", "+strconv.FormatUint(uint64(sp.End), 10)+")")
}

// global returns the global-object prefix, e.g. "__global.".
func (r *rewriter) global() string {
	return r.cfg.GlobalVar + "."
}
