package trace

import "context"

type (
	tracerKey struct{}
	spanKey   struct{}
)

// FromContext returns the tracer stored in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx; nil is stored as Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// WithSpan makes sp the parent for spans started via BeginFrom.
func WithSpan(ctx context.Context, sp *Span) context.Context {
	return context.WithValue(ctx, spanKey{}, sp)
}

// ParentID is the id of the span attached by WithSpan, 0 without one.
func ParentID(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	sp, _ := ctx.Value(spanKey{}).(*Span)
	return sp.ID()
}

// BeginFrom starts a span on the context's tracer under the context's span.
//
//	sp := trace.BeginFrom(ctx, trace.ScopeDriver, "transpile")
//	defer sp.End("")
func BeginFrom(ctx context.Context, scope Scope, name string) *Span {
	return Begin(FromContext(ctx), scope, name, ParentID(ctx))
}
