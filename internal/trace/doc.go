// Package trace records what the transpiler does while it runs.
//
// Events are emitted for driver operations, rewrite passes, whole cells and
// individual node rewrites, and are written as text or NDJSON, or kept in a
// ring buffer for later inspection.
//
// # Usage
//
//	nbcell transpile --trace=- --trace-level=detail cell.js
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only error events
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-cell events
//   - LevelDebug: Everything including node rewrites
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "imports", parentID)
//	defer span.End("")
package trace
