// Package diag defines the diagnostic model shared by the lexer, the parser
// and the transpiler.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Producers use a Reporter to decouple emission from storage. ReportError and
// friends build a diagnostic step by step; BagReporter collects into a Bag,
// which supports sorting and deduplication.
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt.
package diag
