// Package parser builds an ast.Program from JavaScript source.
//
// The grammar covers ES2020 scripts plus import declarations, which are
// accepted in any statement position. Export declarations are rejected.
// Parsing stops at the first error; the error is returned as a
// *SyntaxError and also sent to Options.Reporter.
package parser
