// Package ast defines the JavaScript syntax tree produced by the parser.
//
// Node shapes follow ESTree naming. Every node records its [start, end)
// range in characters of the parsed text, which is what the rewriting
// passes use to address edit buffer slots.
package ast
