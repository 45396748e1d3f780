// Package transpile turns a notebook cell into an async function
// expression that a host can evaluate and call with its global object,
// module loader and console.
//
// The work is split into passes that each parse the previous pass's output
// and edit it through an edit.Buffer:
//
//	wrap     surround the cell with the function header and footer
//	imports  turn import declarations into awaited loader calls
//	scope    hoist top-level bindings onto the global object and return
//	         the value of a trailing expression statement
//
// Every character of the result keeps the origin it had in the cell, so a
// stack trace taken while the function runs can be mapped back with
// FormatStack.
package transpile
