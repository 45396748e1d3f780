package lexer

import (
	"nbcell/internal/diag"
	"nbcell/internal/source"
	"nbcell/internal/token"
)

// Tokenize lexes the whole file. The returned diagnostic is the first
// lexical error, or nil.
func Tokenize(file *source.File, opts Options) ([]token.Token, *diag.Diagnostic) {
	lx := New(file, opts)
	toks := lx.All()
	return toks, lx.Err()
}
