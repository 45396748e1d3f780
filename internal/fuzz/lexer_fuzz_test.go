package fuzztests

import (
	"testing"

	"nbcell/internal/diag"
	"nbcell/internal/lexer"
	"nbcell/internal/source"
	"nbcell/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.js", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, KeepTrivia: true})
		var prevEnd uint32
		// каждый токен продвигает курсор, значит токенов не больше символов
		for range len(file.Chars) + 1 {
			tok := lx.Next()
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %s span %v overlaps previous end %d", tok.Kind, tok.Span, prevEnd)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				return
			}
		}
		t.Fatalf("lexer did not reach EOF on %d chars", len(file.Chars))
	})
}
