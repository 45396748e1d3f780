package fuzztests

import (
	"testing"
	"time"

	"nbcell/internal/diag"
	"nbcell/internal/parser"
	"nbcell/internal/source"
	"nbcell/internal/transpile"
)

// parseTimeout is the maximum time allowed for a single input. Longer runs
// point at a recovery loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.js", input))

		bag := diag.NewBag(128)
		prog, err := parser.ParseFile(file, parser.Options{
			Reporter:                   diag.BagReporter{Bag: bag},
			TopLevelAwait:              true,
			AllowReturnOutsideFunction: true,
		})
		if err == nil && prog == nil {
			t.Fatal("nil program without error")
		}
	})
}

// FuzzTranspileNoHang runs the whole transpiler under a timeout. A cell that
// transpiles must map every stack position back without panicking.
func FuzzTranspileNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("let {a = (b, c) => d} = e\nf"))
	f.Add([]byte("if (a) b; else c\nd"))
	f.Add([]byte("class A { static { init() } }"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			tr := transpile.New(transpile.DefaultConfig())
			res, err := tr.Transpile(string(input), "fuzz")
			if err != nil {
				return
			}
			_ = tr.FormatStack("at __transpiled_source_1__/fuzz:2:1\nat __transpiled_source_1__/fuzz:3")
			if res.Source.Len() == 0 {
				t.Errorf("empty transpiled source")
			}
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("transpile hang detected: took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
