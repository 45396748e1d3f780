package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"nbcell/internal/diag"
	"nbcell/internal/lexer"
	"nbcell/internal/parser"
	"nbcell/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("/cells/test.js", []byte("let ok = 1\nlet s = \"unterminated"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: fileID, Start: 19, End: 32}, "Unterminated string literal").
		WithNote(source.Span{File: fileID, Start: 4, End: 6}, "note here"))
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: gone"))

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename, IncludeNotes: true})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 2 || len(output.Diagnostics) != 2 {
		t.Fatalf("Expected 2 diagnostics, got %+v", output)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1002" || d.Message != "Unterminated string literal" {
		t.Errorf("unexpected header fields: %+v", d)
	}
	loc := d.Location
	if loc == nil || loc.File != "test.js" || loc.StartChar != 19 || loc.EndChar != 32 {
		t.Fatalf("location = %+v", loc)
	}
	if loc.StartLine != 2 || loc.StartCol != 9 || loc.EndLine != 2 || loc.EndCol != 22 {
		t.Errorf("positions = %+v", loc)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location == nil || d.Notes[0].Location.StartCol != 5 {
		t.Errorf("notes = %+v", d.Notes)
	}

	if io := output.Diagnostics[1]; io.Code != "IO4001" || io.Location != nil {
		t.Errorf("file-level diagnostic = %+v", io)
	}
}

func TestJSONMaxAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.js", []byte("a b c"))
	bag := diag.NewBag(10)
	for i := range uint32(3) {
		bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: 2 * i, End: 2*i + 1}, "x").
			WithNote(source.Span{}, "hidden"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || out.Dropped != 1 {
		t.Fatalf("count = %d, dropped = %d", out.Count, out.Dropped)
	}
	if out.Diagnostics[0].Notes != nil {
		t.Errorf("notes should be dropped without IncludeNotes")
	}
	if out.Diagnostics[1].Location.StartLine != 0 {
		t.Errorf("positions should be omitted without IncludePositions")
	}
}

func TestJSONTimingsKeepNotes(t *testing.T) {
	bag := diag.NewBag(2)
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, "timings").WithNote(source.Span{}, `{"kind":"cell"}`))
	out := BuildDiagnosticsOutput(bag, source.NewFileSet(), JSONOpts{})
	if len(out.Diagnostics[0].Notes) != 1 || out.Diagnostics[0].Location != nil {
		t.Fatalf("timings = %+v", out.Diagnostics[0])
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.js", []byte("// hi\nx = 'a\\n'")))
	toks, lexErr := lexer.Tokenize(f, lexer.Options{KeepTrivia: true})
	if lexErr != nil {
		t.Fatalf("lex: %+v", lexErr)
	}

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(pretty.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("want 4 lines, got:\n%s", pretty.String())
	}
	for _, want := range []string{"at 2:1-2:2", "[nl]", "LineComment"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("first token line %q lacks %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[2], `"'a\\n'" = "a\n"`) {
		t.Errorf("string token line = %q", lines[2])
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(decoded) != 4 || !decoded[0].Newline || decoded[2].Value != "a\n" || decoded[1].Value != "" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestFormatAST(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("p.js", []byte("var a = 1 + b;\nf(a)")))
	prog, err := parser.ParseFile(f, parser.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, prog, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"p.js (span: 1:1-2:5)\n",
		"├─ VariableDeclaration var (span: 1:1-1:15)\n",
		"│  └─ VariableDeclarator (span: 1:5-1:14)\n",
		"│     └─ BinaryExpression + (span: 1:9-1:14)\n",
		"└─ ExpressionStatement (span: 2:1-2:5)\n",
		"      └─ Identifier a (span: 2:3-2:4)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := FormatASTJSON(&buf, prog); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if root.Type != "Program" || len(root.Children) != 2 || root.Children[0].Detail != "var" {
		t.Errorf("root = %+v", root)
	}
}
