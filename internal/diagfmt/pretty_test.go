package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"nbcell/internal/diag"
	"nbcell/internal/source"
)

func prettyOne(t *testing.T, path, content string, d func(source.FileID) diag.Diagnostic, opts PrettyOpts) string {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(path, []byte(content))
	bag := diag.NewBag(10)
	bag.Add(d(fileID))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, opts)
	return buf.String()
}

func TestPrettyCaret(t *testing.T) {
	out := prettyOne(t, "bad.js", "let ok = 1\nlet a = ;", func(id source.FileID) diag.Diagnostic {
		return diag.NewError(diag.SynExpectExpression, source.Span{File: id, Start: 19, End: 20}, "Expected expression")
	}, PrettyOpts{})

	want := "bad.js:2:9: ERROR SYN2007: Expected expression\n" +
		" 2 | let a = ;\n" +
		"   |         ^\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestPrettyContextLines(t *testing.T) {
	out := prettyOne(t, "a.js", "one\ntwo\nthree", func(id source.FileID) diag.Diagnostic {
		return diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: id, Start: 8, End: 13}, "odd")
	}, PrettyOpts{Context: 1})

	for _, want := range []string{"a.js:3:1: WARNING LEX1001: odd", " 2 | two", " 3 | three", "   | ^~~~~"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "one") {
		t.Errorf("context should stop at one line:\n%s", out)
	}
}

func TestPrettyWideAndTabs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		span    source.Span
		caret   string
	}{
		{"wide runes", "名前 = ;", source.Span{Start: 5, End: 6}, "   |        ^\n"},
		{"tab", "\tx = ;", source.Span{Start: 5, End: 6}, "   | \t    ^\n"},
		{"range", "let a = 1234;", source.Span{Start: 8, End: 12}, "   |         ^~~~\n"},
		{"multi line", "f(a,\n  b)", source.Span{Start: 1, End: 9}, "   |  ^~~\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := prettyOne(t, "w.js", tt.content, func(id source.FileID) diag.Diagnostic {
				sp := tt.span
				sp.File = id
				return diag.NewError(diag.SynUnexpectedToken, sp, "bad")
			}, PrettyOpts{})
			if !strings.HasSuffix(out, tt.caret) {
				t.Errorf("got:\n%q\nwant suffix %q", out, tt.caret)
			}
		})
	}
}

func TestPrettyPathModes(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		mode     PathMode
		contains string
		absent   string
	}{
		{"absolute", "/home/user/project/src/cell.js", PathModeAbsolute, "\n/home/user/project/src/cell.js:1:5", ""},
		{"basename", "/home/user/project/src/cell.js", PathModeBasename, "\ncell.js:1:5", "/home/"},
		{"relative", "src/cell.js", PathModeRelative, "\nsrc/cell.js:1:5", ""},
		{"auto short", "cell.js", PathModeAuto, "\ncell.js:1:5", ""},
		{"auto long", "/very/long/absolute/path/to/some/nested/directory/cell.js", PathModeAuto, "\ncell.js:1:5", "/very/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := prettyOne(t, tt.path, "let x = 42\n", func(id source.FileID) diag.Diagnostic {
				return diag.NewError(diag.LexBadNumber, source.Span{File: id, Start: 4, End: 5}, "bad number")
			}, PrettyOpts{PathMode: tt.mode})
			if !strings.Contains("\n"+out, tt.contains) {
				t.Errorf("expected %q in:\n%s", tt.contains, out)
			}
			if tt.absent != "" && strings.Contains(out, tt.absent) {
				t.Errorf("unexpected %q in:\n%s", tt.absent, out)
			}
		})
	}
}

func TestPrettyNotes(t *testing.T) {
	content := "import a from \"m\"\nexport a"
	build := func(id source.FileID) diag.Diagnostic {
		return diag.NewError(diag.SynExportNotSupported, source.Span{File: id, Start: 18, End: 24}, "export is not allowed").
			WithNote(source.Span{File: id, Start: 7, End: 8}, "a is imported here")
	}

	hidden := prettyOne(t, "n.js", content, build, PrettyOpts{})
	if strings.Contains(hidden, "note") {
		t.Errorf("notes should be hidden by default:\n%s", hidden)
	}

	out := prettyOne(t, "n.js", content, build, PrettyOpts{ShowNotes: true})
	for _, want := range []string{"n.js:2:1: ERROR SYN2110", "  note: n.js:1:8: a is imported here", "   |        ^\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPrettyWithoutLocation(t *testing.T) {
	out := prettyOne(t, "x.js", "1", func(source.FileID) diag.Diagnostic {
		return diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: gone")
	}, PrettyOpts{})
	if out != "ERROR IO4001: failed to load file: gone\n" {
		t.Fatalf("got %q", out)
	}
}

func TestPrettyColor(t *testing.T) {
	build := func(id source.FileID) diag.Diagnostic {
		return diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 1}, "bad")
	}
	if out := prettyOne(t, "c.js", ")", build, PrettyOpts{Color: true}); !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", out)
	}
	if out := prettyOne(t, "c.js", ")", build, PrettyOpts{}); strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected ANSI escapes in %q", out)
	}
}

func TestPrettyWidthClipsLine(t *testing.T) {
	long := "x = " + strings.Repeat("a", 60) + ";"
	out := prettyOne(t, "l.js", long, func(id source.FileID) diag.Diagnostic {
		return diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 1}, "bad")
	}, PrettyOpts{Width: 20})
	if !strings.Contains(out, " 1 | x = aaaaaaaaaaaaa...\n") {
		t.Errorf("line not clipped:\n%s", out)
	}
}

func TestPrettyReportsDropped(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.js", []byte("a b c"))
	bag := diag.NewBag(1)
	for i := range uint32(3) {
		bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: 2 * i, End: 2*i + 1}, "x"))
	}

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "note: 2 more diagnostic(s) not shown") {
		t.Fatalf("missing dropped line:\n%s", buf.String())
	}
}
