package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("cell.js", []byte("hello world"), 0)
	id2 := fs.Add("cell.js", []byte("hello universe"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids")
	}
	latest, ok := fs.GetLatest("cell.js")
	if !ok || latest != id2 {
		t.Fatalf("expected latest id %d, got %d (ok=%v)", id2, latest, ok)
	}
	if string(fs.Get(id1).Content) != "hello world" {
		t.Fatalf("old version must stay reachable")
	}
	if fs.Get(FileID(99)) != nil {
		t.Fatalf("unknown id must return nil")
	}
}

// Смещения считаются в символах, а не в байтах.
func TestResolveCountsCharacters(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("u.js", []byte("ёж\nx"))
	start, _ := fs.Resolve(Span{File: id, Start: 3, End: 4})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("expected 2:1, got %d:%d", start.Line, start.Col)
	}
	start, _ = fs.Resolve(Span{File: id, Start: 1, End: 2})
	if start.Line != 1 || start.Col != 2 {
		t.Fatalf("expected 1:2, got %d:%d", start.Line, start.Col)
	}
	start, _ = fs.Resolve(Span{File: id, Start: 2, End: 2})
	if start.Line != 1 || start.Col != 3 {
		t.Fatalf("newline belongs to its own line, got %d:%d", start.Line, start.Col)
	}
}

func TestGetLine(t *testing.T) {
	f := NewStandaloneFile("x", "one\ntwo\n")
	if got := f.GetLine(2); got != "two" {
		t.Fatalf("expected %q, got %q", "two", got)
	}
	if got := f.GetLine(3); got != "" {
		t.Fatalf("expected empty trailing line, got %q", got)
	}
	if got := f.GetLine(0); got != "" {
		t.Fatalf("line 0 must be empty")
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cell.js")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a\nb" {
		t.Fatalf("expected normalized content, got %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", f.Flags)
	}
}
