package source

import "testing"

func TestAnchorLineColumn(t *testing.T) {
	a := NewAnchor("cell.js", "ab\nc\n\nd")
	want := []struct {
		line, column int
	}{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1},
		{2, 0},
		{3, 0},
	}
	if a.Len() != len(want) {
		t.Fatalf("expected %d chars, got %d", len(want), a.Len())
	}
	for i, w := range want {
		o := a.At(i).Origin
		if o.File != a {
			t.Fatalf("char %d: origin file is not the anchor itself", i)
		}
		if o.Line != w.line || o.Column != w.column {
			t.Errorf("char %d: expected %d:%d, got %d:%d", i, w.line, w.column, o.Line, o.Column)
		}
	}
}

func TestAnchorIdentitySurvivesConcat(t *testing.T) {
	a := NewAnchor("a", "1")
	b := NewAnchor("a", "1")
	m := Concat(a.Mapped, b.Mapped)
	if m.At(0).Origin.File == m.At(1).Origin.File {
		t.Fatalf("anchors with equal names must stay distinct")
	}
}

func TestAnchorLine(t *testing.T) {
	a := NewAnchor("a", "first\nsecond")
	if l, ok := a.Line(1); !ok || l != "second" {
		t.Fatalf("expected %q, got %q", "second", l)
	}
	if _, ok := a.Line(2); ok {
		t.Fatalf("expected missing line")
	}
	if a.Name() != "a" || a.Text() != "first\nsecond" {
		t.Fatalf("unexpected name/text")
	}
}

func TestOriginString(t *testing.T) {
	a := NewAnchor("cell", "x\ny")
	if got := a.At(2).Origin.String(); got != "cell:2:1" {
		t.Fatalf("expected cell:2:1, got %s", got)
	}
	var o *Origin
	if o.String() != "<synthetic>" {
		t.Fatalf("nil origin must render as synthetic")
	}
}

func TestAnchorOffset(t *testing.T) {
	a := NewAnchor("c", "ab\ncd")
	for i := range a.Len() {
		off, ok := a.Offset(a.At(i).Origin)
		if !ok || off != i {
			t.Fatalf("Offset of char %d = %d, %v", i, off, ok)
		}
	}
	other := NewAnchor("d", "ab")
	if _, ok := a.Offset(other.At(0).Origin); ok {
		t.Fatal("origin of another anchor must not resolve")
	}
	if _, ok := a.Offset(nil); ok {
		t.Fatal("nil origin must not resolve")
	}
}
