package edit_test

import (
	"errors"
	"testing"

	"nbcell/internal/edit"
	"nbcell/internal/source"
)

type span struct{ start, end uint32 }

func (s span) Span() source.Span { return source.Span{Start: s.start, End: s.end} }

func TestFlushWithoutEditsRoundTrips(t *testing.T) {
	a := source.NewAnchor("cell", "let x = 1;\nx")
	b := edit.New(a.Mapped)
	if got := b.Flush().String(); got != a.Text() {
		t.Fatalf("flush = %q, want %q", got, a.Text())
	}
}

func TestSlotCountInvariant(t *testing.T) {
	a := source.NewAnchor("cell", "var a, b;")
	b := edit.New(a.Mapped)
	n := b.Len()
	b.Replace(0, 4, "void (")
	b.InsertBefore(span{4, 5}, "(__global.")
	b.InsertAfter(span{4, 5}, "= undefined)")
	b.Replace(5, 7, ",")
	b.Prepend(source.NewMapped("{", nil))
	b.Append(source.NewMapped("}", nil))
	if b.Len() != n {
		t.Fatalf("slot count changed: %d -> %d", n, b.Len())
	}
	if b.Edits() != 6 {
		t.Fatalf("edits = %d, want 6", b.Edits())
	}
}

func TestReplace(t *testing.T) {
	a := source.NewAnchor("cell", "let x = 1;")
	b := edit.New(a.Mapped)
	b.Replace(0, 4, "void (")
	out := b.Flush()
	if got, want := out.String(), "void (x = 1;"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	// заменённый текст наследует позицию первого символа диапазона
	for i := range len("void (") {
		o := out.At(i).Origin
		if o == nil || o.File != a || o.Column != 0 {
			t.Fatalf("char %d origin = %v, want cell:1:1", i, o)
		}
	}
	if o := out.At(6).Origin; o == nil || o.Column != 4 {
		t.Fatalf("x origin = %v, want column 4", o)
	}
}

func TestReplaceEmptyRangeInserts(t *testing.T) {
	a := source.NewAnchor("cell", "ab")
	b := edit.New(a.Mapped)
	b.Replace(1, 1, "-")
	if got := b.Flush().String(); got != "a-b" {
		t.Fatalf("got %q, want %q", got, "a-b")
	}
	b.Replace(2, 2, "!")
	if got := b.Flush().String(); got != "a-b!" {
		t.Fatalf("got %q, want %q", got, "a-b!")
	}
}

func TestInsertBeforeAndAfter(t *testing.T) {
	a := source.NewAnchor("cell", "f(x)")
	b := edit.New(a.Mapped)
	node := span{2, 3}
	b.InsertBefore(node, "[")
	b.InsertAfter(node, "]")
	b.InsertBefore(node, "<")
	b.InsertAfter(node, ">")
	out := b.Flush()
	if got, want := out.String(), "f(<[x]>)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	// "]" и ">" взяли позицию следующего символа ')'
	if o := out.At(5).Origin; o == nil || o.Column != 3 {
		t.Fatalf("after-text origin = %v, want column 3", o)
	}
}

func TestInsertAfterLastCharIsSynthetic(t *testing.T) {
	a := source.NewAnchor("cell", "x")
	b := edit.New(a.Mapped)
	b.InsertAfter(span{0, 1}, ")")
	out := b.Flush()
	if out.String() != "x)" {
		t.Fatalf("got %q", out.String())
	}
	if out.At(1).Origin != nil {
		t.Fatalf("text after the last character should be synthetic, got %v", out.At(1).Origin)
	}
}

func TestPrependAppend(t *testing.T) {
	a := source.NewAnchor("cell", "body")
	b := edit.New(a.Mapped)
	b.Prepend(source.NewMapped("(", nil))
	b.Prepend(source.NewMapped("<", nil))
	b.Append(source.NewMapped(")", nil))
	b.Append(source.NewMapped(">", nil))
	if got, want := b.Flush().String(), "<(body)>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(b *edit.Buffer)
	}{
		{"replace past end", func(b *edit.Buffer) { b.Replace(1, 9, "x") }},
		{"reversed range", func(b *edit.Buffer) { b.Replace(2, 1, "x") }},
		{"insert before past end", func(b *edit.Buffer) { b.InsertBefore(span{5, 6}, "x") }},
		{"insert after past end", func(b *edit.Buffer) { b.InsertAfter(span{0, 7}, "x") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, edit.ErrOutOfRange) {
					t.Fatalf("recovered %v, want ErrOutOfRange", r)
				}
			}()
			tt.fn(edit.New(source.NewAnchor("cell", "abc").Mapped))
		})
	}
}
