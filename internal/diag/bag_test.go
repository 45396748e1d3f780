package diag

import (
	"slices"
	"testing"

	"nbcell/internal/source"
)

func TestBagLimitAndSort(t *testing.T) {
	b := NewBag(2)
	r := BagReporter{Bag: b}
	r.Report(SynExpectSemicolon, SevError, source.Span{Start: 9, End: 10}, "later", nil)
	r.Report(LexBadNumber, SevWarning, source.Span{Start: 1, End: 2}, "earlier", nil)
	r.Report(SynUnexpectedToken, SevError, source.Span{Start: 0, End: 1}, "dropped", nil)

	if b.Len() != 2 {
		t.Fatalf("expected limit of 2, got %d", b.Len())
	}
	b.Sort()
	if b.Items()[0].Message != "earlier" {
		t.Fatalf("expected sorted by start, got %q first", b.Items()[0].Message)
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("expected both errors and warnings")
	}
	if b.Dropped() != 1 {
		t.Fatalf("dropped = %d", b.Dropped())
	}
}

func TestBagKeepsInfoPastLimit(t *testing.T) {
	b := NewBag(1)
	b.Add(NewError(SynExpectSemicolon, source.Span{Start: 1, End: 2}, "first"))
	if !b.Add(New(SevInfo, ObsTimings, source.Span{}, "timings")) {
		t.Fatal("info diagnostics ignore the limit")
	}
	if b.Add(NewError(SynExpectSemicolon, source.Span{Start: 3, End: 4}, "second")) {
		t.Fatal("second error exceeds the limit")
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("len = %d, dropped = %d", b.Len(), b.Dropped())
	}
}

func TestBagMergeCountsDropped(t *testing.T) {
	cell := NewBag(1)
	cell.Add(NewError(SynExpectSemicolon, source.Span{Start: 1, End: 2}, "a"))
	cell.Add(NewError(SynExpectSemicolon, source.Span{Start: 2, End: 3}, "b"))

	run := NewBag(0)
	run.Merge(cell)
	run.Merge(nil)
	if run.Len() != 1 || run.Dropped() != 1 {
		t.Fatalf("len = %d, dropped = %d", run.Len(), run.Dropped())
	}

	small := NewBag(1)
	small.Add(NewError(LexBadNumber, source.Span{}, "own"))
	small.Merge(cell)
	if small.Len() != 1 || small.Dropped() != 2 {
		t.Fatalf("len = %d, dropped = %d", small.Len(), small.Dropped())
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(0)
	sp := source.Span{File: 1, Start: 4, End: 5}
	b.Add(NewError(SynUnexpectedToken, sp, "unexpected"))
	b.Add(NewError(SynUnexpectedToken, sp, "unexpected").WithNote(source.Span{}, "again"))
	b.Add(NewError(SynUnexpectedToken, sp, "other text"))
	b.Add(NewError(SynExpectSemicolon, sp, "unexpected"))
	b.Dedup()
	if b.Len() != 3 {
		t.Fatalf("len = %d, items = %+v", b.Len(), b.Items())
	}
	if len(b.Items()[0].Notes) != 0 {
		t.Fatal("first occurrence must be kept")
	}
}

func TestBagSortPutsUnlocatedLast(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(IOLoadFileError, source.Span{}, "gone"))
	b.Add(New(SevInfo, ObsTimings, source.Span{}, "timings"))
	b.Add(NewError(SynExpectSemicolon, source.Span{File: 2, Start: 0, End: 1}, "second file"))
	b.Add(New(SevWarning, LexBadNumber, source.Span{File: 1, Start: 5, End: 6}, "warn"))
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 1, Start: 5, End: 6}, "error"))
	b.Sort()

	var got []string
	for _, d := range b.Items() {
		got = append(got, d.Message)
	}
	want := []string{"error", "warn", "second file", "gone", "timings"}
	if !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnterminatedString: "LEX1002",
		SynExportNotSupported: "SYN2110",
		TrnBadWrapper:         "TRN3001",
		UnknownCode:           "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
	if Code(2999).Title() != "Unknown error" {
		t.Fatalf("unknown codes must fall back to the generic title")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(10)
	builder := ReportError(BagReporter{Bag: b}, SynUnclosedParen, source.Span{Start: 4, End: 5}, "expected ')'").
		WithNote(source.Span{Start: 0, End: 1}, "opened here")
	d := builder.Emit()
	builder.Emit()
	if b.Len() != 1 {
		t.Fatalf("expected a single emitted diagnostic, got %d", b.Len())
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "opened here" {
		t.Fatalf("note lost: %+v", d.Notes)
	}
}
