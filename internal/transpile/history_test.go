package transpile

import (
	"testing"

	"nbcell/internal/source"
)

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(2)
	for range 3 {
		id := h.NextID()
		h.Put(&Record{ID: id, Name: "c", Source: source.NewMapped("x", nil)})
	}
	if h.Len() != 2 {
		t.Fatalf("len = %d", h.Len())
	}
	if _, ok := h.Get(1); ok {
		t.Fatal("oldest record should be evicted")
	}
	recs := h.Records()
	if len(recs) != 2 || recs[0].ID != 2 || recs[1].ID != 3 {
		t.Fatalf("records = %v", recs)
	}
}

func TestHistoryReplaceKeepsOrder(t *testing.T) {
	h := NewHistory(0)
	h.Put(&Record{ID: 5, Name: "a"})
	h.Put(&Record{ID: 5, Name: "b"})
	if h.Len() != 1 {
		t.Fatalf("len = %d", h.Len())
	}
	if rec, _ := h.Get(5); rec.Name != "b" {
		t.Fatalf("record not replaced: %+v", rec)
	}
	if h.NextID() != 6 {
		t.Fatal("Put must move the id counter past stored ids")
	}
}

func TestHistorySeed(t *testing.T) {
	h := NewHistory(0)
	h.Seed(10)
	h.Seed(3)
	if got := h.NextID(); got != 11 {
		t.Fatalf("NextID after Seed(10) = %d", got)
	}
	if h.LastID() != 11 {
		t.Fatalf("LastID = %d", h.LastID())
	}
}
