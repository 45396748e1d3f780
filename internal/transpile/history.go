package transpile

import (
	"slices"
	"sync"
	"sync/atomic"

	"nbcell/internal/source"
)

// Record is what is kept about a transpiled cell: the generated text with
// its origins, and the anchor the origins point into.
type Record struct {
	ID     uint64
	Name   string
	Source source.Mapped
	Anchor *source.Anchor
}

// History maps transpilation ids to records. Reads vastly outnumber writes
// once stacks start being formatted, hence the RWMutex.
type History struct {
	mu      sync.RWMutex
	records map[uint64]*Record
	order   []uint64 // ids in insertion order, for eviction
	limit   int
	next    atomic.Uint64
}

// NewHistory creates an empty history. limit > 0 keeps only that many of
// the most recent records.
func NewHistory(limit int) *History {
	return &History{
		records: make(map[uint64]*Record),
		limit:   limit,
	}
}

// NextID reserves a fresh id. Ids start at 1 and are never reused.
func (h *History) NextID() uint64 {
	return h.next.Add(1)
}

// Seed makes sure ids handed out later are greater than id.
func (h *History) Seed(id uint64) {
	for {
		cur := h.next.Load()
		if cur >= id || h.next.CompareAndSwap(cur, id) {
			return
		}
	}
}

// Put stores rec, replacing a record with the same id.
func (h *History) Put(rec *Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.records[rec.ID]; !ok {
		h.order = append(h.order, rec.ID)
	}
	h.records[rec.ID] = rec
	for h.limit > 0 && len(h.order) > h.limit {
		delete(h.records, h.order[0])
		h.order = h.order[1:]
	}
	h.Seed(rec.ID)
}

// Get returns the record with the given id.
func (h *History) Get(id uint64) (*Record, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rec, ok := h.records[id]
	return rec, ok
}

// Len returns the number of stored records.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Records returns the stored records ordered by id.
func (h *History) Records() []*Record {
	h.mu.RLock()
	out := make([]*Record, 0, len(h.records))
	for _, rec := range h.records {
		out = append(out, rec)
	}
	h.mu.RUnlock()
	slices.SortFunc(out, func(a, b *Record) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}

// LastID returns the largest id handed out so far.
func (h *History) LastID() uint64 {
	return h.next.Load()
}
