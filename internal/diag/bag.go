package diag

import (
	"cmp"
	"slices"

	"nbcell/internal/source"
)

// Bag collects diagnostics of one run. The limit caps warnings and errors
// only: info diagnostics (timings) are always kept, whatever the limit.
type Bag struct {
	items   []Diagnostic
	limit   int
	dropped int
}

// NewBag creates a bag keeping at most limit warnings and errors;
// limit <= 0 keeps all of them.
func NewBag(limit int) *Bag {
	if limit < 0 {
		limit = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max(limit, 1), 16)),
		limit: limit,
	}
}

// Add добавляет диагностику с учётом лимита.
// Возвращает false, если она отброшена; отброшенные считаются в Dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if d.Severity > SevInfo && b.limit > 0 && b.counted() >= b.limit {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// counted: сколько элементов попадает под лимит.
func (b *Bag) counted() int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity > SevInfo {
			n++
		}
	}
	return n
}

// Dropped returns how many diagnostics did not fit, including those
// dropped by bags merged into this one.
func (b *Bag) Dropped() int {
	return b.dropped
}

func (b *Bag) HasErrors() bool {
	return b.atLeast(SevError)
}

func (b *Bag) HasWarnings() bool {
	return b.atLeast(SevWarning)
}

// atLeast reports whether some diagnostic is at least as severe as sev.
func (b *Bag) atLeast(sev Severity) bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= sev })
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает диагностики без копирования; срез не модифицировать.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge adds the diagnostics of other, per-cell bags into a run-wide one.
// The receiver's limit applies.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	for _, d := range other.items {
		b.Add(d)
	}
	b.dropped += other.dropped
}

// Sort orders diagnostics by file and position, more severe first at the
// same position. Diagnostics without a location go last, in the order they
// were added.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		lx, ly := x.Located(), y.Located()
		switch {
		case lx != ly:
			if lx {
				return -1
			}
			return 1
		case !lx:
			return 0
		}
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

type dedupKey struct {
	code Code
	span source.Span
	msg  string
}

// Dedup drops repeats of a diagnostic with the same code, span and message,
// keeping the first one.
func (b *Bag) Dedup() {
	seen := make(map[dedupKey]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := dedupKey{d.Code, d.Primary, d.Message}
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
