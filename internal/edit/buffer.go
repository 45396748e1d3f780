// Package edit rewrites a provenance string by original character offsets.
//
// A Buffer holds one slot per character of the string it was built from.
// Edits replace or extend slots but never add or remove them, so every
// offset computed against the original text stays valid for the whole pass.
// Synthetic text inherits the origin of the character it is attached to.
package edit

import (
	"errors"
	"fmt"

	"nbcell/internal/source"
)

// ErrOutOfRange is wrapped by the panic raised for an offset outside the
// buffer. Such an offset means the caller computed it against other text.
var ErrOutOfRange = errors.New("edit offset out of range")

// Spanner is anything with a character range, typically an ast.Node.
type Spanner interface {
	Span() source.Span
}

// Buffer collects edits against a fixed sequence of slots.
type Buffer struct {
	slots []source.Mapped
	head  source.Mapped
	tail  source.Mapped
	edits int
}

// New builds a buffer with one slot per character of src.
func New(src source.Mapped) *Buffer {
	return &Buffer{slots: src.Split("")}
}

// Len returns the number of slots, which equals the length of the
// original string.
func (b *Buffer) Len() int {
	return len(b.slots)
}

// Edits returns how many edits were applied.
func (b *Buffer) Edits() int {
	return b.edits
}

// originAt returns the origin of the first character currently in slot i,
// or nil when the slot is empty or does not exist.
func (b *Buffer) originAt(i int) *source.Origin {
	if i < 0 || i >= len(b.slots) || b.slots[i].Len() == 0 {
		return nil
	}
	return b.slots[i].At(0).Origin
}

func (b *Buffer) check(op string, start, end uint32) {
	if int(end) > len(b.slots) || start > end {
		panic(fmt.Errorf("%s [%d, %d) with %d slots: %w", op, start, end, len(b.slots), ErrOutOfRange))
	}
}

// Replace substitutes the original range [start, end) with text tagged with
// the origin of slot start. An empty range inserts text before slot start.
func (b *Buffer) Replace(start, end uint32, text string) {
	b.check("replace", start, end)
	b.edits++
	if start == end {
		b.insertAt(start, text)
		return
	}
	b.slots[start] = source.Convert(text, b.originAt(int(start)))
	for i := start + 1; i < end; i++ {
		b.slots[i] = source.Empty
	}
}

// insertAt puts text in front of slot i; i == Len appends to the tail.
func (b *Buffer) insertAt(i uint32, text string) {
	if int(i) == len(b.slots) {
		b.tail = b.tail.Concat(source.Convert(text, nil))
		return
	}
	m := source.Convert(text, b.originAt(int(i)))
	b.slots[i] = m.Concat(b.slots[i])
}

// InsertBefore puts text immediately before the first character of n.
func (b *Buffer) InsertBefore(n Spanner, text string) {
	sp := n.Span()
	b.check("insert before", sp.Start, sp.Start)
	b.edits++
	b.insertAt(sp.Start, text)
}

// InsertAfter puts text immediately after the last character of n. The text
// is tagged with the origin of the character following n.
func (b *Buffer) InsertAfter(n Spanner, text string) {
	sp := n.Span()
	b.check("insert after", sp.End, sp.End)
	b.edits++
	if sp.End == 0 {
		b.head = b.head.Concat(source.Convert(text, nil))
		return
	}
	m := source.Convert(text, b.originAt(int(sp.End)))
	b.slots[sp.End-1] = b.slots[sp.End-1].Concat(m)
}

// Prepend adds text before everything in the buffer.
func (b *Buffer) Prepend(text source.Mapped) {
	b.edits++
	b.head = text.Concat(b.head)
}

// Append adds text after everything in the buffer.
func (b *Buffer) Append(text source.Mapped) {
	b.edits++
	b.tail = b.tail.Concat(text)
}

// Flush concatenates head, slots and tail into a new provenance string.
// The buffer stays usable.
func (b *Buffer) Flush() source.Mapped {
	parts := make([]source.Mapped, 0, len(b.slots)+2)
	parts = append(parts, b.head)
	parts = append(parts, b.slots...)
	parts = append(parts, b.tail)
	return source.Concat(parts...)
}
