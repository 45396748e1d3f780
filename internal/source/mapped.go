package source

import (
	"fmt"
	"strings"
)

// Origin is the position a character had in the text it was read from.
// Line and Column are zero-based.
type Origin struct {
	File   *Anchor
	Line   int
	Column int
}

func (o *Origin) String() string {
	if o == nil {
		return "<synthetic>"
	}
	name := "<unknown>"
	if o.File != nil {
		name = o.File.Name()
	}
	return fmt.Sprintf("%s:%d:%d", name, o.Line+1, o.Column+1)
}

// MappedChar is a single character together with its origin.
// Origin is nil for text synthesized by a rewrite.
type MappedChar struct {
	Char   rune
	Origin *Origin
}

// Mapped is an immutable sequence of characters where each character
// remembers the file, line and column it came from. Operations never mutate
// or re-tag characters; they only build new sequences that share the origin
// records of their inputs.
type Mapped struct {
	chars []MappedChar
}

// Empty is the zero-length sequence, the identity for Concat.
var Empty = Mapped{}

// Like is anything Convert accepts.
type Like interface {
	string | Mapped | []MappedChar
}

// NewMapped tags every character of s with pos.
func NewMapped(s string, pos *Origin) Mapped {
	if s == "" {
		return Empty
	}
	chars := make([]MappedChar, 0, len(s))
	for _, r := range s {
		chars = append(chars, MappedChar{Char: r, Origin: pos})
	}
	return Mapped{chars: chars}
}

// Convert returns v as a Mapped. An existing Mapped is returned unchanged,
// a plain string gets every character tagged with pos, and a tagged slice is
// copied so later changes to the caller's slice cannot leak in.
func Convert[T Like](v T, pos *Origin) Mapped {
	switch x := any(v).(type) {
	case Mapped:
		return x
	case []MappedChar:
		if len(x) == 0 {
			return Empty
		}
		return Mapped{chars: append([]MappedChar(nil), x...)}
	case string:
		return NewMapped(x, pos)
	}
	return Empty
}

// Concat joins parts into one flat sequence.
func Concat(parts ...Mapped) Mapped {
	total := 0
	for _, p := range parts {
		total += len(p.chars)
	}
	if total == 0 {
		return Empty
	}
	chars := make([]MappedChar, 0, total)
	for _, p := range parts {
		chars = append(chars, p.chars...)
	}
	return Mapped{chars: chars}
}

// Concat returns m followed by parts.
func (m Mapped) Concat(parts ...Mapped) Mapped {
	all := make([]Mapped, 0, len(parts)+1)
	all = append(all, m)
	all = append(all, parts...)
	return Concat(all...)
}

// Len returns the number of characters.
func (m Mapped) Len() int {
	return len(m.chars)
}

// At returns the i-th character.
func (m Mapped) At(i int) MappedChar {
	return m.chars[i]
}

// Chars returns a copy of the tagged characters.
func (m Mapped) Chars() []MappedChar {
	return append([]MappedChar(nil), m.chars...)
}

// Slice extracts the half-open range [start, end).
func (m Mapped) Slice(start, end int) Mapped {
	if start < 0 || end > len(m.chars) || start > end {
		panic(fmt.Errorf("mapped slice [%d:%d] out of range for length %d", start, end, len(m.chars)))
	}
	if start == end {
		return Empty
	}
	// cap ограничен, чтобы append у потребителя не затёр соседей
	return Mapped{chars: m.chars[start:end:end]}
}

// Split cuts m around every literal occurrence of sep. An empty separator
// yields one single-character sequence per character.
func (m Mapped) Split(sep string) []Mapped {
	if sep == "" {
		out := make([]Mapped, len(m.chars))
		for i := range m.chars {
			out[i] = Mapped{chars: m.chars[i : i+1 : i+1]}
		}
		return out
	}

	needle := []rune(sep)
	out := make([]Mapped, 0, 4)
	last := 0
	for i := 0; i+len(needle) <= len(m.chars); {
		if m.matchAt(i, needle) {
			out = append(out, m.Slice(last, i))
			i += len(needle)
			last = i
			continue
		}
		i++
	}
	return append(out, m.Slice(last, len(m.chars)))
}

func (m Mapped) matchAt(i int, needle []rune) bool {
	for j, r := range needle {
		if m.chars[i+j].Char != r {
			return false
		}
	}
	return true
}

// String returns the characters without their origins.
func (m Mapped) String() string {
	var sb strings.Builder
	sb.Grow(len(m.chars))
	for _, c := range m.chars {
		sb.WriteRune(c.Char)
	}
	return sb.String()
}

// index returns the offset of the zero-based line/column in the generated
// text, or -1 when the position lies outside of it.
func (m Mapped) index(line, column int) int {
	if line < 0 || column < 0 {
		return -1
	}
	cur := 0
	i := 0
	for ; i < len(m.chars) && cur < line; i++ {
		if m.chars[i].Char == '\n' {
			cur++
		}
	}
	if cur != line {
		return -1
	}
	for c := 0; c < column; c++ {
		if i >= len(m.chars) || m.chars[i].Char == '\n' {
			return -1
		}
		i++
	}
	if i >= len(m.chars) {
		return -1
	}
	return i
}

// Locate returns the character found at the zero-based line and column of
// the text m spells out.
func (m Mapped) Locate(line, column int) (MappedChar, bool) {
	i := m.index(line, column)
	if i < 0 {
		return MappedChar{}, false
	}
	return m.chars[i], true
}

// OriginNear returns the origin of the character at line/column or, when that
// character is synthetic, of the first tagged character after it on the same
// line.
func (m Mapped) OriginNear(line, column int) (*Origin, bool) {
	i := m.index(line, column)
	if i < 0 {
		return nil, false
	}
	for ; i < len(m.chars); i++ {
		if m.chars[i].Origin != nil {
			return m.chars[i].Origin, true
		}
		if m.chars[i].Char == '\n' {
			break
		}
	}
	return nil, false
}

// OriginBefore returns the origin of the closest tagged character strictly
// before line/column. Used when a position falls into trailing synthetic
// text, such as an error reported at the end of input.
func (m Mapped) OriginBefore(line, column int) (*Origin, bool) {
	i := m.index(line, column)
	if i < 0 {
		i = len(m.chars)
	}
	for i--; i >= 0; i-- {
		if m.chars[i].Origin != nil {
			return m.chars[i].Origin, true
		}
	}
	return nil, false
}
