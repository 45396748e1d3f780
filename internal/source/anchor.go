package source

import "strings"

// Anchor is the Mapped form of an original file: every character points back
// to this very Anchor, so after any number of rewrites a character's
// Origin.File still identifies which text it was written in.
type Anchor struct {
	Mapped
	name   string
	text   string
	starts []int // offset of the first character of every line
}

// NewAnchor tags every character of text with its zero-based line and column.
func NewAnchor(name, text string) *Anchor {
	a := &Anchor{name: name, text: text}

	runes := []rune(text)
	origins := make([]Origin, len(runes))
	chars := make([]MappedChar, len(runes))
	line, column := 0, 0
	a.starts = append(a.starts, 0)
	for i, r := range runes {
		origins[i] = Origin{File: a, Line: line, Column: column}
		chars[i] = MappedChar{Char: r, Origin: &origins[i]}
		if r == '\n' {
			line++
			column = 0
			a.starts = append(a.starts, i+1)
		} else {
			column++
		}
	}
	a.Mapped = Mapped{chars: chars}
	return a
}

// Name returns the logical file name the anchor was created with.
func (a *Anchor) Name() string {
	return a.name
}

// Text returns the raw text.
func (a *Anchor) Text() string {
	return a.text
}

// Line returns the zero-based n-th line without its terminator.
func (a *Anchor) Line(n int) (string, bool) {
	lines := strings.Split(a.text, "\n")
	if n < 0 || n >= len(lines) {
		return "", false
	}
	return lines[n], true
}

// Offset returns the character offset o points at, provided o belongs to
// this anchor.
func (a *Anchor) Offset(o *Origin) (int, bool) {
	if o == nil || o.File != a || o.Line < 0 || o.Line >= len(a.starts) {
		return 0, false
	}
	off := a.starts[o.Line] + o.Column
	if off >= a.Len() {
		return 0, false
	}
	return off, true
}
