package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"nbcell/internal/source"
)

// Cursor представляет собой позицию в файле; смещения считаются в символах.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Chars))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Off: 0, Limit: limit}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущий символ, если есть, иначе возвращает 0
func (c *Cursor) Peek() rune {
	if c.EOF() {
		return 0
	}
	return c.File.Chars[c.Off]
}

// PeekAt читает символ со сдвигом n от текущей позиции
func (c *Cursor) PeekAt(n uint32) rune {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.File.Chars[c.Off+n]
}

// Bump перемещает курсор на один символ вперед и возвращает прочитанный символ
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.File.Chars[c.Off]
	c.Off++
	return r
}

// Eat consumes the next character if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.File.Chars[c.Off] == r {
		c.Off++
		return true
	}
	return false
}

// HasPrefix reports whether the remaining input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	i := c.Off
	for _, r := range s {
		if i >= c.Limit || c.File.Chars[i] != r {
			return false
		}
		i++
	}
	return true
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Text returns the characters covered by sp.
func (c *Cursor) Text(sp source.Span) string {
	return string(c.File.Chars[sp.Start:sp.End])
}
