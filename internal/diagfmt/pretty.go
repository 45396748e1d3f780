package diagfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"nbcell/internal/diag"
	"nbcell/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, caret     *color.Color
	gutter, note    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		caret:  color.New(color.FgGreen, color.Bold),
		gutter: color.New(color.FgBlue),
		note:   color.New(color.FgCyan),
	}
	// fatih/color сам смотрит на терминал; здесь решает вызывающий
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.caret, p.gutter, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		sev := p.severity(d.Severity).Sprint(d.Severity.String())
		code := p.code.Sprint(d.Code.ID())

		f := fileOf(fs, d)
		if f == nil {
			fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)
		} else {
			start, _ := f.Resolve(d.Primary)
			fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", formatPath(f, opts.PathMode), start.Line, start.Col, sev, code, d.Message)
			writeSnippet(w, f, d.Primary, opts, p)
		}

		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			label := p.note.Sprint("note")
			nf := f
			if nf != nil && note.Span.File != nf.ID {
				nf = fs.Get(note.Span.File)
			}
			if nf == nil || note.Span.Empty() {
				fmt.Fprintf(w, "  %s: %s\n", label, note.Msg)
				continue
			}
			start, _ := nf.Resolve(note.Span)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n", label, formatPath(nf, opts.PathMode), start.Line, start.Col, note.Msg)
			writeSnippet(w, nf, note.Span, opts, p)
		}
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "%s: %d more diagnostic(s) not shown (raise --max-diagnostics)\n", p.note.Sprint("note"), n)
	}
}

// fileOf возвращает файл, на который указывает диагностика, или nil для
// файловых диагностик без позиции.
func fileOf(fs *source.FileSet, d diag.Diagnostic) *source.File {
	if fs == nil || !d.Located() {
		return nil
	}
	return fs.Get(d.Primary.File)
}

func writeSnippet(w io.Writer, f *source.File, sp source.Span, opts PrettyOpts, p palette) {
	start, end := f.Resolve(sp)
	first := start.Line
	if opts.Context > 0 {
		first = start.Line - min(start.Line-1, uint32(opts.Context))
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	blank := p.gutter.Sprint(strings.Repeat(" ", gutterWidth+2) + "|")

	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth+1, ln), clip(f.GetLine(ln), opts.Width))
	}

	line := []rune(f.GetLine(start.Line))
	col := min(int(start.Col-1), len(line))
	last := len(line)
	if end.Line == start.Line {
		last = min(int(end.Col-1), len(line))
	}

	underline := caret(line[:col], line[col:max(last, col)])
	fmt.Fprintf(w, "%s %s\n", blank, p.caret.Sprint(underline))
}

// caret строит отступ по ширине prefix и ^~~~ по ширине marked.
// Табы сохраняются, чтобы подчёркивание совпало с исходной строкой.
func caret(prefix, marked []rune) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteRune('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := max(runewidth.StringWidth(string(marked)), 1)
	sb.WriteByte('^')
	sb.WriteString(strings.Repeat("~", width-1))
	return sb.String()
}

func clip(line string, width uint8) string {
	if width == 0 || runewidth.StringWidth(line) <= int(width) {
		return line
	}
	return runewidth.Truncate(line, int(width), "...")
}

func formatPath(f *source.File, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute")
	case PathModeBasename:
		return f.FormatPath("basename")
	case PathModeRelative:
		wd, err := os.Getwd()
		if err != nil {
			return f.Path
		}
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return f.Path
		}
		if rel, err := filepath.Rel(wd, abs); err == nil {
			return filepath.ToSlash(rel)
		}
		return f.Path
	default:
		return f.FormatPath("auto")
	}
}
