package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"nbcell/internal/source"
	"nbcell/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Value   string      `json:"value,omitempty"`
	Span    source.Span `json:"span"`
	Newline bool        `json:"newline_before,omitempty"`
	Leading []string    `json:"leading,omitempty"`
}

func leadingKinds(tok token.Token) []string {
	if len(tok.Leading) == 0 {
		return nil
	}
	out := make([]string, 0, len(tok.Leading))
	for _, trivia := range tok.Leading {
		out = append(out, trivia.Kind.String())
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		// cooked-значение только если отличается от исходного текста
		if tok.Value != "" && tok.Value != tok.Text {
			fmt.Fprintf(w, " = %q", tok.Value)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)

		if tok.NewlineBefore {
			fmt.Fprint(w, " [nl]")
		}
		if leading := leadingKinds(tok); len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Newline: tok.NewlineBefore,
			Leading: leadingKinds(tok),
		}
		if tok.Value != tok.Text {
			out.Value = tok.Value
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
