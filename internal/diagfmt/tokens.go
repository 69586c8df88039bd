package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"stlkit/internal/source"
	"stlkit/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Value *float32    `json:"value,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" || tok.Kind == token.Header {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.Kind == token.FloatLit {
			fmt.Fprintf(w, " = %g", tok.Value)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)

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
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		// JSON не умеет NaN и Inf: такие значения остаются только в text
		if tok.Kind == token.FloatLit && !math.IsNaN(float64(tok.Value)) && !math.IsInf(float64(tok.Value), 0) {
			v := tok.Value
			out.Value = &v
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
