package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"stlkit/internal/diag"
	"stlkit/internal/source"
)

type palette struct {
	err, warn, info, code, path, caret, note func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		err:   mk(color.FgRed, color.Bold),
		warn:  mk(color.FgYellow, color.Bold),
		info:  mk(color.FgCyan, color.Bold),
		code:  mk(color.Bold),
		path:  mk(color.Bold),
		caret: mk(color.FgGreen, color.Bold),
		note:  mk(color.FgBlue),
	}
}

func (p palette) severity(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return p.err(s.String())
	case diag.SevWarning:
		return p.warn(s.String())
	default:
		return p.info(s.String())
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span. Для бинарного
// диалекта вместо строки и колонки выводится байтовое смещение.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		f := lookup(fs, d.Primary.File)
		path := formatPath(f, opts.PathMode, opts.BaseDir)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path(location(f, path, d.Code, d.Primary)),
			p.severity(d.Severity),
			p.code(d.Code.ID()),
			d.Message,
		)
		if f != nil && d.Code.Dialect() == diag.DialectASCII {
			writeSnippet(w, p, f, d.Primary)
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				nf := lookup(fs, n.Span.File)
				loc := location(nf, formatPath(nf, opts.PathMode, opts.BaseDir), d.Code, n.Span)
				fmt.Fprintf(w, "  %s %s: %s\n", p.note("note:"), loc, n.Msg)
			}
		}
	}
}

func location(f *source.File, path string, code diag.Code, sp source.Span) string {
	if f == nil {
		return path
	}
	if code.Dialect() == diag.DialectBinary {
		return fmt.Sprintf("%s:@%d", path, sp.Start)
	}
	if code.Dialect() == diag.DialectUnknown && sp.Empty() && sp.Start == 0 {
		return path
	}
	pos := f.Position(sp.Start)
	return fmt.Sprintf("%s:%d:%d", path, pos.Line, pos.Col)
}

// writeSnippet prints the line holding sp.Start and marks the span under it.
// Spans that run past the end of the line are clipped to it.
func writeSnippet(w io.Writer, p palette, f *source.File, sp source.Span) {
	start := f.Position(sp.Start)
	line := f.GetLine(start.Line)
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}

	width := 1
	if end := f.Position(sp.End); end.Line == start.Line && sp.End > sp.Start {
		width = int(end.Col - start.Col)
	}
	width = max(1, min(width, len(line)-col))

	gutter := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(gutter))
	fmt.Fprintf(w, "%s |\n", pad)
	fmt.Fprintf(w, "%s | %s\n", gutter, printable(line))
	fmt.Fprintf(w, "%s | %s%s\n", pad,
		strings.Repeat(" ", col),
		p.caret("^"+strings.Repeat("~", width-1)),
	)
}

// printable hides control bytes so the caret line stays aligned.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\t' {
			return '.'
		}
		return r
	}, s)
}
