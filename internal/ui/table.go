package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"stlkit/internal/driver"
)

// TableOpts configures RenderSummaryTable.
type TableOpts struct {
	Color bool
	// Width caps the line width; 0 means unlimited.
	Width int
}

var tableColumns = []string{"FILE", "DIALECT", "TRIANGLES", "SIZE", "HEADER"}

// RenderSummaryTable lays out one row per summary. Failed files show the
// error in place of the size and header columns.
func RenderSummaryTable(sums []driver.Summary, opts TableOpts) string {
	rows := make([][]string, 0, len(sums))
	failed := make([]bool, 0, len(sums))
	for _, s := range sums {
		if s.Err != nil {
			rows = append(rows, []string{s.Path, "-", "-", "error", oneLine(s.Err.Error())})
			failed = append(failed, true)
			continue
		}
		size := "-"
		if s.HasBounds {
			v := s.Bounds.Size()
			size = fmt.Sprintf("%s x %s x %s", formatNum(v.X), formatNum(v.Y), formatNum(v.Z))
		}
		rows = append(rows, []string{s.Path, s.Dialect.String(), strconv.Itoa(s.Triangles), size, oneLine(s.Header)})
		failed = append(failed, false)
	}

	widths := make([]int, len(tableColumns))
	for i, c := range tableColumns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	// Ширина последней колонки подрезается под терминал.
	if opts.Width > 0 {
		used := 0
		for _, w := range widths[:len(widths)-1] {
			used += w + 2
		}
		widths[len(widths)-1] = max(min(widths[len(widths)-1], opts.Width-used), 6)
	}

	headStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	render := func(st lipgloss.Style, s string) string {
		if !opts.Color {
			return s
		}
		return st.Render(s)
	}

	var b strings.Builder
	b.WriteString(render(headStyle, formatRow(tableColumns, widths)))
	b.WriteString("\n")
	for i, r := range rows {
		line := formatRow(r, widths)
		if failed[i] {
			line = render(errStyle, line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		c = truncate(c, widths[i])
		if i == len(cells)-1 {
			parts[i] = c
			continue
		}
		parts[i] = runewidth.FillRight(c, widths[i])
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func formatNum(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
