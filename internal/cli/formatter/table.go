package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableGap = "  "

// RenderTable lays out rows under styled headers with a dim rule between
// them. Cells may already carry color (reading values, kind tags, pills);
// widths are measured on the visible text so styled cells line up with
// plain ones.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < len(widths)-1 {
			b.WriteString(tablePad(h, widths[i]))
		}
	}
	b.WriteByte('\n')

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	b.WriteString(StyleDim.Render(strings.Join(rule, tableGap)))
	b.WriteByte('\n')

	for _, row := range rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < len(widths)-1 {
				b.WriteString(tablePad(cell, widths[i]))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// tablePad returns the spaces bringing cell up to the column width, plus
// the gap to the next column.
func tablePad(cell string, width int) string {
	n := width - lipgloss.Width(cell)
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n) + tableGap
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
