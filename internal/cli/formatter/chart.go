package formatter

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/maniksharma/vitalog/internal/aggregate"
)

const (
	barBlock      = "█"
	defaultWidth  = 80
	maxBarWidth   = 40
	barLabelWidth = 4 // "Mon " etc.
)

// TermWidth returns the terminal width, or a default for pipes and tests.
func TermWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// RenderDayChart renders a horizontal bar chart of daily totals, one row
// per day oldest-first, scaled to the largest day in the window. Days
// without records show a dimmed dash instead of a zero-length bar.
func RenderDayChart(buckets []aggregate.DailyBucket, style lipgloss.Style, width int) string {
	if len(buckets) == 0 {
		return Dim("no data in window")
	}
	if width <= 0 {
		width = TermWidth()
	}

	var max float64
	for _, b := range buckets {
		if b.Total > max {
			max = b.Total
		}
	}

	barWidth := width - barLabelWidth - 12
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 4 {
		barWidth = 4
	}

	var sb strings.Builder
	for _, b := range buckets {
		sb.WriteString(StyleDim.Render(fmt.Sprintf("%-*s", barLabelWidth, b.Label)))

		if !b.Active {
			sb.WriteString(Dim("–"))
			sb.WriteString("\n")
			continue
		}

		n := 1
		if max > 0 {
			n = int(b.Total / max * float64(barWidth))
			if n < 1 {
				n = 1
			}
		}
		sb.WriteString(style.Render(strings.Repeat(barBlock, n)))
		sb.WriteString(fmt.Sprintf(" %s", FormatValue(b.Total)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderBreakdown renders per-category totals as proportional bars,
// largest first.
func RenderBreakdown(breakdown []aggregate.CategoryBreakdown, style lipgloss.Style, width int) string {
	if len(breakdown) == 0 {
		return Dim("no entries")
	}
	if width <= 0 {
		width = TermWidth()
	}

	labelWidth := 0
	for _, c := range breakdown {
		if len(c.Category) > labelWidth {
			labelWidth = len(c.Category)
		}
	}

	max := breakdown[0].Total // sorted descending
	barWidth := width - labelWidth - 14
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 4 {
		barWidth = 4
	}

	var sb strings.Builder
	for _, c := range breakdown {
		n := 1
		if max > 0 {
			n = int(c.Total / max * float64(barWidth))
			if n < 1 {
				n = 1
			}
		}
		sb.WriteString(fmt.Sprintf("%-*s ", labelWidth, c.Category))
		sb.WriteString(style.Render(strings.Repeat(barBlock, n)))
		sb.WriteString(Dim(fmt.Sprintf(" %s (%d)", FormatValue(c.Total), c.Count)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatValue formats a measurement value with at most one decimal place,
// dropping the fraction for whole numbers.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
