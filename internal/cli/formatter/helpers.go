package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	if t.IsZero() {
		return Dim("--")
	}
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// FormatStreak renders a day streak like "🔥 5-day streak", dimmed at zero.
func FormatStreak(days int) string {
	if days <= 0 {
		return Dim("no current streak")
	}
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return StyleYellow.Render(fmt.Sprintf("🔥 %d-%s streak", days, unit))
}

// FormatReading renders a measurement value with its unit, e.g. "120 mg/dL".
func FormatReading(value float64, unit string) string {
	s := FormatValue(value)
	if unit != "" {
		s += " " + unit
	}
	return s
}

// TruncNote shortens a free-text note for table cells.
func TruncNote(note string, max int) string {
	if len(note) <= max {
		return note
	}
	if max <= 3 {
		return note[:max]
	}
	return note[:max-3] + "..."
}
