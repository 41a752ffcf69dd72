package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/domain"
)

// FormatHbA1cLogged renders the acknowledgment for a new lab result with
// the server's clinical feedback.
func FormatHbA1cLogged(l *api.HbA1cLogged) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ ") + l.Message + "\n")
	if l.Feedback != "" {
		b.WriteString(l.Feedback + "\n")
	}
	if l.Citation != "" {
		b.WriteString(Dim("Source: "+l.Citation) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatHbA1cHistory renders the lab result history as a scrollback
// report, newest first, with the retesting reminder underneath.
func FormatHbA1cHistory(h *domain.HbA1cHistory) string {
	var b strings.Builder
	b.WriteString(Header("HbA1c History") + "\n")

	if len(h.History) == 0 {
		b.WriteString(Dim("No results recorded yet.") + "\n")
	} else {
		rows := make([][]string, 0, len(h.History))
		for _, r := range h.History {
			rows = append(rows, []string{
				r.TestDate,
				hba1cBand(r.Value).Render(FormatValue(r.Value) + "%"),
				Dim(r.LabName),
				Dim(TruncNote(r.Notes, 30)),
			})
		}
		b.WriteString(RenderTable([]string{"DATE", "RESULT", "LAB", "NOTES"}, rows))
	}

	if h.Target != "" {
		b.WriteString("\n" + Dim("Target: "+h.Target) + "\n")
	}
	if h.Reminder != "" {
		b.WriteString(StyleYellow.Render(h.Reminder) + "\n")
	}
	return b.String()
}

// hba1cBand colors a result against the ADA control bands: at or below
// the 7% target, above target, and above 8%.
func hba1cBand(v float64) lipgloss.Style {
	switch {
	case v < 7.0:
		return StyleGreen
	case v < 8.0:
		return StyleYellow
	default:
		return StyleRed
	}
}
