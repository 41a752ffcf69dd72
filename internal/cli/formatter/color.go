package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/maniksharma/vitalog/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindColor returns the accent style used for a log kind's charts and labels.
func KindColor(kind domain.LogKind) lipgloss.Style {
	switch kind {
	case domain.LogGlucose:
		return StylePurple
	case domain.LogBP:
		return StyleRed
	case domain.LogFood:
		return StyleYellow
	case domain.LogActivity:
		return StyleGreen
	case domain.LogWater:
		return StyleBlue
	default:
		return StyleFg
	}
}

// TrendIndicator returns a colored arrow for a trend direction, such as
// "↑ increasing". For glucose and blood pressure, increasing is the bad
// direction.
func TrendIndicator(t domain.Trend) string {
	switch t {
	case domain.TrendIncreasing:
		return StyleRed.Render("↑ increasing")
	case domain.TrendDecreasing:
		return StyleGreen.Render("↓ decreasing")
	case domain.TrendStable:
		return StyleBlue.Render("→ stable")
	default:
		return StyleDim.Render("– not enough data")
	}
}

// BPCategoryPill returns a colored blood pressure category indicator.
func BPCategoryPill(c domain.BPCategory) string {
	switch c {
	case domain.BPNormal:
		return StyleGreen.Render("● Normal")
	case domain.BPElevated:
		return StyleYellow.Render("● Elevated")
	case domain.BPStage1:
		return StyleYellow.Render("▲ Stage 1 Hypertension")
	case domain.BPStage2:
		return StyleRed.Render("▲ Stage 2 Hypertension")
	default:
		return StyleDim.Render(string(c))
	}
}

// PriorityPill returns a colored priority marker for reminders and tasks.
func PriorityPill(priority string) string {
	switch strings.ToLower(priority) {
	case "high":
		return StyleRed.Render("● high")
	case "medium":
		return StyleYellow.Render("● medium")
	case "low":
		return StyleGreen.Render("● low")
	default:
		return StyleDim.Render("●")
	}
}

// AlertBanner renders a clinical alert from the server prominently.
func AlertBanner(alert string) string {
	if alert == "" {
		return ""
	}
	return StyleRed.Render("⚠ " + alert)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
