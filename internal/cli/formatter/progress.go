package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderProgress draws a goal bar like [████░░░░]  62% for daily targets
// (water intake, dose adherence, weekly scores). pct is progress toward
// the target, 1.0 meaning met. The fill color signals how far behind the
// goal the user is: red under 40%, yellow until 80%, green above.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", goalStyle(pct).Render(bar), pct*100)
}

func goalStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 0.8:
		return StyleGreen
	case pct >= 0.4:
		return StyleYellow
	default:
		return StyleRed
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
