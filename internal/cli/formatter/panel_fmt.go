package formatter

import (
	"fmt"
	"strings"

	"github.com/maniksharma/vitalog/internal/aggregate"
	"github.com/maniksharma/vitalog/internal/domain"
	"github.com/maniksharma/vitalog/internal/service"
)

// FormatPanel formats one log kind's window: chart, today's total, streak,
// stats and category breakdown. A failed panel renders its error dimmed
// instead of data.
func FormatPanel(p *service.KindPanel, width int) string {
	title := panelTitle(p.Kind)
	if p.Err != nil {
		return RenderBox(title, Dim(fmt.Sprintf("unavailable: %v", p.Err)))
	}

	var b strings.Builder
	accent := KindColor(p.Kind)

	b.WriteString(RenderDayChart(p.Buckets, accent, width))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Today: %s", Bold(FormatReading(p.TodayTotal, p.Kind.Unit()))))
	b.WriteString("   " + FormatStreak(p.Streak) + "\n")

	if p.Stats != nil && p.Stats.Count > 0 {
		line := fmt.Sprintf("Week: avg %s  min %s  max %s  (%d entries)",
			FormatValue(p.Stats.Avg), FormatValue(p.Stats.Min), FormatValue(p.Stats.Max), p.Stats.Count)
		if p.Kind == domain.LogBP && p.Stats.AvgSecondary > 0 {
			line = fmt.Sprintf("Week: avg %s/%s mmHg  (%d readings)",
				FormatValue(p.Stats.Avg), FormatValue(p.Stats.AvgSecondary), p.Stats.Count)
		}
		b.WriteString(Dim(line) + "\n")
	}

	switch p.Kind {
	case domain.LogGlucose:
		if len(p.Records) > 0 {
			b.WriteString(fmt.Sprintf("%s   %s in range\n",
				TrendIndicator(p.Direction), FormatValue(p.InRangePct)+"%"))
		}
	case domain.LogBP:
		if p.BPCategory != "" {
			b.WriteString(fmt.Sprintf("%s   %s\n",
				TrendIndicator(p.Direction), BPCategoryPill(p.BPCategory)))
		}
	}

	if len(p.Breakdown) > 1 {
		b.WriteString("\n")
		b.WriteString(RenderBreakdown(p.Breakdown, accent, width))
	}

	if p.Macros != nil {
		b.WriteString("\n")
		b.WriteString(FormatMacros(p.Macros))
	}

	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

// FormatMacros renders the estimated macro split for today's calories,
// always with the estimate disclaimer.
func FormatMacros(m *aggregate.MacroEstimate) string {
	line := fmt.Sprintf("Est. macros: carbs %sg  protein %sg  fat %sg",
		FormatValue(m.CarbsG), FormatValue(m.ProteinG), FormatValue(m.FatG))
	return line + "\n" + Dim("Rough estimate from calories alone, not a nutritional analysis.")
}

// FormatDashboardStatic renders the whole dashboard as plain scrollback
// output, used when stdout is not a terminal.
func FormatDashboardStatic(d *service.Dashboard, width int) string {
	var b strings.Builder

	order := []domain.LogKind{domain.LogGlucose, domain.LogBP, domain.LogFood, domain.LogActivity}
	for _, kind := range order {
		if p, ok := d.Panels[kind]; ok {
			b.WriteString(FormatPanel(p, width))
			b.WriteString("\n")
		}
	}

	b.WriteString(FormatWater(d.Water, d.WaterErr))
	b.WriteString("\n")
	b.WriteString(FormatAdherence(d.Meds, d.MedsErr))
	b.WriteString("\n")

	if d.PlanErr == nil && d.Plan != nil {
		b.WriteString(FormatCarePlan(d.Plan))
	}

	return b.String()
}

// FormatWater renders today's hydration progress bar.
func FormatWater(w *domain.WaterStatus, err error) string {
	if err != nil {
		return Dim(fmt.Sprintf("water: unavailable: %v", err))
	}
	if w == nil || w.TargetML == 0 {
		return Dim("water: no target set")
	}
	pct := float64(w.TotalML) / float64(w.TargetML)
	return fmt.Sprintf("%s %s %s",
		StyleBlue.Render("Water"),
		RenderProgress(pct, 20),
		Dim(fmt.Sprintf("%d / %d ml", w.TotalML, w.TargetML)))
}

// FormatAdherence renders today's medication dose adherence in one line.
func FormatAdherence(meds []domain.Medication, err error) string {
	if err != nil {
		return Dim(fmt.Sprintf("medications: unavailable: %v", err))
	}
	taken, scheduled := service.AdherenceToday(meds)
	if scheduled == 0 {
		return Dim("medications: no doses scheduled today")
	}
	style := StyleGreen
	if taken < scheduled {
		style = StyleYellow
	}
	return fmt.Sprintf("%s %s",
		StylePurple.Render("Meds"),
		style.Render(fmt.Sprintf("%d of %d doses taken today", taken, scheduled)))
}

func panelTitle(kind domain.LogKind) string {
	switch kind {
	case domain.LogGlucose:
		return "Blood Glucose"
	case domain.LogBP:
		return "Blood Pressure"
	case domain.LogFood:
		return "Food"
	case domain.LogActivity:
		return "Activity"
	case domain.LogWater:
		return "Water"
	default:
		return string(kind)
	}
}
