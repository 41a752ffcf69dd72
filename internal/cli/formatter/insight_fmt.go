package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/domain"
)

// FormatCarePlan renders the day's care plan task list with tips.
func FormatCarePlan(plan *domain.CarePlan) string {
	var b strings.Builder

	if len(plan.Diseases) > 0 {
		b.WriteString(Dim("Managing: "+strings.Join(plan.Diseases, ", ")) + "\n\n")
	}

	if len(plan.Tasks) == 0 {
		b.WriteString(Dim("No tasks for today.") + "\n")
	} else {
		rows := make([][]string, 0, len(plan.Tasks))
		for _, t := range plan.Tasks {
			rows = append(rows, []string{
				StyleBlue.Render(t.Time),
				t.Task,
				StylePurple.Render(t.Category),
				PriorityPill(t.Priority),
			})
		}
		b.WriteString(RenderTable([]string{"TIME", "TASK", "CATEGORY", "PRIORITY"}, rows))
	}

	if len(plan.Tips) > 0 {
		b.WriteString("\n")
		for _, tip := range plan.Tips {
			b.WriteString(Dim("tip: "+tip) + "\n")
		}
	}

	return RenderBox("Today's Plan", strings.TrimRight(b.String(), "\n"))
}

// FormatTrendReport renders a per-metric trend analysis.
func FormatTrendReport(kind domain.LogKind, r *domain.TrendReport) string {
	var b strings.Builder

	if r.Status == "no_data" || r.Stats.ReadingsCount == 0 {
		msg := r.Message
		if msg == "" {
			msg = "No readings in this period."
		}
		return RenderBox(panelTitle(kind)+" Trend", Dim(msg))
	}

	b.WriteString(fmt.Sprintf("Direction: %s", TrendIndicator(r.TrendDirection)))
	if r.Period != "" {
		b.WriteString("  " + Dim("("+r.Period+")"))
	}
	b.WriteString("\n")

	if kind == domain.LogBP {
		b.WriteString(fmt.Sprintf("Average: %s  %s\n",
			Bold(fmt.Sprintf("%s/%s mmHg", FormatValue(r.Stats.AvgSystolic), FormatValue(r.Stats.AvgDiastolic))),
			BPCategoryPill(r.BPCategory)))
	} else {
		inRange := StyleYellow.Render("out of target range")
		if r.InTargetRange {
			inRange = StyleGreen.Render("in target range")
		}
		b.WriteString(fmt.Sprintf("Average: %s  %s\n",
			Bold(FormatReading(r.Stats.Average, kind.Unit())), inRange))
	}
	b.WriteString(Dim(fmt.Sprintf("Range: %s – %s over %d readings",
		FormatValue(r.Stats.Min), FormatValue(r.Stats.Max), r.Stats.ReadingsCount)) + "\n")

	writeBullets(&b, "", r.Insights, func(s string) string { return StyleFg.Render(s) })
	writeBullets(&b, "", r.Recommendations, func(s string) string { return StyleBlue.Render("→ ") + s })
	for _, a := range r.Alerts {
		b.WriteString(AlertBanner(a) + "\n")
	}

	if r.Citation != "" {
		b.WriteString(Dim("Source: "+r.Citation) + "\n")
	}

	return RenderBox(panelTitle(kind)+" Trend", strings.TrimRight(b.String(), "\n"))
}

// FormatTrendBundle renders the combined trends view across conditions.
func FormatTrendBundle(bundle *api.TrendBundle) string {
	var b strings.Builder

	keys := make([]string, 0, len(bundle.Trends))
	for k := range bundle.Trends {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		r := bundle.Trends[k]
		b.WriteString(FormatTrendReport(domain.LogKind(k), &r))
		b.WriteString("\n")
	}

	act := bundle.Activity
	if act.TargetMinutes > 0 {
		pct := act.TotalMinutes / float64(act.TargetMinutes)
		status := StyleYellow.Render("behind target")
		if act.OnTrack {
			status = StyleGreen.Render("on track")
		}
		line := fmt.Sprintf("%s %s %s",
			RenderProgress(pct, 20),
			Dim(fmt.Sprintf("%s / %d min this week", FormatValue(act.TotalMinutes), act.TargetMinutes)),
			status)
		b.WriteString(RenderBox("Weekly Activity", line))
		b.WriteString("\n")
	}

	if len(bundle.Adjustments.Adjustments) > 0 {
		b.WriteString(FormatAdjustments(&bundle.Adjustments))
	}

	return b.String()
}

// FormatAdjustments renders the trend-driven weekly plan changes.
func FormatAdjustments(adj *domain.WeeklyAdjustments) string {
	var b strings.Builder

	if adj.WeekOf != "" {
		b.WriteString(Dim("Week of "+adj.WeekOf) + "\n\n")
	}

	if len(adj.Adjustments) == 0 {
		msg := adj.Message
		if msg == "" {
			msg = "No plan changes this week. Keep it up."
		}
		b.WriteString(Dim(msg) + "\n")
	}
	for _, a := range adj.Adjustments {
		b.WriteString(StylePurple.Render(strings.ToUpper(a.Type)) + " " + Bold(a.Action) + "\n")
		if a.Reason != "" {
			b.WriteString("  " + Dim(a.Reason) + "\n")
		}
	}

	return RenderBox("Weekly Adjustments", strings.TrimRight(b.String(), "\n"))
}

// FormatWeeklySummary renders the scored weekly health summary.
func FormatWeeklySummary(sum *domain.WeeklySummary) string {
	var b strings.Builder

	if sum.WeekOf != "" {
		b.WriteString(Dim("Week of "+sum.WeekOf) + "\n\n")
	}

	b.WriteString(scoreLine("Diet", sum.Summary.Diet.Score, sum.Summary.Diet.Rating))
	b.WriteString(Dim(fmt.Sprintf("  %d meals logged, avg %s kcal/day",
		sum.Summary.Diet.MealsLogged, FormatValue(sum.Summary.Diet.AvgCalories))) + "\n")

	b.WriteString(scoreLine("Exercise", sum.Summary.Exercise.Score, sum.Summary.Exercise.Rating))
	b.WriteString(Dim(fmt.Sprintf("  %s of %d min across %d sessions",
		FormatValue(sum.Summary.Exercise.TotalMinutes), sum.Summary.Exercise.TargetMinutes,
		sum.Summary.Exercise.Sessions)) + "\n")

	b.WriteString(scoreLine("Medication", sum.Summary.MedicationAdherence.Score, sum.Summary.MedicationAdherence.Rating))

	bs := sum.Summary.BloodSugar
	if bs.Readings > 0 {
		b.WriteString("\n" + Bold("Blood Sugar") + "\n")
		b.WriteString(fmt.Sprintf("  avg %s mg/dL, %s in range, trend %s\n",
			FormatValue(bs.Average),
			FormatValue(bs.InRangePercentage)+"%",
			TrendIndicator(domain.Trend(bs.Trend))))
	}

	writeBullets(&b, "Suggestions", sum.Suggestions, func(s string) string { return StyleBlue.Render("→ ") + s })

	if sum.Disclaimer != "" {
		b.WriteString("\n" + Dim(sum.Disclaimer) + "\n")
	}

	return RenderBox("Weekly Summary", strings.TrimRight(b.String(), "\n"))
}

// FormatReminders renders the personalized reminders feed.
func FormatReminders(r *api.Reminders) string {
	var b strings.Builder

	all := append(append([]domain.Reminder{}, r.Custom...), r.Daily...)
	if len(all) == 0 {
		b.WriteString(Dim("No reminders right now.") + "\n")
	}
	for _, rem := range all {
		b.WriteString(fmt.Sprintf("%s %s\n", PriorityPill(rem.Priority), Bold(rem.Title)))
		if rem.Description != "" {
			b.WriteString("  " + StyleFg.Render(rem.Description) + "\n")
		}
	}

	if r.Disclaimer != "" {
		b.WriteString("\n" + Dim(r.Disclaimer) + "\n")
	}

	return RenderBox("Reminders", strings.TrimRight(b.String(), "\n"))
}

func scoreLine(label string, score float64, rating string) string {
	style := StyleGreen
	switch strings.ToLower(rating) {
	case "needs improvement", "poor", "low":
		style = StyleRed
	case "fair", "moderate":
		style = StyleYellow
	}
	return fmt.Sprintf("%-11s %s %s\n",
		Bold(label), RenderProgress(score/100, 10), style.Render(rating))
}

func writeBullets(b *strings.Builder, title string, items []string, render func(string) string) {
	if len(items) == 0 {
		return
	}
	if title != "" {
		b.WriteString("\n" + Bold(title) + "\n")
	}
	for _, it := range items {
		b.WriteString("  " + render(it) + "\n")
	}
}
