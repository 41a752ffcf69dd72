package formatter

import (
	"fmt"
	"strings"

	"github.com/maniksharma/vitalog/internal/domain"
)

// FormatFoodAnalysis renders the server's assessment of an analyzed meal.
func FormatFoodAnalysis(a *domain.FoodAnalysis) string {
	var b strings.Builder

	b.WriteString(Bold(a.Food))
	if a.Quantity != "" {
		b.WriteString(" " + Dim("("+a.Quantity+")"))
	}
	b.WriteString("\n\n")

	n := a.Nutrition
	rows := [][]string{
		{"Calories", FormatValue(n.Calories) + " kcal"},
		{"Carbs", FormatValue(n.CarbsG) + " g"},
		{"Sugar", FormatValue(n.SugarG) + " g"},
		{"Fiber", FormatValue(n.FiberG) + " g"},
		{"Protein", FormatValue(n.ProteinG) + " g"},
	}
	if n.SodiumMG > 0 {
		rows = append(rows, []string{"Sodium", FormatValue(n.SodiumMG) + " mg"})
	}
	b.WriteString(RenderTable([]string{"NUTRIENT", "AMOUNT"}, rows))

	if a.Rating != "" {
		b.WriteString("\n" + ratingPill(a.Rating))
		if a.SpikeRisk != "" {
			b.WriteString("  " + Dim("glucose spike risk: "+a.SpikeRisk))
		}
		b.WriteString("\n")
	}

	writeBullets(&b, "", a.Positives, func(s string) string { return StyleGreen.Render("+ ") + s })
	writeBullets(&b, "", a.Suggestions, func(s string) string { return StyleBlue.Render("→ ") + s })

	b.WriteString("\n" + Dim(fmt.Sprintf("Logged as food entry #%d.", a.LogID)))

	return RenderBox("Food Analysis", strings.TrimRight(b.String(), "\n"))
}

// FormatMedications renders the medication schedule with today's doses.
func FormatMedications(meds []domain.Medication, disclaimer string) string {
	if len(meds) == 0 {
		return RenderBox("Medications", Dim("No medications yet. Add one with `vitalog meds add`."))
	}

	rows := make([][]string, 0, len(meds))
	for _, m := range meds {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", m.ID)),
			Bold(m.Name),
			m.Dosage,
			StylePurple.Render(string(m.Frequency)),
			strings.Join(m.TimesOfDay, ", "),
			doseTicks(m.TodayStatus),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"ID", "NAME", "DOSAGE", "FREQUENCY", "TIMES", "TODAY"}, rows))

	if disclaimer != "" {
		b.WriteString("\n" + Dim(disclaimer) + "\n")
	}

	return RenderBox("Medications", strings.TrimRight(b.String(), "\n"))
}

// doseTicks renders today's dose checklist like "✔ 08:00  ○ 20:00".
func doseTicks(doses []domain.DoseStatus) string {
	if len(doses) == 0 {
		return Dim("--")
	}
	parts := make([]string, 0, len(doses))
	for _, d := range doses {
		if d.Taken {
			parts = append(parts, StyleGreen.Render("✔ "+d.Time))
		} else {
			parts = append(parts, StyleDim.Render("○ "+d.Time))
		}
	}
	return strings.Join(parts, "  ")
}

func ratingPill(rating string) string {
	switch strings.ToLower(rating) {
	case "good":
		return StyleGreen.Render("● good choice")
	case "moderate":
		return StyleYellow.Render("● in moderation")
	case "avoid", "poor":
		return StyleRed.Render("▲ better avoided")
	default:
		return StyleDim.Render("● " + rating)
	}
}
