package aggregate

import "math"

// Calorie-to-gram conversion constants and the fixed macro split used by the
// estimate: 50% of calories from carbohydrate, 25% protein, 25% fat.
const (
	kcalPerGramCarb    = 4.0
	kcalPerGramProtein = 4.0
	kcalPerGramFat     = 9.0

	carbShare    = 0.50
	proteinShare = 0.25
	fatShare     = 0.25
)

// MacroEstimate is a fixed-ratio macronutrient estimate derived from a
// calorie total. It is a placeholder heuristic, not measured nutritional
// data, and must be presented as an approximation.
type MacroEstimate struct {
	CarbsG   float64
	ProteinG float64
	FatG     float64
}

// EstimateMacros converts a calorie value into estimated macro grams using
// the fixed 50/25/25 split. Each gram figure is rounded half away from zero
// to one decimal place. Non-positive input yields a zero estimate.
func EstimateMacros(calories float64) MacroEstimate {
	if calories <= 0 {
		return MacroEstimate{}
	}
	return MacroEstimate{
		CarbsG:   round1(calories * carbShare / kcalPerGramCarb),
		ProteinG: round1(calories * proteinShare / kcalPerGramProtein),
		FatG:     round1(calories * fatShare / kcalPerGramFat),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
