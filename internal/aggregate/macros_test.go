package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMacros_ReferenceDiet(t *testing.T) {
	// 2000 kcal: 50% carbs at 4 kcal/g, 25% protein at 4 kcal/g,
	// 25% fat at 9 kcal/g, each rounded to one decimal.
	got := EstimateMacros(2000)
	assert.Equal(t, MacroEstimate{CarbsG: 250, ProteinG: 125, FatG: 55.6}, got)
}

func TestEstimateMacros_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		calories float64
		want     MacroEstimate
	}{
		{"single meal", 450, MacroEstimate{CarbsG: 56.3, ProteinG: 28.1, FatG: 12.5}},
		{"snack", 100, MacroEstimate{CarbsG: 12.5, ProteinG: 6.3, FatG: 2.8}},
		{"zero", 0, MacroEstimate{}},
		{"negative treated as zero", -300, MacroEstimate{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateMacros(tt.calories))
		})
	}
}

func TestEstimateMacros_SplitIsCalorieConserving(t *testing.T) {
	// Before rounding, the three shares account for every calorie.
	for _, cal := range []float64{150, 800, 1723, 2400} {
		m := EstimateMacros(cal)
		reconstructed := m.CarbsG*kcalPerGramCarb + m.ProteinG*kcalPerGramProtein + m.FatG*kcalPerGramFat
		assert.InDelta(t, cal, reconstructed, 1.0, "calories=%v", cal)
	}
}
