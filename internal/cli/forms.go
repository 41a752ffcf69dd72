package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/maniksharma/vitalog/internal/cli/formatter"
	"github.com/maniksharma/vitalog/internal/domain"
)

// vitalogHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func vitalogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// themedForm wraps groups into a form with the vitalog theme applied.
func themedForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(vitalogHuhTheme()).WithShowHelp(false)
}

// numberInput returns a huh.Input for a positive number field.
func numberInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validatePositiveNumber)
}

// enumSelect returns a huh.Select over string-like enum values.
func enumSelect[T ~string](title string, values []T, result *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		label := strings.ReplaceAll(string(v), "_", " ")
		options = append(options, huh.NewOption(label, string(v)))
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(result)
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validateClockTimes checks a comma-separated list of HH:MM values.
func validateClockTimes(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := time.Parse("15:04", part); err != nil {
			return fmt.Errorf("%q is not a valid HH:MM time", part)
		}
	}
	return nil
}

// parseFloatArg parses a flag/form value into a float64, zero when blank.
func parseFloatArg(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// readingTypeValues lists glucose reading contexts in menu order.
var readingTypeValues = []domain.ReadingType{
	domain.ReadingFasting, domain.ReadingAfterMeal, domain.ReadingRandom,
}

var mealTypeValues = []domain.MealType{
	domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack,
}

var activityTypeValues = []domain.ActivityType{
	domain.ActivityWalking, domain.ActivityRunning, domain.ActivityCycling,
	domain.ActivityYoga, domain.ActivitySwimming, domain.ActivityStrength,
	domain.ActivityOther,
}

var intensityValues = []domain.Intensity{
	domain.IntensityLight, domain.IntensityModerate, domain.IntensityVigorous,
}

var frequencyValues = []domain.Frequency{
	domain.FrequencyDaily, domain.FrequencyTwiceDaily,
	domain.FrequencyWeekly, domain.FrequencyAsNeeded,
}
