package domain

// LogKind identifies the category of a health log record.
type LogKind string

const (
	LogGlucose  LogKind = "glucose"
	LogBP       LogKind = "bp"
	LogFood     LogKind = "food"
	LogActivity LogKind = "activity"
	LogWater    LogKind = "water"
)

// ValidLogKinds is the canonical set of accepted log kind strings.
var ValidLogKinds = map[string]bool{
	"glucose": true, "bp": true, "food": true, "activity": true, "water": true,
}

// Unit returns the measurement unit the API uses for this log kind.
func (k LogKind) Unit() string {
	switch k {
	case LogGlucose:
		return "mg/dL"
	case LogBP:
		return "mmHg"
	case LogFood:
		return "kcal"
	case LogActivity:
		return "minutes"
	case LogWater:
		return "ml"
	default:
		return ""
	}
}

// ReadingType qualifies a glucose reading.
type ReadingType string

const (
	ReadingFasting   ReadingType = "fasting"
	ReadingAfterMeal ReadingType = "after_meal"
	ReadingRandom    ReadingType = "random"
)

var ValidReadingTypes = map[string]bool{
	"fasting": true, "after_meal": true, "random": true,
}

// MealType qualifies a food log entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var ValidMealTypes = map[string]bool{
	"breakfast": true, "lunch": true, "dinner": true, "snack": true,
}

// ActivityType qualifies a physical activity entry.
type ActivityType string

const (
	ActivityWalking  ActivityType = "walking"
	ActivityRunning  ActivityType = "running"
	ActivityCycling  ActivityType = "cycling"
	ActivityYoga     ActivityType = "yoga"
	ActivitySwimming ActivityType = "swimming"
	ActivityStrength ActivityType = "strength"
	ActivityOther    ActivityType = "other"
)

var ValidActivityTypes = map[string]bool{
	"walking": true, "running": true, "cycling": true, "yoga": true,
	"swimming": true, "strength": true, "other": true,
}

// Intensity grades the effort of an activity entry.
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityVigorous Intensity = "vigorous"
)

var ValidIntensities = map[string]bool{
	"light": true, "moderate": true, "vigorous": true,
}

// Frequency describes how often a medication is scheduled.
type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyTwiceDaily Frequency = "twice_daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyAsNeeded   Frequency = "as_needed"
)

var ValidFrequencies = map[string]bool{
	"daily": true, "twice_daily": true, "weekly": true, "as_needed": true,
}

// Trend describes the direction a series of readings is moving.
type Trend string

const (
	TrendIncreasing   Trend = "increasing"
	TrendDecreasing   Trend = "decreasing"
	TrendStable       Trend = "stable"
	TrendInsufficient Trend = "insufficient_data"
)

// BPCategory classifies an average blood pressure per AHA cut points.
type BPCategory string

const (
	BPNormal   BPCategory = "normal"
	BPElevated BPCategory = "elevated"
	BPStage1   BPCategory = "stage1"
	BPStage2   BPCategory = "stage2"
)
