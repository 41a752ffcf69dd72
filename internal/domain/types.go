package domain

import "time"

// LogRecord is a single user-submitted health measurement or activity entry.
// Records are immutable once created; the server assigns ID and CreatedAt.
type LogRecord struct {
	ID             int64     `json:"id"`
	Kind           LogKind   `json:"log_type"`
	Value          float64   `json:"value"`
	ValueSecondary float64   `json:"value_secondary,omitempty"`
	Unit           string    `json:"unit,omitempty"`
	ReadingContext string    `json:"reading_context,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// DoseStatus reports whether a single scheduled dose was taken today.
type DoseStatus struct {
	Time  string `json:"time"`
	Taken bool   `json:"taken"`
}

// Medication is a doctor-prescribed medication with its daily schedule.
type Medication struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Dosage      string       `json:"dosage"`
	Frequency   Frequency    `json:"frequency"`
	TimesOfDay  []string     `json:"times_of_day"`
	Notes       string       `json:"notes,omitempty"`
	TodayStatus []DoseStatus `json:"today_status,omitempty"`
}

// CarePlanTask is one time-tagged daily task from the server care plan.
type CarePlanTask struct {
	Time     string `json:"time"`
	Task     string `json:"task"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}

// CarePlan is the server-supplied ordered list of daily tasks per condition.
type CarePlan struct {
	UserName  string         `json:"user_name"`
	Diseases  []string       `json:"diseases"`
	Date      string         `json:"date"`
	Tasks     []CarePlanTask `json:"tasks"`
	Tips      []string       `json:"tips"`
	Citations []string       `json:"citations"`
}

// UserProfile is the authenticated user's profile as returned at login.
type UserProfile struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Age      int      `json:"age"`
	Gender   string   `json:"gender"`
	Diseases []string `json:"diseases"`
}

// WaterStatus is today's water intake against the daily target.
type WaterStatus struct {
	TotalML     int     `json:"total_ml"`
	Glasses     int     `json:"glasses"`
	TargetML    int     `json:"target_ml"`
	Percentage  float64 `json:"percentage"`
	RemainingML int     `json:"remaining_ml"`
}

// HbA1cResult is one lab-reported HbA1c test result in percent.
type HbA1cResult struct {
	ID       int64   `json:"id"`
	Value    float64 `json:"value"`
	TestDate string  `json:"test_date"`
	LabName  string  `json:"lab_name,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// HbA1cHistory is the recent lab results, newest first, plus the server's
// retesting reminder and target guidance.
type HbA1cHistory struct {
	History  []HbA1cResult `json:"history"`
	Last     *HbA1cResult  `json:"last_result"`
	Reminder string        `json:"reminder"`
	Target   string        `json:"target"`
}

// Reminder is one entry in the personalized care reminders feed.
type Reminder struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Nutrition holds the per-serving nutrient estimate from a food analysis.
type Nutrition struct {
	Calories float64 `json:"calories"`
	CarbsG   float64 `json:"carbs"`
	SugarG   float64 `json:"sugar"`
	FiberG   float64 `json:"fiber"`
	ProteinG float64 `json:"protein"`
	SodiumMG float64 `json:"sodium_mg,omitempty"`
}

// FoodAnalysis is the server's assessment of a described or photographed meal.
type FoodAnalysis struct {
	LogID       int64     `json:"log_id"`
	Food        string    `json:"food"`
	Quantity    string    `json:"quantity"`
	Nutrition   Nutrition `json:"nutrition"`
	Rating      string    `json:"rating"`
	SpikeRisk   string    `json:"spike_risk,omitempty"`
	Positives   []string  `json:"positives,omitempty"`
	Suggestions []string  `json:"improvements,omitempty"`
}

// TrendStats is the server-computed statistics block inside a trend report.
type TrendStats struct {
	Average       float64 `json:"average"`
	AvgSystolic   float64 `json:"avg_systolic,omitempty"`
	AvgDiastolic  float64 `json:"avg_diastolic,omitempty"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	ReadingsCount int     `json:"readings_count"`
}

// TrendReport is the per-metric trend analysis returned by the trends endpoints.
type TrendReport struct {
	Status          string     `json:"status"`
	Period          string     `json:"period"`
	Stats           TrendStats `json:"stats"`
	TrendDirection  Trend      `json:"trend_direction"`
	BPCategory      BPCategory `json:"bp_category,omitempty"`
	InTargetRange   bool       `json:"in_target_range"`
	Insights        []string   `json:"insights"`
	Recommendations []string   `json:"recommendations"`
	Alerts          []string   `json:"alerts"`
	Citation        string     `json:"citation,omitempty"`
	Message         string     `json:"message,omitempty"`
}

// Adjustment is one weekly care plan adjustment derived from trends.
type Adjustment struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// WeeklyAdjustments bundles the trend-driven plan changes for the week.
type WeeklyAdjustments struct {
	WeekOf      string       `json:"week_of"`
	Adjustments []Adjustment `json:"adjustments"`
	Message     string       `json:"message"`
}

// ScoreCard is one graded dimension inside the weekly summary
// (diet quality, exercise consistency, medication adherence).
type ScoreCard struct {
	Score            float64 `json:"score"`
	Rating           string  `json:"rating"`
	MealsLogged      int     `json:"meals_logged,omitempty"`
	AvgCalories      float64 `json:"avg_calories,omitempty"`
	TotalMinutes     float64 `json:"total_minutes,omitempty"`
	TargetMinutes    int     `json:"target_minutes,omitempty"`
	Sessions         int     `json:"sessions,omitempty"`
	PercentageOfGoal float64 `json:"percentage_of_goal,omitempty"`
	Percentage       float64 `json:"percentage,omitempty"`
}

// GlucoseWeek is the weekly blood sugar block inside the weekly summary.
type GlucoseWeek struct {
	Average           float64 `json:"average"`
	Min               float64 `json:"min"`
	Max               float64 `json:"max"`
	Trend             string  `json:"trend"`
	InRangePercentage float64 `json:"in_range_percentage"`
	Readings          int     `json:"readings"`
}

// WeeklySummary is the server's scored weekly health summary.
type WeeklySummary struct {
	WeekOf  string `json:"week_of"`
	Summary struct {
		Diet                ScoreCard   `json:"diet"`
		Exercise            ScoreCard   `json:"exercise"`
		MedicationAdherence ScoreCard   `json:"medication_adherence"`
		BloodSugar          GlucoseWeek `json:"blood_sugar"`
	} `json:"summary"`
	Suggestions []string `json:"ai_suggestions"`
	Disclaimer  string   `json:"disclaimer"`
}
