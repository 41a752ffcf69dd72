package api

import (
	"time"

	"github.com/maniksharma/vitalog/internal/domain"
)

// Wire shapes for responses whose fields need normalization before they
// become domain values. Everything else decodes straight into domain types.

// timeLayouts are tried in order when parsing server timestamps. Layouts
// without a zone are interpreted in the device-local location, matching the
// calendar-day policy of the aggregation layer.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseAPITime parses the first non-empty candidate timestamp string.
// Unparseable input yields the zero time rather than an error: a record
// with a bad timestamp still carries its value, it just lands in no bucket.
func parseAPITime(candidates ...string) time.Time {
	for _, s := range candidates {
		if s == "" {
			continue
		}
		for _, layout := range timeLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// logRecordWire tolerates the loose typing of the log rows: nullable
// numbers and several timestamp spellings.
type logRecordWire struct {
	ID             int64    `json:"id"`
	LogType        string   `json:"log_type"`
	Value          *float64 `json:"value"`
	ValueSecondary *float64 `json:"value_secondary"`
	Unit           string   `json:"unit"`
	ReadingContext string   `json:"reading_context"`
	Notes          string   `json:"notes"`
	CreatedAt      string   `json:"created_at"`
	LoggedAt       string   `json:"logged_at"`
	LogDate        string   `json:"log_date"`
}

func (w logRecordWire) toDomain() domain.LogRecord {
	rec := domain.LogRecord{
		ID:             w.ID,
		Kind:           domain.LogKind(w.LogType),
		Unit:           w.Unit,
		ReadingContext: w.ReadingContext,
		Notes:          w.Notes,
		CreatedAt:      parseAPITime(w.CreatedAt, w.LoggedAt, w.LogDate),
	}
	if w.Value != nil {
		rec.Value = *w.Value
	}
	if w.ValueSecondary != nil {
		rec.ValueSecondary = *w.ValueSecondary
	}
	return rec
}

// statsWire is the backend's weekly stats block, all fields nullable when
// the window is empty.
type statsWire struct {
	AvgValue     *float64 `json:"avg_value"`
	MinValue     *float64 `json:"min_value"`
	MaxValue     *float64 `json:"max_value"`
	Count        int      `json:"count"`
	AvgSecondary *float64 `json:"avg_secondary"`
}

// WeeklyStats is the server-computed summary accompanying a log window.
type WeeklyStats struct {
	Avg          float64
	Min          float64
	Max          float64
	Count        int
	AvgSecondary float64
}

func (w *statsWire) toDomain() *WeeklyStats {
	if w == nil {
		return nil
	}
	s := &WeeklyStats{Count: w.Count}
	if w.AvgValue != nil {
		s.Avg = *w.AvgValue
	}
	if w.MinValue != nil {
		s.Min = *w.MinValue
	}
	if w.MaxValue != nil {
		s.Max = *w.MaxValue
	}
	if w.AvgSecondary != nil {
		s.AvgSecondary = *w.AvgSecondary
	}
	return s
}

type logsWire struct {
	Logs  []logRecordWire `json:"logs"`
	Stats *statsWire      `json:"stats"`
	Count int             `json:"count"`
}

// LogWindow is a fetched window of records plus the server's stats for it.
type LogWindow struct {
	Records []domain.LogRecord
	Stats   *WeeklyStats
	Count   int
}

func (w logsWire) toDomain() *LogWindow {
	window := &LogWindow{Count: w.Count}
	if len(w.Logs) > 0 {
		window.Records = make([]domain.LogRecord, len(w.Logs))
		for i, lr := range w.Logs {
			window.Records[i] = lr.toDomain()
		}
	}
	window.Stats = w.Stats.toDomain()
	return window
}

// Session is the authentication result: bearer token plus profile.
type Session struct {
	Token string             `json:"access_token"`
	Type  string             `json:"token_type"`
	User  domain.UserProfile `json:"user"`
}

// LogCreated is the server acknowledgment for a new log entry. Alert is
// non-empty when the reading crossed a clinical threshold server-side.
type LogCreated struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Alert   string `json:"alert"`
}

// MedCreated acknowledges a new medication, with the standing dosage warning.
type MedCreated struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Warning string `json:"warning"`
}

type medicationsWire struct {
	Medications []domain.Medication `json:"medications"`
	Disclaimer  string              `json:"disclaimer"`
}

type remindersWire struct {
	Custom     []domain.Reminder `json:"custom_reminders"`
	Daily      []domain.Reminder `json:"daily_reminders"`
	Disclaimer string            `json:"disclaimer"`
}

// TrendBundle is the full multi-condition trend report.
type TrendBundle struct {
	GeneratedAt string                        `json:"generated_at"`
	Period      string                        `json:"period"`
	Trends      map[string]domain.TrendReport `json:"trends"`
	Adjustments domain.WeeklyAdjustments      `json:"weekly_adjustments"`
	Activity    struct {
		TotalMinutes  float64 `json:"total_minutes"`
		TargetMinutes int     `json:"target_minutes"`
		OnTrack       bool    `json:"on_track"`
	} `json:"activity_summary"`
}
