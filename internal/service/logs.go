package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/domain"
)

// LogService validates and submits new log entries, and fetches derived
// log windows for single-kind views.
type LogService struct {
	client *api.Client
	now    func() time.Time
}

// NewLogService creates a LogService.
func NewLogService(client *api.Client) *LogService {
	return &LogService{client: client, now: time.Now}
}

func (s *LogService) SubmitGlucose(ctx context.Context, entry api.GlucoseEntry) (*api.LogCreated, error) {
	if entry.Value <= 0 {
		return nil, fmt.Errorf("glucose value must be positive, got %v", entry.Value)
	}
	if !domain.ValidReadingTypes[string(entry.ReadingType)] {
		return nil, fmt.Errorf("unknown reading type %q", entry.ReadingType)
	}
	return s.client.LogGlucose(ctx, entry)
}

func (s *LogService) SubmitBP(ctx context.Context, entry api.BPEntry) (*api.LogCreated, error) {
	if entry.Systolic <= 0 || entry.Diastolic <= 0 {
		return nil, fmt.Errorf("blood pressure values must be positive, got %v/%v",
			entry.Systolic, entry.Diastolic)
	}
	if entry.Diastolic >= entry.Systolic {
		return nil, fmt.Errorf("diastolic (%v) must be below systolic (%v)",
			entry.Diastolic, entry.Systolic)
	}
	return s.client.LogBP(ctx, entry)
}

func (s *LogService) SubmitFood(ctx context.Context, entry api.FoodEntry) (*api.LogCreated, error) {
	if entry.Calories <= 0 {
		return nil, fmt.Errorf("calories must be positive, got %v", entry.Calories)
	}
	if !domain.ValidMealTypes[string(entry.MealType)] {
		return nil, fmt.Errorf("unknown meal type %q", entry.MealType)
	}
	return s.client.LogFood(ctx, entry)
}

func (s *LogService) SubmitActivity(ctx context.Context, entry api.ActivityEntry) (*api.LogCreated, error) {
	if entry.DurationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %v", entry.DurationMinutes)
	}
	if !domain.ValidActivityTypes[string(entry.ActivityType)] {
		return nil, fmt.Errorf("unknown activity type %q", entry.ActivityType)
	}
	if entry.Intensity == "" {
		entry.Intensity = domain.IntensityModerate
	}
	if !domain.ValidIntensities[string(entry.Intensity)] {
		return nil, fmt.Errorf("unknown intensity %q", entry.Intensity)
	}
	return s.client.LogActivity(ctx, entry)
}

func (s *LogService) SubmitWater(ctx context.Context, entry api.WaterEntry) (*api.LogCreated, error) {
	if entry.AmountML <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d ml", entry.AmountML)
	}
	return s.client.LogWater(ctx, entry)
}

// SubmitHbA1c records a lab HbA1c result. TestDate defaults to today and
// must be a calendar date, not a timestamp.
func (s *LogService) SubmitHbA1c(ctx context.Context, entry api.HbA1cEntry) (*api.HbA1cLogged, error) {
	if entry.Value <= 0 {
		return nil, fmt.Errorf("hba1c value must be positive, got %v", entry.Value)
	}
	if entry.TestDate == "" {
		entry.TestDate = s.now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", entry.TestDate); err != nil {
		return nil, fmt.Errorf("test date must be YYYY-MM-DD, got %q", entry.TestDate)
	}
	return s.client.LogHbA1c(ctx, entry)
}

// HbA1cHistory fetches the recent lab results with the retesting reminder.
func (s *LogService) HbA1cHistory(ctx context.Context) (*domain.HbA1cHistory, error) {
	return s.client.HbA1cHistory(ctx)
}

// Window fetches one kind's trailing window and derives its panel. Unlike
// the dashboard, a fetch failure here propagates: a single-kind view has
// nothing else to show.
func (s *LogService) Window(ctx context.Context, kind domain.LogKind, days int) (*KindPanel, error) {
	if !domain.ValidLogKinds[string(kind)] {
		return nil, fmt.Errorf("unknown log kind %q", kind)
	}
	if days <= 0 {
		days = DefaultWindowDays
	}

	window, err := s.client.Logs(ctx, kind, days)
	if err != nil {
		return nil, err
	}

	panel := &KindPanel{Kind: kind}
	derivePanel(panel, window, days, s.now())
	return panel, nil
}

// Recent fetches the combined trailing window across every log kind,
// newest first as the server returns it.
func (s *LogService) Recent(ctx context.Context, days int) ([]domain.LogRecord, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	window, err := s.client.AllLogs(ctx, days)
	if err != nil {
		return nil, err
	}
	return window.Records, nil
}
