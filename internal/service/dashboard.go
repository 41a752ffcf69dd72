// Package service orchestrates API calls and aggregation into the
// view-models the CLI renders. Each service degrades to an empty view on
// failure rather than propagating: there are no retries and no offline
// queue, a failed fetch simply renders as "no data".
package service

import (
	"context"
	"sync"
	"time"

	"github.com/maniksharma/vitalog/internal/aggregate"
	"github.com/maniksharma/vitalog/internal/api"
	"github.com/maniksharma/vitalog/internal/domain"
)

const (
	// DefaultWindowDays is the trailing window fetched for dashboards.
	DefaultWindowDays = 7

	// StreakLookbackDays bounds the backward walk of streak computation.
	StreakLookbackDays = 30
)

// Glucose target range in mg/dL for the in-range figure.
const (
	GlucoseRangeLow  = 70
	GlucoseRangeHigh = 180
)

// KindPanel is the derived dashboard panel for one log kind. When Err is
// set the other fields are zero-valued and the panel renders as empty.
type KindPanel struct {
	Kind       domain.LogKind
	Records    []domain.LogRecord
	Buckets    []aggregate.DailyBucket
	TodayTotal float64
	Breakdown  []aggregate.CategoryBreakdown
	Streak     int
	Stats      *api.WeeklyStats
	Direction  domain.Trend
	InRangePct float64                  // glucose panel only
	BPCategory domain.BPCategory        // bp panel only
	Macros     *aggregate.MacroEstimate // food panel only; today's estimate
	Err        error
}

// Dashboard is everything the dashboard screen shows, loaded in one pass.
type Dashboard struct {
	GeneratedAt time.Time
	WindowDays  int

	Panels map[domain.LogKind]*KindPanel

	Plan    *domain.CarePlan
	PlanErr error

	Water    *domain.WaterStatus
	WaterErr error

	Meds    []domain.Medication
	MedsErr error
}

// dashboardKinds are the log kinds shown as dashboard panels.
var dashboardKinds = []domain.LogKind{
	domain.LogGlucose, domain.LogBP, domain.LogFood, domain.LogActivity,
}

// DashboardService loads and derives the full dashboard view-model.
type DashboardService struct {
	client *api.Client
	now    func() time.Time
}

// NewDashboardService creates a DashboardService over the API client.
func NewDashboardService(client *api.Client) *DashboardService {
	return &DashboardService{client: client, now: time.Now}
}

// Load fetches every dashboard leg in parallel and aggregates the results.
// Legs fail independently: a panel whose fetch failed carries its error and
// zero-valued aggregates while the other panels are unaffected. Load itself
// never returns an error.
func (s *DashboardService) Load(ctx context.Context, windowDays int) *Dashboard {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	ref := s.now()

	dash := &Dashboard{
		GeneratedAt: ref,
		WindowDays:  windowDays,
		Panels:      make(map[domain.LogKind]*KindPanel, len(dashboardKinds)),
	}

	var wg sync.WaitGroup

	for _, kind := range dashboardKinds {
		kind := kind
		panel := &KindPanel{Kind: kind}
		dash.Panels[kind] = panel

		wg.Add(1)
		go func() {
			defer wg.Done()
			window, err := s.client.Logs(ctx, kind, windowDays)
			if err != nil {
				panel.Err = err
				return
			}
			derivePanel(panel, window, windowDays, ref)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		dash.Plan, dash.PlanErr = s.client.CarePlan(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		dash.Water, dash.WaterErr = s.client.WaterToday(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		dash.Meds, dash.MedsErr = s.client.Medications(ctx)
	}()

	wg.Wait()
	return dash
}

// derivePanel recomputes the panel's view-model wholesale from the fetched
// window. Shared with LogService.Window so single-kind views match the
// dashboard exactly.
func derivePanel(panel *KindPanel, window *api.LogWindow, windowDays int, ref time.Time) {
	panel.Records = window.Records
	panel.Stats = window.Stats
	panel.Buckets = aggregate.BucketByDay(window.Records, windowDays, ref)
	panel.TodayTotal = aggregate.TodayTotal(window.Records, ref)
	panel.Breakdown = aggregate.BreakdownByCategory(window.Records)
	panel.Streak = aggregate.ComputeStreak(window.Records, StreakLookbackDays, ref)

	values := aggregate.Values(window.Records)
	panel.Direction = aggregate.TrendDirection(values)

	// Older backends omit the stats block; fall back to local figures.
	if panel.Stats == nil && len(window.Records) > 0 {
		rs := aggregate.Summarize(window.Records)
		panel.Stats = &api.WeeklyStats{
			Avg: rs.Avg, Min: rs.Min, Max: rs.Max,
			Count: rs.Count, AvgSecondary: rs.AvgSecondary,
		}
	}

	switch panel.Kind {
	case domain.LogGlucose:
		panel.InRangePct = aggregate.InRangePercent(values, GlucoseRangeLow, GlucoseRangeHigh)
	case domain.LogBP:
		if panel.Stats != nil && panel.Stats.Count > 0 {
			panel.BPCategory = aggregate.CategorizeBP(panel.Stats.Avg, panel.Stats.AvgSecondary)
		}
	case domain.LogFood:
		if panel.TodayTotal > 0 {
			m := aggregate.EstimateMacros(panel.TodayTotal)
			panel.Macros = &m
		}
	}
}
