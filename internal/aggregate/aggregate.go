// Package aggregate derives dashboard view-models from windows of health log
// records. Every function is pure: no I/O, no mutation of inputs, and
// deterministic given the records and a reference time. Derived values are
// recomputed wholesale from the fetched window on every load, never updated
// incrementally.
//
// Calendar-day matching uses the location of the reference time, so "today"
// follows the device clock rather than the server's day boundary.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/maniksharma/vitalog/internal/domain"
)

// DailyBucket is the per-day total for one calendar day of the window.
type DailyBucket struct {
	Day    time.Time // midnight, reference location
	Label  string    // short weekday name, e.g. "Mon"
	Total  float64
	Count  int
	Active bool // at least one record that day
}

// CategoryBreakdown is the summed value for one normalized category key.
type CategoryBreakdown struct {
	Category string
	Total    float64
	Count    int
}

// RangeStats summarizes a window of readings the same way the backend's
// weekly stats endpoint does.
type RangeStats struct {
	Avg          float64
	Min          float64
	Max          float64
	Count        int
	AvgSecondary float64
}

// sameDay reports whether t falls on the same calendar day as day,
// compared in day's location.
func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// BucketByDay folds records into one bucket per calendar day for the last
// windowDays days ending at ref, oldest first. Days without records yield
// zero-valued, inactive buckets. windowDays <= 0 returns nil.
func BucketByDay(records []domain.LogRecord, windowDays int, ref time.Time) []DailyBucket {
	if windowDays <= 0 {
		return nil
	}

	buckets := make([]DailyBucket, windowDays)
	for i := 0; i < windowDays; i++ {
		day := startOfDay(ref).AddDate(0, 0, i-windowDays+1)
		buckets[i] = DailyBucket{
			Day:   day,
			Label: day.Format("Mon"),
		}
	}

	for _, r := range records {
		for i := range buckets {
			if sameDay(r.CreatedAt, buckets[i].Day) {
				buckets[i].Total += r.Value
				buckets[i].Count++
				buckets[i].Active = true
				break
			}
		}
	}

	return buckets
}

// TodayTotal sums the values of records falling on ref's calendar day.
func TodayTotal(records []domain.LogRecord, ref time.Time) float64 {
	var total float64
	today := startOfDay(ref)
	for _, r := range records {
		if sameDay(r.CreatedAt, today) {
			total += r.Value
		}
	}
	return total
}

// categoryKey normalizes a free-form reading context into a grouping key:
// the lower-cased first whitespace-delimited token, or "other" when absent.
func categoryKey(context string) string {
	fields := strings.Fields(strings.ToLower(context))
	if len(fields) == 0 {
		return "other"
	}
	return fields[0]
}

// BreakdownByCategory groups records by normalized category key and sums
// values per group, sorted descending by total. Ties keep the order in
// which categories were first encountered.
func BreakdownByCategory(records []domain.LogRecord) []CategoryBreakdown {
	index := make(map[string]int)
	var groups []CategoryBreakdown

	for _, r := range records {
		key := categoryKey(r.ReadingContext)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CategoryBreakdown{Category: key})
		}
		groups[i].Total += r.Value
		groups[i].Count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total > groups[j].Total
	})
	return groups
}

// ComputeStreak counts consecutive calendar days with at least one record,
// walking backward from ref's day. A recordless current day does not break
// the streak; the first later gap does. The walk stops after
// maxLookbackDays days.
func ComputeStreak(records []domain.LogRecord, maxLookbackDays int, ref time.Time) int {
	if maxLookbackDays <= 0 || len(records) == 0 {
		return 0
	}

	active := make(map[string]bool, len(records))
	loc := ref.Location()
	for _, r := range records {
		active[r.CreatedAt.In(loc).Format("2006-01-02")] = true
	}

	streak := 0
	for offset := 0; offset < maxLookbackDays; offset++ {
		day := startOfDay(ref).AddDate(0, 0, -offset)
		if active[day.Format("2006-01-02")] {
			streak++
			continue
		}
		if offset > 0 {
			break
		}
	}
	return streak
}

// Summarize computes avg/min/max/count over the record values, plus the
// average of secondary values where present. Empty input yields zeroes.
func Summarize(records []domain.LogRecord) RangeStats {
	if len(records) == 0 {
		return RangeStats{}
	}

	stats := RangeStats{Min: records[0].Value, Max: records[0].Value}
	var sum, secondarySum float64
	var secondaryCount int
	for _, r := range records {
		sum += r.Value
		if r.Value < stats.Min {
			stats.Min = r.Value
		}
		if r.Value > stats.Max {
			stats.Max = r.Value
		}
		if r.ValueSecondary != 0 {
			secondarySum += r.ValueSecondary
			secondaryCount++
		}
	}
	stats.Count = len(records)
	stats.Avg = sum / float64(len(records))
	if secondaryCount > 0 {
		stats.AvgSecondary = secondarySum / float64(secondaryCount)
	}
	return stats
}
