package aggregate

import (
	"math/rand"
	"testing"
	"time"

	"github.com/maniksharma/vitalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed reference: a Wednesday at noon, local-like zone
var ref = time.Date(2025, 6, 18, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

func rec(daysAgo int, hour int, value float64, context string) domain.LogRecord {
	return domain.LogRecord{
		Kind:           domain.LogActivity,
		Value:          value,
		ReadingContext: context,
		CreatedAt:      ref.AddDate(0, 0, -daysAgo).Truncate(time.Hour).Add(time.Duration(hour-12) * time.Hour),
	}
}

func TestBucketByDay_EmptyInputYieldsZeroBuckets(t *testing.T) {
	buckets := BucketByDay(nil, 7, ref)
	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Zero(t, b.Total)
		assert.Zero(t, b.Count)
		assert.False(t, b.Active)
		assert.NotEmpty(t, b.Label)
	}
}

func TestBucketByDay_OldestFirstAndLabels(t *testing.T) {
	buckets := BucketByDay(nil, 7, ref)
	require.Len(t, buckets, 7)

	// ref is a Wednesday, so the window runs Thu..Wed
	assert.Equal(t, "Thu", buckets[0].Label)
	assert.Equal(t, "Wed", buckets[6].Label)
	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i].Day.After(buckets[i-1].Day))
	}
}

func TestBucketByDay_TwoDayActivityWindow(t *testing.T) {
	records := []domain.LogRecord{
		rec(0, 8, 30, "walking"),
		rec(0, 18, 20, "walking"),
		rec(1, 10, 45, "running"),
	}

	buckets := BucketByDay(records, 2, ref)
	require.Len(t, buckets, 2)
	assert.Equal(t, 45.0, buckets[0].Total, "yesterday")
	assert.Equal(t, 50.0, buckets[1].Total, "today")
	assert.True(t, buckets[0].Active)
	assert.True(t, buckets[1].Active)

	assert.Equal(t, 50.0, TodayTotal(records, ref))

	groups := BreakdownByCategory(records)
	require.Len(t, groups, 2)
	assert.Equal(t, CategoryBreakdown{Category: "walking", Total: 50, Count: 2}, groups[0])
	assert.Equal(t, CategoryBreakdown{Category: "running", Total: 45, Count: 1}, groups[1])
}

func TestBucketByDay_ExcludesRecordsOutsideWindow(t *testing.T) {
	records := []domain.LogRecord{
		rec(0, 9, 10, ""),
		rec(9, 9, 99, ""), // outside a 7-day window
	}
	buckets := BucketByDay(records, 7, ref)

	var sum float64
	for _, b := range buckets {
		sum += b.Total
	}
	assert.Equal(t, 10.0, sum)
}

func TestBucketByDay_NonPositiveWindow(t *testing.T) {
	assert.Nil(t, BucketByDay([]domain.LogRecord{rec(0, 9, 10, "")}, 0, ref))
	assert.Nil(t, BucketByDay(nil, -3, ref))
}

// Property: the sum of bucket totals equals the sum of record values that
// fall inside the bucketed window, for arbitrary record sets.
func TestBucketByDay_SumConservationProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		windowDays := 1 + rng.Intn(14)
		n := rng.Intn(40)

		var records []domain.LogRecord
		var wantSum float64
		for i := 0; i < n; i++ {
			daysAgo := rng.Intn(windowDays + 5) // some outside the window
			value := float64(rng.Intn(500))
			r := rec(daysAgo, 1+rng.Intn(22), value, "walking")
			records = append(records, r)
			if daysAgo < windowDays {
				wantSum += value
			}
		}

		var gotSum float64
		for _, b := range BucketByDay(records, windowDays, ref) {
			gotSum += b.Total
		}
		assert.InDelta(t, wantSum, gotSum, 1e-9,
			"trial %d: windowDays=%d n=%d", trial, windowDays, n)
	}
}

func TestTodayTotal_Empty(t *testing.T) {
	assert.Zero(t, TodayTotal(nil, ref))
	assert.Zero(t, TodayTotal([]domain.LogRecord{}, ref))
}

func TestTodayTotal_IgnoresOtherDays(t *testing.T) {
	records := []domain.LogRecord{
		rec(0, 8, 30, ""),
		rec(1, 8, 45, ""),
		rec(2, 8, 45, ""),
	}
	assert.Equal(t, 30.0, TodayTotal(records, ref))
}

func TestBreakdownByCategory_Empty(t *testing.T) {
	assert.Empty(t, BreakdownByCategory(nil))
}

func TestBreakdownByCategory_CaseInsensitiveMerge(t *testing.T) {
	records := []domain.LogRecord{
		rec(0, 8, 20, "Walking"),
		rec(0, 9, 30, "walking (moderate)"),
		rec(0, 10, 15, "WALKING"),
	}
	groups := BreakdownByCategory(records)
	require.Len(t, groups, 1)
	assert.Equal(t, "walking", groups[0].Category)
	assert.Equal(t, 65.0, groups[0].Total)
	assert.Equal(t, 3, groups[0].Count)
}

func TestBreakdownByCategory_MissingContextBucketsAsOther(t *testing.T) {
	records := []domain.LogRecord{
		rec(0, 8, 20, ""),
		rec(0, 9, 5, "   "),
	}
	groups := BreakdownByCategory(records)
	require.Len(t, groups, 1)
	assert.Equal(t, "other", groups[0].Category)
	assert.Equal(t, 25.0, groups[0].Total)
}

func TestBreakdownByCategory_SumsEqualInputSum(t *testing.T) {
	records := []domain.LogRecord{
		rec(0, 8, 20, "walking"),
		rec(0, 9, 30, "running"),
		rec(1, 9, 12, "yoga"),
		rec(2, 9, 0, ""),
	}
	var want float64
	for _, r := range records {
		want += r.Value
	}
	var got float64
	for _, g := range BreakdownByCategory(records) {
		got += g.Total
	}
	assert.Equal(t, want, got)
}

func TestBreakdownByCategory_StableTieOrder(t *testing.T) {
	records := []domain.LogRecord{
		rec(0, 8, 25, "cycling"),
		rec(0, 9, 25, "yoga"),
		rec(0, 10, 25, "swimming"),
	}
	groups := BreakdownByCategory(records)
	require.Len(t, groups, 3)
	assert.Equal(t, "cycling", groups[0].Category)
	assert.Equal(t, "yoga", groups[1].Category)
	assert.Equal(t, "swimming", groups[2].Category)
}

func TestComputeStreak_Empty(t *testing.T) {
	assert.Zero(t, ComputeStreak(nil, 30, ref))
}

func TestComputeStreak_GapCharacterization(t *testing.T) {
	// records on today, yesterday and three days ago; gap two days ago
	records := []domain.LogRecord{
		rec(0, 8, 1, ""),
		rec(1, 8, 1, ""),
		rec(3, 8, 1, ""),
	}
	assert.Equal(t, 2, ComputeStreak(records, 30, ref))
}

func TestComputeStreak_TodayWithoutRecordDoesNotBreak(t *testing.T) {
	records := []domain.LogRecord{
		rec(1, 8, 1, ""),
		rec(2, 8, 1, ""),
	}
	assert.Equal(t, 2, ComputeStreak(records, 30, ref))
}

func TestComputeStreak_MonotonicAsConsecutiveDaysAdded(t *testing.T) {
	var records []domain.LogRecord
	prev := 0
	for day := 0; day < 10; day++ {
		records = append(records, rec(day, 9, 1, ""))
		got := ComputeStreak(records, 30, ref)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 10, prev)
}

func TestComputeStreak_StopsAtLookbackLimit(t *testing.T) {
	var records []domain.LogRecord
	for day := 0; day < 40; day++ {
		records = append(records, rec(day, 9, 1, ""))
	}
	assert.Equal(t, 30, ComputeStreak(records, 30, ref))
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, RangeStats{}, Summarize(nil))
}

func TestSummarize_Stats(t *testing.T) {
	records := []domain.LogRecord{
		{Value: 120, ValueSecondary: 80},
		{Value: 140, ValueSecondary: 90},
		{Value: 100},
	}
	stats := Summarize(records)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 100.0, stats.Min)
	assert.Equal(t, 140.0, stats.Max)
	assert.InDelta(t, 120.0, stats.Avg, 1e-9)
	assert.InDelta(t, 85.0, stats.AvgSecondary, 1e-9)
}
