package aggregate

import (
	"testing"

	"github.com/maniksharma/vitalog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTrendDirection(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   domain.Trend
	}{
		{"too few values", []float64{120, 130}, domain.TrendInsufficient},
		{"rising", []float64{100, 100, 120, 130}, domain.TrendIncreasing},
		{"falling", []float64{160, 150, 120, 110}, domain.TrendDecreasing},
		{"flat", []float64{120, 121, 119, 120}, domain.TrendStable},
		{"within 5 percent band", []float64{100, 100, 104, 104}, domain.TrendStable},
		{"zero baseline", []float64{0, 0, 10, 10}, domain.TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendDirection(tt.values))
		})
	}
}

func TestInRangePercent(t *testing.T) {
	assert.Zero(t, InRangePercent(nil, 80, 180))

	values := []float64{70, 100, 150, 200}
	assert.InDelta(t, 50.0, InRangePercent(values, 80, 180), 1e-9)

	boundary := []float64{80, 180}
	assert.InDelta(t, 100.0, InRangePercent(boundary, 80, 180), 1e-9)
}

func TestCategorizeBP(t *testing.T) {
	tests := []struct {
		systolic, diastolic float64
		want                domain.BPCategory
	}{
		{110, 70, domain.BPNormal},
		{125, 75, domain.BPElevated},
		{125, 85, domain.BPStage1},
		{135, 85, domain.BPStage1},
		{150, 95, domain.BPStage2},
		{139, 89, domain.BPStage1},
	}
	for _, tt := range tests {
		got := CategorizeBP(tt.systolic, tt.diastolic)
		assert.Equal(t, tt.want, got, "%v/%v", tt.systolic, tt.diastolic)
	}
}

func TestValues(t *testing.T) {
	assert.Nil(t, Values(nil))

	records := []domain.LogRecord{{Value: 1}, {Value: 2}, {Value: 3}}
	assert.Equal(t, []float64{1, 2, 3}, Values(records))
}
