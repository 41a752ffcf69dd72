package aggregate

import "github.com/maniksharma/vitalog/internal/domain"

// trendThresholdPct is the half/half mean shift, in percent, below which a
// series is considered stable.
const trendThresholdPct = 5.0

// TrendDirection compares the mean of the first half of values against the
// mean of the second half. A shift of more than 5% either way marks the
// series increasing or decreasing; fewer than three values is insufficient.
func TrendDirection(values []float64) domain.Trend {
	if len(values) < 3 {
		return domain.TrendInsufficient
	}

	mid := len(values) / 2
	firstAvg := mean(values[:mid])
	secondAvg := mean(values[mid:])
	if firstAvg <= 0 {
		return domain.TrendStable
	}

	diffPct := (secondAvg - firstAvg) / firstAvg * 100
	switch {
	case diffPct > trendThresholdPct:
		return domain.TrendIncreasing
	case diffPct < -trendThresholdPct:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

// InRangePercent returns the share of values inside [lo, hi], in percent.
// Empty input yields 0.
func InRangePercent(values []float64, lo, hi float64) float64 {
	if len(values) == 0 {
		return 0
	}
	inRange := 0
	for _, v := range values {
		if v >= lo && v <= hi {
			inRange++
		}
	}
	return float64(inRange) / float64(len(values)) * 100
}

// CategorizeBP classifies an average blood pressure reading using the AHA
// cut points: <120/80 normal, <130/80 elevated, <140 or <90 stage 1,
// otherwise stage 2.
func CategorizeBP(systolic, diastolic float64) domain.BPCategory {
	switch {
	case systolic < 120 && diastolic < 80:
		return domain.BPNormal
	case systolic < 130 && diastolic < 80:
		return domain.BPElevated
	case systolic < 140 || diastolic < 90:
		return domain.BPStage1
	default:
		return domain.BPStage2
	}
}

// Values extracts the primary values of a record window, preserving order.
func Values(records []domain.LogRecord) []float64 {
	if len(records) == 0 {
		return nil
	}
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Value
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
