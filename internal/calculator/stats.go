package calculator

import (
	"math"

	"WeeklyPulse/internal/model"
)

// Statistics computes summary statistics over a weekly-return series.
// Returns nil for an empty input. StdDev is the sample (n-1) standard
// deviation; with a single return it stays 0, which callers must treat as
// "no meaningful volatility".
func Statistics(returns []model.WeeklyReturn) *model.StatisticsRecord {
	if len(returns) == 0 {
		return nil
	}

	sum := 0.0
	minimum := returns[0].Pct
	maximum := returns[0].Pct
	for _, r := range returns {
		sum += r.Pct
		if r.Pct < minimum {
			minimum = r.Pct
		}
		if r.Pct > maximum {
			maximum = r.Pct
		}
	}
	n := len(returns)
	avg := sum / float64(n)

	stdDev := 0.0
	if n >= 2 {
		var sq float64
		for _, r := range returns {
			d := r.Pct - avg
			sq += d * d
		}
		stdDev = math.Sqrt(sq / float64(n-1))
	}

	return &model.StatisticsRecord{
		Average: avg,
		Minimum: minimum,
		Maximum: maximum,
		StdDev:  stdDev,
		Count:   n,
	}
}

// RiskAdjustedReturn returns average return per unit of volatility.
// ok is false when the record is nil or its volatility is zero/undefined,
// in which case the ratio must be omitted rather than rendered.
func RiskAdjustedReturn(rec *model.StatisticsRecord) (ratio float64, ok bool) {
	if rec == nil || rec.StdDev == 0 {
		return 0, false
	}
	return rec.Average / rec.StdDev, true
}

// WinRate counts positive weeks and their share of the series.
func WinRate(returns []model.WeeklyReturn) (positive int, pct float64) {
	if len(returns) == 0 {
		return 0, 0
	}
	for _, r := range returns {
		if r.Pct > 0 {
			positive++
		}
	}
	return positive, float64(positive) / float64(len(returns)) * 100
}
