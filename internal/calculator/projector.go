package calculator

import (
	"math"
	"time"

	"WeeklyPulse/internal/model"
)

// ProjectPrice compounds the historical average, maximum and minimum weekly
// returns independently over weeksAhead weeks to produce expected,
// optimistic and pessimistic price scenarios. Each scenario treats its
// historical rate as a constant hypothetical weekly rate sustained for the
// whole horizon; this is a simplified scenario model, not a simulation.
//
// today is injected by the caller so the target date stays deterministic in
// tests; only the outermost call site should pass time.Now(). Returns nil
// when weeksAhead < 1, the price is not a positive finite number, or stats
// is nil.
func ProjectPrice(currentPrice float64, stats *model.StatisticsRecord, weeksAhead int, today time.Time) *model.ProjectionRecord {
	if stats == nil || weeksAhead < 1 {
		return nil
	}
	if !(currentPrice > 0) || math.IsInf(currentPrice, 1) {
		return nil
	}

	target := nextFridayOnOrAfter(today.AddDate(0, 0, weeksAhead*7))

	weeks := float64(weeksAhead)
	expected := currentPrice * math.Pow(1+stats.Average/100, weeks)
	optimistic := currentPrice * math.Pow(1+stats.Maximum/100, weeks)
	pessimistic := currentPrice * math.Pow(1+stats.Minimum/100, weeks)

	return &model.ProjectionRecord{
		CurrentPrice:      currentPrice,
		ExpectedPrice:     expected,
		OptimisticPrice:   optimistic,
		PessimisticPrice:  pessimistic,
		ExpectedChange:    (expected/currentPrice - 1) * 100,
		OptimisticChange:  (optimistic/currentPrice - 1) * 100,
		PessimisticChange: (pessimistic/currentPrice - 1) * 100,
		WeeksAhead:        weeksAhead,
		TargetDate:        target,
		WeeklyAvgReturn:   stats.Average,
		WeeklyMaxReturn:   stats.Maximum,
		WeeklyMinReturn:   stats.Minimum,
	}
}

// nextFridayOnOrAfter advances d to the next Friday, leaving a Friday
// unchanged. The projection target always lands on the Friday that closes
// the week containing the raw horizon date, never before it.
func nextFridayOnOrAfter(d time.Time) time.Time {
	days := (int(time.Friday) - int(d.Weekday()) + 7) % 7
	if days == 0 {
		return d
	}
	return d.AddDate(0, 0, days)
}
