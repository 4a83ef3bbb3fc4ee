package calculator

import (
	"sort"

	"WeeklyPulse/internal/model"
)

// SliceTimeframe restricts a price series to the trailing window of the
// given number of calendar years. The cutoff is computed from the series'
// own latest date, not the wall clock, so the slice is reproducible for a
// fixed input. years <= 0 means unbounded and returns the input unchanged.
func SliceTimeframe(series model.PriceSeries, years int) model.PriceSeries {
	if series.Empty() || years <= 0 {
		return series
	}
	cutoff := series.LastDate().AddDate(-years, 0, 0)
	idx := sort.Search(len(series.Points), func(i int) bool {
		return !series.Points[i].Date.Before(cutoff)
	})
	out := series
	out.Points = series.Points[idx:]
	return out
}
