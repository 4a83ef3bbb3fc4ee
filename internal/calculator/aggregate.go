package calculator

import "WeeklyPulse/internal/model"

// tradingDaysPerYear approximates one calendar year of trading days.
const tradingDaysPerYear = 252

// TimeframeWindow names one trailing analysis window. Years 0 means all
// available history.
type TimeframeWindow struct {
	Label string
	Years int
}

// TimeframeWindows is the fixed set of analysis windows, in declaration
// order. Consumers index results by label, so the order only matters for
// display.
var TimeframeWindows = []TimeframeWindow{
	{"max", 0},
	{"10yr", 10},
	{"5yr", 5},
	{"3yr", 3},
	{"1yr", 1},
}

// TimeframeStats runs the slice -> weekly returns -> statistics pipeline
// for every window. Windows whose slice yields no usable weekly returns are
// skipped entirely: a young listing simply has no 10yr entry, which is the
// normal case rather than a fault.
func TimeframeStats(series model.PriceSeries) model.TimeframeResults {
	results := model.TimeframeResults{}
	for _, w := range TimeframeWindows {
		slice := SliceTimeframe(series, w.Years)
		if slice.Empty() {
			continue
		}
		returns := WeeklyReturns(slice)
		if len(returns) == 0 {
			continue
		}
		rec := Statistics(returns)
		if rec == nil {
			continue
		}
		rec.DataStart = slice.FirstDate()
		rec.DataEnd = slice.LastDate()
		rec.YearsOfData = float64(slice.Len()) / tradingDaysPerYear
		results[w.Label] = rec
	}
	return results
}
