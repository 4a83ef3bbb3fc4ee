package calculator

import (
	"time"

	"WeeklyPulse/internal/model"
)

// WeekEnd returns the Friday that closes the calendar week containing d.
// Weeks run Saturday through Friday, so a Saturday already belongs to the
// following week.
func WeekEnd(d time.Time) time.Time {
	days := (int(time.Friday) - int(d.Weekday()) + 7) % 7
	if days == 0 {
		return d
	}
	return d.AddDate(0, 0, days)
}

// WeeklyCloses resamples a daily price series into one close per calendar
// week: the closing price of the last trading day at or before the week's
// Friday. A week whose Friday is a holiday resolves to the prior trading
// day's close with no special-casing, since the last point in the bin wins.
func WeeklyCloses(series model.PriceSeries) []model.WeeklyClose {
	if series.Empty() {
		return nil
	}
	var closes []model.WeeklyClose
	for _, p := range series.Points {
		we := WeekEnd(p.Date)
		if n := len(closes); n > 0 && closes[n-1].WeekEnd.Equal(we) {
			closes[n-1].Close = p.Close
			continue
		}
		closes = append(closes, model.WeeklyClose{WeekEnd: we, Close: p.Close})
	}
	return closes
}

// WeeklyReturns computes week-over-week percentage returns between
// consecutive weekly closes. The first week has no predecessor and is
// dropped, so the result has one fewer entry than there are weekly closes.
// Returns nil when fewer than two weekly closes exist.
func WeeklyReturns(series model.PriceSeries) []model.WeeklyReturn {
	closes := WeeklyCloses(series)
	if len(closes) < 2 {
		return nil
	}
	returns := make([]model.WeeklyReturn, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		pct := (closes[i].Close/closes[i-1].Close - 1) * 100
		returns = append(returns, model.WeeklyReturn{WeekEnd: closes[i].WeekEnd, Pct: pct})
	}
	return returns
}
