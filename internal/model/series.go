package model

import "time"

// PricePoint is one trading day's closing price.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds a daily closing-price history, sorted ascending by date
// with unique dates and positive closes.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Empty reports whether the series holds no points.
func (s PriceSeries) Empty() bool { return len(s.Points) == 0 }

// Len returns the number of trading days in the series.
func (s PriceSeries) Len() int { return len(s.Points) }

// FirstDate returns the earliest date in the series. Zero time if empty.
func (s PriceSeries) FirstDate() time.Time {
	if s.Empty() {
		return time.Time{}
	}
	return s.Points[0].Date
}

// LastDate returns the latest date in the series. Zero time if empty.
func (s PriceSeries) LastDate() time.Time {
	if s.Empty() {
		return time.Time{}
	}
	return s.Points[len(s.Points)-1].Date
}

// LastClose returns the most recent closing price. Zero if empty.
func (s PriceSeries) LastClose() float64 {
	if s.Empty() {
		return 0
	}
	return s.Points[len(s.Points)-1].Close
}
