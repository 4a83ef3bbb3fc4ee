package model

import "time"

// WeeklyClose is the closing price of the last trading day within one
// calendar week. WeekEnd is always the Friday that closes the week, even
// when that Friday itself was not a trading day.
type WeeklyClose struct {
	WeekEnd time.Time
	Close   float64
}

// WeeklyReturn is the week-over-week percentage change between two
// consecutive weekly closes, labelled by the later week's end.
type WeeklyReturn struct {
	WeekEnd time.Time
	Pct     float64
}

// StatisticsRecord summarizes a weekly-return series. StdDev is the sample
// (n-1) standard deviation and is 0 when Count < 2; callers treating
// volatility as a denominator must check for that.
//
// DataStart, DataEnd and YearsOfData are filled only when the record was
// produced for a timeframe slice.
type StatisticsRecord struct {
	Average     float64
	Minimum     float64
	Maximum     float64
	StdDev      float64
	Count       int
	DataStart   time.Time
	DataEnd     time.Time
	YearsOfData float64
}

// TimeframeResults maps a timeframe label (max, 10yr, 5yr, 3yr, 1yr) to its
// statistics. Labels whose slice yielded no usable weekly returns are absent
// from the map, never present with a nil record.
type TimeframeResults map[string]*StatisticsRecord

// ProjectionRecord holds compounded price scenarios for a fixed horizon.
// The *Change fields are total percentage changes over the whole horizon,
// not the per-week rates used as inputs.
type ProjectionRecord struct {
	CurrentPrice      float64
	ExpectedPrice     float64
	OptimisticPrice   float64
	PessimisticPrice  float64
	ExpectedChange    float64
	OptimisticChange  float64
	PessimisticChange float64
	WeeksAhead        int
	TargetDate        time.Time
	WeeklyAvgReturn   float64
	WeeklyMaxReturn   float64
	WeeklyMinReturn   float64
}
