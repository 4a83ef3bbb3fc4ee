package model

import "time"

// Analysis is the full output of one multi-timeframe analysis run.
type Analysis struct {
	Symbol        string
	Info          *StockInfo
	CurrentPrice  float64
	Series        PriceSeries
	Timeframes    TimeframeResults
	WeeklyReturns []WeeklyReturn
	Projection    *ProjectionRecord
	GeneratedAt   time.Time
}

// RangeAnalysis is the output of a custom date-range analysis. Stats and
// Projection are nil when the range yielded no usable weekly returns.
type RangeAnalysis struct {
	Symbol        string
	Start         time.Time
	End           time.Time
	Info          *StockInfo
	CurrentPrice  float64
	Stats         *StatisticsRecord
	WeeklyReturns []WeeklyReturn
	Projection    *ProjectionRecord
	GeneratedAt   time.Time
}
