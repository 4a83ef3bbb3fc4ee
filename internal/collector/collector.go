package collector

import (
	"fmt"
	"log"
	"time"

	"WeeklyPulse/internal/calculator"
	"WeeklyPulse/internal/model"
)

// Collector orchestrates data fetching and the weekly-return pipeline.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol}
}

// Collect runs a full multi-timeframe analysis: maximum available history,
// per-window statistics, and a price projection compounded weeksAhead weeks
// from now. Projections use the 1yr window's statistics so recent behavior
// dominates; when a young listing has no 1yr entry the projection is simply
// absent.
//
// now is passed down to the projector so the target date is fixed at the
// moment the run started.
func (c *Collector) Collect(weeksAhead int, now time.Time) (*model.Analysis, error) {
	series, err := c.Fetcher.FetchMaxHistory(c.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	if series.Empty() {
		return nil, fmt.Errorf("no history available for %s", c.Symbol)
	}

	timeframes := calculator.TimeframeStats(series)
	weeklyReturns := calculator.WeeklyReturns(series)

	price, err := c.Fetcher.FetchLatestPrice(c.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch latest price: %w", err)
	}

	// Metadata is cosmetic; a failed lookup must not sink the run.
	info, err := c.Fetcher.FetchInfo(c.Symbol)
	if err != nil {
		log.Printf("[WARN] fetch info for %s failed: %v", c.Symbol, err)
		info = nil
	}

	projection := calculator.ProjectPrice(price, timeframes["1yr"], weeksAhead, now)

	return &model.Analysis{
		Symbol:        c.Symbol,
		Info:          info,
		CurrentPrice:  price,
		Series:        series,
		Timeframes:    timeframes,
		WeeklyReturns: weeklyReturns,
		Projection:    projection,
		GeneratedAt:   now,
	}, nil
}

// CollectRange analyzes a custom date range. Stats and Projection stay nil
// when the range yields no usable weekly returns; that is the normal outcome
// for a too-short range, not a fault.
func (c *Collector) CollectRange(start, end time.Time, weeksAhead int, now time.Time) (*model.RangeAnalysis, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("invalid range: start %s not before end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	series, err := c.Fetcher.FetchHistory(c.Symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}

	weeklyReturns := calculator.WeeklyReturns(series)
	stats := calculator.Statistics(weeklyReturns)

	price, err := c.Fetcher.FetchLatestPrice(c.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch latest price: %w", err)
	}

	info, err := c.Fetcher.FetchInfo(c.Symbol)
	if err != nil {
		log.Printf("[WARN] fetch info for %s failed: %v", c.Symbol, err)
		info = nil
	}

	return &model.RangeAnalysis{
		Symbol:        c.Symbol,
		Start:         start,
		End:           end,
		Info:          info,
		CurrentPrice:  price,
		Stats:         stats,
		WeeklyReturns: weeklyReturns,
		Projection:    calculator.ProjectPrice(price, stats, weeksAhead, now),
		GeneratedAt:   now,
	}, nil
}
