package collector

import (
	"time"

	"WeeklyPulse/internal/model"
)

// Fetcher defines the interface for fetching price history and quotes.
type Fetcher interface {
	FetchMaxHistory(symbol string) (model.PriceSeries, error)
	FetchHistory(symbol string, start, end time.Time) (model.PriceSeries, error)
	FetchLatestPrice(symbol string) (float64, error)
	FetchInfo(symbol string) (*model.StockInfo, error)
	Name() string
}
