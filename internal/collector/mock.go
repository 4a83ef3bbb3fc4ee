package collector

import (
	"time"

	"WeeklyPulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price   float64
	Days    int
	EndDate time.Time
	Series  model.PriceSeries // overrides generated history when non-empty
	Info    *model.StockInfo
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) endDate() time.Time {
	if !m.EndDate.IsZero() {
		return m.EndDate
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (m *MockFetcher) history() model.PriceSeries {
	if !m.Series.Empty() {
		return m.Series
	}
	days := m.Days
	if days <= 0 {
		days = 756 // about three years
	}
	return generateMockSeries("MOCK", m.Price, days, m.endDate())
}

func (m *MockFetcher) FetchMaxHistory(_ string) (model.PriceSeries, error) {
	return m.history(), nil
}

func (m *MockFetcher) FetchHistory(_ string, start, end time.Time) (model.PriceSeries, error) {
	full := m.history()
	out := full
	out.Points = nil
	for _, p := range full.Points {
		if p.Date.Before(start) || p.Date.After(end) {
			continue
		}
		out.Points = append(out.Points, p)
	}
	return out, nil
}

func (m *MockFetcher) FetchLatestPrice(_ string) (float64, error) {
	if s := m.history(); !s.Empty() {
		return s.LastClose(), nil
	}
	return m.Price, nil
}

func (m *MockFetcher) FetchInfo(symbol string) (*model.StockInfo, error) {
	if m.Info != nil {
		return m.Info, nil
	}
	return &model.StockInfo{Symbol: symbol, Name: "Mock Instrument", Currency: "USD"}, nil
}

// generateMockSeries builds a deterministic daily series of the given number
// of trading days ending at end, skipping weekends. Prices drift around the
// base so weekly returns are small but non-zero.
func generateMockSeries(symbol string, basePrice float64, days int, end time.Time) model.PriceSeries {
	if basePrice <= 0 {
		basePrice = 100
	}
	dates := make([]time.Time, 0, days)
	d := end
	for len(dates) < days {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			dates = append(dates, d)
		}
		d = d.AddDate(0, 0, -1)
	}

	points := make([]model.PricePoint, days)
	for i := 0; i < days; i++ {
		// Oldest first; drift plus a short cycle.
		idx := days - 1 - i
		p := basePrice * (1 + float64(i-days/2)*0.0002 + 0.003*float64(i%5-2))
		points[i] = model.PricePoint{Date: dates[idx], Close: p}
	}

	return model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: time.Now()}
}
