package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"WeeklyPulse/internal/model"
)

// QuoteAPIFetcher implements Fetcher against a self-hosted quote server
// exposing a simple REST API. Used when a base URL is configured, e.g. to
// route around rate limits on the public Yahoo endpoint.
type QuoteAPIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewQuoteAPIFetcher creates a new fetcher with optional proxy support.
func NewQuoteAPIFetcher(baseURL, apiKey, proxyURL string) *QuoteAPIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &QuoteAPIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *QuoteAPIFetcher) Name() string { return "quoteapi" }

// apiBar is the expected JSON shape of one daily bar.
type apiBar struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Close float64 `json:"close"`
}

// apiQuote is the expected JSON shape of the latest-quote endpoint.
type apiQuote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// apiInfo is the expected JSON shape of the instrument-info endpoint.
type apiInfo struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Exchange         string  `json:"exchange"`
	Currency         string  `json:"currency"`
	InstrumentType   string  `json:"instrument_type"`
	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  float64 `json:"fifty_two_week_low"`
	Volume           float64 `json:"volume"`
}

func (f *QuoteAPIFetcher) get(endpoint string, out interface{}) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("X-API-Key", f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("quoteapi fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("quoteapi read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quoteapi: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("quoteapi decode: %w", err)
	}
	return nil
}

func (f *QuoteAPIFetcher) fetchBars(endpoint, symbol string) (model.PriceSeries, error) {
	var bars []apiBar
	if err := f.get(endpoint, &bars); err != nil {
		return model.PriceSeries{}, err
	}

	points := make([]model.PricePoint, 0, len(bars))
	for _, b := range bars {
		if b.Close <= 0 {
			continue
		}
		date, err := time.ParseInLocation("2006-01-02", b.Date, time.UTC)
		if err != nil {
			return model.PriceSeries{}, fmt.Errorf("quoteapi: bad date %q: %w", b.Date, err)
		}
		points = append(points, model.PricePoint{Date: date, Close: b.Close})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	deduped := points[:0]
	for _, p := range points {
		if n := len(deduped); n > 0 && deduped[n-1].Date.Equal(p.Date) {
			deduped[n-1].Close = p.Close
			continue
		}
		deduped = append(deduped, p)
	}

	return model.PriceSeries{Symbol: symbol, Points: deduped, FetchedAt: time.Now()}, nil
}

func (f *QuoteAPIFetcher) FetchMaxHistory(symbol string) (model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/history?symbol=%s&range=max", f.BaseURL, url.QueryEscape(symbol))
	return f.fetchBars(endpoint, symbol)
}

func (f *QuoteAPIFetcher) FetchHistory(symbol string, start, end time.Time) (model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/api/v1/history?symbol=%s&start=%s&end=%s",
		f.BaseURL, url.QueryEscape(symbol), start.Format("2006-01-02"), end.Format("2006-01-02"))
	return f.fetchBars(endpoint, symbol)
}

func (f *QuoteAPIFetcher) FetchLatestPrice(symbol string) (float64, error) {
	endpoint := fmt.Sprintf("%s/api/v1/quote?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	var q apiQuote
	if err := f.get(endpoint, &q); err != nil {
		return 0, err
	}
	if q.Price <= 0 {
		return 0, fmt.Errorf("quoteapi: no price for %s", symbol)
	}
	return q.Price, nil
}

func (f *QuoteAPIFetcher) FetchInfo(symbol string) (*model.StockInfo, error) {
	endpoint := fmt.Sprintf("%s/api/v1/info?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	var info apiInfo
	if err := f.get(endpoint, &info); err != nil {
		return nil, err
	}
	name := info.Name
	if name == "" {
		name = symbol
	}
	return &model.StockInfo{
		Symbol:           symbol,
		Name:             name,
		Exchange:         info.Exchange,
		Currency:         info.Currency,
		InstrumentType:   info.InstrumentType,
		FiftyTwoWeekHigh: info.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  info.FiftyTwoWeekLow,
		MarketVolume:     info.Volume,
	}, nil
}
