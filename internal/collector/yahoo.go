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

// YahooFetcher implements Fetcher using the Yahoo Finance public chart API.
type YahooFetcher struct {
	Client    *http.Client
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency            string  `json:"currency"`
				Symbol              string  `json:"symbol"`
				LongName            string  `json:"longName"`
				ShortName           string  `json:"shortName"`
				FullExchangeName    string  `json:"fullExchangeName"`
				InstrumentType      string  `json:"instrumentType"`
				FiftyTwoWeekHigh    float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow     float64 `json:"fiftyTwoWeekLow"`
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				RegularMarketVolume float64 `json:"regularMarketVolume"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) fetchChart(symbol, query string) (*yahooChart, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?%s",
		url.PathEscape(f.yahooSymbol(symbol)), query)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}
	return &chart, nil
}

// chartSeries converts a chart response into a clean daily price series:
// null bars skipped, timestamps normalized to UTC dates, sorted ascending,
// same-day duplicates collapsed to the latest close. This upholds the
// sorted/unique/positive invariant the calculator relies on.
func (f *YahooFetcher) chartSeries(symbol string, chart *yahooChart) (model.PriceSeries, error) {
	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return model.PriceSeries{}, fmt.Errorf("yahoo: empty history for %s", symbol)
	}
	quote := result.Indicators.Quote[0]

	points := make([]model.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		c := toFloat(quote.Close[i])
		if c <= 0 {
			continue // null bars (holidays etc.)
		}
		t := time.Unix(ts, 0).UTC()
		date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		points = append(points, model.PricePoint{Date: date, Close: c})
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

	return model.PriceSeries{
		Symbol:    symbol,
		Points:    deduped,
		FetchedAt: time.Now(),
	}, nil
}

func (f *YahooFetcher) FetchMaxHistory(symbol string) (model.PriceSeries, error) {
	chart, err := f.fetchChart(symbol, "interval=1d&range=max")
	if err != nil {
		return model.PriceSeries{}, err
	}
	return f.chartSeries(symbol, chart)
}

func (f *YahooFetcher) FetchHistory(symbol string, start, end time.Time) (model.PriceSeries, error) {
	query := fmt.Sprintf("interval=1d&period1=%d&period2=%d", start.Unix(), end.Unix())
	chart, err := f.fetchChart(symbol, query)
	if err != nil {
		return model.PriceSeries{}, err
	}
	return f.chartSeries(symbol, chart)
}

func (f *YahooFetcher) FetchLatestPrice(symbol string) (float64, error) {
	// Last five trading days so a weekend or holiday still yields a close.
	chart, err := f.fetchChart(symbol, "interval=1d&range=5d")
	if err != nil {
		return 0, err
	}
	series, err := f.chartSeries(symbol, chart)
	if err != nil {
		return 0, err
	}
	if series.Empty() {
		return 0, fmt.Errorf("yahoo: no price data for %s", symbol)
	}
	return series.LastClose(), nil
}

func (f *YahooFetcher) FetchInfo(symbol string) (*model.StockInfo, error) {
	chart, err := f.fetchChart(symbol, "interval=1d&range=5d")
	if err != nil {
		return nil, err
	}
	meta := chart.Chart.Result[0].Meta
	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}
	if name == "" {
		name = symbol
	}
	return &model.StockInfo{
		Symbol:           symbol,
		Name:             name,
		Exchange:         meta.FullExchangeName,
		Currency:         meta.Currency,
		InstrumentType:   meta.InstrumentType,
		FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
		MarketVolume:     meta.RegularMarketVolume,
	}, nil
}
