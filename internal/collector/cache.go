package collector

import (
	"fmt"
	"sync"
	"time"

	"WeeklyPulse/internal/model"
)

// Default cache lifetimes. History and quotes go stale quickly during a
// session; instrument metadata barely changes.
const (
	DefaultHistoryTTL = 5 * time.Minute
	DefaultInfoTTL    = time.Hour
)

type cachedSeries struct {
	fetchedAt time.Time
	series    model.PriceSeries
}

type cachedPrice struct {
	fetchedAt time.Time
	price     float64
}

type cachedInfo struct {
	fetchedAt time.Time
	info      *model.StockInfo
}

// CachingFetcher memoizes an inner Fetcher with per-kind TTLs so repeated
// analysis runs and chat commands don't hammer the upstream provider.
type CachingFetcher struct {
	inner      Fetcher
	historyTTL time.Duration
	infoTTL    time.Duration

	mu      sync.Mutex
	history map[string]cachedSeries
	prices  map[string]cachedPrice
	infos   map[string]cachedInfo
}

// NewCachingFetcher wraps inner with TTL caching. Non-positive TTLs fall
// back to the defaults.
func NewCachingFetcher(inner Fetcher, historyTTL, infoTTL time.Duration) *CachingFetcher {
	if historyTTL <= 0 {
		historyTTL = DefaultHistoryTTL
	}
	if infoTTL <= 0 {
		infoTTL = DefaultInfoTTL
	}
	return &CachingFetcher{
		inner:      inner,
		historyTTL: historyTTL,
		infoTTL:    infoTTL,
		history:    map[string]cachedSeries{},
		prices:     map[string]cachedPrice{},
		infos:      map[string]cachedInfo{},
	}
}

func (c *CachingFetcher) Name() string { return c.inner.Name() }

func (c *CachingFetcher) FetchMaxHistory(symbol string) (model.PriceSeries, error) {
	return c.cachedHistory("max|"+symbol, func() (model.PriceSeries, error) {
		return c.inner.FetchMaxHistory(symbol)
	})
}

func (c *CachingFetcher) FetchHistory(symbol string, start, end time.Time) (model.PriceSeries, error) {
	key := fmt.Sprintf("range|%s|%s|%s", symbol, start.Format("2006-01-02"), end.Format("2006-01-02"))
	return c.cachedHistory(key, func() (model.PriceSeries, error) {
		return c.inner.FetchHistory(symbol, start, end)
	})
}

func (c *CachingFetcher) cachedHistory(key string, fetch func() (model.PriceSeries, error)) (model.PriceSeries, error) {
	c.mu.Lock()
	if entry, ok := c.history[key]; ok && time.Since(entry.fetchedAt) < c.historyTTL {
		c.mu.Unlock()
		return entry.series, nil
	}
	c.mu.Unlock()

	series, err := fetch()
	if err != nil {
		return model.PriceSeries{}, err
	}

	c.mu.Lock()
	c.history[key] = cachedSeries{fetchedAt: time.Now(), series: series}
	c.mu.Unlock()
	return series, nil
}

func (c *CachingFetcher) FetchLatestPrice(symbol string) (float64, error) {
	c.mu.Lock()
	if entry, ok := c.prices[symbol]; ok && time.Since(entry.fetchedAt) < c.historyTTL {
		c.mu.Unlock()
		return entry.price, nil
	}
	c.mu.Unlock()

	price, err := c.inner.FetchLatestPrice(symbol)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.prices[symbol] = cachedPrice{fetchedAt: time.Now(), price: price}
	c.mu.Unlock()
	return price, nil
}

func (c *CachingFetcher) FetchInfo(symbol string) (*model.StockInfo, error) {
	c.mu.Lock()
	if entry, ok := c.infos[symbol]; ok && time.Since(entry.fetchedAt) < c.infoTTL {
		c.mu.Unlock()
		return entry.info, nil
	}
	c.mu.Unlock()

	info, err := c.inner.FetchInfo(symbol)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.infos[symbol] = cachedInfo{fetchedAt: time.Now(), info: info}
	c.mu.Unlock()
	return info, nil
}
