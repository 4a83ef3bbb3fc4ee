package model

// StockInfo holds instrument metadata from the fetch layer. Fields the
// provider didn't return stay at their zero value.
type StockInfo struct {
	Symbol           string
	Name             string
	Exchange         string
	Currency         string
	InstrumentType   string
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	MarketVolume     float64
}
