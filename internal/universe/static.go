package universe

import "context"

// majorStocks is the built-in large-cap S&P 500 subset, ordered by
// rough index weight at the time the list was compiled.
var majorStocks = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "TSLA", "META", "BRK-B",
	"UNH", "JNJ", "V", "PG", "JPM", "XOM", "HD", "CVX", "MA", "PFE",
	"ABBV", "BAC", "KO", "AVGO", "PEP", "TMO", "COST", "WMT", "DHR",
	"MRK", "ACN", "VZ", "ADBE", "TXN", "NFLX", "CMCSA", "NKE", "CRM",
	"QCOM", "AMD", "INTC", "T", "CSCO", "ABT", "ORCL", "IBM", "GE",
	"AMGN", "PM", "UNP", "LOW", "SPGI", "INTU", "CAT", "AXP", "BKNG",
	"SYK", "GILD", "ADP", "ISRG", "TJX", "CVS", "MDT", "PYPL", "NOW",
	"RTX", "HON", "AMT", "LMT", "ELV", "TGT", "ZTS", "SBUX", "CI",
	"BLK", "SO", "DUK", "PLD", "ITW", "EOG", "AON", "ICE", "SPG",
	"NOC", "AEP", "PWR", "FIS", "PSA", "ALL", "MMC", "APD", "A",
	"CL", "EMR", "SHW", "ECL", "ROP", "AFL", "CTAS", "NSC", "ETN",
	"EXC", "CME", "MCO", "TEL", "PAYX", "ROST", "CHTR", "CTSH", "PRU",
}

// Static serves the built-in ticker list.
type Static struct {
	max int
}

// NewStatic creates a static universe provider limited to max tickers
// (0 = the full built-in list).
func NewStatic(max int) *Static {
	return &Static{max: max}
}

// Tickers returns the built-in symbol list.
func (s *Static) Tickers(ctx context.Context) ([]string, error) {
	symbols := make([]string, len(majorStocks))
	copy(symbols, majorStocks)
	return limit(symbols, s.max), nil
}
