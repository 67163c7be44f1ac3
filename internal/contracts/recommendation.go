package contracts

import "time"

// Recommendations is the output of one analysis run: the ranked buy and
// sell lists plus run metadata for the presentation layer.
type Recommendations struct {
	GeneratedAt     time.Time     `json:"generated_at"`
	Period          string        `json:"period"` // lookback description, e.g. "6mo"
	TickersAnalyzed int           `json:"tickers_analyzed"`
	Buys            []ScoredStock `json:"buys"`
	Sells           []ScoredStock `json:"sells"`
}

// Empty reports whether the run produced no recommendations at all.
func (r *Recommendations) Empty() bool {
	return len(r.Buys) == 0 && len(r.Sells) == 0
}
