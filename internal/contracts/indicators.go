package contracts

// IndicatorSet is the immutable per-ticker snapshot of derived
// technical indicators. One is produced per ticker per analysis run.
type IndicatorSet struct {
	Ticker       string  `json:"ticker"`
	CurrentPrice float64 `json:"current_price"`

	// Percentage returns vs the close 5/20/60 bars back, falling back
	// to the oldest available close on short series.
	Returns1W float64 `json:"returns_1w"`
	Returns1M float64 `json:"returns_1m"`
	Returns3M float64 `json:"returns_3m"`

	// RSI-14, range [0, 100], neutral 50 when undefined.
	RSI float64 `json:"rsi"`

	// Simple moving averages of close. SMA50 substitutes SMA20 when
	// fewer than 50 bars exist.
	SMA20 float64 `json:"sma_20"`
	SMA50 float64 `json:"sma_50"`

	// Mean volume of the last 5 bars over the 20-bar mean volume.
	// Defaults to 1 when the 20-bar mean is zero.
	VolumeRatio float64 `json:"volume_ratio"`

	// 20-bar rolling standard deviation of daily percentage returns,
	// in percent.
	Volatility float64 `json:"volatility"`

	// Percentage deviation of the current price from each average.
	PriceVsSMA20 float64 `json:"price_vs_sma20"`
	PriceVsSMA50 float64 `json:"price_vs_sma50"`
}

// AboveSMA20 reports whether the current price is above its 20-bar average.
func (s *IndicatorSet) AboveSMA20() bool {
	return s.PriceVsSMA20 > 0
}

// AboveSMA50 reports whether the current price is above its 50-bar average.
func (s *IndicatorSet) AboveSMA50() bool {
	return s.PriceVsSMA50 > 0
}

// ScoredStock is an IndicatorSet plus its composite momentum score.
type ScoredStock struct {
	IndicatorSet
	MomentumScore float64 `json:"momentum_score"`
}
