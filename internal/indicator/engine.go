package indicator

import (
	"math"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/pkg/logger"
)

const (
	rsiPeriod        = 14
	volatilityWindow = 20
	recentVolumeBars = 5
	volumeWindow     = 20

	lookback1W = 5  // ~1 week of trading days
	lookback1M = 20 // ~1 month
	lookback3M = 60 // ~3 months
)

// Engine derives the fixed set of scalar technical indicators from one
// price series. Indicator computation happens here and nowhere else.
type Engine struct {
	logger *logger.Logger
}

// NewEngine creates a new indicator engine
func NewEngine(log *logger.Logger) *Engine {
	return &Engine{logger: log}
}

// Compute derives an IndicatorSet from a series. The second return is
// false when the series is absent or shorter than the analyzable
// minimum; such tickers are skipped, not errors.
func (e *Engine) Compute(series *contracts.TimeSeries) (contracts.IndicatorSet, bool) {
	if series == nil || !series.Analyzable() {
		return contracts.IndicatorSet{}, false
	}

	closes := series.Closes()
	volumes := series.Volumes()
	currentPrice := closes[len(closes)-1]

	sma20 := trailingMean(closes, volatilityWindow)
	sma50 := sma20
	if len(closes) >= 50 {
		sma50 = trailingMean(closes, 50)
	}

	set := contracts.IndicatorSet{
		Ticker:       series.Ticker,
		CurrentPrice: currentPrice,
		Returns1W:    pctReturn(currentPrice, referenceClose(closes, lookback1W)),
		Returns1M:    pctReturn(currentPrice, referenceClose(closes, lookback1M)),
		Returns3M:    pctReturn(currentPrice, referenceClose(closes, lookback3M)),
		RSI:          relativeStrength(closes, rsiPeriod),
		SMA20:        sma20,
		SMA50:        sma50,
		VolumeRatio:  volumeRatio(volumes),
		Volatility:   rollingVolatility(closes, volatilityWindow),
		PriceVsSMA20: pctDeviation(currentPrice, sma20),
		PriceVsSMA50: pctDeviation(currentPrice, sma50),
	}

	e.logger.WithFields(map[string]interface{}{
		"ticker":       set.Ticker,
		"price":        set.CurrentPrice,
		"returns_1w":   set.Returns1W,
		"rsi":          set.RSI,
		"volume_ratio": set.VolumeRatio,
		"volatility":   set.Volatility,
	}).Debug("Computed indicators")

	return set, true
}

// referenceClose returns the close `lookback` bars before the end, or
// the oldest close when the series is shorter. Degrading to the oldest
// close is deliberate, not an error.
func referenceClose(closes []float64, lookback int) float64 {
	if len(closes) >= lookback {
		return closes[len(closes)-lookback]
	}
	return closes[0]
}

// pctReturn computes the percentage change vs a reference close.
// A non-positive reference yields 0 rather than a division blow-up.
func pctReturn(current, reference float64) float64 {
	if reference <= 0 {
		return 0
	}
	return (current - reference) / reference * 100
}

// relativeStrength computes RSI over day-over-day close deltas using a
// rolling mean of gains and losses. Returns the neutral 50 when no
// valid window can be formed, 100 when losses are absent.
func relativeStrength(closes []float64, period int) float64 {
	deltas := len(closes) - 1
	if deltas < 1 {
		return 50
	}

	window := period
	if deltas < window {
		window = deltas
	}

	var gains, losses float64
	for i := len(closes) - window; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains += change
		} else {
			losses += -change
		}
	}

	meanGain := gains / float64(window)
	meanLoss := losses / float64(window)

	if meanLoss == 0 {
		if meanGain == 0 {
			return 50 // flat series, RSI undefined
		}
		return 100
	}

	rs := meanGain / meanLoss
	return 100 - 100/(1+rs)
}

// trailingMean computes the arithmetic mean of the trailing window of
// closes ending at the last bar.
func trailingMean(closes []float64, window int) float64 {
	if window > len(closes) {
		window = len(closes)
	}
	if window == 0 {
		return 0
	}

	var sum float64
	for i := len(closes) - window; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(window)
}

// volumeRatio compares the mean volume of the most recent bars against
// the longer window mean. Defaults to 1 when the base mean is zero.
func volumeRatio(volumes []int64) float64 {
	recent := meanVolume(volumes, recentVolumeBars)
	base := meanVolume(volumes, volumeWindow)
	if base == 0 {
		return 1
	}
	return recent / base
}

// meanVolume computes the mean of the trailing window of volumes.
func meanVolume(volumes []int64, window int) float64 {
	if window > len(volumes) {
		window = len(volumes)
	}
	if window == 0 {
		return 0
	}

	var sum int64
	for i := len(volumes) - window; i < len(volumes); i++ {
		sum += volumes[i]
	}
	return float64(sum) / float64(window)
}

// rollingVolatility computes the sample standard deviation of the
// trailing window of daily percentage returns, in percent.
func rollingVolatility(closes []float64, window int) float64 {
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1])
	}

	if window > len(returns) {
		window = len(returns)
	}
	if window < 2 {
		return 0
	}

	tail := returns[len(returns)-window:]

	var sum float64
	for _, r := range tail {
		sum += r
	}
	mean := sum / float64(window)

	var sq float64
	for _, r := range tail {
		d := r - mean
		sq += d * d
	}

	// Sample standard deviation (n-1 denominator)
	return math.Sqrt(sq/float64(window-1)) * 100
}

// pctDeviation computes the percentage deviation of price from a
// moving average, 0 when the average is non-positive.
func pctDeviation(price, average float64) float64 {
	if average <= 0 {
		return 0
	}
	return (price - average) / average * 100
}
