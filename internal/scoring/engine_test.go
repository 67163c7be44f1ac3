package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/internal/strategyconfig"
)

func defaultEngine() *Engine {
	return NewEngine(strategyconfig.Default().Scoring)
}

func TestScore_WorkedExample(t *testing.T) {
	// 1w: min(10*2, 20) = 20; 1m: min(5*1.5, 15) = 7.5;
	// 3m: min(2*1, 10) = 2; RSI in [30,70]: +5; volume > 1.2: +5;
	// above SMA20: +3; above SMA50: +2. Total 44.5.
	ind := contracts.IndicatorSet{
		Ticker:       "AAPL",
		CurrentPrice: 230,
		Returns1W:    10,
		Returns1M:    5,
		Returns3M:    2,
		RSI:          50,
		VolumeRatio:  1.5,
		PriceVsSMA20: 1.2,
		PriceVsSMA50: 0.8,
	}

	assert.InDelta(t, 44.5, defaultEngine().Score(ind), 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	ind := contracts.IndicatorSet{
		Returns1W:    3.7,
		Returns1M:    -2.1,
		Returns3M:    12.9,
		RSI:          64,
		VolumeRatio:  0.95,
		PriceVsSMA20: -0.4,
		PriceVsSMA50: 2.2,
	}

	engine := defaultEngine()
	first := engine.Score(ind)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, engine.Score(ind))
	}
}

func TestCappedContribution(t *testing.T) {
	week := strategyconfig.Default().Scoring.Returns.Week

	tests := []struct {
		name string
		ret  float64
		want float64
	}{
		{"extreme positive capped", 500, 20},
		{"extreme negative capped", -500, -20},
		{"exactly at cap", 10, 20},
		{"under cap positive", 4, 8},
		{"under cap negative", -4, -8},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cappedContribution(tt.ret, week), 1e-9)
		})
	}
}

func TestRSIContribution(t *testing.T) {
	engine := defaultEngine()

	tests := []struct {
		name string
		rsi  float64
		want float64
	}{
		{"neutral low edge", 30, 5},
		{"neutral mid", 50, 5},
		{"neutral high edge", 70, 5},
		{"between high and overbought", 75, 0},
		{"overbought boundary not penalized", 80, 0},
		{"overbought", 85, -10},
		{"between oversold and neutral", 25, 0},
		{"oversold boundary not rewarded", 20, 0},
		{"oversold", 15, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.rsiContribution(tt.rsi))
		})
	}
}

func TestVolumeContribution(t *testing.T) {
	engine := defaultEngine()

	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"above average", 1.5, 5},
		{"high boundary neutral", 1.2, 0},
		{"normal", 1.0, 0},
		{"low boundary neutral", 0.8, 0},
		{"below average", 0.5, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.volumeContribution(tt.ratio))
		})
	}
}

func TestScore_TrendBonusesRequirePositiveDeviation(t *testing.T) {
	engine := defaultEngine()

	base := contracts.IndicatorSet{RSI: 50, VolumeRatio: 1.0}

	below := base
	below.PriceVsSMA20 = -1
	below.PriceVsSMA50 = -1

	above := base
	above.PriceVsSMA20 = 1
	above.PriceVsSMA50 = 1

	assert.InDelta(t, 5.0, engine.Score(below), 1e-9, "only the RSI neutral bonus")
	assert.InDelta(t, 10.0, engine.Score(above), 1e-9, "RSI bonus plus both trend bonuses")
}

func TestScore_WorstCase(t *testing.T) {
	// Everything negative: -20 -15 -10 (capped returns) -10 (overbought)
	// -5 (thin volume) and no trend bonuses = -60.
	ind := contracts.IndicatorSet{
		Returns1W:    -99,
		Returns1M:    -99,
		Returns3M:    -99,
		RSI:          90,
		VolumeRatio:  0.1,
		PriceVsSMA20: -5,
		PriceVsSMA50: -5,
	}

	assert.InDelta(t, -60.0, defaultEngine().Score(ind), 1e-9)
}
