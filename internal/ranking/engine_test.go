package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/internal/strategyconfig"
	"github.com/wonny/momentum/pkg/config"
	"github.com/wonny/momentum/pkg/logger"
)

func testEngine() *Engine {
	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
	return NewEngine(strategyconfig.Default().Screening, log)
}

func stock(ticker string, score, price, volatility float64) contracts.ScoredStock {
	return contracts.ScoredStock{
		IndicatorSet: contracts.IndicatorSet{
			Ticker:       ticker,
			CurrentPrice: price,
			Volatility:   volatility,
		},
		MomentumScore: score,
	}
}

func tickers(stocks []contracts.ScoredStock) []string {
	out := make([]string, len(stocks))
	for i, s := range stocks {
		out[i] = s.Ticker
	}
	return out
}

func TestRank_BuyHeadSellTail(t *testing.T) {
	// Scores [50, 30, 10, -5, -20] with top_n=2: buys are the head of
	// the descending sort, sells are its tail read in array order.
	stocks := []contracts.ScoredStock{
		stock("C", 10, 100, 20),
		stock("A", 50, 100, 20),
		stock("E", -20, 100, 20),
		stock("B", 30, 100, 20),
		stock("D", -5, 100, 20),
	}

	buys, sells := testEngine().Rank(stocks, 2)

	assert.Equal(t, []string{"A", "B"}, tickers(buys))
	assert.Equal(t, []string{"D", "E"}, tickers(sells))
	assert.Equal(t, []float64{50.0, 30.0}, []float64{buys[0].MomentumScore, buys[1].MomentumScore})
	assert.Equal(t, []float64{-5.0, -20.0}, []float64{sells[0].MomentumScore, sells[1].MomentumScore})
}

func TestRank_ScreenExcludesRiskyStocks(t *testing.T) {
	stocks := []contracts.ScoredStock{
		stock("OK", 10, 100, 20),
		stock("VOLATILE", 90, 100, 50),   // volatility at the limit is excluded
		stock("WILD", 95, 100, 80),       // over the limit
		stock("PENNY", 99, 5, 10),        // price at the floor is excluded
		stock("SUBPENNY", 99, 1.50, 10),  // under the floor
		stock("CHEAP_OK", 5, 5.01, 10),   // just above the floor passes
	}

	buys, sells := testEngine().Rank(stocks, 10)

	assert.ElementsMatch(t, []string{"OK", "CHEAP_OK"}, tickers(buys))
	assert.ElementsMatch(t, []string{"OK", "CHEAP_OK"}, tickers(sells))
}

func TestRank_FewerThanTopN(t *testing.T) {
	stocks := []contracts.ScoredStock{
		stock("A", 12, 100, 20),
		stock("B", -3, 100, 20),
	}

	buys, sells := testEngine().Rank(stocks, 5)

	// Both lists degrade to what is available; overlap is expected
	// when the screened set is smaller than 2*topN.
	assert.Equal(t, []string{"A", "B"}, tickers(buys))
	assert.Equal(t, []string{"A", "B"}, tickers(sells))
}

func TestRank_EmptyInput(t *testing.T) {
	buys, sells := testEngine().Rank(nil, 5)

	assert.Empty(t, buys)
	assert.Empty(t, sells)
}

func TestRank_AllScreenedOut(t *testing.T) {
	stocks := []contracts.ScoredStock{
		stock("A", 50, 2, 10),
		stock("B", 40, 100, 75),
	}

	buys, sells := testEngine().Rank(stocks, 5)

	assert.Empty(t, buys)
	assert.Empty(t, sells)
}

func TestRank_StableTiebreakKeepsInputOrder(t *testing.T) {
	stocks := []contracts.ScoredStock{
		stock("FIRST", 10, 100, 20),
		stock("SECOND", 10, 100, 20),
		stock("THIRD", 10, 100, 20),
	}

	buys, _ := testEngine().Rank(stocks, 3)
	require.Len(t, buys, 3)

	assert.Equal(t, []string{"FIRST", "SECOND", "THIRD"}, tickers(buys))
}
