package analyzer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/internal/indicator"
	"github.com/wonny/momentum/internal/marketdata"
	"github.com/wonny/momentum/internal/ranking"
	"github.com/wonny/momentum/internal/scoring"
	"github.com/wonny/momentum/internal/strategyconfig"
	"github.com/wonny/momentum/pkg/config"
	"github.com/wonny/momentum/pkg/logger"
)

// fakeUniverse serves a fixed ticker list
type fakeUniverse struct {
	tickers []string
	err     error
}

func (f *fakeUniverse) Tickers(ctx context.Context) ([]string, error) {
	return f.tickers, f.err
}

// fakeMarketData serves canned series per ticker; missing tickers are
// unavailable.
type fakeMarketData struct {
	series map[string]*contracts.TimeSeries
}

func (f *fakeMarketData) Fetch(ctx context.Context, ticker string) (*contracts.TimeSeries, error) {
	s, ok := f.series[ticker]
	if !ok {
		return nil, fmt.Errorf("%w: %s", marketdata.ErrUnavailable, ticker)
	}
	return s, nil
}

func (f *fakeMarketData) Period() string { return "6mo" }

// risingSeries builds a 70-bar series ending with a jump of jumpPct
// over the flat base price, giving distinct momentum scores.
func risingSeries(ticker string, base float64, jumpPct float64) *contracts.TimeSeries {
	bars := make([]contracts.Bar, 70)
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = contracts.Bar{
			Date:   start.AddDate(0, 0, i),
			Close:  base,
			Volume: 1000,
		}
	}
	bars[69].Close = base * (1 + jumpPct/100)
	return &contracts.TimeSeries{Ticker: ticker, Bars: bars}
}

func newTestAnalyzer(univ *fakeUniverse, md *fakeMarketData, concurrency, topN int) *Analyzer {
	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
	strategy := strategyconfig.Default()

	return New(
		univ,
		md,
		indicator.NewEngine(log),
		scoring.NewEngine(strategy.Scoring),
		ranking.NewEngine(strategy.Screening, log),
		Options{Concurrency: concurrency, TopN: topN},
		log,
	)
}

func TestRun_RanksAcrossTickers(t *testing.T) {
	univ := &fakeUniverse{tickers: []string{"STRONG", "MID", "WEAK"}}
	md := &fakeMarketData{series: map[string]*contracts.TimeSeries{
		"STRONG": risingSeries("STRONG", 100, 8),
		"MID":    risingSeries("MID", 100, 4),
		"WEAK":   risingSeries("WEAK", 100, 1),
	}}

	recs, err := newTestAnalyzer(univ, md, 2, 1).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, recs.TickersAnalyzed)
	assert.Equal(t, "6mo", recs.Period)
	require.Len(t, recs.Buys, 1)
	require.Len(t, recs.Sells, 1)
	assert.Equal(t, "STRONG", recs.Buys[0].Ticker)
	assert.Equal(t, "WEAK", recs.Sells[0].Ticker)
}

func TestRun_SkipsFailedAndShortTickers(t *testing.T) {
	univ := &fakeUniverse{tickers: []string{"GOOD", "MISSING", "SHORT"}}

	short := risingSeries("SHORT", 100, 5)
	short.Bars = short.Bars[:10]

	md := &fakeMarketData{series: map[string]*contracts.TimeSeries{
		"GOOD":  risingSeries("GOOD", 100, 5),
		"SHORT": short,
	}}

	recs, err := newTestAnalyzer(univ, md, 3, 5).Run(context.Background())
	require.NoError(t, err)

	// Only GOOD survives; both lists degrade to it.
	require.Len(t, recs.Buys, 1)
	assert.Equal(t, "GOOD", recs.Buys[0].Ticker)
	assert.Equal(t, 3, recs.TickersAnalyzed, "metadata counts the whole universe")
}

func TestRun_EmptyWhenEverythingFails(t *testing.T) {
	univ := &fakeUniverse{tickers: []string{"A", "B"}}
	md := &fakeMarketData{series: map[string]*contracts.TimeSeries{}}

	recs, err := newTestAnalyzer(univ, md, 2, 5).Run(context.Background())
	require.NoError(t, err, "a run with zero analyzable tickers is not an error")

	assert.True(t, recs.Empty())
	assert.Empty(t, recs.Buys)
	assert.Empty(t, recs.Sells)
}

func TestRun_UniverseFailureIsFatal(t *testing.T) {
	univ := &fakeUniverse{err: fmt.Errorf("source offline")}
	md := &fakeMarketData{}

	_, err := newTestAnalyzer(univ, md, 1, 5).Run(context.Background())
	assert.Error(t, err)
}

func TestRun_OrderIndependentOfConcurrency(t *testing.T) {
	// Equal scores everywhere: the stable tiebreak must follow
	// universe order no matter how many workers ran.
	tickers := []string{"T1", "T2", "T3", "T4", "T5", "T6"}
	series := make(map[string]*contracts.TimeSeries, len(tickers))
	for _, tk := range tickers {
		series[tk] = risingSeries(tk, 100, 3)
	}

	univ := &fakeUniverse{tickers: tickers}
	md := &fakeMarketData{series: series}

	for _, concurrency := range []int{1, 4, 8} {
		recs, err := newTestAnalyzer(univ, md, concurrency, 6).Run(context.Background())
		require.NoError(t, err)
		require.Len(t, recs.Buys, 6)

		for i, tk := range tickers {
			assert.Equal(t, tk, recs.Buys[i].Ticker, "concurrency=%d position=%d", concurrency, i)
		}
	}
}

func TestRun_DuplicateTickersProcessedTwice(t *testing.T) {
	univ := &fakeUniverse{tickers: []string{"DUP", "DUP"}}
	md := &fakeMarketData{series: map[string]*contracts.TimeSeries{
		"DUP": risingSeries("DUP", 100, 5),
	}}

	recs, err := newTestAnalyzer(univ, md, 2, 5).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, recs.Buys, 2, "duplicates are not deduplicated")
}
