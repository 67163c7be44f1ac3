package analyzer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/internal/indicator"
	"github.com/wonny/momentum/internal/marketdata"
	"github.com/wonny/momentum/internal/ranking"
	"github.com/wonny/momentum/internal/scoring"
	"github.com/wonny/momentum/internal/universe"
	"github.com/wonny/momentum/pkg/logger"
)

// Analyzer coordinates the full pipeline: universe -> fetch ->
// indicators -> score -> rank. Each ticker's computation is fully
// independent, so fetch+score fans out across a bounded worker pool
// and fans back in to a result set that preserves universe order.
type Analyzer struct {
	universe   universe.Provider
	marketData marketdata.Provider
	indicators *indicator.Engine
	scoring    *scoring.Engine
	ranking    *ranking.Engine
	logger     *logger.Logger

	concurrency int
	topN        int
}

// Options holds run parameters for the analyzer
type Options struct {
	Concurrency int // parallel workers, minimum 1
	TopN        int // recommendations per side
}

// New creates a new analyzer
func New(
	univ universe.Provider,
	marketData marketdata.Provider,
	indicators *indicator.Engine,
	scorer *scoring.Engine,
	ranker *ranking.Engine,
	opts Options,
	log *logger.Logger,
) *Analyzer {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.TopN < 1 {
		opts.TopN = 5
	}

	return &Analyzer{
		universe:    univ,
		marketData:  marketData,
		indicators:  indicators,
		scoring:     scorer,
		ranking:     ranker,
		logger:      log,
		concurrency: opts.Concurrency,
		topN:        opts.TopN,
	}
}

// Run executes one full analysis. Per-ticker failures (fetch errors,
// short series) are skipped, never fatal; a run where every ticker
// fails yields empty lists, not an error.
func (a *Analyzer) Run(ctx context.Context) (*contracts.Recommendations, error) {
	startTime := time.Now()

	tickers, err := a.universe.Tickers(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve universe: %w", err)
	}

	a.logger.WithFields(map[string]interface{}{
		"tickers":     len(tickers),
		"concurrency": a.concurrency,
		"period":      a.marketData.Period(),
	}).Info("Starting analysis run")

	scored := a.collect(ctx, tickers)

	buys, sells := a.ranking.Rank(scored, a.topN)

	recs := &contracts.Recommendations{
		GeneratedAt:     time.Now(),
		Period:          a.marketData.Period(),
		TickersAnalyzed: len(tickers),
		Buys:            buys,
		Sells:           sells,
	}

	a.logger.WithFields(map[string]interface{}{
		"scored":   len(scored),
		"buys":     len(buys),
		"sells":    len(sells),
		"duration": time.Since(startTime),
	}).Info("Analysis run completed")

	return recs, nil
}

// collect fans fetch+indicator+score out across workers. Each worker
// writes only its own slot of the result slice, so the merge needs no
// locking, and compacting afterwards preserves universe order for the
// ranking engine's stable tiebreak.
func (a *Analyzer) collect(ctx context.Context, tickers []string) []contracts.ScoredStock {
	results := make([]*contracts.ScoredStock, len(tickers))

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < a.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = a.analyzeTicker(ctx, tickers[i])
			}
		}()
	}

	for i := range tickers {
		select {
		case <-ctx.Done():
			// Interrupted fetch leaves a partial result set; whatever
			// completed still ranks.
			close(jobs)
			wg.Wait()
			return compact(results)
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return compact(results)
}

// analyzeTicker runs the per-ticker pipeline. Returns nil when the
// ticker yields no record.
func (a *Analyzer) analyzeTicker(ctx context.Context, ticker string) *contracts.ScoredStock {
	series, err := a.marketData.Fetch(ctx, ticker)
	if err != nil {
		a.logger.WithFields(map[string]interface{}{
			"ticker": ticker,
			"error":  err.Error(),
		}).Warn("Skipping ticker, fetch failed")
		return nil
	}

	indicators, ok := a.indicators.Compute(series)
	if !ok {
		a.logger.WithFields(map[string]interface{}{
			"ticker": ticker,
			"bars":   series.Len(),
		}).Debug("Skipping ticker, insufficient history")
		return nil
	}

	return &contracts.ScoredStock{
		IndicatorSet:  indicators,
		MomentumScore: a.scoring.Score(indicators),
	}
}

// compact drops nil slots while preserving order.
func compact(results []*contracts.ScoredStock) []contracts.ScoredStock {
	out := make([]contracts.ScoredStock, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
