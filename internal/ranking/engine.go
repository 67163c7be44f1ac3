package ranking

import (
	"sort"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/internal/strategyconfig"
	"github.com/wonny/momentum/pkg/logger"
)

// Engine applies the risk screen and produces the ranked buy and sell
// lists from a run's scored stocks.
type Engine struct {
	screen strategyconfig.Screening
	logger *logger.Logger
}

// NewEngine creates a new ranking engine
func NewEngine(screen strategyconfig.Screening, log *logger.Logger) *Engine {
	return &Engine{
		screen: screen,
		logger: log,
	}
}

// Rank screens and sorts the scored stocks, returning at most topN buy
// and topN sell recommendations. The sell list is the tail of the same
// descending sort, read in array order (ascending toward less-negative
// scores), not an independently re-sorted list. When fewer than
// 2*topN stocks survive the screen, the two lists may overlap.
func (e *Engine) Rank(stocks []contracts.ScoredStock, topN int) (buys, sells []contracts.ScoredStock) {
	passed := e.applyScreen(stocks)

	// Stable sort keeps the original iteration order for equal scores,
	// so runs are reproducible.
	sorted := make([]contracts.ScoredStock, len(passed))
	copy(sorted, passed)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MomentumScore > sorted[j].MomentumScore
	})

	if topN > len(sorted) {
		topN = len(sorted)
	}
	if topN < 0 {
		topN = 0
	}

	buys = sorted[:topN]
	sells = sorted[len(sorted)-topN:]

	e.logger.WithFields(map[string]interface{}{
		"total_input": len(stocks),
		"passed":      len(passed),
		"top_n":       topN,
	}).Info("Ranking completed")

	return buys, sells
}

// applyScreen retains only stocks within the volatility limit and above
// the minimum price. Screened-out stocks are simply not recommended;
// this is a risk screen, not a data-quality rejection.
func (e *Engine) applyScreen(stocks []contracts.ScoredStock) []contracts.ScoredStock {
	passed := make([]contracts.ScoredStock, 0, len(stocks))
	excluded := 0

	for _, s := range stocks {
		if s.Volatility >= e.screen.MaxVolatilityPct || s.CurrentPrice <= e.screen.MinPrice {
			excluded++
			continue
		}
		passed = append(passed, s)
	}

	if excluded > 0 {
		e.logger.WithFields(map[string]interface{}{
			"excluded":           excluded,
			"max_volatility_pct": e.screen.MaxVolatilityPct,
			"min_price":          e.screen.MinPrice,
		}).Debug("Risk screen excluded stocks")
	}

	return passed
}
