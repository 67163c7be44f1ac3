package scoring

import (
	"math"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/internal/strategyconfig"
)

// Engine maps an indicator set to a single composite momentum score.
// Scoring is a pure function of its input: identical indicator sets
// always yield identical scores.
type Engine struct {
	cfg strategyconfig.Scoring
}

// NewEngine creates a new scoring engine
func NewEngine(cfg strategyconfig.Scoring) *Engine {
	return &Engine{cfg: cfg}
}

// Score computes the weighted composite momentum score. Each factor
// contributes independently; the return factors are clamped so no
// single horizon can dominate the composite.
func (e *Engine) Score(ind contracts.IndicatorSet) float64 {
	score := cappedContribution(ind.Returns1W, e.cfg.Returns.Week)
	score += cappedContribution(ind.Returns1M, e.cfg.Returns.Month)
	score += cappedContribution(ind.Returns3M, e.cfg.Returns.Quarter)
	score += e.rsiContribution(ind.RSI)
	score += e.volumeContribution(ind.VolumeRatio)

	if ind.AboveSMA20() {
		score += e.cfg.Trend.AboveSMA20Bonus
	}
	if ind.AboveSMA50() {
		score += e.cfg.Trend.AboveSMA50Bonus
	}

	return score
}

// cappedContribution weights a percentage return and clamps the result
// symmetrically: positive contributions are capped at +cap, negative
// ones at -cap. A positive value is never clamped to a negative bound
// or vice versa.
func cappedContribution(ret float64, f strategyconfig.ReturnFactor) float64 {
	contribution := ret * f.Weight
	if contribution > 0 {
		return math.Min(contribution, f.Cap)
	}
	return math.Max(contribution, -f.Cap)
}

// rsiContribution applies the RSI zone rule. Zones are disjoint, so at
// most one branch fires.
func (e *Engine) rsiContribution(rsi float64) float64 {
	zones := e.cfg.RSI
	switch {
	case rsi >= zones.NeutralLow && rsi <= zones.NeutralHigh:
		return zones.NeutralBonus
	case rsi > zones.Overbought:
		return -zones.OverboughtPenalty
	case rsi < zones.Oversold:
		return zones.OversoldBonus
	default:
		return 0
	}
}

// volumeContribution rewards above-average volume and penalizes
// below-average volume.
func (e *Engine) volumeContribution(ratio float64) float64 {
	rule := e.cfg.Volume
	switch {
	case ratio > rule.HighRatio:
		return rule.Bonus
	case ratio < rule.LowRatio:
		return -rule.Penalty
	default:
		return 0
	}
}
