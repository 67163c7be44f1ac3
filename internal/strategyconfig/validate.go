package strategyconfig

import "fmt"

// ValidationError marks a strategy config constraint violation.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks all required constraints on a strategy config.
func Validate(cfg *Config) error {
	// === Meta ===
	if cfg.Meta.StrategyID == "" {
		return ValidationError{"meta.strategy_id", "required"}
	}

	// === Scoring: returns ===
	factors := map[string]ReturnFactor{
		"scoring.returns.week":    cfg.Scoring.Returns.Week,
		"scoring.returns.month":   cfg.Scoring.Returns.Month,
		"scoring.returns.quarter": cfg.Scoring.Returns.Quarter,
	}
	for field, f := range factors {
		if f.Weight <= 0 {
			return ValidationError{field + ".weight", "must be > 0"}
		}
		if f.Cap <= 0 {
			return ValidationError{field + ".cap", "must be > 0"}
		}
	}

	// === Scoring: RSI zones must be disjoint ===
	rsi := cfg.Scoring.RSI
	if rsi.Oversold >= rsi.NeutralLow {
		return ValidationError{"scoring.rsi", "oversold must be < neutral_low"}
	}
	if rsi.NeutralLow >= rsi.NeutralHigh {
		return ValidationError{"scoring.rsi", "neutral_low must be < neutral_high"}
	}
	if rsi.NeutralHigh >= rsi.Overbought {
		return ValidationError{"scoring.rsi", "neutral_high must be < overbought"}
	}
	if rsi.Oversold < 0 || rsi.Overbought > 100 {
		return ValidationError{"scoring.rsi", "zones must lie within [0, 100]"}
	}

	// === Scoring: volume thresholds ===
	if cfg.Scoring.Volume.LowRatio >= cfg.Scoring.Volume.HighRatio {
		return ValidationError{"scoring.volume", "low_ratio must be < high_ratio"}
	}
	if cfg.Scoring.Volume.LowRatio <= 0 {
		return ValidationError{"scoring.volume.low_ratio", "must be > 0"}
	}

	// === Screening ===
	if cfg.Screening.MaxVolatilityPct <= 0 {
		return ValidationError{"screening.max_volatility_pct", "must be > 0"}
	}
	if cfg.Screening.MinPrice < 0 {
		return ValidationError{"screening.min_price", "must be >= 0"}
	}

	// === Ranking ===
	if cfg.Ranking.TopN < 1 {
		return ValidationError{"ranking.top_n", "must be >= 1"}
	}

	return nil
}
