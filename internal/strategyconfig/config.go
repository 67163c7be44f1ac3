package strategyconfig

// Config is the full strategy definition: how indicators are scored
// into the composite, and how scored stocks are screened and ranked.
type Config struct {
	Meta      Meta      `yaml:"meta" json:"meta"`
	Scoring   Scoring   `yaml:"scoring" json:"scoring"`
	Screening Screening `yaml:"screening" json:"screening"`
	Ranking   Ranking   `yaml:"ranking" json:"ranking"`
}

// Meta identifies the strategy
type Meta struct {
	StrategyID string `yaml:"strategy_id" json:"strategy_id"`
	Version    string `yaml:"version" json:"version"`
}

// Scoring defines the composite momentum score factors
type Scoring struct {
	Returns ReturnFactors `yaml:"returns" json:"returns"`
	RSI     RSIZones      `yaml:"rsi" json:"rsi"`
	Volume  VolumeRule    `yaml:"volume" json:"volume"`
	Trend   TrendRule     `yaml:"trend" json:"trend"`
}

// ReturnFactor is one weighted, capped return contribution.
// The contribution is return * weight, clamped symmetrically to
// [-cap, +cap] without ever flipping sign.
type ReturnFactor struct {
	Weight float64 `yaml:"weight" json:"weight"`
	Cap    float64 `yaml:"cap" json:"cap"`
}

// ReturnFactors holds the three lookback horizons
type ReturnFactors struct {
	Week    ReturnFactor `yaml:"week" json:"week"`       // 1-week return (5 bars)
	Month   ReturnFactor `yaml:"month" json:"month"`     // 1-month return (20 bars)
	Quarter ReturnFactor `yaml:"quarter" json:"quarter"` // 3-month return (60 bars)
}

// RSIZones defines the RSI tier contributions. Zones are disjoint by
// construction: [neutral_low, neutral_high], > overbought, < oversold.
type RSIZones struct {
	NeutralLow        float64 `yaml:"neutral_low" json:"neutral_low"`
	NeutralHigh       float64 `yaml:"neutral_high" json:"neutral_high"`
	Overbought        float64 `yaml:"overbought" json:"overbought"`
	Oversold          float64 `yaml:"oversold" json:"oversold"`
	NeutralBonus      float64 `yaml:"neutral_bonus" json:"neutral_bonus"`
	OverboughtPenalty float64 `yaml:"overbought_penalty" json:"overbought_penalty"`
	OversoldBonus     float64 `yaml:"oversold_bonus" json:"oversold_bonus"`
}

// VolumeRule defines the volume confirmation contribution
type VolumeRule struct {
	HighRatio float64 `yaml:"high_ratio" json:"high_ratio"` // above this: bonus
	LowRatio  float64 `yaml:"low_ratio" json:"low_ratio"`   // below this: penalty
	Bonus     float64 `yaml:"bonus" json:"bonus"`
	Penalty   float64 `yaml:"penalty" json:"penalty"`
}

// TrendRule defines the price-vs-moving-average contributions
type TrendRule struct {
	AboveSMA20Bonus float64 `yaml:"above_sma20_bonus" json:"above_sma20_bonus"`
	AboveSMA50Bonus float64 `yaml:"above_sma50_bonus" json:"above_sma50_bonus"`
}

// Screening is the risk screen applied before ranking. It excludes
// penny stocks and abnormally volatile instruments from the
// recommendation lists; filtered-out stocks are not errors.
type Screening struct {
	MaxVolatilityPct float64 `yaml:"max_volatility_pct" json:"max_volatility_pct"`
	MinPrice         float64 `yaml:"min_price" json:"min_price"`
}

// Ranking controls the size of the output lists
type Ranking struct {
	TopN int `yaml:"top_n" json:"top_n"`
}

// Default returns the reference strategy configuration.
func Default() *Config {
	return &Config{
		Meta: Meta{
			StrategyID: "us_equity_momentum_v1",
			Version:    "1.0",
		},
		Scoring: Scoring{
			Returns: ReturnFactors{
				Week:    ReturnFactor{Weight: 2.0, Cap: 20},
				Month:   ReturnFactor{Weight: 1.5, Cap: 15},
				Quarter: ReturnFactor{Weight: 1.0, Cap: 10},
			},
			RSI: RSIZones{
				NeutralLow:        30,
				NeutralHigh:       70,
				Overbought:        80,
				Oversold:          20,
				NeutralBonus:      5,
				OverboughtPenalty: 10,
				OversoldBonus:     10,
			},
			Volume: VolumeRule{
				HighRatio: 1.2,
				LowRatio:  0.8,
				Bonus:     5,
				Penalty:   5,
			},
			Trend: TrendRule{
				AboveSMA20Bonus: 3,
				AboveSMA50Bonus: 2,
			},
		},
		Screening: Screening{
			MaxVolatilityPct: 50,
			MinPrice:         5,
		},
		Ranking: Ranking{
			TopN: 5,
		},
	}
}
