package commands

import (
	"fmt"

	"github.com/wonny/momentum/internal/analyzer"
	"github.com/wonny/momentum/internal/indicator"
	"github.com/wonny/momentum/internal/marketdata"
	"github.com/wonny/momentum/internal/ranking"
	"github.com/wonny/momentum/internal/scoring"
	"github.com/wonny/momentum/internal/strategyconfig"
	"github.com/wonny/momentum/internal/universe"
	"github.com/wonny/momentum/pkg/config"
	"github.com/wonny/momentum/pkg/httputil"
	"github.com/wonny/momentum/pkg/logger"
	"github.com/wonny/momentum/pkg/redis"
)

// app holds the wired dependency graph shared by all commands.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	redis    *redis.Client
	universe universe.Provider
	analyzer *analyzer.Analyzer
}

// newApp loads configuration and wires the full pipeline:
// config -> logger -> redis -> http -> providers -> engines -> analyzer.
// Command flags override loaded config values through the overrides,
// never through the environment.
func newApp(overrides ...func(*config.Config)) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	for _, override := range overrides {
		override(cfg)
	}

	log := logger.New(cfg)

	rdb, err := redis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	httpClient := httputil.NewWithTimeout(log, cfg.Yahoo.Timeout)
	if rdb.Enabled() {
		// Shared sliding-window limit on top of the local pacer, for
		// multi-instance deployments.
		httpClient.WithRateLimiter(redis.NewRateLimiter(rdb, "momentum"), redis.YahooRateLimit)
	}

	univ := universe.FromConfig(cfg, httpClient, log)

	var md marketdata.Provider = marketdata.NewYahooClient(cfg, httpClient, log)
	if cfg.Yahoo.CacheEnabled && rdb.Enabled() {
		md = marketdata.NewCachedProvider(md, redis.NewCache(rdb, "momentum"), cfg.Yahoo.CacheTTL, log)
	}

	strategy, err := loadStrategy(cfg, log)
	if err != nil {
		return nil, err
	}

	anl := analyzer.New(
		univ,
		md,
		indicator.NewEngine(log),
		scoring.NewEngine(strategy.Scoring),
		ranking.NewEngine(strategy.Screening, log),
		analyzer.Options{
			Concurrency: cfg.Analyzer.Concurrency,
			TopN:        cfg.Analyzer.TopN,
		},
		log,
	)

	return &app{
		cfg:      cfg,
		log:      log,
		redis:    rdb,
		universe: univ,
		analyzer: anl,
	}, nil
}

// loadStrategy returns the built-in strategy unless a YAML override is
// configured. The hash is logged so runs can be traced to an exact
// parameter set.
func loadStrategy(cfg *config.Config, log *logger.Logger) (*strategyconfig.Config, error) {
	if cfg.Analyzer.StrategyFile == "" {
		return strategyconfig.Default(), nil
	}

	strategy, err := strategyconfig.Load(cfg.Analyzer.StrategyFile)
	if err != nil {
		return nil, fmt.Errorf("load strategy %s: %w", cfg.Analyzer.StrategyFile, err)
	}

	hash, err := strategyconfig.Hash(strategy)
	if err != nil {
		return nil, fmt.Errorf("hash strategy: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"file": cfg.Analyzer.StrategyFile,
		"hash": hash[:12],
	}).Info("Loaded strategy override")

	return strategy, nil
}

// close releases shared resources.
func (a *app) close() {
	if err := a.redis.Close(); err != nil {
		a.log.WithError(err).Warn("Failed to close redis client")
	}
}
