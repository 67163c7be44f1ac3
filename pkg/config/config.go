package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Redis (series cache + provider rate limiting, optional)
	Redis RedisConfig

	// Market data provider
	Yahoo YahooConfig

	// Ticker universe
	Universe UniverseConfig

	// Analysis run
	Analyzer AnalyzerConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// YahooConfig holds Yahoo Finance chart API configuration.
type YahooConfig struct {
	BaseURL      string
	Range        string        // chart range, e.g. "6mo"
	Interval     string        // bar interval, e.g. "1d"
	Timeout      time.Duration // per-request timeout
	RatePerSec   float64       // request pacing
	CacheTTL     time.Duration // fetched series cache TTL
	CacheEnabled bool
}

// UniverseConfig holds ticker universe configuration.
type UniverseConfig struct {
	Source       string // "static" or "wikipedia"
	WikipediaURL string
	MaxTickers   int // 0 = no limit
}

// AnalyzerConfig holds pipeline configuration.
type AnalyzerConfig struct {
	Concurrency  int    // parallel fetch+score workers
	TopN         int    // recommendations per side
	StrategyFile string // optional YAML strategy override
}

// Load reads configuration from environment variables.
// This is the only function that calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		Yahoo: YahooConfig{
			BaseURL:      getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
			Range:        getEnv("YAHOO_RANGE", "6mo"),
			Interval:     getEnv("YAHOO_INTERVAL", "1d"),
			Timeout:      getEnvAsDuration("YAHOO_TIMEOUT", "30s"),
			RatePerSec:   getEnvAsFloat("YAHOO_RATE_PER_SEC", 5),
			CacheTTL:     getEnvAsDuration("YAHOO_CACHE_TTL", "4h"),
			CacheEnabled: getEnvAsBool("YAHOO_CACHE_ENABLED", true),
		},

		Universe: UniverseConfig{
			Source:       getEnv("UNIVERSE_SOURCE", "static"),
			WikipediaURL: getEnv("UNIVERSE_WIKIPEDIA_URL", "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"),
			MaxTickers:   getEnvAsInt("UNIVERSE_MAX_TICKERS", 100),
		},

		Analyzer: AnalyzerConfig{
			Concurrency:  getEnvAsInt("ANALYZER_CONCURRENCY", 4),
			TopN:         getEnvAsInt("ANALYZER_TOP_N", 5),
			StrategyFile: getEnv("STRATEGY_FILE", ""),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Universe.Source != "static" && c.Universe.Source != "wikipedia" {
		return fmt.Errorf("UNIVERSE_SOURCE must be one of: static, wikipedia")
	}

	if c.Analyzer.Concurrency < 1 {
		return fmt.Errorf("ANALYZER_CONCURRENCY must be >= 1")
	}

	if c.Analyzer.TopN < 1 {
		return fmt.Errorf("ANALYZER_TOP_N must be >= 1")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations.
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
