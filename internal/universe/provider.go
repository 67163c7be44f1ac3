package universe

import (
	"context"

	"github.com/wonny/momentum/pkg/config"
	"github.com/wonny/momentum/pkg/httputil"
	"github.com/wonny/momentum/pkg/logger"
)

// Provider supplies the ordered set of ticker symbols to analyze.
// Deduplication is not guaranteed; duplicate symbols are processed
// twice downstream.
type Provider interface {
	Tickers(ctx context.Context) ([]string, error)
}

// FromConfig builds the configured universe provider.
func FromConfig(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) Provider {
	switch cfg.Universe.Source {
	case "wikipedia":
		return NewWikipedia(cfg, httpClient, log)
	default:
		return NewStatic(cfg.Universe.MaxTickers)
	}
}

// limit truncates a symbol list to max entries; max <= 0 means no limit.
func limit(symbols []string, max int) []string {
	if max > 0 && len(symbols) > max {
		return symbols[:max]
	}
	return symbols
}
