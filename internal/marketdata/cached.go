package marketdata

import (
	"context"
	"time"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/pkg/logger"
	"github.com/wonny/momentum/pkg/redis"
)

// CachedProvider caches fetched series in Redis so repeated runs within
// one trading day reuse the provider's raw bars. Only bars are cached,
// never derived indicators or scores.
type CachedProvider struct {
	inner  Provider
	cache  *redis.Cache
	logger *logger.Logger
	ttl    time.Duration
}

// NewCachedProvider wraps a provider with a Redis series cache.
func NewCachedProvider(inner Provider, cache *redis.Cache, ttl time.Duration, log *logger.Logger) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		cache:  cache,
		logger: log,
		ttl:    ttl,
	}
}

// Fetch returns the cached series when present, otherwise fetches and
// caches. Cache failures degrade to a plain fetch.
func (p *CachedProvider) Fetch(ctx context.Context, ticker string) (*contracts.TimeSeries, error) {
	key := p.cacheKey(ticker)

	var cached contracts.TimeSeries
	found, err := p.cache.Get(ctx, key, &cached)
	if err != nil {
		p.logger.WithError(err).Warn("Series cache read failed")
	}
	if found && len(cached.Bars) > 0 {
		p.logger.WithField("ticker", ticker).Debug("Series cache hit")
		return &cached, nil
	}

	series, err := p.inner.Fetch(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, series, p.ttl); err != nil {
		p.logger.WithError(err).Warn("Series cache write failed")
	}

	return series, nil
}

// Period returns the inner provider's lookback description.
func (p *CachedProvider) Period() string {
	return p.inner.Period()
}

func (p *CachedProvider) cacheKey(ticker string) string {
	return "series:" + p.Period() + ":" + ticker
}
