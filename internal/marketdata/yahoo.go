package marketdata

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/pkg/config"
	"github.com/wonny/momentum/pkg/httputil"
	"github.com/wonny/momentum/pkg/logger"
)

// YahooClient fetches daily bars from the Yahoo Finance chart API.
// Requests are paced with a local rate limiter so a 100-ticker run
// does not hammer the endpoint.
type YahooClient struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	limiter    *rate.Limiter
	baseURL    string
	chartRange string
	interval   string
}

// NewYahooClient creates a new Yahoo chart API client.
func NewYahooClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *YahooClient {
	perSec := cfg.Yahoo.RatePerSec
	if perSec <= 0 {
		perSec = 5
	}

	return &YahooClient{
		httpClient: httpClient,
		logger:     log,
		limiter:    rate.NewLimiter(rate.Limit(perSec), 1),
		baseURL:    cfg.Yahoo.BaseURL,
		chartRange: cfg.Yahoo.Range,
		interval:   cfg.Yahoo.Interval,
	}
}

// chartResponse is the response structure of the chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch retrieves the daily series for a ticker. Any failure surfaces
// as ErrUnavailable; the caller skips the ticker.
func (c *YahooClient) Fetch(ctx context.Context, ticker string) (*contracts.TimeSeries, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	chartURL := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		c.baseURL, url.PathEscape(ticker), c.interval, c.chartRange)

	var chart chartResponse
	if err := c.httpClient.GetJSON(ctx, chartURL, &chart); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, ticker, err)
	}

	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrUnavailable, ticker, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("%w: %s: empty result", ErrUnavailable, ticker)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: %s: no quote data", ErrUnavailable, ticker)
	}
	quote := result.Indicators.Quote[0]

	bars := make([]contracts.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// Bars with a missing close are unusable; skip them rather
		// than fabricating a price.
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}

		bar := contracts.Bar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			bar.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			bar.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			bar.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s: no usable bars", ErrUnavailable, ticker)
	}

	sort.Slice(bars, func(i, j int) bool {
		return bars[i].Date.Before(bars[j].Date)
	})

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"bars":   len(bars),
		"range":  c.chartRange,
	}).Debug("Fetched price series")

	return &contracts.TimeSeries{Ticker: ticker, Bars: bars}, nil
}

// Period returns the configured lookback range description.
func (c *YahooClient) Period() string {
	return c.chartRange
}
