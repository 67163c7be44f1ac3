package universe

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/momentum/pkg/config"
	"github.com/wonny/momentum/pkg/httputil"
	"github.com/wonny/momentum/pkg/logger"
)

// Wikipedia scrapes the S&P 500 constituents table. On any failure it
// falls back to the static list so a flaky page never empties a run.
type Wikipedia struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	url        string
	max        int
}

// NewWikipedia creates a Wikipedia-backed universe provider.
func NewWikipedia(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Wikipedia {
	return &Wikipedia{
		httpClient: httpClient,
		logger:     log,
		url:        cfg.Universe.WikipediaURL,
		max:        cfg.Universe.MaxTickers,
	}
}

// Tickers scrapes the constituents table and returns the symbols in
// page order.
func (w *Wikipedia) Tickers(ctx context.Context) ([]string, error) {
	symbols, err := w.scrape(ctx)
	if err != nil {
		w.logger.WithError(err).Warn("Constituents scrape failed, falling back to static universe")
		return NewStatic(w.max).Tickers(ctx)
	}

	return limit(symbols, w.max), nil
}

// scrape fetches and parses the constituents page.
func (w *Wikipedia) scrape(ctx context.Context) ([]string, error) {
	resp, err := w.httpClient.Get(ctx, w.url)
	if err != nil {
		return nil, fmt.Errorf("fetch constituents page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("constituents page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse constituents page: %w", err)
	}

	symbols := make([]string, 0, 500)
	doc.Find("table#constituents tbody tr").Each(func(i int, row *goquery.Selection) {
		cell := row.Find("td").First()
		symbol := strings.TrimSpace(cell.Text())
		if symbol == "" {
			return // header row
		}
		symbols = append(symbols, normalizeSymbol(symbol))
	})

	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbols found in constituents table")
	}

	w.logger.WithField("count", len(symbols)).Info("Scraped constituents table")
	return symbols, nil
}

// normalizeSymbol converts share-class dots to the dash form the chart
// API expects (BRK.B -> BRK-B).
func normalizeSymbol(symbol string) string {
	return strings.ReplaceAll(symbol, ".", "-")
}
