package marketdata

import (
	"context"
	"errors"

	"github.com/wonny/momentum/internal/contracts"
)

// ErrUnavailable signals that no usable series exists for a ticker:
// provider error, unknown symbol, or an empty result. Callers skip the
// ticker; a partial or corrupt series is never returned.
var ErrUnavailable = errors.New("market data unavailable")

// Provider fetches the daily price history for one ticker.
type Provider interface {
	// Fetch returns the daily series over the configured lookback
	// range, or an error wrapping ErrUnavailable.
	Fetch(ctx context.Context, ticker string) (*contracts.TimeSeries, error)

	// Period describes the lookback range for run metadata, e.g. "6mo".
	Period() string
}
