package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/internal/indicator"
	"github.com/wonny/momentum/internal/marketdata"
	"github.com/wonny/momentum/pkg/httputil"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <ticker>",
	Short: "Fetch one ticker and print its momentum indicators",
	Long: `Fetches price history for a single ticker and prints the
computed indicator set. Useful for debugging data issues.

Example:
  go run ./cmd/momentum fetch AAPL`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ticker := strings.ToUpper(args[0])
	ctx := context.Background()

	// Bypass the cache so the output reflects the provider directly.
	httpClient := httputil.NewWithTimeout(a.log, a.cfg.Yahoo.Timeout)
	yahoo := marketdata.NewYahooClient(a.cfg, httpClient, a.log)

	series, err := yahoo.Fetch(ctx, ticker)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", ticker, err)
	}

	fmt.Printf("%s: %d bars (%s)\n", ticker, series.Len(), yahoo.Period())

	ind, ok := indicator.NewEngine(a.log).Compute(series)
	if !ok {
		fmt.Printf("Not enough history to compute indicators (need %d bars)\n", contracts.MinAnalyzableBars)
		return nil
	}

	fmt.Printf("  Price:        $%.2f\n", ind.CurrentPrice)
	fmt.Printf("  1W Return:    %.2f%%\n", ind.Returns1W)
	fmt.Printf("  1M Return:    %.2f%%\n", ind.Returns1M)
	fmt.Printf("  3M Return:    %.2f%%\n", ind.Returns3M)
	fmt.Printf("  RSI:          %.1f\n", ind.RSI)
	fmt.Printf("  SMA20:        %.2f\n", ind.SMA20)
	fmt.Printf("  SMA50:        %.2f\n", ind.SMA50)
	fmt.Printf("  Volume Ratio: %.2fx\n", ind.VolumeRatio)
	fmt.Printf("  Volatility:   %.2f%%\n", ind.Volatility)

	return nil
}
