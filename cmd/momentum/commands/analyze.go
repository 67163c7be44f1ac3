package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/momentum/internal/report"
	"github.com/wonny/momentum/pkg/config"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis pass and print recommendations",
	Long: `Fetches price history for the configured universe, computes
momentum indicators, scores and ranks every stock, and prints the
buy and sell recommendation lists.

Example:
  go run ./cmd/momentum analyze
  go run ./cmd/momentum analyze --top-n 10`,
	RunE: runAnalyze,
}

var analyzeTopN int

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 0, "recommendations per side (overrides ANALYZER_TOP_N)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := newApp(func(cfg *config.Config) {
		if analyzeTopN > 0 {
			cfg.Analyzer.TopN = analyzeTopN
		}
	})
	if err != nil {
		return err
	}
	defer a.close()

	// Ctrl+C cancels in-flight fetches; completed tickers still rank.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recs, err := a.analyzer.Run(ctx)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report.NewPrinter(os.Stdout).Print(recs)
	return nil
}
