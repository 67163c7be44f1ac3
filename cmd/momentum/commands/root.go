package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "momentum",
	Short: "Stock momentum analysis engine",
	Long: `Momentum analyzes S&P 500 price history, scores each stock on
weighted return, RSI, volume and trend signals, and ranks the
strongest buy and sell candidates.

Usage:
  go run ./cmd/momentum [command]

Examples:
  go run ./cmd/momentum analyze
  go run ./cmd/momentum analyze --top-n 10
  go run ./cmd/momentum api
  go run ./cmd/momentum scheduler
  go run ./cmd/momentum universe`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}
