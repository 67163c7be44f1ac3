package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// universeCmd represents the universe command
var universeCmd = &cobra.Command{
	Use:   "universe",
	Short: "Print the ticker universe the analyzer would process",
	Long: `Resolves the configured ticker universe (static list or live
Wikipedia S&P 500 constituents) and prints it.

Example:
  go run ./cmd/momentum universe
  UNIVERSE_SOURCE=wikipedia go run ./cmd/momentum universe`,
	RunE: runUniverse,
}

func init() {
	rootCmd.AddCommand(universeCmd)
}

func runUniverse(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	tickers, err := a.universe.Tickers(context.Background())
	if err != nil {
		return fmt.Errorf("resolve universe: %w", err)
	}

	fmt.Printf("Universe (%s): %d tickers\n", a.cfg.Universe.Source, len(tickers))
	for _, t := range tickers {
		fmt.Println(t)
	}

	return nil
}
