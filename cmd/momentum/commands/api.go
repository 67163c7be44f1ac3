package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/momentum/internal/api"
	"github.com/wonny/momentum/internal/api/handlers"
	"github.com/wonny/momentum/pkg/config"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the REST API server",
	Long: `Starts the HTTP API server.

Endpoints:
  GET /health                      - Health check
  GET /api/recommendations         - Run analysis, return ranked lists
  GET /api/recommendations?top_n=3 - Trim both lists to 3
  GET /api/universe                - Current analysis universe

Example:
  go run ./cmd/momentum api
  go run ./cmd/momentum api --port 8090`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	a, err := newApp(func(cfg *config.Config) {
		if apiPort != "" {
			cfg.Port = apiPort
		}
	})
	if err != nil {
		return err
	}
	defer a.close()

	router := api.NewRouter(
		handlers.NewAnalysisHandler(a.analyzer, a.log),
		handlers.NewUniverseHandler(a.universe, a.log),
		a.log,
	)
	server := api.New(a.cfg, a.log, router)

	go func() {
		if err := server.Start(); err != nil {
			a.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", a.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
