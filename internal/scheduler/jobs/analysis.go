// Package jobs holds the scheduled job implementations.
package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/momentum/internal/contracts"
	"github.com/wonny/momentum/internal/report"
	"github.com/wonny/momentum/pkg/logger"
)

// Runner executes one full analysis pass.
type Runner interface {
	Run(ctx context.Context) (*contracts.Recommendations, error)
}

// AnalysisJob runs the momentum analysis on schedule and prints the
// recommendation report.
type AnalysisJob struct {
	runner  Runner
	printer *report.Printer
	logger  *logger.Logger
}

// NewAnalysisJob creates a new analysis job
func NewAnalysisJob(runner Runner, printer *report.Printer, log *logger.Logger) *AnalysisJob {
	return &AnalysisJob{
		runner:  runner,
		printer: printer,
		logger:  log,
	}
}

// Name returns the job name
func (j *AnalysisJob) Name() string {
	return "momentum_analysis"
}

// Schedule runs weekdays at 5 PM, after the US market close.
func (j *AnalysisJob) Schedule() string {
	return "0 0 17 * * 1-5"
}

// Run executes the analysis job
func (j *AnalysisJob) Run(ctx context.Context) error {
	recs, err := j.runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("analysis run: %w", err)
	}

	if recs.Empty() {
		j.logger.Warn("Analysis produced no recommendations")
		return nil
	}

	j.printer.Print(recs)

	j.logger.WithFields(map[string]interface{}{
		"buys":  len(recs.Buys),
		"sells": len(recs.Sells),
	}).Info("Scheduled analysis completed")

	return nil
}
