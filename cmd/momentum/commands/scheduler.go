package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/momentum/internal/report"
	"github.com/wonny/momentum/internal/scheduler"
	"github.com/wonny/momentum/internal/scheduler/jobs"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run the analysis on a daily schedule",
	Long: `Starts the job scheduler. The analysis job runs weekdays after
the US market close and prints the recommendation report.

Example:
  go run ./cmd/momentum scheduler
  go run ./cmd/momentum scheduler --run-now`,
	RunE: runScheduler,
}

var schedulerRunNow bool

func init() {
	rootCmd.AddCommand(schedulerCmd)

	schedulerCmd.Flags().BoolVar(&schedulerRunNow, "run-now", false, "run the analysis job immediately on startup")
}

func runScheduler(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	sched := scheduler.New(a.log)

	job := jobs.NewAnalysisJob(a.analyzer, report.NewPrinter(os.Stdout), a.log)
	if err := sched.AddJob(job); err != nil {
		return fmt.Errorf("register analysis job: %w", err)
	}

	sched.Start()
	defer sched.Stop()

	if schedulerRunNow {
		if err := sched.RunJob(job.Name()); err != nil {
			return err
		}
	}

	fmt.Println("Scheduler running. Press Ctrl+C to stop")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	return nil
}
