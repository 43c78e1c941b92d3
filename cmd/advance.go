package main

import (
	"context"
	"fmt"
	"time"

	"commissions/internal/config"
	"commissions/internal/scheduler"
	"commissions/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// advanceCommand runs the payment scheduler once, either in-process or by
// enqueueing a run for the workers of a running 'serve'.
func advanceCommand(cfg *config.Config) *cobra.Command {
	var enqueue bool

	cmd := &cobra.Command{
		Use:   "advance-payments",
		Short: "Advances placements stalled in PLACED and approves their payment requests",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if enqueue {
				added, err := scheduler.RunNow(ctx, pg, cfg.Scheduler.MaxAttempts)
				if err != nil {
					logger.Fatal(ctx, "could not enqueue scheduler run", zap.Error(err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "enqueued: %t\n", added)

				return
			}

			if cfg.Scheduler.RunTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Scheduler.RunTimeout)
				defer cancel()
			}

			advancer := scheduler.NewAdvancer(pg, scheduler.NewOptions(cfg).Advancer)
			report, err := advancer.Run(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not advance stalled placements", zap.Error(err))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cutoff:   %s\n", report.Cutoff.Format(time.DateOnly))
			fmt.Fprintf(out, "scanned:  %d\n", report.Scanned)
			fmt.Fprintf(out, "advanced: %d\n", report.Advanced)
			fmt.Fprintf(out, "approved: %d\n", report.Approved)
			fmt.Fprintf(out, "failed:   %d\n", report.Failed)
		},
	}
	cmd.Flags().BoolVar(&enqueue, "enqueue", false, "enqueue a run for the serve workers instead of running here")

	return cmd
}
