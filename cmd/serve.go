package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"commissions/internal/api"
	"commissions/internal/api/handler/v1handler"
	"commissions/internal/config"
	"commissions/internal/lifecycle"
	"commissions/internal/scheduler"
	"commissions/pkg/logger"
	"commissions/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupScheduler(ctx context.Context, sched *scheduler.Scheduler) func(ctx context.Context) {
	// the client is stopped explicitly so running jobs can finish
	if err := sched.Start(context.WithoutCancel(ctx)); err != nil {
		logger.Fatal(ctx, "could not start scheduler", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping scheduler...")
		if err := sched.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop scheduler", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server and the payment scheduler",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			pg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			sched, err := scheduler.New(ctx, pg.Pool, pg, scheduler.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create scheduler", zap.Error(err))
			}
			stopScheduler := setupScheduler(ctx, sched)

			stopWebserver := setupServer(context.WithoutCancel(ctx), cfg, api.Deps{
				Deps: v1handler.Deps{
					Lifecycle: lifecycle.New(pg, lifecycle.NewOptions(cfg)),
					Scheduler: sched,
				},
				Queue: sched.Client(),
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopScheduler(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
