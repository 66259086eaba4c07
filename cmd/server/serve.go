package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"zoo/internal/platform/httpserver"
	"zoo/internal/platform/postgres"
	"zoo/internal/scheduler"
	httptransport "zoo/internal/transport/http"
	"zoo/internal/transport/line"
)

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the line protocol server, the ops HTTP server and the batch scan schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before serving")
	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close(context.WithoutCancel(ctx))

	if migrate {
		if err := postgres.Migrate(ctx, a.pool); err != nil {
			return err
		}
	}

	handler := line.NewHandler(line.Services{
		Sessions:     a.auth,
		Ledger:       a.ledger,
		Observations: a.observations,
		Anomalies:    a.anomalies,
		Corrections:  a.corrections,
		Shifts:       a.shifts,
	}, line.WithLogger(log), line.WithMetrics(a.metrics))
	lineServer := line.NewServer(handler,
		line.WithServerLogger(log),
		line.WithServerMetrics(a.metrics),
		line.WithIdleTimeout(cfg.Server.IdleTimeout),
	)

	router := httptransport.NewRouter(httptransport.Config{
		Reports:       reports{ledger: a.ledger, anomalies: a.anomalies, corrections: a.corrections},
		Authenticator: a.auth,
		Checks:        a.healthChecks(),
		Metrics:       promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}),
		Logger:        log,
	})
	opsServer := httpserver.New(cfg.Server.OpsAddr, router)

	sched, err := scheduler.New(a.anomalies, cfg.Anomaly, scheduler.WithLogger(log))
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "starting zoo ledger",
		"line_addr", cfg.Server.LineAddr,
		"ops_addr", cfg.Server.OpsAddr,
		"environment", cfg.Environment,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return lineServer.ListenAndServe(gctx, cfg.Server.LineAddr)
	})
	g.Go(func() error {
		return httpserver.Run(gctx, opsServer, cfg.Server.ShutdownTimeout)
	})
	g.Go(func() error {
		return sched.Run(gctx)
	})
	err = g.Wait()
	log.InfoContext(ctx, "zoo ledger stopped", "error", err)
	return err
}
