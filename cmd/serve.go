package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"adchain/internal/adapter/apiclient"
	httpadapter "adchain/internal/adapter/http"
	"adchain/internal/adapter/listadapter"
	"adchain/internal/adapter/loader"
	"adchain/internal/adapter/postgres"
	"adchain/internal/adapter/tracker"
	"adchain/internal/adapter/usecase"
	"adchain/internal/config"
	"adchain/internal/core/domain"
	"adchain/internal/core/port"
	"adchain/internal/db"
	"adchain/internal/metrics"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and ad preloading",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

// serve wires the application, starts the HTTP server and preloading, and
// blocks until SIGINT or SIGTERM. It then shuts everything down gracefully.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	client := apiclient.New(cfg.AdServer)
	events := postgres.NewEventRepository(pool)
	reporter := tracker.MultiReporter{client, events}
	newTracker := func() *tracker.Tracker {
		tr := tracker.New(reporter, client, m, logger)
		tr.Timeout = cfg.Ads.TrackTimeout
		return tr
	}

	// sessions report engagement through their own trackers
	ads := loader.New(client, nil, loader.Config{
		TTL:            cfg.Ads.CacheTTL,
		PreloadSpacing: cfg.Ads.PreloadSpacing,
		Shards:         cfg.Ads.CacheShards,
		FetchTimeout:   cfg.AdServer.Timeout,
	}, m, logger)
	defer ads.Destroy()

	plan, err := preloadPlan(cfg)
	if err != nil {
		return err
	}
	ads.StartPreloading(ctx, plan, cfg.Ads.PreloadInterval)

	placement := listadapter.Config{
		UnitID:          cfg.Ads.UnitID,
		AdInterval:      cfg.Ads.Interval,
		FirstAdPosition: cfg.Ads.FirstPosition,
		PreloadCount:    cfg.Ads.PreloadCount,
		AdSize:          domain.Size{Width: cfg.Ads.SlotWidth, Height: cfg.Ads.SlotHeight},
		DefaultItemSize: domain.Size{Width: cfg.Ads.ItemWidth, Height: cfg.Ads.ItemHeight},
	}
	svc := usecase.NewFeedUseCase(
		postgres.NewFeedRepository(pool),
		events,
		ads,
		func() port.AdTracker { return newTracker() },
		placement,
		logger,
	)

	handler := httpadapter.NewHandler(svc, metrics.Handler(registry), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	}

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}

	ads.StopPreloading()
	svc.Shutdown()
	return nil
}

// preloadPlan returns the configured preload plan, or a single request for
// the feed unit when no plan file is set.
func preloadPlan(cfg config.Config) ([]domain.AdRequest, error) {
	if cfg.Ads.PreloadFile == "" {
		return []domain.AdRequest{{UnitID: cfg.Ads.UnitID, Count: cfg.Ads.PreloadCount}}, nil
	}
	return config.LoadPreloadPlan(cfg.Ads.PreloadFile)
}
