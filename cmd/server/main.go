package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	cookbookhandler "cookbook/internal/cookbook/handler"
	cookbookmetrics "cookbook/internal/cookbook/metrics"
	"cookbook/internal/cookbook/resolver"
	"cookbook/internal/cookbook/seed"
	"cookbook/internal/cookbook/service"
	"cookbook/internal/cookbook/store"
	"cookbook/internal/platform/config"
	"cookbook/internal/platform/httpserver"
	"cookbook/internal/platform/logger"
	"cookbook/internal/platform/metrics"
	httptransport "cookbook/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "cookbook: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := service.New(store.NewInMemory(), resolver.New(resolver.WithMaxExpansion(cfg.MaxExpansion)),
		service.WithLogger(log),
		service.WithMetrics(cookbookmetrics.New(reg)),
		service.WithSummaryCacheTTL(cfg.SummaryCacheTTL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedFile != "" {
		n, err := seed.LoadFile(ctx, cfg.SeedFile, svc)
		if err != nil {
			return fmt.Errorf("load seed: %w", err)
		}
		log.Info("seed loaded", "file", cfg.SeedFile, "entries", n)
	}

	router := httptransport.NewRouter(cookbookhandler.New(svc, log), httptransport.RouterConfig{
		Logger:    log,
		Metrics:   metrics.New(reg),
		Gatherer:  reg,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting cookbook", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}
