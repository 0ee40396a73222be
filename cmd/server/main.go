package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/splitzee/splitzee/internal/auth"
	"github.com/splitzee/splitzee/internal/config"
	"github.com/splitzee/splitzee/internal/metrics"
	"github.com/splitzee/splitzee/internal/recurring"
	"github.com/splitzee/splitzee/internal/server"
	"github.com/splitzee/splitzee/internal/service"
	"github.com/splitzee/splitzee/internal/storage/sqlite"
	"github.com/splitzee/splitzee/pkg/logging"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped gracefully")
}

func run(cfg *config.Config) error {
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	router := server.NewRouter(server.Services{
		Split:    service.NewSplitService(m),
		Currency: service.NewCurrencyService(),
		Expense:  service.NewExpenseService(store),
		Auth:     service.NewAuthService(authenticator, tokens, store, slog.Default()),
	}, server.Options{
		Tokens:     tokens,
		Metrics:    m,
		Gatherer:   reg,
		StaticDir:  cfg.StaticPath,
		CORSOrigin: cfg.CORSOrigin,
	})
	srv := server.New(cfg.Addr(), router)

	scheduler, err := recurring.NewScheduler(recurring.NewProcessor(store, m), cfg.RecurringSchedule)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return scheduler.Run(ctx)
	})
	return g.Wait()
}
