package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"angertrack/internal/config"
	"angertrack/internal/daydetail"
	"angertrack/internal/history"
	"angertrack/internal/http"
	"angertrack/internal/service"
	"angertrack/internal/stats"
	"angertrack/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx := context.Background()
	clock := time.Now
	stores := service.NewStores(db)

	tracker := service.NewTracker(db, stores, clock)
	if err := tracker.Initialize(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	engine := stats.NewEngine(stores.Entries,
		stats.WithLocation(cfg.Location),
		stats.WithClock(clock),
		stats.WithLocale(cfg.Locale),
	)
	resolver := daydetail.NewResolver(stores.Entries, stores.Notes, engine.Location())
	navigator := history.New(engine, resolver, engine.Locale(), engine.Now)
	slog.Info("Aggregation engine ready", "timezone", engine.Location().String(), "locale", engine.Locale().Code)

	// Create router with dependencies
	router := http.NewRouter(&http.Deps{
		DB:        db,
		Tracker:   tracker,
		Engine:    engine,
		Resolver:  resolver,
		Navigator: navigator,
		Locale:    engine.Locale(),
		Location:  engine.Location(),
	})

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Starting API server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
