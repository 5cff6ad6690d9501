package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sage-agent/sage/internal/api"
	"github.com/sage-agent/sage/internal/config"
	"github.com/sage-agent/sage/internal/events"
	"github.com/sage-agent/sage/internal/knowledge"
	"github.com/sage-agent/sage/internal/pipeline"
	"github.com/sage-agent/sage/internal/provider"
	"github.com/sage-agent/sage/internal/session"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("sage starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Knowledge store — Postgres when configured, flat CSV otherwise.
	var repo knowledge.Repository
	if cfg.DatabaseURL != "" {
		pg, err := knowledge.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		repo = pg
		slog.Info("knowledge store ready", "backend", "postgres")
	} else {
		repo = knowledge.NewCSV(cfg.DataFile)
		slog.Info("knowledge store ready", "backend", "csv", "path", cfg.DataFile)
	}

	// External knowledge providers.
	ddg := provider.NewDuckDuckGo(cfg.DuckDuckGoURL)
	wiki := provider.NewWikipedia(cfg.WikipediaAPIURL)
	router := provider.NewRouter(ddg, wiki, slog.Default())

	// NATS publisher (optional — sage answers fine without an event bus).
	var publisher pipeline.Publisher
	if cfg.NatsURL != "" {
		pub, err := events.NewPublisher(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		publisher = pub
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured — running without answer events")
	}

	// Pipeline — the question-answering core.
	pipe := pipeline.New(repo, router, publisher, cfg.MatchThreshold, slog.Default())

	// Sessions and HTTP API.
	sessions := session.NewStore(time.Duration(cfg.SessionTTLHours) * time.Hour)
	srv := api.NewServer(cfg.Port, pipe, sessions, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("sage ready", "port", cfg.Port, "threshold", cfg.MatchThreshold)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("sage stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
