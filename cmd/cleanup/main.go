// Command cleanup removes cached upstream responses older than the configured
// persistent TTL. It is intended to be invoked by an external cron job, not
// as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordexplorer/internal/adapter/postgres"
	"github.com/heartmarshall/wordexplorer/internal/adapter/postgres/sourcecache"
	"github.com/heartmarshall/wordexplorer/internal/app"
	"github.com/heartmarshall/wordexplorer/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Database.Enabled() {
		logger.Info("database not configured, nothing to clean up")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := sourcecache.New(pool)

	threshold := time.Now().Add(-cfg.Cache.PersistentTTL)

	deleted, err := repo.DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("source cache cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	remaining, err := repo.Count(ctx)
	if err != nil {
		logger.Warn("count remaining entries", slog.String("error", err.Error()))
	}

	logger.Info("source cache cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Int64("remaining", remaining),
		slog.Time("threshold", threshold),
	)
}
