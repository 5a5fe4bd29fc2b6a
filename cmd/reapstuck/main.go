// reapstuck resets documents stuck in processing and exits.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/kamil-urbanek/docpipe/internal/common"
	"github.com/kamil-urbanek/docpipe/internal/pipeline"
	"github.com/kamil-urbanek/docpipe/internal/repository/entdb"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := entdb.Open(ctx, entdb.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer entdb.Close(entc, pool, logger)

	docs := entdb.NewDocumentRepository(entc, logger)
	logs := entdb.NewProcessingLogRepository(entc, logger)
	policy := pipeline.BackoffPolicy{
		MaxRetries: cfg.Pipeline.MaxRetries,
		BaseDelay:  cfg.Pipeline.RetryBaseDelay,
		Factor:     cfg.Pipeline.RetryBackoffFactor,
	}

	reaper := pipeline.NewReaper(docs, logs, policy, cfg.Pipeline.StuckThreshold, nil, logger)
	res, err := reaper.ReapStuck(ctx)
	if err != nil {
		logger.Error("reap failed", "error", err)
		os.Exit(1)
	}
	logger.Info("reap finished", "reset", res.Reset, "failed", res.Failed)
}
