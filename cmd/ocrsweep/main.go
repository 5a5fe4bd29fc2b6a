// ocrsweep runs one worker sweep over the queue and exits. Useful from
// cron or for manual draining.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/kamil-urbanek/docpipe/internal/common"
	"github.com/kamil-urbanek/docpipe/internal/extract"
	"github.com/kamil-urbanek/docpipe/internal/pipeline"
	"github.com/kamil-urbanek/docpipe/internal/repository/entdb"
	"github.com/kamil-urbanek/docpipe/internal/storage"
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := entdb.Open(ctx, entdb.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
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

	store, err := storage.NewGCSStore(ctx, cfg.Storage.Bucket, logger)
	if err != nil {
		logger.Error("failed to open storage bucket", "error", err)
		os.Exit(1)
	}

	var extractor extract.Extractor
	if cfg.Extraction.ProjectID != "" {
		extractor, err = extract.NewVertexExtractor(ctx, cfg.Extraction.ProjectID, cfg.Extraction.Region, cfg.Extraction.Model, logger)
		if err != nil {
			logger.Error("failed to build extractor", "error", err)
			os.Exit(1)
		}
	} else {
		extractor = extract.NewTesseractExtractor(extract.TesseractConfig{TessdataDir: cfg.Extraction.TessdataDir}, logger)
	}

	docs := entdb.NewDocumentRepository(entc, logger)
	logs := entdb.NewProcessingLogRepository(entc, logger)
	policy := pipeline.BackoffPolicy{
		MaxRetries: cfg.Pipeline.MaxRetries,
		BaseDelay:  cfg.Pipeline.RetryBaseDelay,
		Factor:     cfg.Pipeline.RetryBackoffFactor,
	}

	scheduler := pipeline.NewScheduler(docs, logs, policy, logger)
	worker := pipeline.NewWorker(docs, logs, store, extractor, scheduler, pipeline.WorkerConfig{
		BatchSize:  cfg.Pipeline.BatchSize,
		BatchPause: cfg.Pipeline.BatchPause,
		OpTimeout:  cfg.Pipeline.OpTimeout,
	}, nil, logger)

	start := time.Now()
	res, err := worker.RunSweep(ctx)
	if err != nil {
		logger.Error("sweep failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}
	logger.Info("sweep finished",
		"processed", res.Processed, "succeeded", res.Succeeded, "failed", res.Failed,
		"duration_ms", time.Since(start).Milliseconds())
	if res.Failed > 0 {
		os.Exit(3)
	}
}
