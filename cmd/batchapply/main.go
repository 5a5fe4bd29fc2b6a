// batchapply applies extracted data for every eligible document of a
// case and exits. Usage: batchapply <case-id-uuid>
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/internal/common"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/pipeline"
	"github.com/kamil-urbanek/docpipe/internal/repository/entdb"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "batchapply <case-id-uuid>")
		os.Exit(2)
	}
	caseID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid case id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
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

	docs := entdb.NewDocumentRepository(entc, logger)
	logs := entdb.NewProcessingLogRepository(entc, logger)
	forms := entdb.NewFormRepository(entc, logger)

	applier := pipeline.NewApplier(docs, forms, logs, nil, logger)
	batchApplier := pipeline.NewBatchApplier(docs, applier, pipeline.WorkerConfig{
		BatchSize:  cfg.Pipeline.BatchSize,
		BatchPause: cfg.Pipeline.BatchPause,
	}, logger)

	res, err := batchApplier.BatchApply(ctx, caseID)
	if err != nil {
		logger.Error("batch apply failed", "case_id", caseID, "error", err)
		os.Exit(1)
	}

	logger.Info("batch apply finished",
		"case_id", caseID, "outcome", string(res.Outcome), "message", res.Message,
		"eligible", res.Eligible, "applied", res.Applied, "conflicted", res.Conflicted, "failed", res.Failed)
	for _, e := range res.Errors {
		logger.Error("document failed to apply", "document_id", e.DocumentID, "error", e.Message)
	}
	if res.Outcome == entity.BatchFailureDominant {
		os.Exit(3)
	}
}
