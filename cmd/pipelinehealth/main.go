// pipelinehealth prints the pipeline diagnostics snapshot and exits
// non-zero when the pipeline looks unhealthy. Meant for probes and
// on-call spot checks.
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
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

	if err := entdb.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("database health: FAIL", "error", err)
		os.Exit(1)
	}

	docs := entdb.NewDocumentRepository(entc, logger)
	logs := entdb.NewProcessingLogRepository(entc, logger)
	reporter := pipeline.NewReporter(docs, logs, cfg.Pipeline.StuckThreshold, nil, logger)

	d, err := reporter.Diagnostics(ctx)
	if err != nil {
		logger.Error("diagnostics failed", "error", err)
		os.Exit(1)
	}

	terminal := 0
	for _, n := range d.TerminalCounts {
		terminal += n
	}
	logger.Info("pipeline health",
		"queue_depth", d.QueueDepth,
		"processing", d.ProcessingCount,
		"stuck", d.StuckCount,
		"overdue_retries", len(d.OverdueRetries),
		"terminal", terminal,
		"recent_failures", len(d.RecentFailures))
	for _, doc := range d.OverdueRetries {
		logger.Warn("overdue retry", "document_id", doc.ID, "retry_count", doc.RetryCount, "next_retry_at", doc.NextRetryAt)
	}
	for _, doc := range d.TerminalDocuments {
		logger.Warn("terminal document", "document_id", doc.ID, "status", doc.OCRStatus, "retry_count", doc.RetryCount)
	}

	if d.StuckCount > 0 || len(d.OverdueRetries) > 0 {
		os.Exit(3)
	}
}
