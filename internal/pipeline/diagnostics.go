package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

const recentFailureLimit = 20

// Reporter produces the read-only pipeline health snapshot: queue depth,
// stuck counts, terminal counts, retry distribution, and overdue retries —
// documents whose scheduled retry time passed without a worker picking
// them up, the primary signal that a trigger failed to fire.
type Reporter struct {
	docs      repository.DocumentRepository
	logs      repository.ProcessingLogRepository
	threshold time.Duration
	metrics   *Metrics
	logger    *slog.Logger
	now       func() time.Time
}

func NewReporter(
	docs repository.DocumentRepository,
	logs repository.ProcessingLogRepository,
	stuckThreshold time.Duration,
	metrics *Metrics,
	logger *slog.Logger,
) *Reporter {
	if stuckThreshold <= 0 {
		stuckThreshold = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{docs: docs, logs: logs, threshold: stuckThreshold, metrics: metrics, logger: logger, now: time.Now}
}

// Diagnostics assembles the current health snapshot. Read-only; safe to
// call at any time.
func (r *Reporter) Diagnostics(ctx context.Context) (*entity.Diagnostics, error) {
	now := r.now().UTC()
	d := &entity.Diagnostics{
		TerminalCounts: map[constants.OCRStatus]int{},
		GeneratedAt:    now,
	}

	counts, err := r.docs.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	for status, n := range counts {
		switch {
		case status == constants.StatusQueued:
			d.QueueDepth = n
		case status == constants.StatusProcessing:
			d.ProcessingCount = n
		case status.IsTerminal():
			d.TerminalCounts[status] = n
		}
	}
	r.metrics.queueDepth(d.QueueDepth)

	stuck, err := r.docs.ListStuck(ctx, now.Add(-r.threshold))
	if err != nil {
		return nil, fmt.Errorf("list stuck: %w", err)
	}
	d.StuckCount = len(stuck)

	overdue, err := r.docs.ListOverdueRetries(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list overdue retries: %w", err)
	}
	d.OverdueRetries = overdue

	dist, err := r.docs.RetryDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("retry distribution: %w", err)
	}
	d.RetryDistribution = dist

	terminal, err := r.docs.ListTerminal(ctx)
	if err != nil {
		return nil, fmt.Errorf("list terminal: %w", err)
	}
	d.TerminalDocuments = terminal

	failures, err := r.logs.ListRecentFailures(ctx, recentFailureLimit)
	if err != nil {
		return nil, fmt.Errorf("recent failures: %w", err)
	}
	d.RecentFailures = failures

	if d.StuckCount > 0 || len(d.OverdueRetries) > 0 {
		r.logger.Warn("pipeline health degraded",
			"stuck", d.StuckCount, "overdue_retries", len(d.OverdueRetries), "queue_depth", d.QueueDepth)
	}
	return d, nil
}
