package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

// ReapResult summarizes one reaper sweep.
type ReapResult struct {
	Reset  int `json:"reset"`
	Failed int `json:"failed"`
}

// Reaper recovers documents stuck in processing past a wall-clock
// threshold, the symptom of a crashed or hung worker. Safe to run
// repeatedly and concurrently: the stuck set is recomputed fresh each
// sweep and every write is a targeted conditional update, so a document
// another sweep already moved is simply skipped.
type Reaper struct {
	docs      repository.DocumentRepository
	logs      repository.ProcessingLogRepository
	policy    BackoffPolicy
	threshold time.Duration
	metrics   *Metrics
	logger    *slog.Logger
	now       func() time.Time
}

func NewReaper(
	docs repository.DocumentRepository,
	logs repository.ProcessingLogRepository,
	policy BackoffPolicy,
	threshold time.Duration,
	metrics *Metrics,
	logger *slog.Logger,
) *Reaper {
	if threshold <= 0 {
		threshold = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reaper{
		docs:      docs,
		logs:      logs,
		policy:    policy,
		threshold: threshold,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// ReapStuck scans for documents stuck in processing and recovers each one:
// back into the queue while retry budget remains, terminal otherwise.
// Every reset is audited regardless of outcome.
func (r *Reaper) ReapStuck(ctx context.Context) (ReapResult, error) {
	start := r.now()
	cutoff := start.UTC().Add(-r.threshold)

	stuck, err := r.docs.ListStuck(ctx, cutoff)
	if err != nil {
		return ReapResult{}, fmt.Errorf("list stuck documents: %w", err)
	}

	var res ReapResult
	for _, doc := range stuck {
		stuckFor := start.UTC().Sub(doc.UpdatedAt)
		if r.reapOne(ctx, doc, stuckFor) {
			res.Reset++
			r.metrics.stuckReset()
		} else {
			res.Failed++
		}
	}

	r.metrics.sweep("reaper", r.now().Sub(start).Seconds())
	if len(stuck) > 0 {
		r.logger.Warn("reaper sweep finished", "stuck", len(stuck), "reset", res.Reset, "failed", res.Failed)
	}
	return res, nil
}

func (r *Reaper) reapOne(ctx context.Context, doc *entity.Document, stuckFor time.Duration) bool {
	started := r.now().UTC()
	message := fmt.Sprintf("processing timed out after %s; reset by reaper", stuckFor.Round(time.Second))

	retryCount := doc.RetryCount + 1
	_, terminal := r.policy.Compute(retryCount)

	var err error
	outcome := entity.OutcomeRequeued
	if terminal {
		outcome = entity.OutcomeTerminal
		err = r.docs.MarkTerminal(ctx, doc.ID, doc.Version, retryCount, constants.StatusPermanentFailure, message)
	} else {
		// due immediately; the stuck time already served as the delay
		err = r.docs.RequeueForRetry(ctx, doc.ID, doc.Version, retryCount, r.now().UTC(), message)
	}

	if errors.Is(err, repository.ErrVersionConflict) {
		// the row moved out of processing between the scan and this write
		r.logger.Debug("stuck document already recovered elsewhere", "document_id", doc.ID)
		return false
	}
	if err != nil {
		r.logger.Error("failed to reset stuck document", "document_id", doc.ID, "error", err)
		return false
	}

	if terminal {
		r.metrics.terminal(string(constants.StatusPermanentFailure))
	}
	r.logger.Warn("stuck document recovered",
		"document_id", doc.ID, "stuck_for", stuckFor.Round(time.Second), "retry_count", retryCount, "outcome", outcome)

	finished := r.now().UTC()
	entry := &entity.ProcessingLogEntry{
		DocumentID:   doc.ID,
		Attempt:      retryCount,
		Phase:        entity.PhaseReaper,
		Outcome:      outcome,
		ErrorMessage: &message,
		StartedAt:    started,
		FinishedAt:   &finished,
	}
	if aerr := r.logs.Append(ctx, entry); aerr != nil {
		r.logger.Error("failed to record reaper reset", "document_id", doc.ID, "error", aerr)
	}
	return true
}
