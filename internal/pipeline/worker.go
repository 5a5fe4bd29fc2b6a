package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/extract"
	"github.com/kamil-urbanek/docpipe/internal/repository"
	"github.com/kamil-urbanek/docpipe/internal/storage"
)

// WorkerConfig tunes a worker sweep.
type WorkerConfig struct {
	// BatchSize is how many documents one claim takes. Small on purpose:
	// the pause between batches is the backpressure that keeps the
	// extraction service under its rate limits.
	BatchSize  int
	BatchPause time.Duration
	// MaxBatches caps one sweep; 0 means sweep until the queue is empty.
	MaxBatches int
	// OpTimeout bounds a single extraction attempt; 0 means no deadline.
	OpTimeout time.Duration
}

// SweepResult summarizes one worker sweep.
type SweepResult struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Worker claims queued documents and runs extraction on them.
type Worker struct {
	docs      repository.DocumentRepository
	logs      repository.ProcessingLogRepository
	files     storage.FileStore
	extractor extract.Extractor
	scheduler *Scheduler
	cfg       WorkerConfig
	metrics   *Metrics
	logger    *slog.Logger
	now       func() time.Time
}

func NewWorker(
	docs repository.DocumentRepository,
	logs repository.ProcessingLogRepository,
	files storage.FileStore,
	extractor extract.Extractor,
	scheduler *Scheduler,
	cfg WorkerConfig,
	metrics *Metrics,
	logger *slog.Logger,
) *Worker {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		docs:      docs,
		logs:      logs,
		files:     files,
		extractor: extractor,
		scheduler: scheduler,
		cfg:       cfg,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// RunSweep claims and processes queued documents in batches until the
// queue is drained, the batch cap is hit, or the context expires. One
// document's failure never aborts its siblings: every outcome is captured
// independently and aggregated.
func (w *Worker) RunSweep(ctx context.Context) (SweepResult, error) {
	start := w.now()
	var res SweepResult

	for batch := 0; w.cfg.MaxBatches == 0 || batch < w.cfg.MaxBatches; batch++ {
		if batch > 0 && w.cfg.BatchPause > 0 {
			select {
			case <-ctx.Done():
				w.metrics.sweep("worker", w.now().Sub(start).Seconds())
				return res, ctx.Err()
			case <-time.After(w.cfg.BatchPause):
			}
		}

		claimed, err := w.docs.ClaimQueued(ctx, w.cfg.BatchSize, w.now().UTC())
		if err != nil {
			w.metrics.sweep("worker", w.now().Sub(start).Seconds())
			return res, fmt.Errorf("claim queued documents: %w", err)
		}
		if len(claimed) == 0 {
			break
		}
		w.logger.Info("claimed documents for OCR", "count", len(claimed), "batch", batch+1)

		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(w.cfg.BatchSize)
		for _, doc := range claimed {
			g.Go(func() error {
				ok := w.processOne(gctx, doc)
				mu.Lock()
				res.Processed++
				if ok {
					res.Succeeded++
				} else {
					res.Failed++
				}
				mu.Unlock()
				// errors are absorbed per document
				return nil
			})
		}
		_ = g.Wait()

		if len(claimed) < w.cfg.BatchSize {
			break
		}
	}

	w.metrics.sweep("worker", w.now().Sub(start).Seconds())
	w.logger.Info("worker sweep finished",
		"processed", res.Processed, "succeeded", res.Succeeded, "failed", res.Failed)
	return res, nil
}

// errAttemptSuperseded marks an attempt whose row was reset by the reaper
// while extraction was still running. The reset already charged the retry
// budget, so the worker must not schedule another retry for it.
var errAttemptSuperseded = errors.New("attempt superseded by concurrent reset")

// processOne runs one extraction attempt. Returns true on success.
func (w *Worker) processOne(ctx context.Context, doc *entity.Document) bool {
	started := w.now().UTC()
	attempt := doc.RetryCount + 1

	attemptCtx := ctx
	if w.cfg.OpTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, w.cfg.OpTimeout)
		defer cancel()
	}

	err := w.extractInto(attemptCtx, doc)
	finished := w.now().UTC()

	if err == nil {
		w.audit(ctx, doc, attempt, entity.OutcomeSucceeded, nil, started, finished)
		w.metrics.document("succeeded")
		w.logger.Info("document extracted",
			"document_id", doc.ID, "case_id", doc.CaseID, "duration_ms", finished.Sub(started).Milliseconds())
		return true
	}

	msg := normalizeMessage(err)
	w.audit(ctx, doc, attempt, entity.OutcomeFailed, &msg, started, finished)
	w.metrics.document("failed")

	if errors.Is(err, errAttemptSuperseded) {
		// The reaper reset this row mid-attempt and already incremented its
		// retry count. Scheduling another retry would charge the budget twice.
		w.logger.Warn("extraction result discarded, row was reset while processing",
			"document_id", doc.ID, "case_id", doc.CaseID)
		return false
	}

	w.logger.Error("document extraction failed",
		"document_id", doc.ID, "case_id", doc.CaseID, "kind", Classify(err).String(), "error", err)

	decision, schedErr := w.scheduler.ScheduleRetry(ctx, doc.ID, RetryContext{
		Phase:   entity.PhaseOCR,
		Message: msg,
		Cause:   err,
	})
	if schedErr != nil {
		w.logger.Error("failed to schedule retry", "document_id", doc.ID, "error", schedErr)
		return false
	}
	if decision.Status.IsTerminal() {
		w.metrics.terminal(string(decision.Status))
	}
	return false
}

// extractInto downloads, probes and extracts one claimed document, then
// persists the result. Every error is tagged with the failing phase.
func (w *Worker) extractInto(ctx context.Context, doc *entity.Document) error {
	content, err := w.files.Download(ctx, doc.StoragePath)
	if err != nil {
		return &Failure{Kind: Classify(err), Phase: "download", Err: err}
	}

	format := constants.MapExtToFormat(doc.FileExt)
	if format == "" {
		return &Failure{Kind: FailurePermanent, Phase: "probe", Err: fmt.Errorf("extension %q: %w", doc.FileExt, extract.ErrUnsupportedFormat)}
	}
	if err := extract.EnsureReadable(content, format); err != nil {
		return &Failure{Kind: FailureCorruptFile, Phase: "probe", Err: err}
	}

	res, err := w.extractor.Extract(ctx, content, doc.FileExt)
	if err != nil {
		return &Failure{Kind: Classify(err), Phase: "extract", Err: err}
	}
	if err := extract.ValidatePayload(res.Fields); err != nil {
		// a malformed payload is a vendor hiccup, not a property of the file
		return &Failure{Kind: FailureTransient, Phase: "extract", Err: err}
	}

	err = w.docs.CompleteOCR(ctx, doc.ID, doc.Version, res.Fields)
	if errors.Is(err, repository.ErrVersionConflict) {
		// Somebody moved the row while this attempt was still running. When
		// it left the processing state the reaper (or an operator) already
		// decided this attempt's fate; their decision wins, drop the result.
		fresh, gerr := w.docs.GetByID(ctx, doc.ID)
		if gerr == nil && fresh.OCRStatus != constants.StatusProcessing {
			return fmt.Errorf("persist: %w", errAttemptSuperseded)
		}
		return &Failure{Kind: FailureTransient, Phase: "persist", Err: err}
	}
	if err != nil {
		return &Failure{Kind: FailureTransient, Phase: "persist", Err: err}
	}
	return nil
}

func (w *Worker) audit(ctx context.Context, doc *entity.Document, attempt int, outcome string, message *string, started, finished time.Time) {
	entry := &entity.ProcessingLogEntry{
		DocumentID:   doc.ID,
		Attempt:      attempt,
		Phase:        entity.PhaseOCR,
		Outcome:      outcome,
		ErrorMessage: message,
		StartedAt:    started,
		FinishedAt:   &finished,
	}
	if err := w.logs.Append(ctx, entry); err != nil {
		w.logger.Error("failed to record attempt", "document_id", doc.ID, "error", err)
	}
}

// normalizeMessage flattens an error chain into the message persisted on
// the document. Raw vendor error shapes stay out of user-facing fields.
func normalizeMessage(err error) string {
	var f *Failure
	if errors.As(err, &f) && f.Err != nil {
		return f.Phase + ": " + f.Err.Error()
	}
	return err.Error()
}
