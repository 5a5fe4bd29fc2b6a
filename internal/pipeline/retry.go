package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

// conflictAttempts bounds retry-on-version-conflict loops. A conditional
// write that keeps losing after this many fresh reads is surfaced to the
// caller instead of spinning.
const conflictAttempts = 3

// RetryContext describes the failure being scheduled.
type RetryContext struct {
	// Phase names the failure site: ocr, reaper, apply, a downstream
	// workflow. Recorded in the audit log.
	Phase string
	// Message is the normalized error message persisted on the document.
	Message string
	// Cause, when set, is classified to decide whether the failure
	// short-circuits to a terminal state.
	Cause error
}

// Scheduler decides whether a failed attempt is retried and when. It is
// the only component that mutates retry bookkeeping, so every failure
// site behaves identically.
type Scheduler struct {
	docs   repository.DocumentRepository
	logs   repository.ProcessingLogRepository
	policy BackoffPolicy
	logger *slog.Logger
	now    func() time.Time
}

func NewScheduler(docs repository.DocumentRepository, logs repository.ProcessingLogRepository, policy BackoffPolicy, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{docs: docs, logs: logs, policy: policy, logger: logger, now: time.Now}
}

// ScheduleRetry records a failed attempt for a document and either
// requeues it with a due time or parks it in a terminal state. Callable
// from any failure site; a version conflict means another sweep mutated
// the row first, so the decision is recomputed against the fresh row.
func (s *Scheduler) ScheduleRetry(ctx context.Context, documentID uuid.UUID, rc RetryContext) (entity.RetryDecision, error) {
	started := s.now().UTC()

	for attempt := 0; attempt < conflictAttempts; attempt++ {
		doc, err := s.docs.GetByID(ctx, documentID)
		if err != nil {
			return entity.RetryDecision{}, fmt.Errorf("load document: %w", err)
		}

		// Terminal rows are dead letters; scheduling against one is a no-op.
		if doc.OCRStatus.IsTerminal() {
			return entity.RetryDecision{RetryCount: doc.RetryCount, Status: doc.OCRStatus}, nil
		}

		kind := FailureTransient
		if rc.Cause != nil {
			kind = Classify(rc.Cause)
		}

		// Permanent failure kinds bypass the remaining retry budget
		// entirely; the retry count is left where it was.
		if status, ok := TerminalStatus(kind); ok {
			err = s.docs.MarkTerminal(ctx, doc.ID, doc.Version, doc.RetryCount, status, rc.Message)
			if errors.Is(err, repository.ErrVersionConflict) {
				continue
			}
			if err != nil {
				return entity.RetryDecision{}, err
			}
			s.audit(ctx, doc.ID, doc.RetryCount, rc.Phase, entity.OutcomeTerminal, rc.Message, started)
			return entity.RetryDecision{RetryCount: doc.RetryCount, Status: status}, nil
		}

		retryCount := doc.RetryCount + 1
		delay, terminal := s.policy.Compute(retryCount)
		if terminal {
			err = s.docs.MarkTerminal(ctx, doc.ID, doc.Version, retryCount, constants.StatusPermanentFailure, rc.Message)
			if errors.Is(err, repository.ErrVersionConflict) {
				continue
			}
			if err != nil {
				return entity.RetryDecision{}, err
			}
			s.logger.Warn("retry budget exhausted",
				"document_id", doc.ID, "retry_count", retryCount, "phase", rc.Phase, "error_message", rc.Message)
			s.audit(ctx, doc.ID, retryCount, rc.Phase, entity.OutcomeTerminal, rc.Message, started)
			return entity.RetryDecision{RetryCount: retryCount, Status: constants.StatusPermanentFailure}, nil
		}

		nextRetryAt := s.now().UTC().Add(delay)
		err = s.docs.RequeueForRetry(ctx, doc.ID, doc.Version, retryCount, nextRetryAt, rc.Message)
		if errors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entity.RetryDecision{}, err
		}
		s.audit(ctx, doc.ID, retryCount, rc.Phase, entity.OutcomeRequeued, rc.Message, started)
		return entity.RetryDecision{
			RetryCount:  retryCount,
			Status:      constants.StatusQueued,
			NextRetryAt: &nextRetryAt,
		}, nil
	}

	return entity.RetryDecision{}, fmt.Errorf("schedule retry for %s: %w", documentID, repository.ErrVersionConflict)
}

func (s *Scheduler) audit(ctx context.Context, documentID uuid.UUID, attempt int, phase, outcome, message string, started time.Time) {
	finished := s.now().UTC()
	entry := &entity.ProcessingLogEntry{
		DocumentID: documentID,
		Attempt:    attempt,
		Phase:      phase,
		Outcome:    outcome,
		StartedAt:  started,
		FinishedAt: &finished,
	}
	if message != "" {
		entry.ErrorMessage = &message
	}
	if err := s.logs.Append(ctx, entry); err != nil {
		s.logger.Error("failed to record retry decision", "document_id", documentID, "error", err)
	}
}
