// Package repository defines the persistence contracts the pipeline runs
// against. Implementations live in the entdb subpackage; tests use
// in-memory fakes. No ent types appear in these signatures so callers
// stay decoupled from the generated client.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"
)

// ErrVersionConflict is returned when a conditional write lost to a
// concurrent mutation of the same row. Callers re-read and retry,
// bounded, rather than treating it as a hard failure.
var ErrVersionConflict = errors.New("document version conflict")

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("row not found")

// DocumentRepository is the durable store of uploaded documents. The
// ocr_status column is the work queue: ClaimQueued is the single place
// queued rows become processing, via a conditional update keyed on
// (id, version, status).
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entity.Document, error)

	// EnqueuePending moves pending documents of a case to queued. When ids
	// is non-empty only those documents are considered. Returns how many
	// rows were enqueued.
	EnqueuePending(ctx context.Context, caseID uuid.UUID, ids []uuid.UUID) (int, error)

	// ClaimQueued atomically claims up to limit due queued documents for
	// processing. A row whose conditional update loses is skipped, never
	// returned twice.
	ClaimQueued(ctx context.Context, limit int, now time.Time) ([]*entity.Document, error)

	// CompleteOCR stores the extracted payload and marks the document
	// completed, clearing any error message.
	CompleteOCR(ctx context.Context, id uuid.UUID, version int, fields map[string]string) error

	// RequeueForRetry re-enters a failed document into the queue with an
	// incremented retry count and a due time.
	RequeueForRetry(ctx context.Context, id uuid.UUID, version, retryCount int, nextRetryAt time.Time, message string) error

	// MarkTerminal parks the document in a terminal failure state.
	MarkTerminal(ctx context.Context, id uuid.UUID, version, retryCount int, status constants.OCRStatus, message string) error

	// MarkApplied sets data_applied_to_forms after a successful apply.
	MarkApplied(ctx context.Context, id uuid.UUID, version int) error

	// AdminRequeue is the explicit human action that pulls a terminal
	// document back into the queue, resetting its retry budget.
	AdminRequeue(ctx context.Context, id uuid.UUID) error

	// ListStuck returns processing documents not touched since olderThan.
	ListStuck(ctx context.Context, olderThan time.Time) ([]*entity.Document, error)

	// ListEligibleForApply returns completed, not-yet-applied documents
	// of a case.
	ListEligibleForApply(ctx context.Context, caseID uuid.UUID) ([]*entity.Document, error)

	// ListOverdueRetries returns non-terminal documents whose scheduled
	// retry time has passed without a worker picking them up.
	ListOverdueRetries(ctx context.Context, now time.Time) ([]*entity.Document, error)

	// ListTerminal returns all documents currently parked in a terminal state.
	ListTerminal(ctx context.Context) ([]*entity.Document, error)

	CountByStatus(ctx context.Context) (map[constants.OCRStatus]int, error)
	RetryDistribution(ctx context.Context) (map[int]int, error)

	// SoftDeleteByCase tombstones all documents of a deleted case.
	SoftDeleteByCase(ctx context.Context, caseID uuid.UUID) (int, error)
}

// ProcessingLogRepository is the append-only attempt audit trail.
type ProcessingLogRepository interface {
	Append(ctx context.Context, e *entity.ProcessingLogEntry) error
	ListRecentFailures(ctx context.Context, limit int) ([]*entity.ProcessingLogEntry, error)
}

// FormRepository reads and partially updates the case-scoped form record.
// UpdateFields must merge the given fields into the form in one atomic
// write: either every field lands or none do.
type FormRepository interface {
	GetFields(ctx context.Context, caseID uuid.UUID) (map[string]string, error)
	UpdateFields(ctx context.Context, caseID uuid.UUID, fields map[string]string) error
}
