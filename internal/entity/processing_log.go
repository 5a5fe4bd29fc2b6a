package entity

import (
	"time"

	"github.com/google/uuid"
)

// Phases recorded in the processing log.
const (
	PhaseOCR            = "ocr"
	PhaseReaper         = "reaper"
	PhaseRetryScheduler = "retry_scheduler"
	PhaseApply          = "apply"
)

// Outcomes recorded in the processing log.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeRequeued  = "requeued"
	OutcomeTerminal  = "terminal"
	OutcomeApplied   = "applied"
)

// ProcessingLogEntry is one append-only audit record of a processing attempt.
type ProcessingLogEntry struct {
	ID           uuid.UUID  `json:"id"`
	DocumentID   uuid.UUID  `json:"document_id"`
	Attempt      int        `json:"attempt"`
	Phase        string     `json:"phase"`
	Outcome      string     `json:"outcome"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
