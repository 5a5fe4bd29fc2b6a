package entity

import "github.com/google/uuid"

// FieldConflict records a target form field that already held a value
// different from the freshly extracted one.
type FieldConflict struct {
	Field       string `json:"field"`
	Existing    string `json:"existing"`
	Incoming    string `json:"incoming"`
	Overwritten bool   `json:"overwritten"`
}

// ApplyResult is the outcome of applying one document's extracted data
// to its case form.
type ApplyResult struct {
	DocumentID     uuid.UUID       `json:"document_id"`
	Success        bool            `json:"success"`
	AlreadyApplied bool            `json:"already_applied"`
	FieldsWritten  int             `json:"fields_written"`
	Conflicts      []FieldConflict `json:"conflicts"`
}

// BatchOutcome classifies the aggregate result of a batch apply run.
type BatchOutcome string

const (
	BatchNothingToApply  BatchOutcome = "nothing_to_apply"
	BatchFullSuccess     BatchOutcome = "full_success"
	BatchPartialSuccess  BatchOutcome = "partial_success"
	BatchFailureDominant BatchOutcome = "failure_dominant"
)

// BatchApplyError is one document's failure inside a batch apply run.
type BatchApplyError struct {
	DocumentID uuid.UUID `json:"document_id"`
	Message    string    `json:"message"`
}

// BatchApplyResult aggregates an apply run over all eligible documents
// of a case. Ephemeral; returned to the caller, not persisted.
type BatchApplyResult struct {
	CaseID     uuid.UUID         `json:"case_id"`
	Eligible   int               `json:"eligible"`
	Applied    int               `json:"applied"`
	Conflicted int               `json:"conflicted"`
	Failed     int               `json:"failed"`
	Outcome    BatchOutcome      `json:"outcome"`
	Message    string            `json:"message"`
	Errors     []BatchApplyError `json:"errors,omitempty"`
}
