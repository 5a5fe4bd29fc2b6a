package constants

// OCRStatus is the canonical processing status for rows in documents.
type OCRStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    OCRStatus = "pending"    // uploaded, not yet enqueued
	StatusQueued     OCRStatus = "queued"     // waiting for a worker claim
	StatusProcessing OCRStatus = "processing" // claimed by a worker
	StatusCompleted  OCRStatus = "completed"  // extraction succeeded

	// Terminal failure states. No automatic transition leaves these;
	// only an explicit administrative requeue does.
	StatusMissingRemoteFile OCRStatus = "missing_remote_file"
	StatusPDFCorrupt        OCRStatus = "pdf_corrupt"
	StatusPermanentFailure  OCRStatus = "permanent_failure"
)

// Statuses holds the allowed values for the ocr_status field in Document.
var Statuses = []string{
	string(StatusPending),
	string(StatusQueued),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusMissingRemoteFile),
	string(StatusPDFCorrupt),
	string(StatusPermanentFailure),
}

// TerminalStatuses lists the dead-letter states, in a stable order.
var TerminalStatuses = []OCRStatus{
	StatusMissingRemoteFile,
	StatusPDFCorrupt,
	StatusPermanentFailure,
}

// IsTerminal reports whether s is a terminal failure state.
func (s OCRStatus) IsTerminal() bool {
	switch s {
	case StatusMissingRemoteFile, StatusPDFCorrupt, StatusPermanentFailure:
		return true
	}
	return false
}

// automaticTransitions encodes the legal automatic edges of the state
// machine. Terminal states have no outgoing edges here; the admin requeue
// path bypasses this table deliberately.
var automaticTransitions = map[OCRStatus][]OCRStatus{
	StatusPending:    {StatusQueued, StatusMissingRemoteFile, StatusPDFCorrupt, StatusPermanentFailure},
	StatusQueued:     {StatusProcessing, StatusMissingRemoteFile, StatusPDFCorrupt, StatusPermanentFailure},
	StatusProcessing: {StatusCompleted, StatusQueued, StatusMissingRemoteFile, StatusPDFCorrupt, StatusPermanentFailure},
	StatusCompleted:  {},
}

// CanTransitionTo reports whether the pipeline may move a document from s
// to next without administrative intervention.
func (s OCRStatus) CanTransitionTo(next OCRStatus) bool {
	for _, t := range automaticTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
