package pipeline

import (
	"errors"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/extract"
	"github.com/kamil-urbanek/docpipe/internal/storage"
)

// FailureKind is the closed error taxonomy of the pipeline. The classifier
// switches over it exhaustively; nothing decides retriability by matching
// message text.
type FailureKind int

const (
	// FailureTransient covers network blips, rate limits and temporary
	// service errors. Retried until the budget runs out.
	FailureTransient FailureKind = iota
	// FailureMissingRemoteFile means the source object is gone from
	// external storage. Never retried.
	FailureMissingRemoteFile
	// FailureCorruptFile means the file exists but cannot be parsed.
	// Never retried.
	FailureCorruptFile
	// FailurePermanent is the catch-all for errors explicitly marked
	// non-retriable, e.g. an unsupported format. Never retried.
	FailurePermanent
)

func (k FailureKind) String() string {
	switch k {
	case FailureMissingRemoteFile:
		return "missing_remote_file"
	case FailureCorruptFile:
		return "corrupt_file"
	case FailurePermanent:
		return "permanent"
	default:
		return "transient"
	}
}

// Failure tags an underlying error with its kind and the phase that
// produced it. Worker and applier wrap every low-level error in one of
// these at the boundary, so vendor error shapes never reach the store.
type Failure struct {
	Kind  FailureKind
	Phase string
	Err   error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Phase + ": " + f.Kind.String() + " failure"
	}
	return f.Phase + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error { return f.Err }

// Classify maps an error to its failure kind. Tagged failures keep their
// kind; known sentinels from the storage and extraction boundaries map to
// their terminal kinds; everything else is transient.
func Classify(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	switch {
	case errors.Is(err, storage.ErrObjectNotFound):
		return FailureMissingRemoteFile
	case errors.Is(err, extract.ErrCorruptFile):
		return FailureCorruptFile
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return FailurePermanent
	}
	return FailureTransient
}

// TerminalStatus returns the terminal document status for a failure kind,
// or ok=false for transient failures, which go through the retry scheduler
// instead.
func TerminalStatus(kind FailureKind) (status constants.OCRStatus, ok bool) {
	switch kind {
	case FailureMissingRemoteFile:
		return constants.StatusMissingRemoteFile, true
	case FailureCorruptFile:
		return constants.StatusPDFCorrupt, true
	case FailurePermanent:
		return constants.StatusPermanentFailure, true
	}
	return "", false
}
