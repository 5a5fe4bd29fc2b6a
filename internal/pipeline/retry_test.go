package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/extract"
	"github.com/kamil-urbanek/docpipe/internal/storage"

	"github.com/google/uuid"
)

func newTestScheduler(docs *fakeDocs, logs *fakeLogs) *Scheduler {
	return NewScheduler(docs, logs, DefaultBackoffPolicy(), slog.New(slog.DiscardHandler))
}

func TestScheduleRetryRequeuesWithBackoff(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	s := newTestScheduler(docs, logs)
	doc := seedDoc(docs, uuid.New(), constants.StatusProcessing, 0)

	before := time.Now().UTC()
	decision, err := s.ScheduleRetry(context.Background(), doc.ID, RetryContext{
		Phase:   entity.PhaseOCR,
		Message: "vendor timeout",
		Cause:   errors.New("vendor timeout"),
	})
	if err != nil {
		t.Fatalf("ScheduleRetry: %v", err)
	}
	if decision.RetryCount != 1 {
		t.Errorf("retry count = %d, want 1", decision.RetryCount)
	}
	if decision.Status != constants.StatusQueued {
		t.Errorf("status = %s, want queued", decision.Status)
	}
	if decision.NextRetryAt == nil {
		t.Fatal("next retry time not set")
	}
	wantDue := before.Add(5 * time.Minute)
	if decision.NextRetryAt.Before(wantDue.Add(-time.Second)) || decision.NextRetryAt.After(wantDue.Add(time.Minute)) {
		t.Errorf("next retry at %s, want about %s", decision.NextRetryAt, wantDue)
	}

	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusQueued || got.RetryCount != 1 {
		t.Errorf("stored row = (%s, %d), want (queued, 1)", got.OCRStatus, got.RetryCount)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage != "vendor timeout" {
		t.Errorf("error message = %v, want vendor timeout", got.ErrorMessage)
	}
}

func TestScheduleRetryThirdFailureIsTerminal(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	s := newTestScheduler(docs, logs)
	doc := seedDoc(docs, uuid.New(), constants.StatusProcessing, 0)

	var decision entity.RetryDecision
	for i := 0; i < 3; i++ {
		var err error
		decision, err = s.ScheduleRetry(context.Background(), doc.ID, RetryContext{
			Phase:   entity.PhaseOCR,
			Message: "still failing",
			Cause:   errors.New("still failing"),
		})
		if err != nil {
			t.Fatalf("ScheduleRetry #%d: %v", i+1, err)
		}
		// each attempt runs against the fresh row, as the worker would
		if !decision.Status.IsTerminal() {
			docs.put(mustProcessing(t, docs, doc.ID))
		}
	}

	if decision.Status != constants.StatusPermanentFailure {
		t.Errorf("final status = %s, want permanent_failure", decision.Status)
	}
	if decision.RetryCount != 3 {
		t.Errorf("final retry count = %d, want 3", decision.RetryCount)
	}
	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusPermanentFailure || got.RetryCount != 3 {
		t.Errorf("stored row = (%s, %d), want (permanent_failure, 3)", got.OCRStatus, got.RetryCount)
	}
	if got.NextRetryAt != nil {
		t.Error("terminal document should have no pending retry time")
	}
}

// mustProcessing re-marks a queued row as processing, standing in for a
// worker claiming it before the next failure.
func mustProcessing(t *testing.T, docs *fakeDocs, id uuid.UUID) *entity.Document {
	t.Helper()
	row := docs.get(id)
	if row.OCRStatus != constants.StatusQueued {
		t.Fatalf("expected queued row, got %s", row.OCRStatus)
	}
	row.OCRStatus = constants.StatusProcessing
	return row
}

func TestScheduleRetryPermanentKindBypassesBudget(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	s := newTestScheduler(docs, logs)
	doc := seedDoc(docs, uuid.New(), constants.StatusProcessing, 1)

	decision, err := s.ScheduleRetry(context.Background(), doc.ID, RetryContext{
		Phase:   entity.PhaseOCR,
		Message: "source object gone",
		Cause:   &Failure{Kind: FailureMissingRemoteFile, Phase: "download", Err: storage.ErrObjectNotFound},
	})
	if err != nil {
		t.Fatalf("ScheduleRetry: %v", err)
	}
	if decision.Status != constants.StatusMissingRemoteFile {
		t.Errorf("status = %s, want missing_remote_file", decision.Status)
	}
	// the retry count is evidence of how many attempts ran, not of why
	// the document was parked
	if decision.RetryCount != 1 {
		t.Errorf("retry count = %d, want unchanged 1", decision.RetryCount)
	}
}

func TestScheduleRetryCorruptFileTerminal(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	s := newTestScheduler(docs, logs)
	doc := seedDoc(docs, uuid.New(), constants.StatusProcessing, 0)

	decision, err := s.ScheduleRetry(context.Background(), doc.ID, RetryContext{
		Phase:   entity.PhaseOCR,
		Message: "unreadable pdf",
		Cause:   &Failure{Kind: FailureCorruptFile, Phase: "probe", Err: extract.ErrCorruptFile},
	})
	if err != nil {
		t.Fatalf("ScheduleRetry: %v", err)
	}
	if decision.Status != constants.StatusPDFCorrupt {
		t.Errorf("status = %s, want pdf_corrupt", decision.Status)
	}
}

func TestScheduleRetryTerminalRowIsNoOp(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	s := newTestScheduler(docs, logs)
	doc := seedDoc(docs, uuid.New(), constants.StatusPermanentFailure, 3)

	decision, err := s.ScheduleRetry(context.Background(), doc.ID, RetryContext{
		Phase:   entity.PhaseOCR,
		Message: "late failure report",
	})
	if err != nil {
		t.Fatalf("ScheduleRetry: %v", err)
	}
	if decision.Status != constants.StatusPermanentFailure || decision.RetryCount != 3 {
		t.Errorf("decision = (%s, %d), want untouched terminal row", decision.Status, decision.RetryCount)
	}
	got := docs.get(doc.ID)
	if got.Version != 1 {
		t.Errorf("version = %d, want 1 (no write)", got.Version)
	}
	if len(logs.entries) != 0 {
		t.Errorf("log entries = %d, want none", len(logs.entries))
	}
}

func TestScheduleRetryAuditsEveryDecision(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	s := newTestScheduler(docs, logs)
	doc := seedDoc(docs, uuid.New(), constants.StatusProcessing, 2)

	_, err := s.ScheduleRetry(context.Background(), doc.ID, RetryContext{
		Phase:   entity.PhaseOCR,
		Message: "third strike",
		Cause:   errors.New("third strike"),
	})
	if err != nil {
		t.Fatalf("ScheduleRetry: %v", err)
	}
	entries := logs.byPhase(entity.PhaseOCR)
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if entries[0].Outcome != entity.OutcomeTerminal {
		t.Errorf("outcome = %s, want terminal", entries[0].Outcome)
	}
	if entries[0].Attempt != 3 {
		t.Errorf("attempt = %d, want 3", entries[0].Attempt)
	}
}
