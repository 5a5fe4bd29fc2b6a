package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"

	"github.com/google/uuid"
)

func newTestReaper(docs *fakeDocs, logs *fakeLogs) *Reaper {
	return NewReaper(docs, logs, DefaultBackoffPolicy(), 5*time.Minute, nil, slog.New(slog.DiscardHandler))
}

// ageDoc pushes a document's updated_at into the past without touching
// its version, imitating a worker that died mid-attempt.
func ageDoc(docs *fakeDocs, id uuid.UUID, age time.Duration) {
	docs.mu.Lock()
	defer docs.mu.Unlock()
	docs.rows[id].UpdatedAt = time.Now().UTC().Add(-age)
}

func TestReapStuckRequeuesImmediately(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	r := newTestReaper(docs, logs)

	doc := seedDoc(docs, uuid.New(), constants.StatusProcessing, 0)
	ageDoc(docs, doc.ID, 10*time.Minute)

	res, err := r.ReapStuck(context.Background())
	if err != nil {
		t.Fatalf("ReapStuck: %v", err)
	}
	if res.Reset != 1 || res.Failed != 0 {
		t.Errorf("result = %+v, want 1 reset", res)
	}

	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusQueued {
		t.Errorf("status = %s, want queued", got.OCRStatus)
	}
	if got.RetryCount != 1 {
		t.Errorf("retry count = %d, want 1 (stuck attempt counts)", got.RetryCount)
	}
	if got.NextRetryAt == nil || got.NextRetryAt.After(time.Now().Add(time.Second)) {
		t.Errorf("next retry at = %v, want due immediately", got.NextRetryAt)
	}
	if got.ErrorMessage == nil || !strings.Contains(*got.ErrorMessage, "reset by reaper") {
		t.Errorf("error message = %v, want reaper reset note", got.ErrorMessage)
	}

	entries := logs.byPhase(entity.PhaseReaper)
	if len(entries) != 1 || entries[0].Outcome != entity.OutcomeRequeued {
		t.Errorf("audit entries = %+v, want one requeued reaper entry", entries)
	}
}

func TestReapStuckExhaustedBudgetIsTerminal(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	r := newTestReaper(docs, logs)

	doc := seedDoc(docs, uuid.New(), constants.StatusProcessing, 2)
	ageDoc(docs, doc.ID, time.Hour)

	if _, err := r.ReapStuck(context.Background()); err != nil {
		t.Fatalf("ReapStuck: %v", err)
	}

	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusPermanentFailure {
		t.Errorf("status = %s, want permanent_failure", got.OCRStatus)
	}
	if got.RetryCount != 3 {
		t.Errorf("retry count = %d, want 3", got.RetryCount)
	}

	entries := logs.byPhase(entity.PhaseReaper)
	if len(entries) != 1 || entries[0].Outcome != entity.OutcomeTerminal {
		t.Errorf("audit entries = %+v, want one terminal reaper entry", entries)
	}
}

func TestReapStuckLeavesFreshRowsAlone(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	r := newTestReaper(docs, logs)

	doc := seedDoc(docs, uuid.New(), constants.StatusProcessing, 0)

	res, err := r.ReapStuck(context.Background())
	if err != nil {
		t.Fatalf("ReapStuck: %v", err)
	}
	if res.Reset != 0 {
		t.Errorf("reset = %d, want 0 for a live attempt", res.Reset)
	}
	if got := docs.get(doc.ID); got.OCRStatus != constants.StatusProcessing || got.Version != 1 {
		t.Errorf("row = (%s, v%d), want untouched (processing, v1)", got.OCRStatus, got.Version)
	}
}

// The reaper may reach a row the worker finished between the scan and the
// reset. The conditional write must lose quietly.
func TestReapStuckSkipsRowsThatMovedOn(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	r := newTestReaper(docs, logs)

	doc := seedDoc(docs, uuid.New(), constants.StatusProcessing, 0)
	ageDoc(docs, doc.ID, 10*time.Minute)

	stale := docs.get(doc.ID)
	if err := docs.CompleteOCR(context.Background(), doc.ID, stale.Version, map[string]string{"full_text": "done"}); err != nil {
		t.Fatalf("CompleteOCR: %v", err)
	}

	if r.reapOne(context.Background(), stale, 10*time.Minute) {
		t.Fatal("reapOne should report the row as not reset")
	}
	if got := docs.get(doc.ID); got.OCRStatus != constants.StatusCompleted {
		t.Errorf("status = %s, completed result must survive the reaper", got.OCRStatus)
	}
}
