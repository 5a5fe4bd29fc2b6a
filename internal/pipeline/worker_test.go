package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"

	"github.com/google/uuid"
)

func newTestWorker(docs *fakeDocs, logs *fakeLogs, store *fakeStore, ext *fakeExtractor) *Worker {
	logger := slog.New(slog.DiscardHandler)
	scheduler := NewScheduler(docs, logs, DefaultBackoffPolicy(), logger)
	return NewWorker(docs, logs, store, ext, scheduler, WorkerConfig{BatchSize: 5}, nil, logger)
}

func TestRunSweepCompletesDocument(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	store := newFakeStore()
	ext := newFakeExtractor(map[string]string{
		"full_text":      "Invoice 42",
		"invoice_number": "42",
	})
	w := newTestWorker(docs, logs, store, ext)

	doc := seedDoc(docs, uuid.New(), constants.StatusQueued, 0)
	store.objects[doc.StoragePath] = []byte("png bytes")

	res, err := w.RunSweep(context.Background())
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if res.Processed != 1 || res.Succeeded != 1 || res.Failed != 0 {
		t.Errorf("result = %+v, want 1 processed, 1 succeeded", res)
	}

	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusCompleted {
		t.Errorf("status = %s, want completed", got.OCRStatus)
	}
	if got.ExtractedFields["invoice_number"] != "42" {
		t.Errorf("extracted fields = %v, want invoice_number=42", got.ExtractedFields)
	}
	if got.ErrorMessage != nil {
		t.Errorf("error message = %v, want cleared", got.ErrorMessage)
	}
	if got.DataApplied {
		t.Error("data_applied should stay false until an explicit apply")
	}

	entries := logs.byPhase(entity.PhaseOCR)
	if len(entries) != 1 || entries[0].Outcome != entity.OutcomeSucceeded {
		t.Errorf("audit entries = %+v, want one succeeded entry", entries)
	}
}

func TestRunSweepIsolatesFailures(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	store := newFakeStore()
	ext := newFakeExtractor(map[string]string{"full_text": "ok"})
	w := newTestWorker(docs, logs, store, ext)

	caseID := uuid.New()
	var bad *entity.Document
	for i := 0; i < 5; i++ {
		doc := seedDoc(docs, caseID, constants.StatusQueued, 0)
		content := []byte(doc.StoragePath)
		store.objects[doc.StoragePath] = content
		if i == 2 {
			bad = doc
			ext.fail[string(content)] = errors.New("vendor 503")
		}
	}

	res, err := w.RunSweep(context.Background())
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if res.Processed != 5 || res.Succeeded != 4 || res.Failed != 1 {
		t.Errorf("result = %+v, want 5/4/1", res)
	}

	got := docs.get(bad.ID)
	if got.OCRStatus != constants.StatusQueued {
		t.Errorf("failed doc status = %s, want requeued", got.OCRStatus)
	}
	if got.RetryCount != 1 {
		t.Errorf("failed doc retry count = %d, want 1", got.RetryCount)
	}
	if got.NextRetryAt == nil || !got.NextRetryAt.After(time.Now()) {
		t.Errorf("failed doc next retry at = %v, want in the future", got.NextRetryAt)
	}

	counts, _ := docs.CountByStatus(context.Background())
	if counts[constants.StatusCompleted] != 4 {
		t.Errorf("completed = %d, want 4", counts[constants.StatusCompleted])
	}
	if counts[constants.StatusProcessing] != 0 {
		t.Errorf("processing = %d, want 0 after sweep", counts[constants.StatusProcessing])
	}
}

func TestRunSweepMissingFileIsTerminalRegardlessOfBudget(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	store := newFakeStore()
	ext := newFakeExtractor(map[string]string{"full_text": "ok"})
	w := newTestWorker(docs, logs, store, ext)

	doc := seedDoc(docs, uuid.New(), constants.StatusQueued, 0)
	store.missing[doc.StoragePath] = true

	if _, err := w.RunSweep(context.Background()); err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusMissingRemoteFile {
		t.Errorf("status = %s, want missing_remote_file on first attempt", got.OCRStatus)
	}
	if got.ErrorMessage == nil {
		t.Error("error message should carry the download failure")
	}
}

func TestRunSweepUnsupportedExtensionIsPermanent(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	store := newFakeStore()
	ext := newFakeExtractor(map[string]string{"full_text": "ok"})
	w := newTestWorker(docs, logs, store, ext)

	doc := seedDoc(docs, uuid.New(), constants.StatusQueued, 0)
	doc.FileExt = "docx"
	docs.put(doc)
	store.objects[doc.StoragePath] = []byte("zip bytes")

	if _, err := w.RunSweep(context.Background()); err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusPermanentFailure {
		t.Errorf("status = %s, want permanent_failure", got.OCRStatus)
	}
	if got.RetryCount != 0 {
		t.Errorf("retry count = %d, want 0 for a non-budget failure", got.RetryCount)
	}
}

func TestRunSweepMalformedPayloadIsTransient(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	store := newFakeStore()
	// "Bad-Key" breaks the snake_case property-name rule
	ext := newFakeExtractor(map[string]string{"Bad-Key": "x"})
	w := newTestWorker(docs, logs, store, ext)

	doc := seedDoc(docs, uuid.New(), constants.StatusQueued, 0)
	store.objects[doc.StoragePath] = []byte("png bytes")

	if _, err := w.RunSweep(context.Background()); err != nil {
		t.Fatalf("RunSweep: %v", err)
	}

	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusQueued {
		t.Errorf("status = %s, want requeued as transient", got.OCRStatus)
	}
	if got.RetryCount != 1 {
		t.Errorf("retry count = %d, want 1", got.RetryCount)
	}
}

func TestRunSweepSkipsNotDueRetries(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	store := newFakeStore()
	ext := newFakeExtractor(map[string]string{"full_text": "ok"})
	w := newTestWorker(docs, logs, store, ext)

	doc := seedDoc(docs, uuid.New(), constants.StatusQueued, 1)
	due := time.Now().Add(time.Hour)
	doc.NextRetryAt = &due
	docs.put(doc)
	store.objects[doc.StoragePath] = []byte("png bytes")

	res, err := w.RunSweep(context.Background())
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if res.Processed != 0 {
		t.Errorf("processed = %d, want 0 for a not-yet-due retry", res.Processed)
	}
	if got := docs.get(doc.ID); got.OCRStatus != constants.StatusQueued {
		t.Errorf("status = %s, want still queued", got.OCRStatus)
	}
	if ext.calls != 0 {
		t.Errorf("extractor calls = %d, want 0", ext.calls)
	}
}

func TestRunSweepDiscardsResultAfterConcurrentReset(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	store := newFakeStore()
	ext := newFakeExtractor(map[string]string{"full_text": "ok"})
	w := newTestWorker(docs, logs, store, ext)

	doc := seedDoc(docs, uuid.New(), constants.StatusQueued, 0)
	store.objects[doc.StoragePath] = []byte("png bytes")

	// While extraction runs, the reaper judges the row stuck and requeues
	// it, charging one retry against the budget. The claim bumped the row
	// to version 2, which is what the reaper sees.
	ext.hook = func() {
		due := time.Now().UTC()
		if err := docs.RequeueForRetry(context.Background(), doc.ID, 2, 1, due, "processing timed out, requeued"); err != nil {
			t.Errorf("requeue during extraction: %v", err)
		}
	}

	res, err := w.RunSweep(context.Background())
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if res.Processed != 1 || res.Succeeded != 0 || res.Failed != 1 {
		t.Errorf("result = %+v, want the attempt counted as failed", res)
	}

	// The reaper's increment stands alone: a second charge for the same
	// hang would burn the budget twice.
	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusQueued {
		t.Errorf("status = %s, want still queued as the reaper left it", got.OCRStatus)
	}
	if got.RetryCount != 1 {
		t.Errorf("retry count = %d, want 1", got.RetryCount)
	}

	for _, e := range logs.byPhase(entity.PhaseOCR) {
		if e.Outcome == entity.OutcomeRequeued {
			t.Errorf("worker scheduled a retry on top of the reaper's: %+v", e)
		}
	}
}

func TestRunSweepBoundsAttemptDuration(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	store := newFakeStore()
	ext := newFakeExtractor(nil)
	ext.block = true
	logger := slog.New(slog.DiscardHandler)
	scheduler := NewScheduler(docs, logs, DefaultBackoffPolicy(), logger)
	w := NewWorker(docs, logs, store, ext, scheduler, WorkerConfig{
		BatchSize: 5,
		OpTimeout: 20 * time.Millisecond,
	}, nil, logger)

	doc := seedDoc(docs, uuid.New(), constants.StatusQueued, 0)
	store.objects[doc.StoragePath] = []byte("png bytes")

	// The extractor never returns on its own; without the deadline this
	// sweep would hang forever.
	res, err := w.RunSweep(context.Background())
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if res.Failed != 1 {
		t.Errorf("result = %+v, want the timed-out attempt counted as failed", res)
	}

	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusQueued {
		t.Errorf("status = %s, want requeued as transient", got.OCRStatus)
	}
	if got.RetryCount != 1 {
		t.Errorf("retry count = %d, want 1", got.RetryCount)
	}
}

func TestEnqueuePendingOnlyTouchesPending(t *testing.T) {
	docs := newFakeDocs()
	caseID := uuid.New()

	pending := seedDoc(docs, caseID, constants.StatusPending, 0)
	seedDoc(docs, caseID, constants.StatusCompleted, 0)
	seedDoc(docs, uuid.New(), constants.StatusPending, 0) // other case

	n, err := docs.EnqueuePending(context.Background(), caseID, nil)
	if err != nil {
		t.Fatalf("EnqueuePending: %v", err)
	}
	if n != 1 {
		t.Errorf("enqueued = %d, want 1", n)
	}
	if got := docs.get(pending.ID); got.OCRStatus != constants.StatusQueued {
		t.Errorf("status = %s, want queued", got.OCRStatus)
	}
}
