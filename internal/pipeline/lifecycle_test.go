package pipeline

import (
	"context"
	"testing"

	"github.com/kamil-urbanek/docpipe/constants"

	"github.com/google/uuid"
)

// Walks one document through the whole happy path: ingest leaves it
// pending, an enqueue moves it into the queue, a worker sweep extracts
// and completes it, an apply writes the fields onto the case form, and
// a second apply is a no-op.
func TestDocumentLifecyclePendingToApplied(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocs()
	logs := &fakeLogs{}
	store := newFakeStore()
	forms := newFakeForms()
	ext := newFakeExtractor(map[string]string{
		"full_text":      "Application of John Smith",
		"applicant_name": "John Smith",
	})
	w := newTestWorker(docs, logs, store, ext)
	a := newTestApplier(docs, forms, logs)

	caseID := uuid.New()
	doc := seedDoc(docs, caseID, constants.StatusPending, 0)
	store.objects[doc.StoragePath] = []byte("png bytes")

	n, err := docs.EnqueuePending(ctx, caseID, nil)
	if err != nil {
		t.Fatalf("EnqueuePending: %v", err)
	}
	if n != 1 {
		t.Fatalf("enqueued = %d, want 1", n)
	}

	res, err := w.RunSweep(ctx)
	if err != nil {
		t.Fatalf("RunSweep: %v", err)
	}
	if res.Succeeded != 1 || res.Failed != 0 {
		t.Fatalf("sweep result = %+v, want one success", res)
	}

	got := docs.get(doc.ID)
	if got.OCRStatus != constants.StatusCompleted {
		t.Fatalf("status after sweep = %s, want completed", got.OCRStatus)
	}
	if got.ExtractedFields["applicant_name"] != "John Smith" {
		t.Fatalf("extracted fields = %v", got.ExtractedFields)
	}

	applyRes, err := a.ApplyExtractedData(ctx, doc.ID, caseID, false)
	if err != nil {
		t.Fatalf("ApplyExtractedData: %v", err)
	}
	if !applyRes.Success || applyRes.FieldsWritten != 2 || len(applyRes.Conflicts) != 0 {
		t.Fatalf("apply result = %+v, want a clean 2-field apply", applyRes)
	}
	fields, _ := forms.GetFields(ctx, caseID)
	if fields["applicant_name"] != "John Smith" {
		t.Errorf("form fields = %v", fields)
	}
	if got := docs.get(doc.ID); !got.DataApplied {
		t.Error("document should be marked applied")
	}

	again, err := a.ApplyExtractedData(ctx, doc.ID, caseID, false)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if !again.Success || !again.AlreadyApplied || again.FieldsWritten != 0 {
		t.Errorf("second apply = %+v, want already-applied no-op", again)
	}
	if forms.updates != 1 {
		t.Errorf("form updates = %d, want exactly one write", forms.updates)
	}
}
