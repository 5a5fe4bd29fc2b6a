package pipeline

import (
	"context"
	"log/slog"
	"testing"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"

	"github.com/google/uuid"
)

func newTestBatchApplier(docs *fakeDocs, forms *fakeForms, logs *fakeLogs) *BatchApplier {
	logger := slog.New(slog.DiscardHandler)
	applier := NewApplier(docs, forms, logs, nil, logger)
	return NewBatchApplier(docs, applier, WorkerConfig{BatchSize: 5}, logger)
}

func TestBatchApplyNothingToApply(t *testing.T) {
	docs := newFakeDocs()
	b := newTestBatchApplier(docs, newFakeForms(), &fakeLogs{})

	caseID := uuid.New()
	seedDoc(docs, caseID, constants.StatusPending, 0)
	applied := seedCompleted(docs, caseID, map[string]string{"full_text": "x"})
	applied.DataApplied = true
	docs.put(applied)

	res, err := b.BatchApply(context.Background(), caseID)
	if err != nil {
		t.Fatalf("BatchApply: %v", err)
	}
	if res.Outcome != entity.BatchNothingToApply {
		t.Errorf("outcome = %s, want nothing-to-apply", res.Outcome)
	}
	if res.Eligible != 0 || res.Message == "" {
		t.Errorf("result = %+v, want zero eligible with an explanatory message", res)
	}
}

func TestBatchApplyFullSuccess(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	b := newTestBatchApplier(docs, forms, &fakeLogs{})

	caseID := uuid.New()
	seedCompleted(docs, caseID, map[string]string{"applicant_name": "John Smith"})
	seedCompleted(docs, caseID, map[string]string{"case_number": "A-100"})

	res, err := b.BatchApply(context.Background(), caseID)
	if err != nil {
		t.Fatalf("BatchApply: %v", err)
	}
	if res.Outcome != entity.BatchFullSuccess {
		t.Errorf("outcome = %s, want full success", res.Outcome)
	}
	if res.Applied != 2 || res.Conflicted != 0 || res.Failed != 0 {
		t.Errorf("result = %+v", res)
	}

	fields, _ := forms.GetFields(context.Background(), caseID)
	if fields["applicant_name"] != "John Smith" || fields["case_number"] != "A-100" {
		t.Errorf("form fields = %v", fields)
	}
	for _, doc := range mustList(t, docs, caseID) {
		if !doc.DataApplied {
			t.Errorf("document %s not marked applied", doc.ID)
		}
	}
}

func TestBatchApplyPartialSuccessOnConflicts(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	b := newTestBatchApplier(docs, forms, &fakeLogs{})

	caseID := uuid.New()
	forms.fields[caseID] = map[string]string{"applicant_name": "Jon Smith"}
	seedCompleted(docs, caseID, map[string]string{"applicant_name": "John Smith"})
	seedCompleted(docs, caseID, map[string]string{"case_number": "A-100"})

	res, err := b.BatchApply(context.Background(), caseID)
	if err != nil {
		t.Fatalf("BatchApply: %v", err)
	}
	if res.Outcome != entity.BatchPartialSuccess {
		t.Errorf("outcome = %s, want partial success", res.Outcome)
	}
	if res.Applied != 1 || res.Conflicted != 1 {
		t.Errorf("result = %+v", res)
	}
}

func TestBatchApplyFailureDominant(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	b := newTestBatchApplier(docs, forms, &fakeLogs{})

	caseID := uuid.New()
	// invalid payloads make the per-document apply fail outright
	bad1 := seedCompleted(docs, caseID, map[string]string{"Bad-Key": "x"})
	bad2 := seedCompleted(docs, caseID, map[string]string{})
	seedCompleted(docs, caseID, map[string]string{"case_number": "A-100"})

	res, err := b.BatchApply(context.Background(), caseID)
	if err != nil {
		t.Fatalf("BatchApply: %v", err)
	}
	if res.Outcome != entity.BatchFailureDominant {
		t.Errorf("outcome = %s, want failure dominant", res.Outcome)
	}
	if res.Failed != 2 || res.Applied != 1 {
		t.Errorf("result = %+v", res)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("errors = %+v, want two per-document errors", res.Errors)
	}
	seen := map[uuid.UUID]bool{}
	for _, e := range res.Errors {
		seen[e.DocumentID] = true
	}
	if !seen[bad1.ID] || !seen[bad2.ID] {
		t.Errorf("errors name %v, want %s and %s", res.Errors, bad1.ID, bad2.ID)
	}
	// the healthy sibling still landed
	fields, _ := forms.GetFields(context.Background(), caseID)
	if fields["case_number"] != "A-100" {
		t.Errorf("form fields = %v, want the healthy document applied", fields)
	}
}

func mustList(t *testing.T, docs *fakeDocs, caseID uuid.UUID) []*entity.Document {
	t.Helper()
	out, err := docs.ListByCase(context.Background(), caseID)
	if err != nil {
		t.Fatalf("ListByCase: %v", err)
	}
	return out
}
