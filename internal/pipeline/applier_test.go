package pipeline

import (
	"context"
	"log/slog"
	"testing"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"

	"github.com/google/uuid"
)

func newTestApplier(docs *fakeDocs, forms *fakeForms, logs *fakeLogs) *Applier {
	return NewApplier(docs, forms, logs, nil, slog.New(slog.DiscardHandler))
}

func seedCompleted(docs *fakeDocs, caseID uuid.UUID, fields map[string]string) *entity.Document {
	doc := seedDoc(docs, caseID, constants.StatusCompleted, 0)
	doc.ExtractedFields = fields
	docs.put(doc)
	return doc
}

func TestApplyFillsEmptyFields(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	logs := &fakeLogs{}
	a := newTestApplier(docs, forms, logs)

	caseID := uuid.New()
	doc := seedCompleted(docs, caseID, map[string]string{
		"applicant_name": "John Smith",
		"date_of_birth":  "1990-04-01",
	})

	res, err := a.ApplyExtractedData(context.Background(), doc.ID, caseID, false)
	if err != nil {
		t.Fatalf("ApplyExtractedData: %v", err)
	}
	if !res.Success || res.FieldsWritten != 2 || len(res.Conflicts) != 0 {
		t.Errorf("result = %+v, want clean 2-field apply", res)
	}

	fields, _ := forms.GetFields(context.Background(), caseID)
	if fields["applicant_name"] != "John Smith" || fields["date_of_birth"] != "1990-04-01" {
		t.Errorf("form fields = %v", fields)
	}
	if got := docs.get(doc.ID); !got.DataApplied {
		t.Error("document should be marked applied")
	}
}

func TestApplyDetectsConflictWithoutOverwriting(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	logs := &fakeLogs{}
	a := newTestApplier(docs, forms, logs)

	caseID := uuid.New()
	forms.fields[caseID] = map[string]string{"applicant_name": "Jon Smith"}
	doc := seedCompleted(docs, caseID, map[string]string{
		"applicant_name": "John Smith",
		"case_number":    "A-100",
	})

	res, err := a.ApplyExtractedData(context.Background(), doc.ID, caseID, false)
	if err != nil {
		t.Fatalf("ApplyExtractedData: %v", err)
	}
	if !res.Success {
		t.Error("conflicts are reported, not fatal")
	}
	if res.FieldsWritten != 1 {
		t.Errorf("fields written = %d, want only the non-conflicting one", res.FieldsWritten)
	}
	if len(res.Conflicts) != 1 {
		t.Fatalf("conflicts = %+v, want exactly one", res.Conflicts)
	}
	c := res.Conflicts[0]
	if c.Field != "applicant_name" || c.Existing != "Jon Smith" || c.Incoming != "John Smith" || c.Overwritten {
		t.Errorf("conflict = %+v", c)
	}

	fields, _ := forms.GetFields(context.Background(), caseID)
	if fields["applicant_name"] != "Jon Smith" {
		t.Errorf("manual value was overwritten: %v", fields)
	}
	if fields["case_number"] != "A-100" {
		t.Errorf("non-conflicting field missing: %v", fields)
	}
}

func TestApplyOverwriteManualReplacesAndReports(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	logs := &fakeLogs{}
	a := newTestApplier(docs, forms, logs)

	caseID := uuid.New()
	forms.fields[caseID] = map[string]string{"applicant_name": "Jon Smith"}
	doc := seedCompleted(docs, caseID, map[string]string{"applicant_name": "John Smith"})

	res, err := a.ApplyExtractedData(context.Background(), doc.ID, caseID, true)
	if err != nil {
		t.Fatalf("ApplyExtractedData: %v", err)
	}
	if len(res.Conflicts) != 1 || !res.Conflicts[0].Overwritten {
		t.Errorf("conflicts = %+v, want one overwritten conflict for the audit trail", res.Conflicts)
	}
	fields, _ := forms.GetFields(context.Background(), caseID)
	if fields["applicant_name"] != "John Smith" {
		t.Errorf("form fields = %v, want overwritten value", fields)
	}
}

func TestApplyMatchingValueIsNotAConflict(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	logs := &fakeLogs{}
	a := newTestApplier(docs, forms, logs)

	caseID := uuid.New()
	forms.fields[caseID] = map[string]string{"applicant_name": "John Smith"}
	doc := seedCompleted(docs, caseID, map[string]string{"applicant_name": "John Smith"})

	res, err := a.ApplyExtractedData(context.Background(), doc.ID, caseID, false)
	if err != nil {
		t.Fatalf("ApplyExtractedData: %v", err)
	}
	if len(res.Conflicts) != 0 || res.FieldsWritten != 0 {
		t.Errorf("result = %+v, want no conflicts and no writes", res)
	}
	if !res.Success {
		t.Error("agreement should still count as success")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	logs := &fakeLogs{}
	a := newTestApplier(docs, forms, logs)

	caseID := uuid.New()
	doc := seedCompleted(docs, caseID, map[string]string{"applicant_name": "John Smith"})

	if _, err := a.ApplyExtractedData(context.Background(), doc.ID, caseID, false); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	updatesAfterFirst := forms.updates

	res, err := a.ApplyExtractedData(context.Background(), doc.ID, caseID, false)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if !res.Success || !res.AlreadyApplied {
		t.Errorf("result = %+v, want already-applied no-op", res)
	}
	if res.FieldsWritten != 0 {
		t.Errorf("fields written = %d, want 0", res.FieldsWritten)
	}
	if forms.updates != updatesAfterFirst {
		t.Error("second apply must not touch the form")
	}
}

func TestApplyRejectsWrongState(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	logs := &fakeLogs{}
	a := newTestApplier(docs, forms, logs)

	caseID := uuid.New()
	for _, status := range []constants.OCRStatus{
		constants.StatusPending,
		constants.StatusQueued,
		constants.StatusProcessing,
		constants.StatusPermanentFailure,
	} {
		doc := seedDoc(docs, caseID, status, 0)
		if _, err := a.ApplyExtractedData(context.Background(), doc.ID, caseID, false); err == nil {
			t.Errorf("apply on %s document should fail", status)
		}
	}
	if forms.updates != 0 {
		t.Error("no form writes should have happened")
	}
}

func TestApplyRejectsCaseMismatch(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	logs := &fakeLogs{}
	a := newTestApplier(docs, forms, logs)

	doc := seedCompleted(docs, uuid.New(), map[string]string{"applicant_name": "John Smith"})

	if _, err := a.ApplyExtractedData(context.Background(), doc.ID, uuid.New(), false); err == nil {
		t.Fatal("apply against the wrong case should fail")
	}
}

func TestApplyAuditsTheOperation(t *testing.T) {
	docs := newFakeDocs()
	forms := newFakeForms()
	logs := &fakeLogs{}
	a := newTestApplier(docs, forms, logs)

	caseID := uuid.New()
	doc := seedCompleted(docs, caseID, map[string]string{"applicant_name": "John Smith"})

	if _, err := a.ApplyExtractedData(context.Background(), doc.ID, caseID, false); err != nil {
		t.Fatalf("ApplyExtractedData: %v", err)
	}
	entries := logs.byPhase(entity.PhaseApply)
	if len(entries) != 1 || entries[0].Outcome != entity.OutcomeApplied {
		t.Errorf("audit entries = %+v, want one applied entry", entries)
	}
}
