package pipeline

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"

	"github.com/google/uuid"
)

func TestDiagnosticsSnapshot(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	r := NewReporter(docs, logs, 5*time.Minute, nil, slog.New(slog.DiscardHandler))

	caseID := uuid.New()
	seedDoc(docs, caseID, constants.StatusQueued, 0)
	seedDoc(docs, caseID, constants.StatusQueued, 1)
	seedDoc(docs, caseID, constants.StatusCompleted, 0)
	missing := seedDoc(docs, caseID, constants.StatusMissingRemoteFile, 0)
	permanent := seedDoc(docs, caseID, constants.StatusPermanentFailure, 3)

	stuck := seedDoc(docs, caseID, constants.StatusProcessing, 1)
	ageDoc(docs, stuck.ID, 20*time.Minute)

	overdue := seedDoc(docs, caseID, constants.StatusQueued, 2)
	past := time.Now().UTC().Add(-time.Hour)
	overdue.NextRetryAt = &past
	docs.put(overdue)

	msg := "vendor timeout"
	logs.Append(context.Background(), &entity.ProcessingLogEntry{
		DocumentID:   stuck.ID,
		Attempt:      1,
		Phase:        entity.PhaseOCR,
		Outcome:      entity.OutcomeFailed,
		ErrorMessage: &msg,
		StartedAt:    time.Now().UTC(),
	})

	d, err := r.Diagnostics(context.Background())
	if err != nil {
		t.Fatalf("Diagnostics: %v", err)
	}

	if d.QueueDepth != 3 {
		t.Errorf("queue depth = %d, want 3", d.QueueDepth)
	}
	if d.ProcessingCount != 1 {
		t.Errorf("processing = %d, want 1", d.ProcessingCount)
	}
	if d.StuckCount != 1 {
		t.Errorf("stuck = %d, want 1", d.StuckCount)
	}
	if len(d.OverdueRetries) != 1 || d.OverdueRetries[0].ID != overdue.ID {
		t.Errorf("overdue retries = %+v, want the past-due document", d.OverdueRetries)
	}
	if d.TerminalCounts[constants.StatusMissingRemoteFile] != 1 ||
		d.TerminalCounts[constants.StatusPermanentFailure] != 1 {
		t.Errorf("terminal counts = %v", d.TerminalCounts)
	}
	if d.TerminalCounts[constants.StatusCompleted] != 0 {
		t.Error("completed must not be counted as terminal failure")
	}
	if len(d.TerminalDocuments) != 2 {
		t.Fatalf("terminal documents = %d, want 2", len(d.TerminalDocuments))
	}
	terminalIDs := map[uuid.UUID]bool{}
	for _, doc := range d.TerminalDocuments {
		terminalIDs[doc.ID] = true
	}
	if !terminalIDs[missing.ID] || !terminalIDs[permanent.ID] {
		t.Errorf("terminal documents = %v, want the missing-file and permanent rows", terminalIDs)
	}
	if d.RetryDistribution[0] != 3 || d.RetryDistribution[1] != 2 {
		t.Errorf("retry distribution = %v", d.RetryDistribution)
	}
	if len(d.RecentFailures) != 1 || d.RecentFailures[0].DocumentID != stuck.ID {
		t.Errorf("recent failures = %+v", d.RecentFailures)
	}
	if d.GeneratedAt.IsZero() {
		t.Error("snapshot timestamp missing")
	}
}

func TestDiagnosticsEmptyStore(t *testing.T) {
	docs := newFakeDocs()
	logs := &fakeLogs{}
	r := NewReporter(docs, logs, 5*time.Minute, nil, slog.New(slog.DiscardHandler))

	d, err := r.Diagnostics(context.Background())
	if err != nil {
		t.Fatalf("Diagnostics: %v", err)
	}
	if d.QueueDepth != 0 || d.StuckCount != 0 || len(d.OverdueRetries) != 0 {
		t.Errorf("snapshot = %+v, want all zeros", d)
	}
}
