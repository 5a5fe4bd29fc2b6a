package server

import (
	"time"

	docpipev1 "github.com/kamil-urbanek/docpipe/gen/proto/docpipe/v1"
	"github.com/kamil-urbanek/docpipe/internal/entity"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func toPBDocument(d *entity.Document) *docpipev1.Document {
	out := &docpipev1.Document{
		Id:                 d.ID.String(),
		CaseId:             d.CaseID.String(),
		StoragePath:        d.StoragePath,
		Filename:           d.Filename,
		FileExt:            d.FileExt,
		OcrStatus:          string(d.OCRStatus),
		RetryCount:         int32(d.RetryCount),
		DataAppliedToForms: d.DataApplied,
		ExtractedFields:    d.ExtractedFields,
		Version:            int32(d.Version),
		CreatedAt:          formatTime(d.CreatedAt),
		UpdatedAt:          formatTime(d.UpdatedAt),
	}
	if d.NextRetryAt != nil {
		out.NextRetryAt = formatTime(*d.NextRetryAt)
	}
	if d.ErrorMessage != nil {
		out.ErrorMessage = *d.ErrorMessage
	}
	return out
}

func toPBLogEntry(e *entity.ProcessingLogEntry) *docpipev1.ProcessingLogEntry {
	out := &docpipev1.ProcessingLogEntry{
		DocumentId: e.DocumentID.String(),
		Attempt:    int32(e.Attempt),
		Phase:      e.Phase,
		Outcome:    e.Outcome,
		StartedAt:  formatTime(e.StartedAt),
	}
	if e.ErrorMessage != nil {
		out.ErrorMessage = *e.ErrorMessage
	}
	if e.FinishedAt != nil {
		out.FinishedAt = formatTime(*e.FinishedAt)
	}
	return out
}
