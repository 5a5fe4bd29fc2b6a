package entdb

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/gen/ent"
	entdoc "github.com/kamil-urbanek/docpipe/gen/ent/document"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) repository.DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	create := r.ent.Document.Create().
		SetCaseID(doc.CaseID).
		SetStoragePath(doc.StoragePath).
		SetFilename(doc.Filename).
		SetFileExt(doc.FileExt)
	if doc.ID != uuid.Nil {
		create = create.SetID(doc.ID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "case_id", doc.CaseID, "storage_path", doc.StoragePath, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "case_id", row.CaseID, "filename", row.Filename)
	return toEntity(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return toEntity(row), nil
}

func (r *documentRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.CaseID(caseID), entdoc.DeletedAtIsNil()).
		Order(ent.Asc(entdoc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents by case", "case_id", caseID, "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *documentRepo) EnqueuePending(ctx context.Context, caseID uuid.UUID, ids []uuid.UUID) (int, error) {
	q := r.ent.Document.Update().
		Where(
			entdoc.CaseID(caseID),
			entdoc.OcrStatusEQ(string(constants.StatusPending)),
			entdoc.DeletedAtIsNil(),
		)
	if len(ids) > 0 {
		q = q.Where(entdoc.IDIn(ids...))
	}
	n, err := q.
		SetOcrStatus(string(constants.StatusQueued)).
		ClearOcrNextRetryAt().
		AddVersion(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to enqueue pending documents", "case_id", caseID, "error", err)
		return 0, err
	}
	r.logger.Info("documents enqueued for OCR", "case_id", caseID, "count", n)
	return n, nil
}

// ClaimQueued selects due queued rows, then claims each with a conditional
// update on (id, version, status). A row another invocation claimed first
// updates zero rows and is skipped, so no document is ever processed twice
// concurrently.
func (r *documentRepo) ClaimQueued(ctx context.Context, limit int, now time.Time) ([]*entity.Document, error) {
	candidates, err := r.ent.Document.Query().
		Where(
			entdoc.OcrStatusEQ(string(constants.StatusQueued)),
			entdoc.Or(
				entdoc.OcrNextRetryAtIsNil(),
				entdoc.OcrNextRetryAtLTE(now),
			),
			entdoc.DeletedAtIsNil(),
		).
		Order(ent.Asc(entdoc.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to query queued documents", "error", err)
		return nil, err
	}

	claimed := make([]*entity.Document, 0, len(candidates))
	for _, row := range candidates {
		n, err := r.ent.Document.Update().
			Where(
				entdoc.ID(row.ID),
				entdoc.VersionEQ(row.Version),
				entdoc.OcrStatusEQ(string(constants.StatusQueued)),
			).
			SetOcrStatus(string(constants.StatusProcessing)).
			AddVersion(1).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to claim document", "document_id", row.ID, "error", err)
			continue
		}
		if n == 0 {
			// lost the claim to a concurrent worker
			r.logger.Debug("claim lost to concurrent worker", "document_id", row.ID)
			continue
		}
		doc := toEntity(row)
		doc.OCRStatus = constants.StatusProcessing
		doc.Version = row.Version + 1
		claimed = append(claimed, doc)
	}
	return claimed, nil
}

func (r *documentRepo) CompleteOCR(ctx context.Context, id uuid.UUID, version int, fields map[string]string) error {
	n, err := r.ent.Document.Update().
		Where(entdoc.ID(id), entdoc.VersionEQ(version)).
		SetOcrStatus(string(constants.StatusCompleted)).
		SetExtractedFields(fields).
		ClearOcrErrorMessage().
		ClearOcrNextRetryAt().
		AddVersion(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to complete OCR", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return repository.ErrVersionConflict
	}
	r.logger.Info("document OCR completed", "document_id", id, "fields", len(fields))
	return nil
}

func (r *documentRepo) RequeueForRetry(ctx context.Context, id uuid.UUID, version, retryCount int, nextRetryAt time.Time, message string) error {
	n, err := r.ent.Document.Update().
		Where(entdoc.ID(id), entdoc.VersionEQ(version)).
		SetOcrStatus(string(constants.StatusQueued)).
		SetOcrRetryCount(retryCount).
		SetOcrNextRetryAt(nextRetryAt).
		SetOcrErrorMessage(message).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to requeue document", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return repository.ErrVersionConflict
	}
	r.logger.Warn("document requeued for retry", "document_id", id, "retry_count", retryCount, "next_retry_at", nextRetryAt)
	return nil
}

func (r *documentRepo) MarkTerminal(ctx context.Context, id uuid.UUID, version, retryCount int, status constants.OCRStatus, message string) error {
	n, err := r.ent.Document.Update().
		Where(entdoc.ID(id), entdoc.VersionEQ(version)).
		SetOcrStatus(string(status)).
		SetOcrRetryCount(retryCount).
		SetOcrErrorMessage(message).
		ClearOcrNextRetryAt().
		AddVersion(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document terminal", "document_id", id, "status", status, "error", err)
		return err
	}
	if n == 0 {
		return repository.ErrVersionConflict
	}
	r.logger.Warn("document parked in terminal state", "document_id", id, "status", status, "error_message", message)
	return nil
}

func (r *documentRepo) MarkApplied(ctx context.Context, id uuid.UUID, version int) error {
	n, err := r.ent.Document.Update().
		Where(
			entdoc.ID(id),
			entdoc.VersionEQ(version),
			entdoc.OcrStatusEQ(string(constants.StatusCompleted)),
		).
		SetDataAppliedToForms(true).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark document applied", "document_id", id, "error", err)
		return err
	}
	if n == 0 {
		return repository.ErrVersionConflict
	}
	return nil
}

func (r *documentRepo) AdminRequeue(ctx context.Context, id uuid.UUID) error {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return repository.ErrNotFound
		}
		return err
	}
	if !constants.OCRStatus(row.OcrStatus).IsTerminal() {
		return repository.ErrNotFound
	}
	n, err := r.ent.Document.Update().
		Where(entdoc.ID(id), entdoc.VersionEQ(row.Version)).
		SetOcrStatus(string(constants.StatusQueued)).
		SetOcrRetryCount(0).
		ClearOcrNextRetryAt().
		ClearOcrErrorMessage().
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrVersionConflict
	}
	r.logger.Info("terminal document requeued by administrator", "document_id", id)
	return nil
}

func (r *documentRepo) ListStuck(ctx context.Context, olderThan time.Time) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(
			entdoc.OcrStatusEQ(string(constants.StatusProcessing)),
			entdoc.UpdatedAtLT(olderThan),
			entdoc.DeletedAtIsNil(),
		).
		Order(ent.Asc(entdoc.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list stuck documents", "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *documentRepo) ListEligibleForApply(ctx context.Context, caseID uuid.UUID) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(
			entdoc.CaseID(caseID),
			entdoc.OcrStatusEQ(string(constants.StatusCompleted)),
			entdoc.DataAppliedToForms(false),
			entdoc.DeletedAtIsNil(),
		).
		Order(ent.Asc(entdoc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents eligible for apply", "case_id", caseID, "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *documentRepo) ListOverdueRetries(ctx context.Context, now time.Time) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(
			entdoc.OcrStatusIn(
				string(constants.StatusPending),
				string(constants.StatusQueued),
				string(constants.StatusProcessing),
			),
			entdoc.OcrNextRetryAtNotNil(),
			entdoc.OcrNextRetryAtLT(now),
			entdoc.DeletedAtIsNil(),
		).
		Order(ent.Asc(entdoc.FieldOcrNextRetryAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list overdue retries", "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *documentRepo) ListTerminal(ctx context.Context) ([]*entity.Document, error) {
	statuses := make([]string, 0, len(constants.TerminalStatuses))
	for _, s := range constants.TerminalStatuses {
		statuses = append(statuses, string(s))
	}
	rows, err := r.ent.Document.Query().
		Where(entdoc.OcrStatusIn(statuses...), entdoc.DeletedAtIsNil()).
		Order(ent.Asc(entdoc.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list terminal documents", "error", err)
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *documentRepo) CountByStatus(ctx context.Context) (map[constants.OCRStatus]int, error) {
	var rows []struct {
		Status string `json:"ocr_status"`
		Count  int    `json:"count"`
	}
	err := r.ent.Document.Query().
		Where(entdoc.DeletedAtIsNil()).
		GroupBy(entdoc.FieldOcrStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("failed to count documents by status", "error", err)
		return nil, err
	}
	out := make(map[constants.OCRStatus]int, len(rows))
	for _, row := range rows {
		out[constants.OCRStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *documentRepo) RetryDistribution(ctx context.Context) (map[int]int, error) {
	var rows []struct {
		RetryCount int `json:"ocr_retry_count"`
		Count      int `json:"count"`
	}
	err := r.ent.Document.Query().
		Where(entdoc.DeletedAtIsNil()).
		GroupBy(entdoc.FieldOcrRetryCount).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("failed to compute retry distribution", "error", err)
		return nil, err
	}
	out := make(map[int]int, len(rows))
	for _, row := range rows {
		out[row.RetryCount] = row.Count
	}
	return out, nil
}

func (r *documentRepo) SoftDeleteByCase(ctx context.Context, caseID uuid.UUID) (int, error) {
	n, err := r.ent.Document.Update().
		Where(entdoc.CaseID(caseID), entdoc.DeletedAtIsNil()).
		SetDeletedAt(time.Now().UTC()).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to soft-delete case documents", "case_id", caseID, "error", err)
		return 0, err
	}
	r.logger.Info("case documents tombstoned", "case_id", caseID, "count", n)
	return n, nil
}

func toEntity(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:              row.ID,
		CaseID:          row.CaseID,
		StoragePath:     row.StoragePath,
		Filename:        row.Filename,
		FileExt:         row.FileExt,
		OCRStatus:       constants.OCRStatus(row.OcrStatus),
		RetryCount:      row.OcrRetryCount,
		NextRetryAt:     row.OcrNextRetryAt,
		ErrorMessage:    row.OcrErrorMessage,
		DataApplied:     row.DataAppliedToForms,
		ExtractedFields: row.ExtractedFields,
		Version:         row.Version,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		DeletedAt:       row.DeletedAt,
	}
}

func toEntities(rows []*ent.Document) []*entity.Document {
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntity(row))
	}
	return out
}
