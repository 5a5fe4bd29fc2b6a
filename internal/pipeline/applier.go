package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/common"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/extract"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

// Applier merges a document's completed OCR payload into its case form
// without silently overwriting human-entered data.
type Applier struct {
	docs    repository.DocumentRepository
	forms   repository.FormRepository
	logs    repository.ProcessingLogRepository
	metrics *Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewApplier(
	docs repository.DocumentRepository,
	forms repository.FormRepository,
	logs repository.ProcessingLogRepository,
	metrics *Metrics,
	logger *slog.Logger,
) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{docs: docs, forms: forms, logs: logs, metrics: metrics, logger: logger, now: time.Now}
}

// ApplyExtractedData merges one document's extracted fields into the case
// form. Empty target fields take the extracted value; a differing
// non-empty value becomes a FieldConflict and is only overwritten when
// overwriteManual is set (and still reported, for the audit trail).
// All field writes for the document land atomically or not at all.
// Reapplying an already-applied document is a no-op unless overwriteManual
// explicitly re-confirms it.
func (a *Applier) ApplyExtractedData(ctx context.Context, documentID, caseID uuid.UUID, overwriteManual bool) (entity.ApplyResult, error) {
	res := entity.ApplyResult{DocumentID: documentID, Conflicts: []entity.FieldConflict{}}

	doc, err := a.docs.GetByID(ctx, documentID)
	if err != nil {
		return res, fmt.Errorf("load document: %w", err)
	}
	if doc.CaseID != caseID {
		return res, common.NewAppError("APPLY_ERROR", "document does not belong to case", common.ErrInvalidInput)
	}
	if doc.OCRStatus != constants.StatusCompleted {
		return res, common.NewAppError("APPLY_ERROR",
			fmt.Sprintf("document is %s, not completed", doc.OCRStatus), common.ErrInvalidInput)
	}

	// idempotency guard: reapplying is safe and side-effect free
	if doc.DataApplied && !overwriteManual {
		res.Success = true
		res.AlreadyApplied = true
		return res, nil
	}

	if err := extract.ValidatePayload(doc.ExtractedFields); err != nil {
		return res, common.NewAppError("APPLY_ERROR", "extracted payload failed validation", err)
	}

	existing, err := a.forms.GetFields(ctx, caseID)
	if err != nil {
		return res, fmt.Errorf("load case form: %w", err)
	}

	writes := make(map[string]string)
	for field, incoming := range doc.ExtractedFields {
		current, ok := existing[field]
		switch {
		case !ok || current == "":
			writes[field] = incoming
		case current == incoming:
			// already in agreement, nothing to do
		default:
			conflict := entity.FieldConflict{
				Field:    field,
				Existing: current,
				Incoming: incoming,
			}
			if overwriteManual {
				conflict.Overwritten = true
				writes[field] = incoming
			}
			res.Conflicts = append(res.Conflicts, conflict)
		}
	}

	if len(writes) > 0 {
		if err := a.forms.UpdateFields(ctx, caseID, writes); err != nil {
			return res, fmt.Errorf("update case form: %w", err)
		}
		res.FieldsWritten = len(writes)
	}

	if !doc.DataApplied {
		err = a.docs.MarkApplied(ctx, doc.ID, doc.Version)
		if errors.Is(err, repository.ErrVersionConflict) {
			// re-read once; a concurrent apply of the same document may
			// have marked it already
			fresh, gerr := a.docs.GetByID(ctx, doc.ID)
			if gerr != nil || !fresh.DataApplied {
				return res, fmt.Errorf("mark document applied: %w", err)
			}
		} else if err != nil {
			return res, fmt.Errorf("mark document applied: %w", err)
		}
	}

	res.Success = true
	a.metrics.conflicts(len(res.Conflicts))
	a.audit(ctx, doc, len(writes), res.Conflicts)
	a.logger.Info("extracted data applied",
		"document_id", doc.ID, "case_id", caseID,
		"fields_written", res.FieldsWritten, "conflicts", len(res.Conflicts), "overwrite_manual", overwriteManual)
	return res, nil
}

func (a *Applier) audit(ctx context.Context, doc *entity.Document, written int, conflicts []entity.FieldConflict) {
	started := a.now().UTC()
	entry := &entity.ProcessingLogEntry{
		DocumentID: doc.ID,
		Attempt:    doc.RetryCount,
		Phase:      entity.PhaseApply,
		Outcome:    entity.OutcomeApplied,
		StartedAt:  started,
		FinishedAt: &started,
	}
	if len(conflicts) > 0 {
		msg := fmt.Sprintf("%d field(s) written, %d conflict(s)", written, len(conflicts))
		entry.ErrorMessage = &msg
	}
	if err := a.logs.Append(ctx, entry); err != nil {
		a.logger.Error("failed to record apply", "document_id", doc.ID, "error", err)
	}
}
