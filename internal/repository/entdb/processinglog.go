package entdb

import (
	"context"
	"log/slog"

	"github.com/kamil-urbanek/docpipe/gen/ent"
	entlog "github.com/kamil-urbanek/docpipe/gen/ent/processinglog"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

type processingLogRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewProcessingLogRepository(entc *ent.Client, logger *slog.Logger) repository.ProcessingLogRepository {
	return &processingLogRepo{ent: entc, logger: logger}
}

func (r *processingLogRepo) Append(ctx context.Context, e *entity.ProcessingLogEntry) error {
	create := r.ent.ProcessingLog.Create().
		SetDocumentID(e.DocumentID).
		SetAttempt(e.Attempt).
		SetPhase(e.Phase).
		SetOutcome(e.Outcome).
		SetStartedAt(e.StartedAt)
	if e.ErrorMessage != nil {
		create = create.SetErrorMessage(*e.ErrorMessage)
	}
	if e.FinishedAt != nil {
		create = create.SetFinishedAt(*e.FinishedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		// The audit trail must not mask the primary outcome; callers log
		// and continue on append failure.
		r.logger.Error("failed to append processing log entry", "document_id", e.DocumentID, "phase", e.Phase, "error", err)
		return err
	}
	return nil
}

func (r *processingLogRepo) ListRecentFailures(ctx context.Context, limit int) ([]*entity.ProcessingLogEntry, error) {
	rows, err := r.ent.ProcessingLog.Query().
		Where(entlog.OutcomeIn(entity.OutcomeFailed, entity.OutcomeTerminal)).
		Order(ent.Desc(entlog.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recent failures", "error", err)
		return nil, err
	}
	out := make([]*entity.ProcessingLogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.ProcessingLogEntry{
			ID:           row.ID,
			DocumentID:   row.DocumentID,
			Attempt:      row.Attempt,
			Phase:        row.Phase,
			Outcome:      row.Outcome,
			ErrorMessage: row.ErrorMessage,
			StartedAt:    row.StartedAt,
			FinishedAt:   row.FinishedAt,
		})
	}
	return out, nil
}
