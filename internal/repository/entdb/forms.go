package entdb

import (
	"context"
	"log/slog"
	"maps"

	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/gen/ent"
	entform "github.com/kamil-urbanek/docpipe/gen/ent/caseform"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

const formUpdateAttempts = 3

type formRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFormRepository(entc *ent.Client, logger *slog.Logger) repository.FormRepository {
	return &formRepo{ent: entc, logger: logger}
}

func (r *formRepo) GetFields(ctx context.Context, caseID uuid.UUID) (map[string]string, error) {
	row, err := r.ent.CaseForm.Query().
		Where(entform.CaseID(caseID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return map[string]string{}, nil
		}
		r.logger.Error("failed to load case form", "case_id", caseID, "error", err)
		return nil, err
	}
	out := make(map[string]string, len(row.Fields))
	maps.Copy(out, row.Fields)
	return out, nil
}

// UpdateFields merges fields into the case form in one row write. The form
// row carries its own version counter; a lost update is retried against a
// fresh read, so concurrent appliers for the same case serialize instead
// of clobbering each other.
func (r *formRepo) UpdateFields(ctx context.Context, caseID uuid.UUID, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	for attempt := 0; attempt < formUpdateAttempts; attempt++ {
		row, err := r.ent.CaseForm.Query().
			Where(entform.CaseID(caseID)).
			Only(ctx)
		if ent.IsNotFound(err) {
			_, err = r.ent.CaseForm.Create().
				SetCaseID(caseID).
				SetFields(fields).
				Save(ctx)
			if err == nil {
				return nil
			}
			if ent.IsConstraintError(err) {
				// another applier created the form first; merge into it
				continue
			}
			r.logger.Error("failed to create case form", "case_id", caseID, "error", err)
			return err
		}
		if err != nil {
			return err
		}

		merged := make(map[string]string, len(row.Fields)+len(fields))
		maps.Copy(merged, row.Fields)
		maps.Copy(merged, fields)

		n, err := r.ent.CaseForm.Update().
			Where(entform.ID(row.ID), entform.VersionEQ(row.Version)).
			SetFields(merged).
			AddVersion(1).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to update case form", "case_id", caseID, "error", err)
			return err
		}
		if n > 0 {
			return nil
		}
	}
	return repository.ErrVersionConflict
}
