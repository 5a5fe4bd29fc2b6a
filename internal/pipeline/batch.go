package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

// BatchApplier runs the Applier across every eligible document of a case,
// in bounded concurrent groups with a pause between them, mirroring the
// worker's backpressure policy.
type BatchApplier struct {
	docs    repository.DocumentRepository
	applier *Applier
	cfg     WorkerConfig
	logger  *slog.Logger
}

func NewBatchApplier(docs repository.DocumentRepository, applier *Applier, cfg WorkerConfig, logger *slog.Logger) *BatchApplier {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchApplier{docs: docs, applier: applier, cfg: cfg, logger: logger}
}

// BatchApply applies extracted data for every completed, not-yet-applied
// document of the case. One document's failure never aborts its siblings.
func (b *BatchApplier) BatchApply(ctx context.Context, caseID uuid.UUID) (entity.BatchApplyResult, error) {
	res := entity.BatchApplyResult{CaseID: caseID}

	eligible, err := b.docs.ListEligibleForApply(ctx, caseID)
	if err != nil {
		return res, fmt.Errorf("list eligible documents: %w", err)
	}
	res.Eligible = len(eligible)

	if len(eligible) == 0 {
		// a reported condition, not a silent success
		res.Outcome = entity.BatchNothingToApply
		res.Message = "no completed documents awaiting application"
		b.logger.Info("batch apply: nothing to do", "case_id", caseID)
		return res, nil
	}

	var mu sync.Mutex
	for start := 0; start < len(eligible); start += b.cfg.BatchSize {
		if start > 0 && b.cfg.BatchPause > 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-time.After(b.cfg.BatchPause):
			}
		}

		end := min(start+b.cfg.BatchSize, len(eligible))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(b.cfg.BatchSize)
		for _, doc := range eligible[start:end] {
			g.Go(func() error {
				applyRes, err := b.applier.ApplyExtractedData(gctx, doc.ID, caseID, false)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					res.Failed++
					res.Errors = append(res.Errors, entity.BatchApplyError{
						DocumentID: doc.ID,
						Message:    err.Error(),
					})
				case len(applyRes.Conflicts) > 0:
					res.Conflicted++
				default:
					res.Applied++
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	res.Outcome, res.Message = classifyBatch(res)
	b.logger.Info("batch apply finished",
		"case_id", caseID, "eligible", res.Eligible,
		"applied", res.Applied, "conflicted", res.Conflicted, "failed", res.Failed,
		"outcome", string(res.Outcome))
	return res, nil
}

// classifyBatch grades the aggregate outcome into the three reporting
// tiers surfaced to operators.
func classifyBatch(res entity.BatchApplyResult) (entity.BatchOutcome, string) {
	switch {
	case res.Failed == 0 && res.Conflicted == 0:
		return entity.BatchFullSuccess,
			fmt.Sprintf("all %d document(s) applied cleanly", res.Applied)
	case res.Failed*2 > res.Eligible:
		return entity.BatchFailureDominant,
			fmt.Sprintf("%d of %d document(s) failed to apply; see per-document errors", res.Failed, res.Eligible)
	default:
		return entity.BatchPartialSuccess,
			fmt.Sprintf("%d applied, %d with conflicts needing review, %d failed", res.Applied, res.Conflicted, res.Failed)
	}
}
