package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/repository"
	"github.com/kamil-urbanek/docpipe/internal/storage"
)

// Result is the per-file ingest outcome.
type Result struct {
	SourcePath  string
	DocumentID  uuid.UUID
	StoragePath string
	Enqueued    bool
}

// Service registers dropped files as pending documents: the file content
// goes to external storage, the row goes to the document store, and the
// pipeline takes it from there.
type Service struct {
	docs        repository.DocumentRepository
	uploader    storage.Uploader
	autoEnqueue bool
	logger      *slog.Logger
}

func NewService(docs repository.DocumentRepository, uploader storage.Uploader, autoEnqueue bool, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, uploader: uploader, autoEnqueue: autoEnqueue, logger: logger}
}

// IngestPath uploads one local file and creates its pending document row.
// With auto-enqueue on, the document is queued for extraction right away.
func (s *Service) IngestPath(ctx context.Context, caseID uuid.UUID, path string) (Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Result{}, fmt.Errorf("resolve path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if constants.MapExtToFormat(ext) == "" {
		return Result{}, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return Result{}, fmt.Errorf("read file: %w", err)
	}

	id := uuid.New()
	storagePath := fmt.Sprintf("cases/%s/%s.%s", caseID, id, ext)
	if err := s.uploader.Upload(ctx, storagePath, content, constants.MimeTypeForExt(ext)); err != nil {
		return Result{}, fmt.Errorf("upload: %w", err)
	}

	doc, err := s.docs.Create(ctx, &entity.Document{
		ID:          id,
		CaseID:      caseID,
		StoragePath: storagePath,
		Filename:    filepath.Base(abs),
		FileExt:     ext,
	})
	if err != nil {
		return Result{}, fmt.Errorf("create document: %w", err)
	}

	res := Result{SourcePath: abs, DocumentID: doc.ID, StoragePath: storagePath}
	if s.autoEnqueue {
		n, err := s.docs.EnqueuePending(ctx, caseID, []uuid.UUID{doc.ID})
		if err != nil {
			s.logger.Error("failed to enqueue ingested document", "document_id", doc.ID, "error", err)
		} else {
			res.Enqueued = n == 1
		}
	}

	s.logger.Info("document ingested",
		"document_id", doc.ID, "case_id", caseID, "source", abs, "enqueued", res.Enqueued)
	return res, nil
}

// Run consumes watcher events until ctx is done. Each dropped file is
// ingested into the given case; a single bad file never stops the loop.
func (s *Service) Run(ctx context.Context, caseID uuid.UUID, paths <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-paths:
			if !ok {
				return
			}
			if _, err := s.IngestPath(ctx, caseID, path); err != nil {
				s.logger.Error("ingest failed", "path", path, "error", err)
			}
		}
	}
}
