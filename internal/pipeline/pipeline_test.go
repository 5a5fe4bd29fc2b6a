package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/extract"
	"github.com/kamil-urbanek/docpipe/internal/repository"
	"github.com/kamil-urbanek/docpipe/internal/storage"
)

// fakeDocs is an in-memory DocumentRepository with the same optimistic
// concurrency semantics as the ent implementation.
type fakeDocs struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Document
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{rows: map[uuid.UUID]*entity.Document{}}
}

func cloneDoc(d *entity.Document) *entity.Document {
	c := *d
	if d.ExtractedFields != nil {
		c.ExtractedFields = make(map[string]string, len(d.ExtractedFields))
		for k, v := range d.ExtractedFields {
			c.ExtractedFields[k] = v
		}
	}
	return &c
}

func (f *fakeDocs) put(d *entity.Document) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[d.ID] = cloneDoc(d)
}

func (f *fakeDocs) get(id uuid.UUID) *entity.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneDoc(f.rows[id])
}

func (f *fakeDocs) Create(_ context.Context, doc *entity.Document) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := cloneDoc(doc)
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.OCRStatus = constants.StatusPending
	c.Version = 1
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	f.rows[c.ID] = c
	return cloneDoc(c), nil
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneDoc(row), nil
}

func (f *fakeDocs) ListByCase(_ context.Context, caseID uuid.UUID) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, row := range f.rows {
		if row.CaseID == caseID && row.DeletedAt == nil {
			out = append(out, cloneDoc(row))
		}
	}
	return out, nil
}

func (f *fakeDocs) EnqueuePending(_ context.Context, caseID uuid.UUID, ids []uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := map[uuid.UUID]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	n := 0
	for _, row := range f.rows {
		if row.CaseID != caseID || row.OCRStatus != constants.StatusPending || row.DeletedAt != nil {
			continue
		}
		if len(ids) > 0 && !wanted[row.ID] {
			continue
		}
		row.OCRStatus = constants.StatusQueued
		row.NextRetryAt = nil
		row.Version++
		row.UpdatedAt = time.Now().UTC()
		n++
	}
	return n, nil
}

func (f *fakeDocs) ClaimQueued(_ context.Context, limit int, now time.Time) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var claimed []*entity.Document
	for _, row := range f.rows {
		if len(claimed) >= limit {
			break
		}
		if row.OCRStatus != constants.StatusQueued || row.DeletedAt != nil {
			continue
		}
		if row.NextRetryAt != nil && row.NextRetryAt.After(now) {
			continue
		}
		row.OCRStatus = constants.StatusProcessing
		row.Version++
		row.UpdatedAt = time.Now().UTC()
		claimed = append(claimed, cloneDoc(row))
	}
	return claimed, nil
}

func (f *fakeDocs) conditional(id uuid.UUID, version int, mutate func(*entity.Document)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	if row.Version != version {
		return repository.ErrVersionConflict
	}
	mutate(row)
	row.Version++
	row.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeDocs) CompleteOCR(_ context.Context, id uuid.UUID, version int, fields map[string]string) error {
	return f.conditional(id, version, func(row *entity.Document) {
		row.OCRStatus = constants.StatusCompleted
		row.ExtractedFields = fields
		row.ErrorMessage = nil
		row.NextRetryAt = nil
	})
}

func (f *fakeDocs) RequeueForRetry(_ context.Context, id uuid.UUID, version, retryCount int, nextRetryAt time.Time, message string) error {
	return f.conditional(id, version, func(row *entity.Document) {
		row.OCRStatus = constants.StatusQueued
		row.RetryCount = retryCount
		row.NextRetryAt = &nextRetryAt
		row.ErrorMessage = &message
	})
}

func (f *fakeDocs) MarkTerminal(_ context.Context, id uuid.UUID, version, retryCount int, status constants.OCRStatus, message string) error {
	return f.conditional(id, version, func(row *entity.Document) {
		row.OCRStatus = status
		row.RetryCount = retryCount
		row.ErrorMessage = &message
		row.NextRetryAt = nil
	})
}

func (f *fakeDocs) MarkApplied(_ context.Context, id uuid.UUID, version int) error {
	f.mu.Lock()
	row, ok := f.rows[id]
	if ok && row.OCRStatus != constants.StatusCompleted {
		f.mu.Unlock()
		return repository.ErrVersionConflict
	}
	f.mu.Unlock()
	return f.conditional(id, version, func(row *entity.Document) {
		row.DataApplied = true
	})
}

func (f *fakeDocs) AdminRequeue(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || !row.OCRStatus.IsTerminal() {
		return repository.ErrNotFound
	}
	row.OCRStatus = constants.StatusQueued
	row.RetryCount = 0
	row.NextRetryAt = nil
	row.ErrorMessage = nil
	row.Version++
	row.UpdatedAt = time.Now().UTC()
	return nil
}

func (f *fakeDocs) ListStuck(_ context.Context, olderThan time.Time) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, row := range f.rows {
		if row.OCRStatus == constants.StatusProcessing && row.UpdatedAt.Before(olderThan) && row.DeletedAt == nil {
			out = append(out, cloneDoc(row))
		}
	}
	return out, nil
}

func (f *fakeDocs) ListEligibleForApply(_ context.Context, caseID uuid.UUID) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, row := range f.rows {
		if row.CaseID == caseID && row.OCRStatus == constants.StatusCompleted && !row.DataApplied && row.DeletedAt == nil {
			out = append(out, cloneDoc(row))
		}
	}
	return out, nil
}

func (f *fakeDocs) ListOverdueRetries(_ context.Context, now time.Time) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, row := range f.rows {
		if row.OCRStatus.IsTerminal() || row.OCRStatus == constants.StatusCompleted || row.DeletedAt != nil {
			continue
		}
		if row.NextRetryAt != nil && row.NextRetryAt.Before(now) {
			out = append(out, cloneDoc(row))
		}
	}
	return out, nil
}

func (f *fakeDocs) ListTerminal(_ context.Context) ([]*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Document
	for _, row := range f.rows {
		if row.OCRStatus.IsTerminal() && row.DeletedAt == nil {
			out = append(out, cloneDoc(row))
		}
	}
	return out, nil
}

func (f *fakeDocs) CountByStatus(_ context.Context) (map[constants.OCRStatus]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[constants.OCRStatus]int{}
	for _, row := range f.rows {
		if row.DeletedAt == nil {
			out[row.OCRStatus]++
		}
	}
	return out, nil
}

func (f *fakeDocs) RetryDistribution(_ context.Context) (map[int]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[int]int{}
	for _, row := range f.rows {
		if row.DeletedAt == nil {
			out[row.RetryCount]++
		}
	}
	return out, nil
}

func (f *fakeDocs) SoftDeleteByCase(_ context.Context, caseID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	n := 0
	for _, row := range f.rows {
		if row.CaseID == caseID && row.DeletedAt == nil {
			row.DeletedAt = &now
			row.Version++
			n++
		}
	}
	return n, nil
}

// fakeLogs is an in-memory append-only ProcessingLogRepository.
type fakeLogs struct {
	mu      sync.Mutex
	entries []*entity.ProcessingLogEntry
}

func (f *fakeLogs) Append(_ context.Context, e *entity.ProcessingLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *e
	f.entries = append(f.entries, &c)
	return nil
}

func (f *fakeLogs) ListRecentFailures(_ context.Context, limit int) ([]*entity.ProcessingLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ProcessingLogEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if f.entries[i].Outcome == entity.OutcomeFailed || f.entries[i].Outcome == entity.OutcomeTerminal {
			out = append(out, f.entries[i])
		}
	}
	return out, nil
}

func (f *fakeLogs) byPhase(phase string) []*entity.ProcessingLogEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ProcessingLogEntry
	for _, e := range f.entries {
		if e.Phase == phase {
			out = append(out, e)
		}
	}
	return out
}

// fakeForms is an in-memory FormRepository.
type fakeForms struct {
	mu      sync.Mutex
	fields  map[uuid.UUID]map[string]string
	updates int
}

func newFakeForms() *fakeForms {
	return &fakeForms{fields: map[uuid.UUID]map[string]string{}}
}

func (f *fakeForms) GetFields(_ context.Context, caseID uuid.UUID) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]string{}
	for k, v := range f.fields[caseID] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeForms) UpdateFields(_ context.Context, caseID uuid.UUID, fields map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fields[caseID] == nil {
		f.fields[caseID] = map[string]string{}
	}
	for k, v := range fields {
		f.fields[caseID][k] = v
	}
	f.updates++
	return nil
}

// fakeStore serves file content by path.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	missing map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, missing: map[string]bool{}}
}

func (f *fakeStore) Download(_ context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missing[path] {
		return nil, fmt.Errorf("download %s: %w", path, storage.ErrObjectNotFound)
	}
	content, ok := f.objects[path]
	if !ok {
		return nil, errors.New("storage unavailable")
	}
	return content, nil
}

// fakeExtractor returns canned fields, or an error for chosen content.
type fakeExtractor struct {
	mu     sync.Mutex
	fields map[string]string
	fail   map[string]error // keyed by file content
	calls  int
	hook   func() // runs before each extraction
	block  bool   // wait out the context instead of returning
}

func newFakeExtractor(fields map[string]string) *fakeExtractor {
	return &fakeExtractor{fields: fields, fail: map[string]error{}}
}

func (f *fakeExtractor) Extract(ctx context.Context, content []byte, fileExt string) (extract.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.hook != nil {
		f.hook()
	}
	if f.block {
		<-ctx.Done()
		return extract.Result{}, ctx.Err()
	}
	if constants.MapExtToFormat(fileExt) == "" {
		return extract.Result{}, fmt.Errorf("extension %q: %w", fileExt, extract.ErrUnsupportedFormat)
	}
	if err, ok := f.fail[string(content)]; ok {
		return extract.Result{}, err
	}
	out := map[string]string{}
	for k, v := range f.fields {
		out[k] = v
	}
	return extract.Result{Fields: out, Confidence: 0.9, Method: "fake"}, nil
}

// seedDoc inserts a document in the given status and returns its id.
func seedDoc(docs *fakeDocs, caseID uuid.UUID, status constants.OCRStatus, retryCount int) *entity.Document {
	doc := &entity.Document{
		ID:          uuid.New(),
		CaseID:      caseID,
		StoragePath: "cases/" + uuid.NewString() + ".png",
		Filename:    "scan.png",
		FileExt:     "png",
		OCRStatus:   status,
		RetryCount:  retryCount,
		Version:     1,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	docs.put(doc)
	return doc
}
