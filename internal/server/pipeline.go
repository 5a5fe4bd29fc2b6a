// Package server implements the gRPC surface over the pipeline. It does
// request validation and status-code mapping; all semantics live in
// internal/pipeline.
package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	docpipev1 "github.com/kamil-urbanek/docpipe/gen/proto/docpipe/v1"
	"github.com/kamil-urbanek/docpipe/internal/common"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/export"
	"github.com/kamil-urbanek/docpipe/internal/pipeline"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

type PipelineService struct {
	docpipev1.UnimplementedPipelineServiceServer
	docs         repository.DocumentRepository
	worker       *pipeline.Worker
	reaper       *pipeline.Reaper
	scheduler    *pipeline.Scheduler
	applier      *pipeline.Applier
	batchApplier *pipeline.BatchApplier
	reporter     *pipeline.Reporter
	exporter     *export.Service
	logger       *slog.Logger
}

func NewPipelineService(
	docs repository.DocumentRepository,
	worker *pipeline.Worker,
	reaper *pipeline.Reaper,
	scheduler *pipeline.Scheduler,
	applier *pipeline.Applier,
	batchApplier *pipeline.BatchApplier,
	reporter *pipeline.Reporter,
	exporter *export.Service,
	logger *slog.Logger,
) *PipelineService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineService{
		docs:         docs,
		worker:       worker,
		reaper:       reaper,
		scheduler:    scheduler,
		applier:      applier,
		batchApplier: batchApplier,
		reporter:     reporter,
		exporter:     exporter,
		logger:       logger,
	}
}

func parseID(field, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}

func (s *PipelineService) EnqueueForOCR(ctx context.Context, req *docpipev1.EnqueueForOCRRequest) (*docpipev1.EnqueueForOCRResponse, error) {
	caseID, err := parseID("case_id", req.GetCaseId())
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(req.GetDocumentIds()))
	for _, raw := range req.GetDocumentIds() {
		id, err := parseID("document_ids", raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	n, err := s.docs.EnqueuePending(ctx, caseID, ids)
	if err != nil {
		s.logger.Error("enqueue failed", "case_id", caseID, "error", err)
		return nil, status.Errorf(codes.Internal, "enqueue: %v", err)
	}
	s.logger.Info("documents enqueued", "case_id", caseID, "count", n)
	return &docpipev1.EnqueueForOCRResponse{Enqueued: int32(n)}, nil
}

func (s *PipelineService) RunWorkerSweep(ctx context.Context, _ *docpipev1.RunWorkerSweepRequest) (*docpipev1.RunWorkerSweepResponse, error) {
	res, err := s.worker.RunSweep(ctx)
	if err != nil {
		s.logger.Error("worker sweep failed", "error", err)
		return nil, status.Errorf(codes.Internal, "worker sweep: %v", err)
	}
	return &docpipev1.RunWorkerSweepResponse{
		Processed: int32(res.Processed),
		Succeeded: int32(res.Succeeded),
		Failed:    int32(res.Failed),
	}, nil
}

func (s *PipelineService) ReapStuck(ctx context.Context, _ *docpipev1.ReapStuckRequest) (*docpipev1.ReapStuckResponse, error) {
	res, err := s.reaper.ReapStuck(ctx)
	if err != nil {
		s.logger.Error("reaper sweep failed", "error", err)
		return nil, status.Errorf(codes.Internal, "reap stuck: %v", err)
	}
	return &docpipev1.ReapStuckResponse{Reset_: int32(res.Reset), Failed: int32(res.Failed)}, nil
}

func (s *PipelineService) ScheduleRetry(ctx context.Context, req *docpipev1.ScheduleRetryRequest) (*docpipev1.ScheduleRetryResponse, error) {
	id, err := parseID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	decision, err := s.scheduler.ScheduleRetry(ctx, id, pipeline.RetryContext{
		Phase:   entity.PhaseRetryScheduler,
		Message: req.GetErrorMessage(),
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "document not found")
	}
	if errors.Is(err, repository.ErrVersionConflict) {
		return nil, status.Error(codes.Aborted, "document is being modified concurrently; retry the call")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "schedule retry: %v", err)
	}

	resp := &docpipev1.ScheduleRetryResponse{
		RetryCount: int32(decision.RetryCount),
		Status:     string(decision.Status),
	}
	if decision.NextRetryAt != nil {
		resp.NextRetryAt = formatTime(*decision.NextRetryAt)
	}
	return resp, nil
}

func (s *PipelineService) ApplyExtractedData(ctx context.Context, req *docpipev1.ApplyExtractedDataRequest) (*docpipev1.ApplyExtractedDataResponse, error) {
	docID, err := parseID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	caseID, err := parseID("case_id", req.GetCaseId())
	if err != nil {
		return nil, err
	}

	res, err := s.applier.ApplyExtractedData(ctx, docID, caseID, req.GetOverwriteManual())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "document not found")
	}
	if errors.Is(err, common.ErrInvalidInput) {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	if err != nil {
		s.logger.Error("apply failed", "document_id", docID, "error", err)
		return nil, status.Errorf(codes.Internal, "apply: %v", err)
	}

	out := &docpipev1.ApplyExtractedDataResponse{
		Success:        res.Success,
		AlreadyApplied: res.AlreadyApplied,
		FieldsWritten:  int32(res.FieldsWritten),
	}
	for _, c := range res.Conflicts {
		out.Conflicts = append(out.Conflicts, &docpipev1.FieldConflict{
			Field:       c.Field,
			Existing:    c.Existing,
			Incoming:    c.Incoming,
			Overwritten: c.Overwritten,
		})
	}
	return out, nil
}

func (s *PipelineService) BatchApply(ctx context.Context, req *docpipev1.BatchApplyRequest) (*docpipev1.BatchApplyResponse, error) {
	caseID, err := parseID("case_id", req.GetCaseId())
	if err != nil {
		return nil, err
	}

	res, err := s.batchApplier.BatchApply(ctx, caseID)
	if err != nil {
		s.logger.Error("batch apply failed", "case_id", caseID, "error", err)
		return nil, status.Errorf(codes.Internal, "batch apply: %v", err)
	}

	out := &docpipev1.BatchApplyResponse{
		Eligible:   int32(res.Eligible),
		Applied:    int32(res.Applied),
		Conflicted: int32(res.Conflicted),
		Failed:     int32(res.Failed),
		Outcome:    string(res.Outcome),
		Message:    res.Message,
	}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, &docpipev1.BatchApplyError{
			DocumentId: e.DocumentID.String(),
			Message:    e.Message,
		})
	}
	return out, nil
}

func (s *PipelineService) GetDiagnostics(ctx context.Context, _ *docpipev1.GetDiagnosticsRequest) (*docpipev1.GetDiagnosticsResponse, error) {
	d, err := s.reporter.Diagnostics(ctx)
	if err != nil {
		s.logger.Error("diagnostics failed", "error", err)
		return nil, status.Errorf(codes.Internal, "diagnostics: %v", err)
	}

	out := &docpipev1.GetDiagnosticsResponse{
		QueueDepth:        int32(d.QueueDepth),
		ProcessingCount:   int32(d.ProcessingCount),
		StuckCount:        int32(d.StuckCount),
		TerminalCounts:    map[string]int32{},
		RetryDistribution: map[int32]int32{},
		GeneratedAt:       formatTime(d.GeneratedAt),
	}
	for st, n := range d.TerminalCounts {
		out.TerminalCounts[string(st)] = int32(n)
	}
	for retries, n := range d.RetryDistribution {
		out.RetryDistribution[int32(retries)] = int32(n)
	}
	for _, doc := range d.TerminalDocuments {
		out.TerminalDocuments = append(out.TerminalDocuments, toPBDocument(doc))
	}
	for _, doc := range d.OverdueRetries {
		out.OverdueRetries = append(out.OverdueRetries, toPBDocument(doc))
	}
	for _, e := range d.RecentFailures {
		out.RecentFailures = append(out.RecentFailures, toPBLogEntry(e))
	}
	return out, nil
}

func (s *PipelineService) AdminRequeue(ctx context.Context, req *docpipev1.AdminRequeueRequest) (*docpipev1.AdminRequeueResponse, error) {
	id, err := parseID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	if err := s.docs.AdminRequeue(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, status.Error(codes.FailedPrecondition, "document not found or not in a terminal state")
		}
		s.logger.Error("admin requeue failed", "document_id", id, "error", err)
		return nil, status.Errorf(codes.Internal, "admin requeue: %v", err)
	}
	s.logger.Warn("document requeued by operator",
		"document_id", id, "request_id", common.RequestIDFromContext(ctx))

	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "reload document: %v", err)
	}
	return &docpipev1.AdminRequeueResponse{Document: toPBDocument(doc)}, nil
}

func (s *PipelineService) GetDocument(ctx context.Context, req *docpipev1.GetDocumentRequest) (*docpipev1.GetDocumentResponse, error) {
	id, err := parseID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "document not found")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load document: %v", err)
	}
	return &docpipev1.GetDocumentResponse{Document: toPBDocument(doc)}, nil
}

func (s *PipelineService) ExportCaseReport(ctx context.Context, req *docpipev1.ExportCaseReportRequest) (*docpipev1.ExportCaseReportResponse, error) {
	caseID, err := parseID("case_id", req.GetCaseId())
	if err != nil {
		return nil, err
	}
	xlsx, err := s.exporter.ExportCaseXLSX(ctx, caseID)
	if err != nil {
		s.logger.Error("export failed", "case_id", caseID, "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &docpipev1.ExportCaseReportResponse{Xlsx: xlsx}, nil
}

func (s *PipelineService) DeleteCase(ctx context.Context, req *docpipev1.DeleteCaseRequest) (*docpipev1.DeleteCaseResponse, error) {
	caseID, err := parseID("case_id", req.GetCaseId())
	if err != nil {
		return nil, err
	}
	n, err := s.docs.SoftDeleteByCase(ctx, caseID)
	if err != nil {
		s.logger.Error("delete case failed", "case_id", caseID, "error", err)
		return nil, status.Errorf(codes.Internal, "delete case: %v", err)
	}
	s.logger.Warn("case documents tombstoned",
		"case_id", caseID, "count", n, "request_id", common.RequestIDFromContext(ctx))
	return &docpipev1.DeleteCaseResponse{Deleted: int32(n)}, nil
}
