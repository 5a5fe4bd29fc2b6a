// Package export produces operator-facing XLSX reports over the
// document store.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/kamil-urbanek/docpipe/constants"
	"github.com/kamil-urbanek/docpipe/internal/entity"
	"github.com/kamil-urbanek/docpipe/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes
// for pipeline reports.
type Service struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, logger: logger}
}

// ExportCaseXLSX returns an XLSX workbook listing every document of the
// case with its pipeline state, plus a sheet of terminal failures that
// need operator attention.
func (s *Service) ExportCaseXLSX(ctx context.Context, caseID uuid.UUID) ([]byte, error) {
	start := time.Now()

	docs, err := s.docs.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].CreatedAt.Before(docs[j].CreatedAt) })

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Filename",
		"Status",
		"Retries",
		"Next Retry At",
		"Applied",
		"Last Error",
		"Storage Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	var failures []*entity.Document
	for _, d := range docs {
		if d.OCRStatus.IsTerminal() {
			failures = append(failures, d)
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.Filename)
		write(2, string(d.OCRStatus))
		write(3, d.RetryCount)
		if d.NextRetryAt != nil {
			write(4, d.NextRetryAt.UTC().Format(time.RFC3339))
		} else {
			write(4, "")
		}
		write(5, d.DataApplied)
		if d.ErrorMessage != nil {
			write(6, truncate(*d.ErrorMessage, 140))
		} else {
			write(6, "")
		}
		write(7, d.StoragePath)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 20)
	_ = f.SetColWidth(sheet, "C", "C", 9)
	_ = f.SetColWidth(sheet, "D", "D", 22)
	_ = f.SetColWidth(sheet, "E", "E", 9)
	_ = f.SetColWidth(sheet, "F", "F", 48)
	_ = f.SetColWidth(sheet, "G", "G", 60)

	if err := s.writeFailureSheet(f, failures); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"case_id", caseID.String(),
		"rows", len(docs),
		"failures", len(failures),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeFailureSheet(f *excelize.File, failures []*entity.Document) error {
	const sheet = "Failures"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Filename", "Failure State", "Retries", "Last Error"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range failures {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, d.Filename)
		write(2, failureLabel(d.OCRStatus))
		write(3, d.RetryCount)
		if d.ErrorMessage != nil {
			write(4, truncate(*d.ErrorMessage, 140))
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "D", "D", 60)
	return nil
}

// failureLabel renders a terminal state for non-technical readers.
func failureLabel(status constants.OCRStatus) string {
	switch status {
	case constants.StatusMissingRemoteFile:
		return "source file missing"
	case constants.StatusPDFCorrupt:
		return "file unreadable"
	case constants.StatusPermanentFailure:
		return "gave up after retries"
	}
	return string(status)
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
