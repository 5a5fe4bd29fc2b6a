package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/kamil-urbanek/docpipe/constants"
)

// Document represents an uploaded case file for data transfer between layers.
type Document struct {
	ID              uuid.UUID            `json:"id"`
	CaseID          uuid.UUID            `json:"case_id"`
	StoragePath     string               `json:"storage_path"`
	Filename        string               `json:"filename"`
	FileExt         string               `json:"file_ext"`
	OCRStatus       constants.OCRStatus  `json:"ocr_status"`
	RetryCount      int                  `json:"ocr_retry_count"`
	NextRetryAt     *time.Time           `json:"ocr_next_retry_at,omitempty"`
	ErrorMessage    *string              `json:"ocr_error_message,omitempty"`
	DataApplied     bool                 `json:"data_applied_to_forms"`
	ExtractedFields map[string]string    `json:"extracted_fields,omitempty"`
	Version         int                  `json:"version"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	DeletedAt       *time.Time           `json:"deleted_at,omitempty"`
}
