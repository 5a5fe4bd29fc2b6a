package entity

import (
	"time"

	"github.com/kamil-urbanek/docpipe/constants"
)

// RetryDecision is what the retry scheduler decided for one failed attempt.
type RetryDecision struct {
	RetryCount  int                 `json:"retry_count"`
	Status      constants.OCRStatus `json:"status"`
	NextRetryAt *time.Time          `json:"next_retry_at,omitempty"`
}

// Diagnostics is the read-only health snapshot of the pipeline.
type Diagnostics struct {
	QueueDepth        int                         `json:"queue_depth"`
	ProcessingCount   int                         `json:"processing_count"`
	StuckCount        int                         `json:"stuck_count"`
	TerminalCounts    map[constants.OCRStatus]int `json:"terminal_counts"`
	TerminalDocuments []*Document                 `json:"terminal_documents,omitempty"`
	OverdueRetries    []*Document                 `json:"overdue_retries,omitempty"`
	RetryDistribution map[int]int                 `json:"retry_distribution"`
	RecentFailures    []*ProcessingLogEntry       `json:"recent_failures,omitempty"`
	GeneratedAt       time.Time                   `json:"generated_at"`
}
