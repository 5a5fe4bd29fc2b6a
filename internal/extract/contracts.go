// Package extract abstracts the external text/field extraction capability
// and the local fallbacks for it.
package extract

import (
	"context"
	"errors"
)

// Sentinel errors the classifier pattern-matches on. Extractor
// implementations wrap these rather than inventing message text.
var (
	// ErrUnsupportedFormat marks a file type no extractor can handle.
	// Never retried.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrCorruptFile marks a file that exists but cannot be parsed.
	// Never retried.
	ErrCorruptFile = errors.New("file is corrupt or unreadable")
)

// Result is the outcome of one extraction call.
type Result struct {
	Fields     map[string]string
	Confidence float32
	Method     string
}

// Extractor turns file content into named fields. fileExt is the document's
// file extension (with or without the dot). Implementations must be safe to
// call repeatedly for the same content: a retried call accumulates no side
// effects on the external service.
type Extractor interface {
	Extract(ctx context.Context, content []byte, fileExt string) (Result, error)
}
