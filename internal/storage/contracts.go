// Package storage abstracts the external file-storage capability the
// pipeline downloads source documents from.
package storage

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned when the referenced object no longer
// exists in external storage. The classifier maps it to the
// missing_remote_file terminal state.
var ErrObjectNotFound = errors.New("object not found in storage")

// FileStore is the behavior the worker depends on.
type FileStore interface {
	// Download returns the object's content, or ErrObjectNotFound when
	// the path no longer resolves.
	Download(ctx context.Context, path string) ([]byte, error)
}

// Uploader is the behavior the ingest service depends on.
type Uploader interface {
	Upload(ctx context.Context, path string, content []byte, contentType string) error
}
