package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// GCSStore serves documents out of a Google Cloud Storage bucket.
type GCSStore struct {
	bucket *gcs.BucketHandle
	logger *slog.Logger
}

func NewGCSStore(ctx context.Context, bucketName string, logger *slog.Logger) (*GCSStore, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("NewGCSStore: bucket name cannot be empty")
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &GCSStore{bucket: client.Bucket(bucketName), logger: logger}, nil
}

func (s *GCSStore) Download(ctx context.Context, path string) ([]byte, error) {
	rd, err := s.bucket.Object(path).NewReader(ctx)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("object missing from storage", "path", path)
			return nil, fmt.Errorf("download %s: %w", path, ErrObjectNotFound)
		}
		s.logger.Error("failed to open storage object", "path", path, "error", err)
		return nil, fmt.Errorf("open object %s: %w", path, err)
	}
	defer rd.Close()

	content, err := io.ReadAll(rd)
	if err != nil {
		s.logger.Error("failed to read storage object", "path", path, "error", err)
		return nil, fmt.Errorf("read object %s: %w", path, err)
	}
	return content, nil
}

func (s *GCSStore) Upload(ctx context.Context, path string, content []byte, contentType string) error {
	wr := s.bucket.Object(path).NewWriter(ctx)
	wr.ContentType = contentType
	if _, err := wr.Write(content); err != nil {
		_ = wr.Close()
		return fmt.Errorf("write object %s: %w", path, err)
	}
	if err := wr.Close(); err != nil {
		s.logger.Error("failed to finalize storage object", "path", path, "error", err)
		return fmt.Errorf("close object %s: %w", path, err)
	}
	return nil
}

func isNotFound(err error) bool {
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return true
	}
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == http.StatusNotFound
}
