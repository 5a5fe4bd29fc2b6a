// Package ingest watches drop directories for scanned documents and
// registers them as pending pipeline work.
package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kamil-urbanek/docpipe/constants"
)

// WatchConfig tunes a drop-directory watcher.
type WatchConfig struct {
	Roots       []string // directories to watch, recursive
	AllowedExts map[string]struct{}
	InitialScan bool          // also emit files already present under the roots
	Debounce    time.Duration // coalesce rapid write/rename bursts
}

// StartWatcher watches the configured roots and emits the path of every
// new or rewritten document file. The channels close when ctx is done.
func StartWatcher(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan string, <-chan error, error) {
	if len(cfg.Roots) == 0 {
		return nil, nil, errors.New("no watch roots provided")
	}
	if cfg.AllowedExts == nil {
		cfg.AllowedExts = constants.AllowedExtensions
	}
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	pathCh := make(chan string, 256)
	errCh := make(chan error, 1)

	addRoot := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && allowed(path, cfg.AllowedExts) {
				select {
				case pathCh <- path:
				default:
					logger.Warn("ingest backlog full, dropping event", "path", path)
				}
			}
			return nil
		})
	}
	for _, root := range cfg.Roots {
		if err := addRoot(root); err != nil {
			_ = w.Close()
			return nil, nil, err
		}
	}

	go func() {
		defer close(pathCh)
		defer close(errCh)
		defer w.Close()

		var timer *time.Timer
		pending := map[string]struct{}{}
		flush := func() {
			for p := range pending {
				select {
				case pathCh <- p:
				default:
					logger.Warn("ingest backlog full, dropping event", "path", p)
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op.Has(fsnotify.Create) {
					// a new subdirectory must be watched too; Add on a
					// plain file fails harmlessly
					_ = w.Add(e.Name)
				}
				if !allowed(e.Name, cfg.AllowedExts) {
					continue
				}
				if !e.Op.Has(fsnotify.Create) && !e.Op.Has(fsnotify.Write) && !e.Op.Has(fsnotify.Rename) {
					continue
				}
				pending[e.Name] = struct{}{}
				if cfg.Debounce <= 0 {
					flush()
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(cfg.Debounce, flush)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return pathCh, errCh, nil
}

func allowed(path string, exts map[string]struct{}) bool {
	_, ok := exts[constants.NormalizeExt(filepath.Ext(path))]
	return ok
}
