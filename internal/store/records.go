package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"credstore/internal/codec"
	"credstore/internal/domain"
)

const (
	writeAttempts = 3
	retryBackoff  = 100 * time.Millisecond
	recordPerm    = 0o600
	recordSuffix  = ".json"
)

// FileRecordStore persists one JSON record per file under dir.
//
// Writes retry transient failures; reads and removes fail soft, logging and
// swallowing everything except context cancellation.
type FileRecordStore struct {
	dir   string
	locks *pathLocks
	log   *slog.Logger
}

// NewFileRecordStore bootstraps dir and returns a record store over it.
func NewFileRecordStore(dir string, lockWait time.Duration, logger *slog.Logger) (*FileRecordStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := ensureDir(dir); err != nil {
		return nil, err
	}
	return &FileRecordStore{
		dir:   dir,
		locks: newPathLocks(lockWait),
		log:   logger,
	}, nil
}

// Dir returns the store directory.
func (s *FileRecordStore) Dir() string { return s.dir }

// Write serialises v and persists it under name. Each failed attempt backs
// off a little longer; after the last one the error surfaces to the caller.
func (s *FileRecordStore) Write(ctx context.Context, name string, v any) error {
	data, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	var lastErr error
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		lastErr = s.writeOnce(ctx, path, data)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Debug("record write attempt failed",
			"record", name, "attempt", attempt, "error", lastErr)

		if attempt < writeAttempts {
			select {
			case <-time.After(time.Duration(attempt) * retryBackoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("write record %s after %d attempts: %w", name, writeAttempts, lastErr)
}

func (s *FileRecordStore) writeOnce(ctx context.Context, path string, data []byte) error {
	release, err := s.locks.acquire(ctx, path)
	if err != nil {
		return err
	}
	defer release()
	return codec.WriteFile(path, data, recordPerm)
}

// Read returns the raw bytes of the named record. A missing record returns
// (nil, nil); an unreadable or undecodable one is logged and also returns
// (nil, nil). Only context cancellation propagates as an error.
func (s *FileRecordStore) Read(ctx context.Context, name string) ([]byte, error) {
	path := filepath.Join(s.dir, name)

	release, err := s.locks.acquire(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.log.Warn("record read lock failed", "record", name, "error", err)
		return nil, nil
	}
	defer release()

	data, err := codec.ReadFile(path)
	if err != nil {
		s.log.Warn("record read failed", "record", name, "error", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}
	if !json.Valid(data) {
		s.log.Warn("record content invalid, treating as absent", "record", name)
		return nil, nil
	}
	return data, nil
}

// Remove deletes the named record. A missing record is a no-op; any other
// failure is logged and swallowed.
func (s *FileRecordStore) Remove(ctx context.Context, name string) error {
	path := filepath.Join(s.dir, name)

	release, err := s.locks.acquire(ctx, path)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Warn("record remove lock failed", "record", name, "error", err)
		return nil
	}
	defer release()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("record remove failed", "record", name, "error", err)
	}
	return nil
}

// Names lists the record files currently in the store directory.
func (s *FileRecordStore) Names(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list store directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// recordName builds the on-disk file name for (category, id). Path
// separators and colons in the id are escaped so the result is a single safe
// path component.
func recordName(category domain.Category, id string) string {
	return fmt.Sprintf("%s-%s%s", category, escapeID(id), recordSuffix)
}

func escapeID(id string) string {
	id = strings.ReplaceAll(id, "/", "__")
	return strings.ReplaceAll(id, ":", "-")
}

var _ domain.RecordStore = (*FileRecordStore)(nil)
