package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotDirectory is returned when the store path exists but is a plain file.
var ErrNotDirectory = errors.New("store path exists and is not a directory")

// ensureDir validates or creates the storage directory, then probes it with
// a write-and-delete of a throwaway file. Any failure is fatal to Open.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	default:
		return fmt.Errorf("stat store directory: %w", err)
	}

	probe := filepath.Join(dir, ".probe-"+uuid.NewString())
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		return fmt.Errorf("store directory not writable: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("store directory probe cleanup: %w", err)
	}
	return nil
}
