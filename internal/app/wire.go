package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"credstore/internal/store"
)

// Wire bundles the built dependencies for the CLI.
type Wire struct {
	Store *store.Store
	Log   *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(ctx context.Context, cfg Config) (*Wire, error) {
	dir := cfg.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".credstore")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = newLogger(cfg.Debug)
	}

	st, err := store.Open(ctx, dir, store.Options{
		CacheEnabled: cfg.CacheEnabled,
		Debug:        cfg.Debug,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}

	return &Wire{Store: st, Log: logger}, nil
}

// Close releases the store, flushing credentials one last time.
func (w *Wire) Close(ctx context.Context) error {
	return w.Store.Close(ctx)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
