package interfaces

import (
	"context"

	domaintypes "credstore/internal/domain/types"
)

// RecordStore reads and writes individual serialized records by file name.
type RecordStore interface {
	// Write persists v under name, retrying transient failures.
	Write(ctx context.Context, name string, v any) error
	// Read returns the raw record bytes, or nil when the record is absent
	// or unreadable. Only context cancellation is reported as an error.
	Read(ctx context.Context, name string) ([]byte, error)
	// Remove deletes the record; a missing record is a no-op.
	Remove(ctx context.Context, name string) error
	// Names lists the record file names currently on disk.
	Names(ctx context.Context) ([]string, error)
}

// KeyStore is the bulk facade over keyed records.
type KeyStore interface {
	Get(ctx context.Context, category domaintypes.Category, ids []string) (map[string]any, error)
	Set(ctx context.Context, updates domaintypes.Updates) error
	Clear(ctx context.Context) error
}

// CredentialInitializer produces a fresh credential record when none exists
// on disk.
type CredentialInitializer func() (*domaintypes.Credentials, error)

// RecordDecoder turns a raw record of one category into its structured form.
type RecordDecoder func(raw []byte) (any, error)
