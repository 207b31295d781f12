package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"credstore/internal/domain"
)

// FileKeyStore is the bulk get/set facade over keyed records. Categories
// with a registered decoder yield structured values from Get; everything
// else comes back as raw record bytes.
type FileKeyStore struct {
	records  domain.RecordStore
	decoders map[domain.Category]domain.RecordDecoder
	log      *slog.Logger
}

// NewFileKeyStore returns a facade over records. decoders may be nil.
func NewFileKeyStore(records domain.RecordStore, decoders map[domain.Category]domain.RecordDecoder, logger *slog.Logger) *FileKeyStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileKeyStore{
		records:  records,
		decoders: decoders,
		log:      logger,
	}
}

// Get reads every requested id concurrently. Every id is present in the
// result: absent records and failed decodes both map to nil, never an error.
func (k *FileKeyStore) Get(ctx context.Context, category domain.Category, ids []string) (map[string]any, error) {
	var mu sync.Mutex
	out := make(map[string]any, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			value := k.load(ctx, category, id)
			mu.Lock()
			out[id] = value
			mu.Unlock()
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (k *FileKeyStore) load(ctx context.Context, category domain.Category, id string) any {
	raw, err := k.records.Read(ctx, recordName(category, id))
	if err != nil || raw == nil {
		return nil
	}
	decode, ok := k.decoders[category]
	if !ok {
		// Raw records are already JSON; keep them inlinable.
		return json.RawMessage(raw)
	}
	value, err := decode(raw)
	if err != nil {
		k.log.Warn("record decode failed",
			"category", category, "id", id, "error", err)
		return nil
	}
	return value
}

// Set applies every leaf of updates concurrently: nil deletes the record,
// anything else upserts it. The first write whose retries are exhausted
// fails the whole call; completed leaves are not rolled back.
func (k *FileKeyStore) Set(ctx context.Context, updates domain.Updates) error {
	g, ctx := errgroup.WithContext(ctx)
	for category, byID := range updates {
		for id, value := range byID {
			name := recordName(category, id)
			g.Go(func() error {
				if value == nil {
					return k.records.Remove(ctx, name)
				}
				return k.records.Write(ctx, name, value)
			})
		}
	}
	return g.Wait()
}

// Clear removes every key record, leaving the credentials file alone.
func (k *FileKeyStore) Clear(ctx context.Context) error {
	names, err := k.records.Names(ctx)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		if name == credsFileName || !strings.Contains(name, "-") {
			continue
		}
		g.Go(func() error {
			return k.records.Remove(ctx, name)
		})
	}
	return g.Wait()
}

var _ domain.KeyStore = (*FileKeyStore)(nil)
