package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"credstore/internal/cache"
	"credstore/internal/codec"
	"credstore/internal/crypto"
	"credstore/internal/domain"
)

const credsFileName = "creds.json"

const (
	defaultCacheTTL   = 5 * time.Minute
	defaultCacheSweep = time.Minute
)

// Options configures Open. The zero value is usable.
type Options struct {
	// CacheEnabled turns on the startup cache warmer and exposes the TTL
	// cache on the handle.
	CacheEnabled bool
	// Debug enables verbose internal tracing on the store's logger.
	Debug bool
	// Logger receives store logs; slog.Default() when nil.
	Logger *slog.Logger
	// Decoders maps categories to structured decoders, on top of the
	// default sync-key registration.
	Decoders map[domain.Category]domain.RecordDecoder
	// InitCreds produces fresh credentials when none exist on disk;
	// crypto.NewCredentials when nil.
	InitCreds domain.CredentialInitializer

	// CacheTTL overrides the 5 minute default entry lifetime.
	CacheTTL time.Duration
	// LockWait bounds path-lock acquisition; 5 s when zero.
	LockWait time.Duration
	// SaveInterval and SaveRetryInterval tune the autosaver cadence;
	// 180 s / 60 s when zero.
	SaveInterval      time.Duration
	SaveRetryInterval time.Duration
}

// Store is the live handle over one storage directory: the credential
// record, the key-record facade and the optional warm cache.
type Store struct {
	Keys *FileKeyStore

	creds   *domain.Credentials
	records *FileRecordStore
	cache   *cache.Cache
	saver   *autosaver
	log     *slog.Logger
}

// Open bootstraps dir, loads or initialises the credentials, and returns
// the store handle. The credentials record is guaranteed to exist on disk
// once Open returns.
func Open(ctx context.Context, dir string, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	records, err := NewFileRecordStore(dir, opts.LockWait, logger)
	if err != nil {
		return nil, err
	}

	creds, err := loadOrInitCreds(ctx, records, opts.InitCreds, logger)
	if err != nil {
		return nil, err
	}

	decoders := map[domain.Category]domain.RecordDecoder{
		crypto.SyncKeyCategory: crypto.DecodeSyncKey,
	}
	for category, decode := range opts.Decoders {
		decoders[category] = decode
	}

	s := &Store{
		Keys:    NewFileKeyStore(records, decoders, logger),
		creds:   creds,
		records: records,
		log:     logger,
	}

	if opts.CacheEnabled {
		ttl := opts.CacheTTL
		if ttl <= 0 {
			ttl = defaultCacheTTL
		}
		s.cache = cache.New(ttl, defaultCacheSweep)

		known := make([]domain.Category, 0, len(decoders))
		for category := range decoders {
			known = append(known, category)
		}
		warmCache(ctx, records, s.cache, known, logger)
	}

	s.saver = newAutosaver(s.persistCreds, opts.SaveInterval, opts.SaveRetryInterval, logger)
	s.saver.Start()

	if opts.Debug {
		logger.Debug("store opened", "dir", dir, "cache", opts.CacheEnabled)
	}
	return s, nil
}

// loadOrInitCreds reads the credentials record, falling back to the
// initializer when the file is absent, undecodable or missing its marker.
func loadOrInitCreds(ctx context.Context, records *FileRecordStore, initCreds domain.CredentialInitializer, logger *slog.Logger) (*domain.Credentials, error) {
	raw, err := records.Read(ctx, credsFileName)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		var creds domain.Credentials
		if err := codec.Unmarshal(raw, &creds); err == nil && creds.Valid() {
			return &creds, nil
		}
		logger.Warn("credentials file invalid, reinitialising")
	}

	if initCreds == nil {
		initCreds = crypto.NewCredentials
	}
	creds, err := initCreds()
	if err != nil {
		return nil, fmt.Errorf("initialise credentials: %w", err)
	}
	if err := records.Write(ctx, credsFileName, creds); err != nil {
		return nil, err
	}
	return creds, nil
}

// Creds returns the live credential record. The protocol layer mutates it
// in place and calls Save to persist.
func (s *Store) Creds() *domain.Credentials { return s.creds }

// Cache returns the warm TTL cache, or nil when caching is disabled. The
// cache is a side channel: Keys.Get always reads from disk.
func (s *Store) Cache() *cache.Cache { return s.cache }

// Dir returns the storage directory.
func (s *Store) Dir() string { return s.records.Dir() }

// List returns the key-record file names on disk, excluding credentials.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.records.Names(ctx)
	if err != nil {
		return nil, err
	}
	out := names[:0]
	for _, name := range names {
		if name != credsFileName {
			out = append(out, name)
		}
	}
	return out, nil
}

// Save persists the credential record and reschedules the autosaver
// according to the outcome.
func (s *Store) Save(ctx context.Context) error {
	err := s.persistCreds(ctx)
	s.saver.noteResult(err)
	return err
}

func (s *Store) persistCreds(ctx context.Context) error {
	return s.records.Write(ctx, credsFileName, s.creds)
}

// Close cancels the pending autosave and performs one final save. Hosts
// call it from their own shutdown path, including fatal-error exits.
func (s *Store) Close(ctx context.Context) error {
	s.saver.Stop()
	if s.cache != nil {
		s.cache.Close()
	}
	return s.persistCreds(ctx)
}
