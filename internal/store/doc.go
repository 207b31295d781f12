// Package store provides durable, crash-tolerant file persistence for a
// protocol client's credentials and rotating key records.
//
// Each logical record is one JSON file inside the store directory. All
// methods are concurrency-safe within a single process via per-path locking;
// pointing two processes at the same directory is unsafe.
//
// The package contains:
//   - directory bootstrap and writability probing
//   - a per-path lock coordinator with bounded acquisition
//   - the record store (retry-on-write, fail-soft-on-read)
//   - the credential lifecycle manager with debounced autosave
//   - the bulk key-store facade with per-category decoding
//   - an optional TTL cache warmed from disk at startup
package store
