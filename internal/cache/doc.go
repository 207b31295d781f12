// Package cache provides a TTL-bounded in-memory record cache. Entries are
// best-effort and non-authoritative; the on-disk record remains the source
// of truth.
package cache
