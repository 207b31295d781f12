package store

import (
	"context"
	"log/slog"
	"strings"

	"credstore/internal/cache"
	"credstore/internal/domain"
)

// warmCache preloads existing key records into the TTL cache. Failures load
// nothing for that record; warming is best-effort by design.
func warmCache(ctx context.Context, records *FileRecordStore, c *cache.Cache, known []domain.Category, logger *slog.Logger) {
	names, err := records.Names(ctx)
	if err != nil {
		logger.Warn("cache warm scan failed", "error", err)
		return
	}

	for _, name := range names {
		category, id, ok := parseRecordName(name, known)
		if !ok {
			continue
		}
		raw, err := records.Read(ctx, name)
		if err != nil || raw == nil {
			continue
		}
		c.Put(cacheKey(category, id), raw)
		logger.Debug("cache warmed", "category", category, "id", id)
	}
}

// cacheKey builds the "category.id" cache key for one record.
func cacheKey(category domain.Category, id string) string {
	return string(category) + "." + id
}

// parseRecordName splits "<category>-<id>.json" back into its parts. Known
// categories are matched first so a dash inside a category name (e.g.
// "sync-key") does not shift the split; otherwise the first dash wins.
func parseRecordName(name string, known []domain.Category) (domain.Category, string, bool) {
	if name == credsFileName || !strings.HasSuffix(name, recordSuffix) {
		return "", "", false
	}
	stem := strings.TrimSuffix(name, recordSuffix)

	for _, category := range known {
		prefix := string(category) + "-"
		if strings.HasPrefix(stem, prefix) && len(stem) > len(prefix) {
			return category, stem[len(prefix):], true
		}
	}

	category, id, ok := strings.Cut(stem, "-")
	if !ok || category == "" || id == "" {
		return "", "", false
	}
	return domain.Category(category), id, true
}
