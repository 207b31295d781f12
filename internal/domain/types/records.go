package types

// Category groups key records that share the same shape and decode rules,
// e.g. "session" or "sync-key".
type Category string

// Updates maps category → id → value. A nil value deletes the record.
type Updates map[Category]map[string]any
