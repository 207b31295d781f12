package crypto

import (
	"errors"

	"credstore/internal/codec"
	"credstore/internal/domain"
)

// SyncKeyCategory is the rotating-key category whose records carry a
// structured payload rather than an opaque blob.
const SyncKeyCategory domain.Category = "sync-key"

// SyncKey is the decoded form of one sync-key record.
type SyncKey struct {
	Data        codec.Bytes        `json:"keyData"`
	Fingerprint SyncKeyFingerprint `json:"fingerprint"`
	Timestamp   int64              `json:"timestamp"`
}

// SyncKeyFingerprint identifies the key's position in the rotation schedule.
type SyncKeyFingerprint struct {
	RawID         uint32   `json:"rawId"`
	CurrentIndex  uint32   `json:"currentIndex"`
	DeviceIndexes []uint32 `json:"deviceIndexes"`
}

// ErrEmptySyncKey is returned when a sync-key record decodes but carries no
// key material.
var ErrEmptySyncKey = errors.New("sync-key record has no key data")

// DecodeSyncKey parses a raw sync-key record. It satisfies
// domain.RecordDecoder for SyncKeyCategory.
func DecodeSyncKey(raw []byte) (any, error) {
	var key SyncKey
	if err := codec.Unmarshal(raw, &key); err != nil {
		return nil, err
	}
	if len(key.Data) == 0 {
		return nil, ErrEmptySyncKey
	}
	return &key, nil
}
