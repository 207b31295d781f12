package types

import "credstore/internal/codec"

// Credentials is the singleton long-lived identity record for one store.
// The protocol layer owns the payload; the store only persists it.
type Credentials struct {
	NoiseKey       KeyPair      `json:"noiseKey"`
	IdentityKey    KeyPair      `json:"identityKey"`
	SigningKey     KeyPair      `json:"signingKey"`
	SignedPreKey   SignedPreKey `json:"signedPreKey"`
	RegistrationID uint32       `json:"registrationId"`
	AdvSecret      codec.Bytes  `json:"advSecret"`
	NextPreKeyID   uint32       `json:"nextPreKeyId"`
}

// Valid reports whether the record carries the noise key pair, the marker
// that distinguishes a usable credentials file from leftover junk.
func (c *Credentials) Valid() bool {
	return c != nil && len(c.NoiseKey.Private) > 0 && len(c.NoiseKey.Public) > 0
}
