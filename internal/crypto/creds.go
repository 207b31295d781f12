package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/curve25519"

	"credstore/internal/codec"
	"credstore/internal/domain"
	"credstore/internal/util/memzero"
)

const advSecretBytes = 32

// NewKeyPair returns a fresh X25519 key pair.
// The private key is clamped per RFC 7748.
func NewKeyPair() (domain.KeyPair, error) {
	priv := make([]byte, 32)
	if _, err := rand.Read(priv); err != nil {
		return domain.KeyPair{}, err
	}
	clamp(priv)

	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		memzero.Zero(priv)
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{Private: priv, Public: pub}, nil
}

func clamp(priv []byte) {
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64
}

// NewCredentials generates the identity material for a brand-new store:
// noise and identity X25519 pairs, an Ed25519 signing pair, a signed prekey
// and a registration id.
func NewCredentials() (*domain.Credentials, error) {
	noise, err := NewKeyPair()
	if err != nil {
		return nil, err
	}
	identity, err := NewKeyPair()
	if err != nil {
		return nil, err
	}

	edPub, edPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	preKey, err := NewKeyPair()
	if err != nil {
		return nil, err
	}
	sig := ed25519.Sign(edPriv, preKey.Public)

	advSecret := make([]byte, advSecretBytes)
	if _, err := rand.Read(advSecret); err != nil {
		return nil, err
	}

	regID, err := registrationID()
	if err != nil {
		return nil, err
	}

	return &domain.Credentials{
		NoiseKey:    noise,
		IdentityKey: identity,
		SigningKey: domain.KeyPair{
			Private: codec.Bytes(edPriv),
			Public:  codec.Bytes(edPub),
		},
		SignedPreKey: domain.SignedPreKey{
			KeyPair:   preKey,
			Signature: sig,
			ID:        1,
		},
		RegistrationID: regID,
		AdvSecret:      advSecret,
		NextPreKeyID:   1,
	}, nil
}

// registrationID returns a random id in [1, 16380], the range protocol
// servers accept.
func registrationID() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:])%16380 + 1, nil
}

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}
