package types

import "credstore/internal/codec"

// KeyPair holds one asymmetric key pair with the private half first on disk.
type KeyPair struct {
	Private codec.Bytes `json:"private"`
	Public  codec.Bytes `json:"public"`
}

// SignedPreKey is a medium-term key pair signed by the identity signing key.
type SignedPreKey struct {
	KeyPair   KeyPair     `json:"keyPair"`
	Signature codec.Bytes `json:"signature"`
	ID        uint32      `json:"keyId"`
}
