package crypto_test

import (
	"crypto/ed25519"
	"encoding/json"
	"testing"

	"credstore/internal/codec"
	"credstore/internal/crypto"
	"credstore/internal/domain"
)

func TestNewCredentials_Populated(t *testing.T) {
	creds, err := crypto.NewCredentials()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !creds.Valid() {
		t.Fatal("generated credentials missing noise key marker")
	}
	if len(creds.IdentityKey.Private) != 32 || len(creds.IdentityKey.Public) != 32 {
		t.Fatal("identity key has wrong size")
	}
	if creds.RegistrationID == 0 || creds.RegistrationID > 16380 {
		t.Fatalf("registration id out of range: %d", creds.RegistrationID)
	}
	if len(creds.AdvSecret) != 32 {
		t.Fatalf("adv secret has wrong size: %d", len(creds.AdvSecret))
	}
	if creds.NextPreKeyID != 1 {
		t.Fatalf("next prekey id = %d", creds.NextPreKeyID)
	}
}

func TestNewCredentials_PreKeySignatureVerifies(t *testing.T) {
	creds, err := crypto.NewCredentials()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	ok := ed25519.Verify(
		ed25519.PublicKey(creds.SigningKey.Public),
		creds.SignedPreKey.KeyPair.Public,
		creds.SignedPreKey.Signature,
	)
	if !ok {
		t.Fatal("signed prekey signature does not verify")
	}
}

func TestNewKeyPair_Distinct(t *testing.T) {
	a, err := crypto.NewKeyPair()
	if err != nil {
		t.Fatalf("a: %v", err)
	}
	b, err := crypto.NewKeyPair()
	if err != nil {
		t.Fatalf("b: %v", err)
	}
	if string(a.Private) == string(b.Private) {
		t.Fatal("two generated pairs share a private key")
	}
}

func TestCredentials_JSONRoundTrip(t *testing.T) {
	creds, err := crypto.NewCredentials()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	raw, err := codec.Marshal(creds)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back domain.Credentials
	if err := codec.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(back.NoiseKey.Private) != string(creds.NoiseKey.Private) {
		t.Fatal("noise private key did not round trip")
	}
	if string(back.SignedPreKey.Signature) != string(creds.SignedPreKey.Signature) {
		t.Fatal("prekey signature did not round trip")
	}
}

func TestFingerprint_Stable(t *testing.T) {
	pub := []byte{1, 2, 3}
	a := crypto.Fingerprint(pub)
	b := crypto.Fingerprint(pub)
	if a != b {
		t.Fatal("fingerprint not deterministic")
	}
	if len(a) != 20 {
		t.Fatalf("fingerprint length = %d, want 20", len(a))
	}
}

func TestDecodeSyncKey(t *testing.T) {
	good, err := json.Marshal(crypto.SyncKey{
		Data:      codec.Bytes{1, 2, 3},
		Timestamp: 1700000000,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	v, err := crypto.DecodeSyncKey(good)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	key, ok := v.(*crypto.SyncKey)
	if !ok || len(key.Data) != 3 {
		t.Fatalf("unexpected decode result: %#v", v)
	}

	if _, err := crypto.DecodeSyncKey([]byte(`{"timestamp":1}`)); err == nil {
		t.Fatal("expected error for record without key data")
	}
	if _, err := crypto.DecodeSyncKey([]byte(`{broken`)); err == nil {
		t.Fatal("expected error for malformed record")
	}
}
