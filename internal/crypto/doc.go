// Package crypto produces the credential material the store persists.
//
// Contents
//
//   - Fresh credential generation for a new store (NewCredentials)
//   - X25519 key pair generation with RFC 7748 clamping (NewKeyPair)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - The structured decoder for the rotating sync-key category
//     (DecodeSyncKey)
//
// The store itself treats credentials and key records as opaque; this
// package is the collaborator that gives them shape.
package crypto
