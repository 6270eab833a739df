// Package crypto implements the cryptographic pipeline of the engine:
// ML-KEM-768 key encapsulation, HKDF-SHA-512 session key derivation, and
// AES-256-GCM authenticated encryption.
//
// All primitives are delegated to audited libraries (cloudflare/circl for
// the KEM, golang.org/x/crypto for HKDF, the Go standard library for
// AES-GCM); this package only composes them.
package crypto
