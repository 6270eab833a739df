package crypto

import "errors"

var (
	// ErrInvalidPublicKeySize is returned when the recipient public key size is invalid.
	ErrInvalidPublicKeySize = errors.New("invalid recipient public key size")

	// ErrInvalidPublicKey is returned when a correctly sized recipient public
	// key fails to parse as an ML-KEM-768 public key.
	ErrInvalidPublicKey = errors.New("malformed recipient public key")

	// ErrInvalidSecretKeySize is returned when the secret key size is invalid.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidCiphertextSize is returned when the KEM ciphertext size is invalid.
	ErrInvalidCiphertextSize = errors.New("invalid KEM ciphertext size")

	// ErrEntropyUnavailable is returned when the random source cannot supply
	// the requested bytes.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrKeyDerivationFailed is returned when HKDF expansion fails.
	ErrKeyDerivationFailed = errors.New("session key derivation failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrEncryptionFailed is returned when the AEAD cannot be constructed.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed is returned when AEAD opening fails.
	ErrDecryptionFailed = errors.New("decryption failed")
)
