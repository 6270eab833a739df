package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"
)

// BuildNonce constructs the 12-byte nonce for one operation: the first 8
// bytes are the big-endian operation counter (uniqueness anchored to the
// monotonic counter), the last 4 bytes come from the package random source
// (guards against counter collisions across independent engines or process
// restarts).
func BuildNonce(counter uint64) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	binary.BigEndian.PutUint64(nonce[:NonceCounterSize], counter)

	if _, err := io.ReadFull(reader(), nonce[NonceCounterSize:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	return nonce, nil
}

// Seal encrypts plaintext using AES-256-GCM under the session key and nonce.
// The returned ciphertext carries the authentication tag. No associated
// data is bound.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open decrypts an AES-256-GCM ciphertext produced by Seal. It exists for
// round-trip verification; the engine itself never decrypts.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != SessionKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), SessionKeySize)
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	return aead, nil
}
