package crypto

import (
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SessionKey derives the single-use AES-256 key for one operation using
// HKDF-SHA-512 with no salt and the fixed context label.
//
// The input key material is sharedSecret || fingerprint || BE64(counter):
// an ephemeral per-operation secret, a long-lived device identity, and a
// strictly increasing counter, so no two operations derive the same key.
// Derivation is deterministic for fixed inputs.
func SessionKey(sharedSecret, fingerprint []byte, counter uint64) ([]byte, error) {
	ikm := make([]byte, 0, len(sharedSecret)+len(fingerprint)+NonceCounterSize)
	ikm = append(ikm, sharedSecret...)
	ikm = append(ikm, fingerprint...)
	ikm = binary.BigEndian.AppendUint64(ikm, counter)

	reader := hkdf.New(sha512.New, ikm, nil, []byte(HKDFContext))
	key := make([]byte, SessionKeySize)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivationFailed, err)
	}

	return key, nil
}
