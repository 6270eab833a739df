package sovereign

import (
	"crypto/sha256"
	"encoding/binary"
)

// deriveFingerprint hashes the caller-supplied hardware info and seed into
// the engine's immutable 32-byte device fingerprint. Each input is length
// framed so distinct (hwInfo, seed) pairs never collide by concatenation.
func deriveFingerprint(hwInfo, seed string) [sha256.Size]byte {
	h := sha256.New()
	for _, s := range []string{hwInfo, seed} {
		var n [8]byte
		binary.BigEndian.PutUint64(n[:], uint64(len(s)))
		h.Write(n[:])
		h.Write([]byte(s))
	}

	var fp [sha256.Size]byte
	copy(fp[:], h.Sum(nil))
	return fp
}
