package crypto

const (
	// HKDFContext is the context string used in HKDF key derivation
	// for domain separation.
	HKDFContext = "titancore:sovereign:session:v1"

	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	MLKEMSecretKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	MLKEMSharedKeySize = 32

	// SessionKeySize is the size of a derived AES-256 session key in bytes.
	SessionKeySize = 32
	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = 12
	// NonceCounterSize is the size of the big-endian counter prefix of a nonce.
	NonceCounterSize = 8
	// NonceRandomSize is the size of the random suffix of a nonce.
	NonceRandomSize = NonceSize - NonceCounterSize
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "ML-KEM-768:AES-256-GCM:HKDF-SHA-512"
