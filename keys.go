package sovereign

import "github.com/titancore/sovereign-go/internal/crypto"

// RecipientKeypair is an ML-KEM-768 keypair identifying a recipient.
// The engine only ever consumes the public key; generation is provided so
// recipients (and tests) can produce keys without a second library.
type RecipientKeypair struct {
	// PublicKey is the raw ML-KEM-768 public key (1184 bytes).
	PublicKey []byte
	// SecretKey is the raw ML-KEM-768 secret key (2400 bytes). The engine
	// never reads it; it stays with the recipient for decapsulation.
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateRecipientKeypair creates a fresh ML-KEM-768 keypair.
func GenerateRecipientKeypair() (*RecipientKeypair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, err
	}

	return &RecipientKeypair{
		PublicKey:    kp.PublicKey,
		SecretKey:    kp.SecretKey,
		PublicKeyB64: kp.PublicKeyB64,
	}, nil
}

// ParseRecipientPublicKey decodes a URL-safe base64 recipient public key.
func ParseRecipientPublicKey(b64 string) ([]byte, error) {
	key, err := crypto.FromBase64URL(b64)
	if err != nil {
		return nil, &PeerKeyError{Err: err}
	}
	return key, nil
}
