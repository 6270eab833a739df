package crypto

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

// scheme is the configured post-quantum KEM.
var scheme kem.Scheme = mlkem768.Scheme()

// Keypair represents an ML-KEM-768 keypair for key encapsulation.
type Keypair struct {
	// PublicKey is the raw ML-KEM-768 public key bytes.
	PublicKey []byte
	// SecretKey is the raw ML-KEM-768 secret key bytes.
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

// GenerateKeypair creates a new ML-KEM-768 keypair.
func GenerateKeypair() (*Keypair, error) {
	pub, priv, err := scheme.GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	// MarshalBinary never fails for valid keys from GenerateKeyPair
	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &Keypair{
		PublicKey:    pubBytes,
		SecretKey:    privBytes,
		PublicKeyB64: ToBase64URL(pubBytes),
	}, nil
}

// DeriveKeypair derives an ML-KEM-768 keypair deterministically from a seed
// of scheme.SeedSize() bytes. Intended for tests.
func DeriveKeypair(seed []byte) *Keypair {
	pub, priv := scheme.DeriveKeyPair(seed)

	pubBytes, _ := pub.MarshalBinary()
	privBytes, _ := priv.MarshalBinary()

	return &Keypair{
		PublicKey:    pubBytes,
		SecretKey:    privBytes,
		PublicKeyB64: ToBase64URL(pubBytes),
	}
}

// KeypairSeedSize is the seed length DeriveKeypair expects.
func KeypairSeedSize() int {
	return scheme.SeedSize()
}

// Encapsulate generates a fresh shared secret bound to the recipient's
// public key, together with the KEM ciphertext the recipient needs to
// recover it. The encapsulation seed is drawn from the package random
// source on every call; the shared secret is never reused.
func Encapsulate(recipientPublicKey []byte) (kemCiphertext, sharedSecret []byte, err error) {
	if len(recipientPublicKey) != MLKEMPublicKeySize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d",
			ErrInvalidPublicKeySize, len(recipientPublicKey), MLKEMPublicKeySize)
	}

	pub, err := scheme.UnmarshalBinaryPublicKey(recipientPublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	seed := make([]byte, scheme.EncapsulationSeedSize())
	if _, err := io.ReadFull(reader(), seed); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	kemCiphertext, sharedSecret, err = scheme.EncapsulateDeterministically(pub, seed)
	if err != nil {
		return nil, nil, fmt.Errorf("encapsulate: %w", err)
	}

	return kemCiphertext, sharedSecret, nil
}

// Decapsulate recovers the shared secret from the encapsulated key.
func (k *Keypair) Decapsulate(kemCiphertext []byte) ([]byte, error) {
	if len(kemCiphertext) != MLKEMCiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}
	if len(k.SecretKey) != MLKEMSecretKeySize {
		return nil, ErrInvalidSecretKeySize
	}

	priv, err := scheme.UnmarshalBinaryPrivateKey(k.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("unmarshal private key: %w", err)
	}

	return scheme.Decapsulate(priv, kemCiphertext)
}
