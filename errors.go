package sovereign

import (
	"errors"
	"fmt"

	"github.com/titancore/sovereign-go/audit"
	"github.com/titancore/sovereign-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrRateLimited is returned when the sliding-window rate limit rejects
	// an operation. It is the only failure with no side effects: the
	// operation counter is not advanced and nothing is written.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidPeerKey is returned when the recipient public key cannot be
	// parsed as an ML-KEM-768 public key.
	ErrInvalidPeerKey = errors.New("invalid recipient public key")

	// ErrKeyDerivation is returned when session key derivation fails.
	ErrKeyDerivation = errors.New("session key derivation failed")

	// ErrEntropy is returned when the random source cannot supply bytes for
	// the nonce or the encapsulation seed.
	ErrEntropy = errors.New("entropy source unavailable")

	// ErrEncryption is returned when the AEAD rejects its inputs.
	ErrEncryption = errors.New("encryption failed")

	// ErrAuditStorage is returned when the audit record cannot be durably
	// written. The chain head is not advanced on this failure.
	ErrAuditStorage = errors.New("audit storage failure")

	// ErrNotAuthorized is returned at construction when the license
	// signature is rejected.
	ErrNotAuthorized = errors.New("engine not authorized")
)

// SovereignError is implemented by all engine errors.
type SovereignError interface {
	error
	SovereignError() // marker method
}

// PeerKeyError reports a recipient public key that could not be used for
// encapsulation.
type PeerKeyError struct {
	// Size is the length of the rejected key in bytes.
	Size int
	Err  error
}

func (e *PeerKeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid recipient public key (%d bytes): %v", e.Size, e.Err)
	}
	return fmt.Sprintf("invalid recipient public key (%d bytes)", e.Size)
}

// Unwrap returns the underlying error.
func (e *PeerKeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *PeerKeyError) Is(target error) bool {
	return target == ErrInvalidPeerKey
}

// SovereignError implements the SovereignError interface.
func (e *PeerKeyError) SovereignError() {}

// AuditStorageError reports a failure to durably persist an audit record.
// Op identifies the failing stage: "open", "write" or "sync".
type AuditStorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *AuditStorageError) Error() string {
	return fmt.Sprintf("audit storage %s failed for %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *AuditStorageError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *AuditStorageError) Is(target error) bool {
	return target == ErrAuditStorage
}

// SovereignError implements the SovereignError interface.
func (e *AuditStorageError) SovereignError() {}

// AuthorizationError reports a construction-time authorization failure.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization failed: %s", e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthorizationError) Is(target error) bool {
	return target == ErrNotAuthorized
}

// SovereignError implements the SovereignError interface.
func (e *AuthorizationError) SovereignError() {}

// wrapCryptoError converts internal crypto errors to public sentinel errors
// so that errors.Is() checks work correctly.
func wrapCryptoError(err error, peerKeySize int) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrInvalidPublicKeySize),
		errors.Is(err, crypto.ErrInvalidPublicKey):
		return &PeerKeyError{Size: peerKeySize, Err: err}
	case errors.Is(err, crypto.ErrEntropyUnavailable):
		return fmt.Errorf("%w: %v", ErrEntropy, err)
	case errors.Is(err, crypto.ErrKeyDerivationFailed):
		return fmt.Errorf("%w: %v", ErrKeyDerivation, err)
	case errors.Is(err, crypto.ErrInvalidKeySize),
		errors.Is(err, crypto.ErrInvalidNonceSize),
		errors.Is(err, crypto.ErrEncryptionFailed):
		return fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	return err
}

// wrapAuditError converts ledger storage errors to the public typed error.
func wrapAuditError(err error) error {
	if err == nil {
		return nil
	}

	var storageErr *audit.StorageError
	if errors.As(err, &storageErr) {
		return &AuditStorageError{
			Op:   storageErr.Op,
			Path: storageErr.Path,
			Err:  storageErr.Err,
		}
	}

	return err
}
