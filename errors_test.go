package sovereign

import (
	"errors"
	"fmt"
	"testing"

	"github.com/titancore/sovereign-go/audit"
	"github.com/titancore/sovereign-go/internal/crypto"
)

func TestTypedErrors_SentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"peer key", &PeerKeyError{Size: 3}, ErrInvalidPeerKey},
		{"audit storage", &AuditStorageError{Op: "sync", Path: "x.log", Err: errors.New("disk full")}, ErrAuditStorage},
		{"authorization", &AuthorizationError{Reason: "revoked"}, ErrNotAuthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false, want true", tt.err)
			}

			// All typed errors implement the marker interface.
			var se SovereignError
			if !errors.As(tt.err, &se) {
				t.Errorf("%T does not implement SovereignError", tt.err)
			}
		})
	}
}

func TestTypedErrors_Unwrap(t *testing.T) {
	inner := errors.New("no space left on device")
	err := &AuditStorageError{Op: "write", Path: "audit.log", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("AuditStorageError does not unwrap to inner error")
	}

	wrapped := fmt.Errorf("operation failed: %w", err)
	var storageErr *AuditStorageError
	if !errors.As(wrapped, &storageErr) {
		t.Fatal("errors.As failed through wrapping")
	}
	if storageErr.Op != "write" {
		t.Errorf("Op = %s, want write", storageErr.Op)
	}
}

func TestWrapCryptoError(t *testing.T) {
	tests := []struct {
		name     string
		internal error
		sentinel error
	}{
		{"public key size", crypto.ErrInvalidPublicKeySize, ErrInvalidPeerKey},
		{"malformed public key", crypto.ErrInvalidPublicKey, ErrInvalidPeerKey},
		{"entropy", crypto.ErrEntropyUnavailable, ErrEntropy},
		{"derivation", crypto.ErrKeyDerivationFailed, ErrKeyDerivation},
		{"key size", crypto.ErrInvalidKeySize, ErrEncryption},
		{"nonce size", crypto.ErrInvalidNonceSize, ErrEncryption},
		{"encryption", crypto.ErrEncryptionFailed, ErrEncryption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("stage: %w", tt.internal)
			if got := wrapCryptoError(wrapped, 0); !errors.Is(got, tt.sentinel) {
				t.Errorf("wrapCryptoError(%v) = %v, does not match sentinel", tt.internal, got)
			}
		})
	}

	if wrapCryptoError(nil, 0) != nil {
		t.Error("wrapCryptoError(nil) != nil")
	}

	unknown := errors.New("unrelated")
	if got := wrapCryptoError(unknown, 0); got != unknown {
		t.Errorf("wrapCryptoError(unknown) = %v, want passthrough", got)
	}
}

func TestWrapAuditError(t *testing.T) {
	inner := &audit.StorageError{Op: audit.OpSync, Path: "chain.log", Err: errors.New("io")}
	got := wrapAuditError(fmt.Errorf("append: %w", inner))

	var storageErr *AuditStorageError
	if !errors.As(got, &storageErr) {
		t.Fatalf("wrapAuditError() = %T, want *AuditStorageError", got)
	}
	if storageErr.Op != audit.OpSync || storageErr.Path != "chain.log" {
		t.Errorf("got Op=%s Path=%s, want sync chain.log", storageErr.Op, storageErr.Path)
	}
	if !errors.Is(got, ErrAuditStorage) {
		t.Error("wrapped audit error does not match ErrAuditStorage")
	}

	if wrapAuditError(nil) != nil {
		t.Error("wrapAuditError(nil) != nil")
	}
}
