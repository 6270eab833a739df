package sovereign

import (
	"github.com/titancore/sovereign-go/audit"
	"github.com/titancore/sovereign-go/internal/crypto"
	"github.com/titancore/sovereign-go/internal/ratelimit"
)

// Engine performs authenticated encryption operations against a single
// audit chain. Safe for concurrent use; multiple engines may share one
// ledger (and therefore one chain) via WithLedger.
type Engine struct {
	fingerprint [crypto.SessionKeySize]byte
	ledger      *audit.Ledger
	limiter     *ratelimit.Limiter
	authorized  bool
}

// Result is the outcome of one successful operation.
type Result struct {
	// Ciphertext is the AES-256-GCM output including its authentication tag.
	Ciphertext []byte
	// KEMCiphertext is the ML-KEM-768 encapsulation the recipient needs to
	// recover the shared secret.
	KEMCiphertext []byte
	// Nonce is the 12-byte nonce the plaintext was sealed under: BE64
	// counter followed by 4 random bytes. The recipient needs it to open
	// the ciphertext.
	Nonce []byte
	// Counter is the operation counter assigned to this operation. The
	// recipient needs it to re-derive the session key.
	Counter uint64
	// AuditRef is the chain head after this operation's audit record, hex
	// encoded.
	AuditRef string
}

// New creates an engine. The device fingerprint is derived once from
// hwInfo and seed and is immutable for the engine's lifetime; licenseSig is
// checked at construction (the current check accepts any signature);
// logPath is where the engine's own ledger persists its chain.
//
// When WithLedger supplies a shared ledger, logPath is ignored and may be
// empty.
func New(hwInfo, seed, licenseSig, logPath string, opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		rateCapacity: ratelimit.DefaultCapacity,
		rateWindow:   ratelimit.DefaultWindow,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := verifyLicense(licenseSig); err != nil {
		return nil, err
	}

	ledger := cfg.ledger
	if ledger == nil {
		ledger = audit.NewLedger(logPath)
	}

	return &Engine{
		fingerprint: deriveFingerprint(hwInfo, seed),
		ledger:      ledger,
		limiter:     ratelimit.New(cfg.rateCapacity, cfg.rateWindow),
		authorized:  true,
	}, nil
}

// verifyLicense checks the license signature. The check is a stub that
// accepts any signature, including an empty one; it is not a security
// control. Real license verification would be designed separately.
func verifyLicense(licenseSig string) error {
	return nil
}

// Operate encrypts plaintext for the holder of recipientPublicKey and
// appends a durable audit record for the operation.
//
// The pipeline is: rate-limit gate, counter assignment, ML-KEM-768
// encapsulation, HKDF-SHA-512 session key derivation, nonce construction,
// AES-256-GCM seal, audit chain append. The counter is assigned immediately
// after the gate passes; a failure in any later stage leaves that counter
// value permanently unused. A rate-limited call has no side effects at all.
//
// No associated data is bound into the AEAD; the fingerprint and KEM
// ciphertext are instead committed to by the audit chain hash.
func (e *Engine) Operate(plaintext, recipientPublicKey []byte) (*Result, error) {
	if !e.authorized {
		return nil, &AuthorizationError{Reason: "engine constructed without authorization"}
	}

	if !e.limiter.Allow() {
		return nil, ErrRateLimited
	}

	counter := e.ledger.NextCounter()

	kemCiphertext, sharedSecret, err := crypto.Encapsulate(recipientPublicKey)
	if err != nil {
		return nil, wrapCryptoError(err, len(recipientPublicKey))
	}

	sessionKey, err := crypto.SessionKey(sharedSecret, e.fingerprint[:], counter)
	if err != nil {
		return nil, wrapCryptoError(err, 0)
	}

	nonce, err := crypto.BuildNonce(counter)
	if err != nil {
		return nil, wrapCryptoError(err, 0)
	}

	ciphertext, err := crypto.Seal(sessionKey, nonce, plaintext)
	if err != nil {
		return nil, wrapCryptoError(err, 0)
	}

	auditRef, err := e.ledger.Append(counter, e.fingerprint[:], kemCiphertext, nonce, ciphertext)
	if err != nil {
		return nil, wrapAuditError(err)
	}

	return &Result{
		Ciphertext:    ciphertext,
		KEMCiphertext: kemCiphertext,
		Nonce:         nonce,
		Counter:       counter,
		AuditRef:      auditRef,
	}, nil
}

// Fingerprint returns a copy of the engine's 32-byte device fingerprint.
func (e *Engine) Fingerprint() []byte {
	fp := make([]byte, len(e.fingerprint))
	copy(fp, e.fingerprint[:])
	return fp
}

// Ledger returns the audit ledger this engine writes to.
func (e *Engine) Ledger() *audit.Ledger {
	return e.ledger
}
