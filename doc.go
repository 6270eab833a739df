// Package sovereign implements an authenticated post-quantum encryption
// engine with a tamper-evident audit trail.
//
// Each engine performs a single operation: given plaintext and a recipient's
// ML-KEM-768 public key, it produces an AES-256-GCM ciphertext together with
// a hash-chained, durably persisted audit record proving the operation
// occurred. Operations are bounded by a sliding-window rate limit.
//
// The session key for every operation is derived (HKDF-SHA-512) from a fresh
// KEM shared secret, the engine's device fingerprint, and a strictly
// monotonic operation counter, so no two operations ever encrypt under the
// same key.
//
// Basic usage:
//
//	engine, err := sovereign.New(hwInfo, seed, licenseSig, "audit.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := engine.Operate(plaintext, recipientPublicKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("audit ref:", result.AuditRef)
//
// Engines that must share one audit chain are constructed with a common
// ledger:
//
//	ledger := audit.NewLedger("audit.log")
//	a, _ := sovereign.New(hw1, seed, sig, "", sovereign.WithLedger(ledger))
//	b, _ := sovereign.New(hw2, seed, sig, "", sovereign.WithLedger(ledger))
package sovereign
