// Package audit implements the tamper-evident, hash-chained operation
// ledger backing the engine's audit trail.
//
// Every successful operation appends one record to an append-only text
// file. Each record commits, via SHA-256, to the previous chain head and to
// everything that defines the operation (counter, fingerprint, KEM
// ciphertext, nonce, ciphertext), so retroactive tampering with any record
// breaks the chain from that point forward. A record is durably written
// (flushed and fsynced) before the in-memory head advances.
//
// A Ledger is an explicit, shareable object: engines that must write to a
// common chain hold the same *Ledger. There is no package-level state.
package audit

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// HashSize is the size of a chain head in bytes.
const HashSize = sha256.Size

// GenesisHex is the prev_hash field of the first record of every chain:
// 32 zero bytes, hex encoded.
var GenesisHex = hex.EncodeToString(make([]byte, HashSize))

// Ledger owns one audit chain: the operation counter, the in-memory chain
// head, and the durable log file the chain is persisted to. Safe for
// concurrent use.
type Ledger struct {
	path    string
	counter atomic.Uint64

	// mu serializes the whole append: head read, durable write, head
	// advance. This single critical section is what establishes the
	// chain's total order; it must never be split.
	mu   sync.Mutex
	head [HashSize]byte
}

// NewLedger creates a ledger persisting its chain to the file at path.
// The head starts at the all-zero genesis value; the file is created on
// first append.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Path returns the log file path.
func (l *Ledger) Path() string {
	return l.path
}

// NextCounter reserves and returns the next operation counter value,
// starting at 1. Reservation is independent of operation success: a
// failure after reservation leaves a permanent gap in the sequence, so a
// gap does not by itself imply tampering.
func (l *Ledger) NextCounter() uint64 {
	return l.counter.Add(1)
}

// Counter returns the most recently reserved counter value.
func (l *Ledger) Counter() uint64 {
	return l.counter.Load()
}

// Head returns a copy of the current chain head.
func (l *Ledger) Head() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()

	head := make([]byte, HashSize)
	copy(head, l.head[:])
	return head
}

// Append records one successful operation on the chain and returns the new
// head, hex encoded, as the audit reference.
//
// The record line is durable (written, flushed, fsynced) before the head
// advances; on any storage failure the head is left unchanged so the
// in-memory chain stays consistent with the log tail.
func (l *Ledger) Append(counter uint64, fingerprint, kemCiphertext, nonce, ciphertext []byte) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	newHead := ComputeHead(l.head[:], counter, fingerprint, kemCiphertext, nonce, ciphertext)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return "", &StorageError{Op: OpOpen, Path: l.path, Err: err}
	}

	line := fmt.Sprintf("%x|%x|%d|%d\n", l.head[:], newHead, counter, time.Now().Unix())
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return "", &StorageError{Op: OpWrite, Path: l.path, Err: err}
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return "", &StorageError{Op: OpSync, Path: l.path, Err: err}
	}

	if err := f.Close(); err != nil {
		return "", &StorageError{Op: OpSync, Path: l.path, Err: err}
	}

	copy(l.head[:], newHead)
	return hex.EncodeToString(newHead), nil
}

// ComputeHead computes the chain head that follows prev for one operation:
//
//	SHA-256(prev || BE64(counter) || fingerprint || kem_ciphertext || nonce || ciphertext)
func ComputeHead(prev []byte, counter uint64, fingerprint, kemCiphertext, nonce, ciphertext []byte) []byte {
	var counterBE [8]byte
	binary.BigEndian.PutUint64(counterBE[:], counter)

	h := sha256.New()
	h.Write(prev)
	h.Write(counterBE[:])
	h.Write(fingerprint)
	h.Write(kemCiphertext)
	h.Write(nonce)
	h.Write(ciphertext)
	return h.Sum(nil)
}
