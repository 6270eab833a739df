package audit

import (
	"bufio"
	"fmt"
	"os"
)

// VerifyFile replays the audit log at path and checks chain linkage: the
// first record's prev hash must be the genesis value and every later
// record's prev hash must equal the preceding record's new hash. It returns
// the number of records on success.
//
// Linkage verification does not require the per-operation inputs; it proves
// that no record was inserted, removed or reordered. Recomputing head
// hashes additionally requires the fingerprint, KEM ciphertext, nonce and
// ciphertext of each operation, which the log deliberately does not store.
func VerifyFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &StorageError{Op: OpOpen, Path: path, Err: err}
	}
	defer f.Close()

	prev := GenesisHex
	count := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		rec, err := ParseRecord(line)
		if err != nil {
			return count, fmt.Errorf("record %d: %w", count, err)
		}

		if rec.PrevHex != prev {
			return count, fmt.Errorf("record %d (counter %d): %w: prev %s, want %s",
				count, rec.Counter, ErrChainBroken, rec.PrevHex, prev)
		}

		prev = rec.NewHex
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("read %s: %w", path, err)
	}

	return count, nil
}
