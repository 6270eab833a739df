package audit

import (
	"errors"
	"fmt"
)

// Storage failure stages.
const (
	OpOpen  = "open"
	OpWrite = "write"
	OpSync  = "sync"
)

var (
	// ErrMalformedRecord is returned when a log line does not parse as an
	// audit record.
	ErrMalformedRecord = errors.New("malformed audit record")

	// ErrChainBroken is returned when a record's prev hash does not match
	// the preceding record's new hash (or genesis for the first record).
	ErrChainBroken = errors.New("audit chain broken")
)

// StorageError reports a failure to durably persist an audit record.
type StorageError struct {
	// Op is the failing stage: OpOpen, OpWrite or OpSync.
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("audit log %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}
