package audit

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one parsed audit log line.
type Record struct {
	// PrevHex is the chain head before this operation, hex encoded.
	PrevHex string
	// NewHex is the chain head after this operation, hex encoded.
	NewHex string
	// Counter is the operation counter the record was written for.
	Counter uint64
	// Timestamp is the wall-clock write time in unix seconds.
	Timestamp int64
}

// ParseRecord parses one pipe-delimited log line
// (prev_hex|new_hex|counter|unix_seconds).
func ParseRecord(line string) (*Record, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: %d fields, want 4", ErrMalformedRecord, len(fields))
	}

	if err := checkHashHex(fields[0]); err != nil {
		return nil, fmt.Errorf("%w: prev hash: %v", ErrMalformedRecord, err)
	}
	if err := checkHashHex(fields[1]); err != nil {
		return nil, fmt.Errorf("%w: new hash: %v", ErrMalformedRecord, err)
	}

	counter, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: counter: %v", ErrMalformedRecord, err)
	}

	ts, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp: %v", ErrMalformedRecord, err)
	}

	return &Record{
		PrevHex:   fields[0],
		NewHex:    fields[1],
		Counter:   counter,
		Timestamp: ts,
	}, nil
}

func checkHashHex(s string) error {
	if len(s) != 2*HashSize {
		return fmt.Errorf("length %d, want %d", len(s), 2*HashSize)
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
		default:
			return fmt.Errorf("non-hex character %q", c)
		}
	}
	return nil
}
