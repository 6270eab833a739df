package audit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVerifyFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	count, err := VerifyFile(path)
	if err != nil {
		t.Fatalf("VerifyFile() error = %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
}

func TestVerifyFile_MissingFile(t *testing.T) {
	_, err := VerifyFile(filepath.Join(t.TempDir(), "nope.log"))

	var storageErr *StorageError
	if !errors.As(err, &storageErr) || storageErr.Op != OpOpen {
		t.Fatalf("VerifyFile() error = %v, want open StorageError", err)
	}
}

func TestVerifyFile_DetectsTampering(t *testing.T) {
	l := testLedger(t)
	for i := uint64(1); i <= 3; i++ {
		mustAppend(t, l, i)
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	tests := []struct {
		name   string
		mutate func([]string) []string
	}{
		{
			name: "record removed",
			mutate: func(ls []string) []string {
				return []string{ls[0], ls[2]}
			},
		},
		{
			name: "records reordered",
			mutate: func(ls []string) []string {
				return []string{ls[0], ls[2], ls[1]}
			},
		},
		{
			name: "hash altered",
			mutate: func(ls []string) []string {
				out := append([]string{}, ls...)
				out[1] = strings.Replace(out[1], out[1][:8], "deadbeef", 1)
				return out
			},
		},
		{
			name: "first record not genesis",
			mutate: func(ls []string) []string {
				return ls[1:]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tampered.log")
			content := strings.Join(tt.mutate(lines), "\n") + "\n"
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatal(err)
			}

			if _, err := VerifyFile(path); !errors.Is(err, ErrChainBroken) {
				t.Fatalf("VerifyFile() error = %v, want ErrChainBroken", err)
			}
		})
	}
}

func TestParseRecord_Malformed(t *testing.T) {
	valid := GenesisHex + "|" + GenesisHex + "|1|1700000000"
	if _, err := ParseRecord(valid); err != nil {
		t.Fatalf("ParseRecord(valid) error = %v", err)
	}

	tests := []struct {
		name string
		line string
	}{
		{"too few fields", GenesisHex + "|1|1700000000"},
		{"short prev hash", "abcd|" + GenesisHex + "|1|1700000000"},
		{"non-hex new hash", GenesisHex + "|" + strings.Repeat("zz", HashSize) + "|1|1700000000"},
		{"bad counter", GenesisHex + "|" + GenesisHex + "|x|1700000000"},
		{"bad timestamp", GenesisHex + "|" + GenesisHex + "|1|later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRecord(tt.line); !errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("ParseRecord() error = %v, want ErrMalformedRecord", err)
			}
		})
	}
}
