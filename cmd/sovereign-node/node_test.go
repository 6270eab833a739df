package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	sovereign "github.com/titancore/sovereign-go"
)

func newTestNode(t *testing.T) *node {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`{"node_id":"TEST-01","hw_id":"HW-TEST","audit_log":%q}`,
		filepath.Join(dir, "audit.log"))
	n, err := newNode(writeConfig(t, content))
	if err != nil {
		t.Fatalf("newNode() error = %v", err)
	}
	return n
}

func TestNode_EncryptSuccess(t *testing.T) {
	n := newTestNode(t)

	kp, err := sovereign.GenerateRecipientKeypair()
	if err != nil {
		t.Fatal(err)
	}

	result, err := n.encrypt([]byte("payload"), kp.PublicKey)
	if err != nil {
		t.Fatalf("encrypt() error = %v", err)
	}
	if result.AuditRef == "" {
		t.Error("empty audit ref")
	}
	if n.anomalies != 0 {
		t.Errorf("anomalies = %d, want 0", n.anomalies)
	}
	if n.status() != "ACTIVE" {
		t.Errorf("status = %s, want ACTIVE", n.status())
	}
}

func TestNode_KillSwitchAtMaxAnomalies(t *testing.T) {
	n := newTestNode(t)
	badKey := []byte("not a public key")

	for i := 1; i <= maxAnomalyScore; i++ {
		if _, err := n.encrypt([]byte("payload"), badKey); err == nil {
			t.Fatalf("encrypt(bad key) %d succeeded", i)
		}
		if n.anomalies != i {
			t.Fatalf("anomalies = %d, want %d", n.anomalies, i)
		}
	}

	if n.active {
		t.Fatal("node still active after max anomalies")
	}
	if n.status() != "COMPROMISED" {
		t.Fatalf("status = %s, want COMPROMISED", n.status())
	}

	// Locked node refuses work even with a valid key.
	kp, err := sovereign.GenerateRecipientKeypair()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := n.encrypt([]byte("payload"), kp.PublicKey); !errors.Is(err, sovereign.ErrNotAuthorized) {
		t.Fatalf("encrypt(locked) error = %v, want ErrNotAuthorized", err)
	}
}

func TestShortRef(t *testing.T) {
	if got := shortRef("abcdefghijklmnop"); got != "abcdefghijkl" {
		t.Errorf("shortRef(long) = %s", got)
	}
	if got := shortRef("abc"); got != "abc" {
		t.Errorf("shortRef(short) = %s", got)
	}
}
