// Command sovereign-node supervises a sovereign encryption engine: it
// constructs the engine from a JSON config file plus environment overrides,
// runs the heartbeat loop, performs one-shot encrypt operations, verifies
// the audit chain, and generates recipient keypairs.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	sovereign "github.com/titancore/sovereign-go"
	"github.com/titancore/sovereign-go/audit"
)

// exitLocked is the exit code when the anomaly kill switch trips.
const exitLocked = 3

func main() {
	if len(os.Args) < 2 {
		fatal("usage: sovereign-node <run|encrypt|verify|keygen> [args]")
	}

	// A .env next to the binary may carry TITAN_LICENSE_KEY and
	// TITAN_ROOT_SEED; its absence is not an error.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "run":
		runNode(os.Args[2:])
	case "encrypt":
		encryptOnce(os.Args[2:])
	case "verify":
		verifyChain(os.Args[2:])
	case "keygen":
		generateKeypair()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

// runNode enters continuous operational mode: a heartbeat log line every
// configured interval until the process is signalled.
func runNode(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "node.json", "path to node config file")
	fs.Parse(args)

	node, err := newNode(*configPath)
	if err != nil {
		fatal("start node: %v", err)
	}
	node.log.Info("node online", "version", version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Duration(node.cfg.HeartbeatInterval) * time.Second)
	defer ticker.Stop()

	node.heartbeat()
	for {
		select {
		case <-ctx.Done():
			node.log.Info("shutdown signal received")
			return
		case <-ticker.C:
			node.heartbeat()
		}
	}
}

// encryptResponse is what encryptOnce prints on success.
type encryptResponse struct {
	Status        string `json:"status"`
	AuditRef      string `json:"audit_ref"`
	Counter       uint64 `json:"counter"`
	Ciphertext    string `json:"ciphertext"`
	KEMCiphertext string `json:"kem_ciphertext"`
	Nonce         string `json:"nonce"`
}

// encryptOnce reads plaintext from stdin, encrypts it for the recipient key
// in -key, and prints the result as JSON.
func encryptOnce(args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	configPath := fs.String("config", "node.json", "path to node config file")
	keyPath := fs.String("key", "", "file holding the recipient public key (base64url)")
	fs.Parse(args)

	if *keyPath == "" {
		fatal("encrypt: -key is required")
	}

	keyB64, err := os.ReadFile(*keyPath)
	if err != nil {
		fatal("read recipient key: %v", err)
	}
	publicKey, err := sovereign.ParseRecipientPublicKey(string(trimNewline(keyB64)))
	if err != nil {
		fatal("parse recipient key: %v", err)
	}

	plaintext, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read plaintext: %v", err)
	}

	node, err := newNode(*configPath)
	if err != nil {
		fatal("start node: %v", err)
	}

	result, err := node.encrypt(plaintext, publicKey)
	if err != nil {
		if !node.active {
			os.Exit(exitLocked)
		}
		fatal("encrypt: %v", err)
	}

	resp := encryptResponse{
		Status:        "SUCCESS",
		AuditRef:      result.AuditRef,
		Counter:       result.Counter,
		Ciphertext:    toBase64(result.Ciphertext),
		KEMCiphertext: toBase64(result.KEMCiphertext),
		Nonce:         toBase64(result.Nonce),
	}
	if err := json.NewEncoder(os.Stdout).Encode(resp); err != nil {
		fatal("encode response: %v", err)
	}
}

// verifyChain replays the configured audit log and reports the record count
// or the first broken link.
func verifyChain(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	configPath := fs.String("config", "node.json", "path to node config file")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal("load config: %v", err)
	}

	count, err := audit.VerifyFile(cfg.AuditLog)
	if err != nil {
		fatal("chain verification failed after %d records: %v", count, err)
	}
	fmt.Printf("chain intact: %d records\n", count)
}

// generateKeypair prints a fresh recipient keypair as JSON.
func generateKeypair() {
	kp, err := sovereign.GenerateRecipientKeypair()
	if err != nil {
		fatal("generate keypair: %v", err)
	}

	out := struct {
		PublicKey string `json:"public_key"`
		SecretKey string `json:"secret_key"`
	}{
		PublicKey: kp.PublicKeyB64,
		SecretKey: toBase64(kp.SecretKey),
	}
	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fatal("encode keypair: %v", err)
	}
}

func newLogger(nodeID string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil)).With("node", nodeID)
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
