package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
)

const version = "15.3.0"

const (
	defaultAuditLog          = "sovereign_audit.log"
	defaultHeartbeatInterval = 30

	envLicenseKey     = "TITAN_LICENSE_KEY"
	envRootSeed       = "TITAN_ROOT_SEED"
	defaultLicenseKey = "FREE_LICENSE"
	defaultRootSeed   = "FREE_SEED"
)

// nodeConfig is the JSON config file a node starts from. NodeID and HWID
// are mandatory; everything else has defaults.
type nodeConfig struct {
	NodeID            string `json:"node_id"`
	HWID              string `json:"hw_id"`
	AuditLog          string `json:"audit_log"`
	HeartbeatInterval int    `json:"heartbeat_interval"`
}

func loadConfig(path string) (*nodeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := nodeConfig{
		AuditLog:          defaultAuditLog,
		HeartbeatInterval: defaultHeartbeatInterval,
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.NodeID == "" {
		return nil, fmt.Errorf("config %s: missing mandatory key node_id", path)
	}
	if cfg.HWID == "" {
		return nil, fmt.Errorf("config %s: missing mandatory key hw_id", path)
	}
	if cfg.AuditLog == "" {
		cfg.AuditLog = defaultAuditLog
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = defaultHeartbeatInterval
	}

	return &cfg, nil
}

// envOr reads an environment variable with a fallback.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func toBase64(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}
