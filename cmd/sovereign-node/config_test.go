package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "node.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		check   func(*testing.T, *nodeConfig)
	}{
		{
			name:    "minimal config gets defaults",
			content: `{"node_id":"NODE-01","hw_id":"HW-001"}`,
			check: func(t *testing.T, cfg *nodeConfig) {
				if cfg.AuditLog != defaultAuditLog {
					t.Errorf("AuditLog = %s, want %s", cfg.AuditLog, defaultAuditLog)
				}
				if cfg.HeartbeatInterval != defaultHeartbeatInterval {
					t.Errorf("HeartbeatInterval = %d, want %d", cfg.HeartbeatInterval, defaultHeartbeatInterval)
				}
			},
		},
		{
			name:    "explicit values kept",
			content: `{"node_id":"NODE-01","hw_id":"HW-001","audit_log":"/var/log/chain.log","heartbeat_interval":5}`,
			check: func(t *testing.T, cfg *nodeConfig) {
				if cfg.AuditLog != "/var/log/chain.log" {
					t.Errorf("AuditLog = %s", cfg.AuditLog)
				}
				if cfg.HeartbeatInterval != 5 {
					t.Errorf("HeartbeatInterval = %d, want 5", cfg.HeartbeatInterval)
				}
			},
		},
		{
			name:    "missing node_id",
			content: `{"hw_id":"HW-001"}`,
			wantErr: "node_id",
		},
		{
			name:    "missing hw_id",
			content: `{"node_id":"NODE-01"}`,
			wantErr: "hw_id",
		},
		{
			name:    "invalid json",
			content: `{node_id}`,
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(writeConfig(t, tt.content))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("loadConfig() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("loadConfig(missing) error = nil")
	}
}
