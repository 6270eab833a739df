package main

import (
	"log/slog"

	sovereign "github.com/titancore/sovereign-go"
)

// maxAnomalyScore is the number of failed operations after which the node
// locks itself.
const maxAnomalyScore = 5

// node supervises one engine: it tracks anomalies across operations and
// trips a kill switch when too many accumulate.
type node struct {
	cfg    *nodeConfig
	engine *sovereign.Engine
	log    *slog.Logger

	anomalies int
	active    bool
}

func newNode(configPath string) (*node, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	engine, err := sovereign.New(
		cfg.HWID,
		envOr(envRootSeed, defaultRootSeed),
		envOr(envLicenseKey, defaultLicenseKey),
		cfg.AuditLog,
	)
	if err != nil {
		return nil, err
	}

	return &node{
		cfg:    cfg,
		engine: engine,
		log:    newLogger(cfg.NodeID),
		active: true,
	}, nil
}

// encrypt runs one engine operation, accounting failures as anomalies.
// At maxAnomalyScore the node flips to COMPROMISED and stops accepting work.
func (n *node) encrypt(plaintext, recipientPublicKey []byte) (*sovereign.Result, error) {
	if !n.active {
		return nil, &sovereign.AuthorizationError{Reason: "node locked"}
	}

	result, err := n.engine.Operate(plaintext, recipientPublicKey)
	if err != nil {
		n.anomalies++
		n.log.Warn("anomaly", "count", n.anomalies, "max", maxAnomalyScore, "err", err)
		if n.anomalies >= maxAnomalyScore {
			n.active = false
			n.log.Error("max anomalies reached, node locked")
		}
		return nil, err
	}

	n.log.Info("vault success", "ref", shortRef(result.AuditRef), "counter", result.Counter)
	return result, nil
}

func (n *node) status() string {
	if n.active {
		return "ACTIVE"
	}
	return "COMPROMISED"
}

// heartbeat emits one telemetry log line. Transporting heartbeats to a
// remote endpoint is out of scope; the line is the local record.
func (n *node) heartbeat() {
	n.log.Info("heartbeat", "status", n.status(), "anomalies", n.anomalies)
}

func shortRef(ref string) string {
	if len(ref) > 12 {
		return ref[:12]
	}
	return ref
}
