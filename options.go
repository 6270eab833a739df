package sovereign

import (
	"time"

	"github.com/titancore/sovereign-go/audit"
)

// engineConfig holds configuration for engine construction.
type engineConfig struct {
	ledger       *audit.Ledger
	rateCapacity int
	rateWindow   time.Duration
}

// Option configures engine construction.
type Option func(*engineConfig)

// WithLedger makes the engine write to a shared ledger instead of creating
// its own. Engines sharing a ledger share one operation counter and one
// hash chain.
func WithLedger(l *audit.Ledger) Option {
	return func(c *engineConfig) {
		c.ledger = l
	}
}

// WithRateLimit overrides the default burst limit of 15 operations per
// 3-second sliding window. Non-positive values keep the defaults.
func WithRateLimit(capacity int, window time.Duration) Option {
	return func(c *engineConfig) {
		c.rateCapacity = capacity
		c.rateWindow = window
	}
}
