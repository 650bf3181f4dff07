// Package health tracks whether the remote API is reachable.
package health

import (
	"context"
	"sync"
	"time"

	"inventory-client/internal/clock"
	"inventory-client/internal/gateway"
	"inventory-client/internal/models"

	"go.uber.org/zap"
)

// Pinger calls the remote health endpoint.
type Pinger interface {
	Health(ctx context.Context) gateway.Response[models.HealthStatus]
}

// Status is the last known connectivity state. Connected is nil until
// the first check completes.
type Status struct {
	Connected   *bool     `json:"connected"`
	LastChecked time.Time `json:"lastChecked"`
	Server      string    `json:"server,omitempty"`
	Error       string    `json:"error,omitempty"`
}

type Monitor struct {
	pinger   Pinger
	clock    clock.Clock
	interval time.Duration
	logger   *zap.Logger

	mu     sync.RWMutex
	status Status
}

func NewMonitor(pinger Pinger, clk clock.Clock, interval time.Duration, logger *zap.Logger) *Monitor {
	return &Monitor{
		pinger:   pinger,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

// Check pings the API once and records the result.
func (m *Monitor) Check(ctx context.Context) Status {
	resp := m.pinger.Health(ctx)

	connected := resp.Success
	status := Status{Connected: &connected, LastChecked: m.clock.Now()}
	if resp.Success {
		status.Server = resp.Data.Status
	} else {
		status.Error = resp.Error
	}

	m.mu.Lock()
	previous := m.status.Connected
	m.status = status
	m.mu.Unlock()

	if previous == nil || *previous != connected {
		if connected {
			m.logger.Info("✅ API connection established")
		} else {
			m.logger.Warn("❌ API connection lost", zap.String("error", status.Error))
		}
	}
	return status
}

// Run checks immediately and then on every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	m.Check(ctx)

	ticker := m.clock.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}
