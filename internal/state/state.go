// Package state provides thread-safe state management for the application.
// The compute loop publishes fresh almanac reports through a Manager; the UI
// reads consistent snapshots without blocking the producer.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-almanac/internal/report"
)

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	current         *report.Report
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration

	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration. A one-minute refresh
// keeps the clock-sensitive panels (altitude, azimuth) current; the almanac
// events themselves change on much longer scales.
func DefaultConfig() Config {
	return Config{
		RefreshInterval: time.Minute,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	refresh := cfg.RefreshInterval
	if refresh <= 0 {
		refresh = time.Minute
	}
	return &Manager{refreshInterval: refresh}
}

// Update atomically publishes a new report, or records a compute failure
// while retaining the previous report.
func (m *Manager) Update(r *report.Report, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.lastError = err
	m.computeDuration = computeDuration
	if r != nil {
		m.current = r
	}
}

// Snapshot is an immutable view of current state.
type Snapshot struct {
	Report          *report.Report
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	NextRefresh     time.Time
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Report:          m.current,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		NextRefresh:     m.lastCompute.Add(m.refreshInterval),
	}
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData reports whether at least one report has been published.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
