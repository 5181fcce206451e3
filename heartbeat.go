// file: heartbeat.go
package main

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"miorai-web/logger"
)

// BackendMonitor tracks whether the miorai backend answered its last probe,
// so /health can report more than this process being alive.
type BackendMonitor struct {
	mu          sync.Mutex
	healthURL   string
	client      *http.Client
	reachable   bool
	lastSuccess time.Time
}

// NewBackendMonitor builds a monitor for the backend at apiBaseURL.
func NewBackendMonitor(apiBaseURL string) *BackendMonitor {
	return &BackendMonitor{
		healthURL: strings.TrimRight(apiBaseURL, "/") + "/api/health/",
		client:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Reachable reports the outcome of the most recent probe.
func (m *BackendMonitor) Reachable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reachable
}

// LastSuccess is when the backend last answered a probe.
func (m *BackendMonitor) LastSuccess() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSuccess
}

// Probe performs one health check and records the outcome.
func (m *BackendMonitor) Probe() {
	ok := false
	resp, err := m.client.Get(m.healthURL)
	if err != nil {
		logger.Warn.Printf("[BackendMonitor.Probe] backend unreachable: %v", err)
	} else {
		ok = resp.StatusCode < http.StatusBadRequest
		if err := resp.Body.Close(); err != nil {
			logger.Warn.Printf("[BackendMonitor.Probe] closing response body: %v", err)
		}
		if !ok {
			logger.Warn.Printf("[BackendMonitor.Probe] backend health returned %d", resp.StatusCode)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ok && !m.reachable {
		logger.Info.Println("[BackendMonitor.Probe] backend is reachable")
	}
	m.reachable = ok
	if ok {
		m.lastSuccess = time.Now()
	}
}

// Start probes once immediately, then keeps probing on the given interval.
func (m *BackendMonitor) Start(interval time.Duration) {
	m.Probe()
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			m.Probe()
		}
	}()
}
