package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck probes one dependency.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// Healthy reports whether every check passed.
func (s HealthStatus) Healthy() bool {
	for _, ok := range s.Checks {
		if !ok {
			return false
		}
	}
	return true
}

// HealthMonitor keeps the latest result of its checks in memory.
type HealthMonitor struct {
	checks  map[string]HealthCheck
	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(checks map[string]HealthCheck) *HealthMonitor {
	if checks == nil {
		checks = map[string]HealthCheck{}
	}
	return &HealthMonitor{checks: checks, current: HealthStatus{Checks: map[string]bool{}}}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CheckNow runs every check once and stores the result.
func (m *HealthMonitor) CheckNow(ctx context.Context) HealthStatus {
	results := make(map[string]bool, len(m.checks))
	for name, check := range m.checks {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		results[name] = check(checkCtx) == nil
		cancel()
	}
	status := HealthStatus{Checks: results, CheckedAt: time.Now()}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.CheckNow(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.CheckNow(ctx)
			}
		}
	}()
}

// Handler serves the latest snapshot; 503 when any check is failing.
func (m *HealthMonitor) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := m.Status()
		code := http.StatusOK
		label := "ok"
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
			label = "degraded"
		}
		c.JSON(code, gin.H{"status": label, "message": "Hi, I'm the LLC directory", "health": status})
	}
}
