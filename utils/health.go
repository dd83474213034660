package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of the storage backend.
type HealthStatus struct {
	Storage   string    `json:"storage"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth probes the backend once and stores the result.
func CheckHealth(ctx context.Context, name string, p Pinger) HealthStatus {
	status := HealthStatus{Storage: name, Healthy: true, CheckedAt: time.Now()}
	if err := p.Ping(ctx); err != nil {
		status.Healthy = false
		status.Error = err.Error()
		GetLogger().Warn("Storage health check failed", zap.String("storage", name), zap.Error(err))
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, name string, p Pinger, interval time.Duration) {
	firstCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	CheckHealth(firstCtx, name, p)
	cancel()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				CheckHealth(pingCtx, name, p)
				cancel()
			}
		}
	}()
}
