package utils

import (
	"context"
	"sync"
	"time"

	"edunex/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus reports whether each backing service answered its last probe:
// the session/availability store and the two Redis caches.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	SlotCache bool      `json:"slotCache"`
	AuthCache bool      `json:"authCache"`
	CheckedAt time.Time `json:"checkedAt"`
}

// healthProbes maps each backing service to its ping.
type healthProbes struct {
	mongo     func(context.Context) error
	slotCache func(context.Context) error
	authCache func(context.Context) error
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the most recent snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func setHealth(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

func collectHealth(ctx context.Context, probes healthProbes) HealthStatus {
	return HealthStatus{
		Mongo:     probes.mongo(ctx) == nil,
		SlotCache: probes.slotCache(ctx) == nil,
		AuthCache: probes.authCache(ctx) == nil,
		CheckedAt: time.Now(),
	}
}

// StartHealthMonitor probes Mongo and both caches on the configured interval
// and keeps the latest snapshot for the health endpoint.
func StartHealthMonitor(slotCache, authCache *redis.Client, mongoClient *mongo.Client) {
	interval := time.Duration(config.AppConfig.HealthIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	probes := healthProbes{
		mongo: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		},
		slotCache: func(ctx context.Context) error {
			return slotCache.Ping(ctx).Err()
		},
		authCache: func(ctx context.Context) error {
			return authCache.Ping(ctx).Err()
		},
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			setHealth(collectHealth(ctx, probes))
			cancel()
		}
	}()
}
