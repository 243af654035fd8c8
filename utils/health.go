package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// checkHealth probes both backends and returns a fresh snapshot.
func checkHealth(ctx context.Context, redisClient *redis.Client, mongoClient *mongo.Client) HealthStatus {
	return HealthStatus{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		Redis:     redisClient.Ping(ctx).Err() == nil,
		CheckedAt: time.Now(),
	}
}

func storeHealth(s HealthStatus) {
	healthMu.Lock()
	currentHealth = s
	healthMu.Unlock()
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The first check runs before the ticker starts so /health never reports the
// backends as down just because no tick has fired yet.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	ctx := context.Background()
	storeHealth(checkHealth(ctx, redisClient, mongoClient))

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			storeHealth(checkHealth(ctx, redisClient, mongoClient))
		}
	}()
}
