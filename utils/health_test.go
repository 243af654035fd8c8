package utils

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// A snapshot must exist as soon as the monitor starts, even before the first
// tick, so /health reflects a real check rather than the zero value.
func TestStartHealthMonitorChecksImmediately(t *testing.T) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})
	defer redisClient.Close()

	mongoClient, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(100*time.Millisecond).
		SetConnectTimeout(100*time.Millisecond))
	require.NoError(t, err)
	defer mongoClient.Disconnect(context.Background())

	StartHealthMonitor(redisClient, mongoClient)

	status := GetHealthStatus()
	assert.False(t, status.CheckedAt.IsZero())
	assert.False(t, status.Mongo)
	assert.False(t, status.Redis)
}
