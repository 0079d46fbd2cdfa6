package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthStatus is a snapshot of external dependency reachability. Redis
// entries are keyed by concern (cache, auth, timer, ai) so a degraded
// subsystem is identifiable from the health endpoint alone.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	Healthy   bool            `json:"healthy"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// pinger is the slice of the redis and mongo clients the monitor needs.
type pinger interface {
	ping(ctx context.Context) error
}

type redisPinger struct{ client *redis.Client }

func (p redisPinger) ping(ctx context.Context) error { return p.client.Ping(ctx).Err() }

type mongoPinger struct{ client *mongo.Client }

func (p mongoPinger) ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings Mongo and each named Redis client once a minute
// and stores the snapshot for the health endpoint.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	redisPingers := make(map[string]pinger, len(redisClients))
	for name, client := range redisClients {
		redisPingers[name] = redisPinger{client: client}
	}
	mongoCheck := mongoPinger{client: mongoClient}

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			status := buildHealthStatus(ctx, mongoCheck, redisPingers)
			cancel()

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}

func buildHealthStatus(ctx context.Context, mongo pinger, redisPingers map[string]pinger) HealthStatus {
	status := HealthStatus{
		Mongo:     mongo.ping(ctx) == nil,
		Redis:     make(map[string]bool, len(redisPingers)),
		CheckedAt: time.Now(),
	}

	status.Healthy = status.Mongo
	for name, p := range redisPingers {
		ok := p.ping(ctx) == nil
		status.Redis[name] = ok
		if !ok {
			status.Healthy = false
		}
	}
	return status
}
