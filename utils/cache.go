// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"flowdesk/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// TimerCacheClient holds active time-tracking sessions.
	TimerCacheClient *redis.Client
	// AIContextCacheClient holds per-user AI chat context.
	AIContextCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	TimerCacheClient = newRedisClient(config.AppConfig.RedisTimerDB)
	AIContextCacheClient = newRedisClient(config.AppConfig.RedisAIContextDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	}
	return CacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetTimerCacheClient returns the Redis client for active timer state.
func GetTimerCacheClient() *redis.Client {
	if TimerCacheClient == nil {
		TimerCacheClient = newRedisClient(config.AppConfig.RedisTimerDB)
	}
	return TimerCacheClient
}

// GetAIContextCacheClient returns the Redis client for AI chat context.
func GetAIContextCacheClient() *redis.Client {
	if AIContextCacheClient == nil {
		AIContextCacheClient = newRedisClient(config.AppConfig.RedisAIContextDB)
	}
	return AIContextCacheClient
}
