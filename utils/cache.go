// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"bookbarn/config"

	"github.com/go-redis/redis/v8"
)

// RoleCachePrefix namespaces cached role lookups in Redis.
const RoleCachePrefix = "role:"

// RoleCacheClient is the dedicated client for role/verification caching.
var RoleCacheClient *redis.Client

// InitRoleCache initializes the Redis client for role caching (using DB from AppConfig).
func InitRoleCache() {
	RoleCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRoleDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RoleCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Role Cache): %v", err)
	}
}

// GetRoleCacheClient returns the Redis client for role caching. A nil client
// means the cache was never initialized and lookups go straight to the store.
func GetRoleCacheClient() *redis.Client {
	return RoleCacheClient
}
