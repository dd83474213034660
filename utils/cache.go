// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"jiperaha/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client backing the booking slot when STORAGE_DRIVER=redis.
var CacheClient *redis.Client

// InitCache initializes the Redis client from AppConfig and verifies the connection.
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return nil
}

// CloseCache closes the Redis client if one was opened.
func CloseCache() error {
	if CacheClient == nil {
		return nil
	}
	return CacheClient.Close()
}
