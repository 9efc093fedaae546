package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vaishalishah/portfolio/internal/pkg/env"
)

var (
	client *redis.Client
	ctx    = context.Background()
)

// ErrDisabled is returned by the package helpers when no cache server is configured.
var ErrDisabled = errors.New("cache is not configured")

// SetupCache connects to the Redis compatible cache server named by
// CACHE_HOST. Without CACHE_HOST, or when the server does not answer, the
// cache stays disabled.
func SetupCache() {
	client = nil
	host := env.GetEnv("CACHE_HOST", "")
	if host == "" {
		log.Printf("CACHE_HOST not set, running without cache")
		return
	}
	port := env.GetEnv("CACHE_PORT", "6379")

	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	pong, err := c.Ping(ctx).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to cache: %v", err)
		_ = c.Close()
		return
	}
	log.Printf("Successfully connected to cache: %s", pong)

	client = c
}

// GetClient returns the connected client, nil while the cache is disabled.
func GetClient() *redis.Client {
	return client
}

// Set stores a value in the cache with the given key and expiration time
func Set(key string, value interface{}, expiration time.Duration) error {
	if client == nil {
		return ErrDisabled
	}
	return client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value from the cache by key
func Get(key string) (string, error) {
	if client == nil {
		return "", ErrDisabled
	}
	return client.Get(ctx, key).Result()
}

// Delete removes a value from the cache by key
func Delete(key string) error {
	if client == nil {
		return ErrDisabled
	}
	return client.Del(ctx, key).Err()
}
