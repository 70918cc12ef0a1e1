// Package cache publishes the finished KPI snapshot of a run to Redis so a
// dashboard can read the latest numbers without touching Postgres.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps redis.Client
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(host, port, password string) *RedisClient {
	addr := fmt.Sprintf("%s:%s", host, port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0, // use default DB
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Failed to connect to Redis at %s: %v", addr, err)
		return nil
	}

	log.Printf("✅ Connected to Redis at %s", addr)
	return &RedisClient{client: client}
}

// PublishRun stores a value under mining:run:<runID>:<section> with the given
// TTL, and points mining:run:latest at the run id so dashboards can follow it.
func (r *RedisClient) PublishRun(ctx context.Context, runID, section string, value interface{}, ttl time.Duration) error {
	if r.client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("mining:run:%s:%s", runID, section)
	if err := r.client.Set(ctx, key, jsonBytes, ttl).Err(); err != nil {
		return err
	}
	return r.client.Set(ctx, "mining:run:latest", runID, ttl).Err()
}

// Get retrieves a previously published section into dest
func (r *RedisClient) Get(ctx context.Context, runID, section string, dest interface{}) error {
	if r.client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	key := fmt.Sprintf("mining:run:%s:%s", runID, section)
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
